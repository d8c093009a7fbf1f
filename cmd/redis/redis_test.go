package redisclient_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-service/cmd/config"
	redisclient "github.com/muhammadheryan/inventory-service/cmd/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	c, err := redisclient.New(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, redisclient.Close(c))
}

func TestNew_NilConfig(t *testing.T) {
	_, err := redisclient.New(nil)
	assert.Error(t, err)
}
