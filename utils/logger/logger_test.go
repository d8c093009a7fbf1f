package logger_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	for _, env := range []string{constant.EnvDevelopment, constant.EnvProduction} {
		require.NoError(t, logger.Init(env))
		assert.NotNil(t, logger.Get())
	}
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	logger.Debug("hidden")
	logger.Info("visible", zap.String("key", "value"))
	logger.Error("[GetProduct] err productRepo.GetByEAN13", zap.String("error", "boom"))

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "visible", entries[0].Message)
	assert.Equal(t, "value", entries[0].ContextMap()["key"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
