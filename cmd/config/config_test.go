package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_BACKEND", "DB_PATH", "REDIS_HOST", "RABBITMQ_HOST", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, constant.EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, constant.BackendSQLite, cfg.Database.Backend)
	assert.Equal(t, "local.db", cfg.Database.Path)
	assert.Empty(t, cfg.Redis.Host)
	assert.Empty(t, cfg.RabbitMQ.Host)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_BACKEND", "MySQL")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")

	cfg := config.Load()
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, constant.BackendMySQL, cfg.Database.Backend)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
}

func TestConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name    string
		db      config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{
			name: "sqlite file",
			db:   config.DatabaseConfig{Backend: constant.BackendSQLite, Path: "local.db"},
			want: "file:local.db?_pragma=busy_timeout(5000)",
		},
		{
			name: "libsql with token",
			db:   config.DatabaseConfig{Backend: constant.BackendLibSQL, URL: "libsql://shop.turso.io", AuthToken: "tok"},
			want: "libsql://shop.turso.io?authToken=tok",
		},
		{
			name:    "libsql without url",
			db:      config.DatabaseConfig{Backend: constant.BackendLibSQL},
			wantErr: true,
		},
		{
			name: "mysql default port",
			db:   config.DatabaseConfig{Backend: constant.BackendMySQL, Host: "db", User: "root", Password: "pw", Name: "shop"},
			want: "root:pw@tcp(db:3306)/shop?parseTime=true&clientFoundRows=true",
		},
		{
			name: "postgres",
			db:   config.DatabaseConfig{Backend: constant.BackendPostgres, Host: "db", Port: 6543, User: "app", Password: "p@ss", Name: "shop"},
			want: "postgres://app:p%40ss@db:6543/shop?sslmode=disable",
		},
		{
			name:    "unknown backend",
			db:      config.DatabaseConfig{Backend: "oracle"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Database: tt.db}
			got, err := cfg.GetDSN()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
