package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/redis/go-redis/v9"
)

// New connects to Redis and verifies connectivity. It returns a nil client without error
// when no host is configured, which leaves credential-check throttling disabled.
func New(cfg *config.Config) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}
	if cfg.Redis.Host == "" {
		return nil, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	return c, nil
}

// Close is safe to call on a nil client.
func Close(c *redis.Client) error {
	if c == nil {
		return nil
	}
	return c.Close()
}
