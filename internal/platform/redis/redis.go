package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"giveaway-radar-backend/internal/config"
)

// Client wraps go-redis client to allow future extensions.
type Client struct {
	*redis.Client
}

// Open creates a Redis client from config and pings it to validate the
// connection.
func Open(ctx context.Context, cfg *config.Config) (*Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr(), err)
	}
	return &Client{Client: c}, nil
}

// Healthy pings the server, reporting readiness.
func (c *Client) Healthy(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
