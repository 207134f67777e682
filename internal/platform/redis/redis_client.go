// Package redis constructs the shared Redis client. Redis is optional; the
// server degrades to in-process fallbacks when it is absent.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"task_backend/internal/platform/config"
)

// NewRedisClient connects to Redis using the configured address and verifies
// the connection with a ping.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisAddr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
