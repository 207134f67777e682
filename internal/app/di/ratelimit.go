// Package di selects between alternative backends at wiring time.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"task_backend/internal/shared/ratelimiter"
)

// NewAuthLimiter creates the limiter guarding the auth endpoints. With Redis
// available the window is shared across instances; otherwise it falls back
// to process memory.
func NewAuthLimiter(rdb *redis.Client, limit int, window time.Duration) ratelimiter.Limiter {
	if rdb != nil {
		return ratelimiter.NewRedis(rdb, "authlimit", limit, window)
	}
	return ratelimiter.NewMemory(limit, window)
}
