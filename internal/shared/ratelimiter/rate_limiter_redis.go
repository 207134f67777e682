package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window limiter shared across instances through a Redis
// counter per key.
type Redis struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRedis creates a Redis limiter allowing limit calls per window per key.
// Counter keys are namespaced with prefix.
func NewRedis(client *redis.Client, prefix string, limit int, window time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, limit: limit, window: window}
}

func (r *Redis) key(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Allow increments the key's window counter, starting the window's expiry on
// the first call. Redis failures return the error with allow=true so an
// outage does not lock out every caller.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := r.key(key)

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return true, err
		}
	}
	return n <= int64(r.limit), nil
}
