// Package ratelimit implements a Redis-backed fixed-window rate limiter,
// used to throttle login attempts per client IP.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/home4paws/home4paws/pkg/logger"
)

// RateLimiter decides whether a keyed action may proceed.
type RateLimiter interface {
	// Allow reports whether key is under limit for the current window. The
	// attempt is counted regardless of the outcome.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type redisRateLimiter struct {
	client *redis.Client
	log    logger.Logger
}

// NewRedisRateLimiter builds a fixed-window limiter on the given client.
func NewRedisRateLimiter(client *redis.Client, log logger.Logger) RateLimiter {
	return &redisRateLimiter{client: client, log: log.WithComponent("rate_limiter")}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() <= int64(limit), nil
}
