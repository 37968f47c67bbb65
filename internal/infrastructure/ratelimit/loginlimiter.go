package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"genturix/internal/shared/logger"
)

// LoginLimiter throttles login attempts per (email, client IP) pair. Only
// failed attempts count against the window: a user presenting valid
// credentials is never throttled by their own successful logins.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now. It does
	// not consume the window.
	Allow(ctx context.Context, email, ip string) (bool, error)

	// RecordFailure charges one failed attempt to the current window.
	RecordFailure(ctx context.Context, email, ip string)
}

// RedisLoginLimiter counts failed attempts in fixed windows with INCR +
// EXPIRE. When redis is unreachable the limiter fails open: an outage must
// not lock everyone out.
type RedisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
	logger      logger.Interface
}

func NewRedisLoginLimiter(client *redis.Client, maxAttempts, windowSeconds int, log logger.Interface) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      time.Duration(windowSeconds) * time.Second,
		logger:      log,
	}
}

func (l *RedisLoginLimiter) key(email, ip string) string {
	bucket := time.Now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("login:ratelimit:%s:%s:%d", email, ip, bucket)
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, email, ip string) (bool, error) {
	count, err := l.client.Get(ctx, l.key(email, ip)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		l.logger.Warnw("login rate limiter unavailable, allowing request", "error", err)
		return true, nil
	}

	return count < int64(l.maxAttempts), nil
}

func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, email, ip string) {
	key := l.key(email, ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warnw("failed to record login failure", "error", err, "key", key)
		return
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window+time.Second).Err(); err != nil {
			l.logger.Warnw("failed to set rate limit expiry", "error", err, "key", key)
		}
	}
}
