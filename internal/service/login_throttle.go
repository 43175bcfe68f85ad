package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/taskguard-api/pkg/config"
)

// LoginThrottle caps consecutive failed login attempts per username.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// RedisLoginThrottle counts failures in Redis with a sliding window TTL.
type RedisLoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginThrottle builds a throttle from config.
func NewRedisLoginThrottle(client *redis.Client, cfg config.ThrottleConfig) *RedisLoginThrottle {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	window := cfg.Window
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

func (t *RedisLoginThrottle) key(username string) string {
	return fmt.Sprintf("login_failures:%s", strings.ToLower(username))
}

// Allow reports whether another attempt is permitted for the username.
func (t *RedisLoginThrottle) Allow(ctx context.Context, username string) (bool, error) {
	count, err := t.client.Get(ctx, t.key(username)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read login failure count: %w", err)
	}
	return count < t.maxAttempts, nil
}

// RecordFailure increments the failure counter and refreshes the window.
func (t *RedisLoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *RedisLoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}
	return nil
}
