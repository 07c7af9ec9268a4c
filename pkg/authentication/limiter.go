// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
)

const loginAttemptsPrefix = "notes:login:failures"

// RedisLimiter counts failed logins per username in a fixed window shared by all replicas.
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *RedisLimiter) key(username string) string {
	return fmt.Sprintf("%s:%s", loginAttemptsPrefix, username)
}

func (l *RedisLimiter) Allowed(ctx context.Context, username string) (bool, error) {
	ctx, span := l.tracer.Start(ctx, "authentication.RedisLimiter.Allowed")
	defer span.End()

	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return true, fmt.Errorf("failed to read login attempts: %w", err)
	}

	return n < l.maxAttempts, nil
}

// Fail records a failed attempt. INCR and EXPIRE run in one MULTI/EXEC so the
// counter can never outlive its window, each failure restarts the window.
func (l *RedisLimiter) Fail(ctx context.Context, username string) (int64, error) {
	ctx, span := l.tracer.Start(ctx, "authentication.RedisLimiter.Fail")
	defer span.End()

	key := l.key(username)

	var incr *redis.IntCmd

	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record login attempt: %w", err)
	}

	return incr.Val(), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, username string) error {
	ctx, span := l.tracer.Start(ctx, "authentication.RedisLimiter.Reset")
	defer span.End()

	return l.client.Del(ctx, l.key(username)).Err()
}

// Ping checks redis is reachable and records the outcome as dependency availability.
func (l *RedisLimiter) Ping(ctx context.Context) error {
	tags := map[string]string{"component": "redis"}

	if err := l.client.Ping(ctx).Err(); err != nil {
		_ = l.monitor.SetDependencyAvailability(tags, 0)
		return err
	}

	_ = l.monitor.SetDependencyAvailability(tags, 1)
	return nil
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

func NewRedisLimiter(redisURL string, maxAttempts int64, window time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	if maxAttempts <= 0 {
		return nil, fmt.Errorf("max login attempts must be positive")
	}

	l := new(RedisLimiter)
	l.client = redis.NewClient(opts)
	l.maxAttempts = maxAttempts
	l.window = window
	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l, nil
}

// NoopLimiter never throttles, it is used when no redis is configured.
type NoopLimiter struct{}

func (NoopLimiter) Allowed(context.Context, string) (bool, error) { return true, nil }

func (NoopLimiter) Fail(context.Context, string) (int64, error) { return 0, nil }

func (NoopLimiter) Reset(context.Context, string) error { return nil }

func NewNoopLimiter() *NoopLimiter {
	return &NoopLimiter{}
}
