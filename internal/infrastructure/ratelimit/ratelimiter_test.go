package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T) *RedisRateLimiter {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return NewRedisRateLimiter(client)
}

func limiters(t *testing.T) map[string]RateLimiter {
	return map[string]RateLimiter{
		"redis":  newRedisLimiter(t),
		"memory": NewMemoryRateLimiter(),
	}
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	policy := Policy{Limit: 3, Window: time.Hour}
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < 3; i++ {
				allowed, err := limiter.Allow(ctx, "guest:203.0.113.7", policy)
				require.NoError(t, err)
				assert.True(t, allowed, "request %d should be allowed", i+1)
			}
			allowed, err := limiter.Allow(ctx, "guest:203.0.113.7", policy)
			require.NoError(t, err)
			assert.False(t, allowed, "4th request should be denied")

			remaining, err := limiter.Remaining(ctx, "guest:203.0.113.7", policy)
			require.NoError(t, err)
			assert.Zero(t, remaining)

			allowed, err = limiter.Allow(ctx, "guest:198.51.100.1", policy)
			require.NoError(t, err)
			assert.True(t, allowed, "keys are independent")
		})
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	policy := Policy{Limit: 1, Window: time.Hour}
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			allowed, err := limiter.Allow(ctx, "k", policy)
			require.NoError(t, err)
			require.True(t, allowed)

			require.NoError(t, limiter.Reset(ctx, "k"))

			allowed, err = limiter.Allow(ctx, "k", policy)
			require.NoError(t, err)
			assert.True(t, allowed)
		})
	}
}

func TestMemoryRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	policy := Policy{Limit: 1, Window: time.Minute}
	ctx := context.Background()

	allowed, _ := limiter.Allow(ctx, "k", policy)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "k", policy)
	assert.False(t, allowed)

	now = now.Add(61 * time.Second)
	allowed, _ = limiter.Allow(ctx, "k", policy)
	assert.True(t, allowed)
}

func TestRateLimiter_ZeroLimitDisables(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			allowed, err := limiter.Allow(context.Background(), "k", Policy{})
			require.NoError(t, err)
			assert.True(t, allowed)
		})
	}
}
