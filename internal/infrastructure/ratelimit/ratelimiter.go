package ratelimit

import (
	"context"
	"time"
)

// Policy caps requests per key within a sliding window.
type Policy struct {
	Limit  int
	Window time.Duration
}

// RateLimiter answers whether one more request for key fits the policy.
// Allowed requests are recorded; rejected ones are not.
type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	Remaining(ctx context.Context, key string, policy Policy) (int64, error)
	Reset(ctx context.Context, key string) error
}
