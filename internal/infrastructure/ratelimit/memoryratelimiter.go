package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter is the single-instance fallback used when Redis is disabled.
type MemoryRateLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{hits: make(map[string][]time.Time), now: time.Now}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, policy Policy) (bool, error) {
	if policy.Limit <= 0 || policy.Window <= 0 {
		return true, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	hits := l.trim(key, now.Add(-policy.Window))
	if len(hits) >= policy.Limit {
		return false, nil
	}
	l.hits[key] = append(hits, now)
	return true, nil
}

func (l *MemoryRateLimiter) Remaining(_ context.Context, key string, policy Policy) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining := int64(policy.Limit - len(l.trim(key, l.now().Add(-policy.Window))))
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.hits, key)
	l.mu.Unlock()
	return nil
}

func (l *MemoryRateLimiter) trim(key string, cutoff time.Time) []time.Time {
	hits := l.hits[key]
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	hits = hits[i:]
	if len(hits) == 0 {
		delete(l.hits, key)
		return nil
	}
	l.hits[key] = hits
	return hits
}
