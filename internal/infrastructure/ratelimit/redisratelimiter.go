package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// slidingWindowScript trims expired members, then records the request only
// when the window still has room. Returns 1 when allowed.
var slidingWindowScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], "0", ARGV[1])
local count = redis.call("ZCARD", KEYS[1])
if count >= tonumber(ARGV[3]) then
	return 0
end
redis.call("ZADD", KEYS[1], ARGV[2], ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return 1
`)

// RedisRateLimiter keeps one sorted set of request timestamps per key, so
// every instance sharing the Redis sees the same window.
type RedisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, now: time.Now}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, policy Policy) (bool, error) {
	if policy.Limit <= 0 || policy.Window <= 0 {
		return true, nil
	}
	now := l.now()
	nowNano := now.UnixNano()
	windowStart := now.Add(-policy.Window).UnixNano()

	res, err := slidingWindowScript.Run(ctx, l.client, []string{l.key(key)},
		windowStart,
		nowNano,
		policy.Limit,
		strconv.FormatInt(nowNano, 10),
		(policy.Window + time.Minute).Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limit: %w", err)
	}
	return res == 1, nil
}

func (l *RedisRateLimiter) Remaining(ctx context.Context, key string, policy Policy) (int64, error) {
	windowStart := l.now().Add(-policy.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, l.key(key), "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, l.key(key))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to get remaining: %w", err)
	}

	remaining := int64(policy.Limit) - zcard.Val()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string) string {
	return "helpcenter:ratelimit:" + identifier
}
