package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const counterKeyPrefix = "helpcenter:counter:"

// raiseFloorScript lifts a counter to at least ARGV[1] and never lowers it.
var raiseFloorScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
local floor = tonumber(ARGV[1])
if current < floor then
	redis.call("SET", KEYS[1], floor)
	return floor
end
return current
`)

// RedisCounterStore implements ticket.CounterStore with INCR. A missing key
// counts from zero, so the first Increment returns 1.
type RedisCounterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Increment(ctx context.Context, name string) (int64, error) {
	seq, err := s.client.Incr(ctx, counterKeyPrefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return seq, nil
}

// RaiseFloor makes sure the next Increment returns more than floor. It is
// used when switching from the database store so numbers keep increasing.
func (s *RedisCounterStore) RaiseFloor(ctx context.Context, name string, floor int64) (int64, error) {
	v, err := raiseFloorScript.Run(ctx, s.client, []string{counterKeyPrefix + name}, floor).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to raise counter %s: %w", name, err)
	}
	return v, nil
}
