package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/shared/biztime"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client
}

func TestRedisCounterStore_IncrementStartsAtOne(t *testing.T) {
	store := NewRedisCounterStore(setupTestRedis(t))
	ctx := context.Background()

	seq, err := store.Increment(ctx, "support_ticket_seq")
	require.NoError(t, err)
	assert.EqualValues(t, 1, seq)

	seq, err = store.Increment(ctx, "support_ticket_seq")
	require.NoError(t, err)
	assert.EqualValues(t, 2, seq)
}

func TestRedisCounterStore_ConcurrentCallersGetDistinctValues(t *testing.T) {
	store := NewRedisCounterStore(setupTestRedis(t))
	ctx := context.Background()

	const callers = 50
	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := store.Increment(ctx, "c")
			assert.NoError(t, err)
			mu.Lock()
			seen[seq] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, callers)
}

func TestRedisCounterStore_RaiseFloorNeverLowers(t *testing.T) {
	store := NewRedisCounterStore(setupTestRedis(t))
	ctx := context.Background()

	v, err := store.RaiseFloor(ctx, "c", 41)
	require.NoError(t, err)
	assert.EqualValues(t, 41, v)

	v, err = store.RaiseFloor(ctx, "c", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 41, v)

	gen := ticket.NewNumberGenerator(store, biztime.FixedClock(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	code, err := gen.Next(ctx, "c", "SUP")
	require.NoError(t, err)
	assert.Equal(t, "SUP-2024-000042", code)
}
