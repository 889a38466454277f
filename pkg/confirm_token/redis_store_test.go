package confirm_token

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 需要真实的Redis: REC_TEST_REDIS_ADDR=localhost:6379
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REC_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("REC_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	return NewRedisStore(client, "rec:test:"+uuid.NewString()+":")
}

func TestRedisStore_ConsumeOnce(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, "t1", time.Minute))

	ok, err := store.Consume(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Expiry(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, "t1", 100*time.Millisecond))
	time.Sleep(300 * time.Millisecond)

	ok, err := store.Consume(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}
