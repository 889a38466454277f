package confirm_token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStoreWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, "t1", time.Minute))

	ok, err := store.Consume(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok, "token can only be consumed once")

	ok, err = store.Consume(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStoreWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, "t1", time.Minute))
	require.NoError(t, store.Issue(ctx, "t2", time.Minute))

	now = now.Add(59 * time.Second)
	ok, err := store.Consume(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Second)
	ok, err = store.Consume(ctx, "t2")
	require.NoError(t, err)
	assert.False(t, ok, "token expires exactly at ttl")
}

func TestMemoryStore_IssuePrunesExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStoreWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Issue(ctx, "old", time.Second))
	now = now.Add(time.Minute)
	require.NoError(t, store.Issue(ctx, "new", time.Second))

	assert.Len(t, store.tokens, 1)
}
