package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"rec-go/internal/models"
	"rec-go/internal/testutil"
	"rec-go/pkg/confirm_token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClearFixture(t *testing.T) (*testServices, *ClearService, *fakeClock) {
	t.Helper()
	s := newTestServices(t)
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := confirm_token.NewMemoryStoreWithClock(clock.Now)
	cs := NewClearService(s.records, store, time.Minute, testutil.NewTestLogger())
	cs.now = clock.Now
	return s, cs, clock
}

func countRecords(t *testing.T, s *testServices) int {
	t.Helper()
	records, err := s.records.GetBatchRecords(nil)
	require.NoError(t, err)
	return len(records)
}

func TestClear_RequestThenConfirm(t *testing.T) {
	s, cs, _ := newClearFixture(t)
	ctx := context.Background()
	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", map[string]string{models.FieldName: "x"})

	resp, err := cs.RequestClear(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC), resp.ExpiresAt)

	require.NoError(t, cs.ConfirmClear(ctx, resp.Token))
	assert.Equal(t, 0, countRecords(t, s))

	batches, err := s.records.GetAllBatches()
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestClear_ConfirmWithoutRequest(t *testing.T) {
	s, cs, _ := newClearFixture(t)
	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", nil)

	assert.ErrorIs(t, cs.ConfirmClear(context.Background(), ""), ErrConfirmationInvalid)
	assert.ErrorIs(t, cs.ConfirmClear(context.Background(), "not-a-token"), ErrConfirmationInvalid)
	assert.Equal(t, 1, countRecords(t, s))
}

func TestClear_TokenSingleUse(t *testing.T) {
	s, cs, _ := newClearFixture(t)
	ctx := context.Background()

	resp, err := cs.RequestClear(ctx)
	require.NoError(t, err)
	require.NoError(t, cs.ConfirmClear(ctx, resp.Token))

	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", nil)

	assert.ErrorIs(t, cs.ConfirmClear(ctx, resp.Token), ErrConfirmationInvalid)
	assert.Equal(t, 1, countRecords(t, s))
}

func TestClear_TokenExpires(t *testing.T) {
	s, cs, clock := newClearFixture(t)
	ctx := context.Background()
	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", nil)

	resp, err := cs.RequestClear(ctx)
	require.NoError(t, err)

	clock.Advance(61 * time.Second)
	assert.ErrorIs(t, cs.ConfirmClear(ctx, resp.Token), ErrConfirmationInvalid)
	assert.Equal(t, 1, countRecords(t, s))
}
