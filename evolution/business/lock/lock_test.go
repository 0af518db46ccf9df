package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementalsouls.app/evolution/model"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager() (*Manager, *clock) {
	c := &clock{now: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	m := NewManager(NewMemoryStore(c.Now))
	m.now = c.Now
	return m, c
}

func TestAcquire_SecondHolderIsBusy(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	h, err := m.Acquire(ctx, 42, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "lock:42", h.Key)
	assert.NotEmpty(t, h.Token)

	_, err = m.Acquire(ctx, 42, time.Second)
	require.Error(t, err)
	assert.Equal(t, model.KindResourceBusy, model.KindOf(err))

	other, err := m.Acquire(ctx, 43, time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, h.Token, other.Token)

	require.NoError(t, m.Release(ctx, h))
	_, err = m.Acquire(ctx, 42, time.Second)
	assert.NoError(t, err)
}

func TestAcquire_ConcurrentOnlyOneWins(t *testing.T) {
	m, _ := newTestManager()

	var wins, busy int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Acquire(context.Background(), 7, time.Minute); err != nil {
				atomic.AddInt32(&busy, 1)
				return
			}
			atomic.AddInt32(&wins, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, int32(15), busy)
}

func TestRelease_StaleHandleIsNoOp(t *testing.T) {
	m, c := newTestManager()
	ctx := context.Background()

	a, err := m.Acquire(ctx, 9, 100*time.Millisecond)
	require.NoError(t, err)

	c.Advance(200 * time.Millisecond)

	b, err := m.Acquire(ctx, 9, time.Second)
	require.NoError(t, err)

	// a's lock expired and b now holds the asset.
	require.NoError(t, m.Release(ctx, a))

	_, err = m.Acquire(ctx, 9, time.Second)
	require.Error(t, err)
	assert.Equal(t, model.KindResourceBusy, model.KindOf(err))

	require.NoError(t, m.Release(ctx, b))
	_, err = m.Acquire(ctx, 9, time.Second)
	assert.NoError(t, err)
}

func TestRenew(t *testing.T) {
	m, c := newTestManager()
	ctx := context.Background()

	h, err := m.Acquire(ctx, 3, 100*time.Millisecond)
	require.NoError(t, err)

	c.Advance(80 * time.Millisecond)
	require.NoError(t, m.Renew(ctx, h, 100*time.Millisecond))
	assert.Equal(t, c.Now().Add(100*time.Millisecond), h.ExpiresAt)

	// Past the original expiry but inside the renewed one.
	c.Advance(80 * time.Millisecond)
	_, err = m.Acquire(ctx, 3, time.Second)
	assert.Equal(t, model.KindResourceBusy, model.KindOf(err))

	c.Advance(time.Second)
	assert.ErrorIs(t, m.Renew(ctx, h, 100*time.Millisecond), ErrLockLost)

	other, err := m.Acquire(ctx, 3, time.Second)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Renew(ctx, h, time.Second), ErrLockLost, "a stale handle cannot extend the new holder's lock")
	require.NoError(t, m.Renew(ctx, other, time.Second))
}

func TestRelease_NilHandle(t *testing.T) {
	m, _ := newTestManager()
	assert.NoError(t, m.Release(context.Background(), nil))
}
