package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/platform/memory"
	"github.com/phrazzld/mindset-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
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

type endRecord struct {
	id     uuid.UUID
	reason string
}

func newTestRegistry(cfg Config) (*Registry, *fakeClock, *[]endRecord) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	var mu sync.Mutex
	ended := &[]endRecord{}
	r := NewRegistry(
		cfg,
		func() store.JournalStore { return memory.NewJournalStore() },
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(clock.Now),
		WithEndHook(func(id uuid.UUID, reason string) {
			mu.Lock()
			defer mu.Unlock()
			*ended = append(*ended, endRecord{id, reason})
		}),
	)
	return r, clock, ended
}

func TestRegistry_SessionsAreIndependent(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRegistry(Config{IdleTimeout: time.Hour})

	idA, storeA, err := r.Create()
	require.NoError(t, err)
	idB, storeB, err := r.Create()
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	_, err = storeA.AddGoal("only in A", "", domain.MustParseDate("2024-06-01"))
	require.NoError(t, err)

	gotA, err := r.Get(idA)
	require.NoError(t, err)
	gotB, err := r.Get(idB)
	require.NoError(t, err)

	assert.Len(t, gotA.ListGoals(), 1)
	assert.Empty(t, gotB.ListGoals())
	assert.Same(t, storeB, gotB)
	assert.Equal(t, 2, r.Count())
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRegistry(Config{})

	_, err := r.Get(uuid.New())
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestRegistry_End(t *testing.T) {
	t.Parallel()
	r, _, ended := newTestRegistry(Config{})

	id, _, err := r.Create()
	require.NoError(t, err)

	require.NoError(t, r.End(id))
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, []endRecord{{id, EndReasonClosed}}, *ended)

	_, err = r.Get(id)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.True(t, errors.Is(r.End(id), ErrSessionNotFound))
}

func TestRegistry_IdleExpiry(t *testing.T) {
	t.Parallel()
	r, clock, ended := newTestRegistry(Config{IdleTimeout: 10 * time.Minute})

	active, _, err := r.Create()
	require.NoError(t, err)
	idle, _, err := r.Create()
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	_, err = r.Get(active)
	require.NoError(t, err, "access refreshes the idle timer")

	clock.Advance(6 * time.Minute)
	evicted := r.Sweep()
	assert.Equal(t, []uuid.UUID{idle}, evicted)
	assert.Equal(t, 1, r.Count())
	assert.Equal(t, []endRecord{{idle, EndReasonExpired}}, *ended)

	clock.Advance(11 * time.Minute)
	_, err = r.Get(active)
	assert.True(t, errors.Is(err, ErrSessionNotFound), "expired sessions are rejected before the janitor runs")
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_NoIdleTimeout(t *testing.T) {
	t.Parallel()
	r, clock, _ := newTestRegistry(Config{})

	id, _, err := r.Create()
	require.NoError(t, err)
	clock.Advance(24 * 365 * time.Hour)

	assert.Empty(t, r.Sweep())
	_, err = r.Get(id)
	assert.NoError(t, err)
}

func TestRegistry_MaxSessions(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRegistry(Config{MaxSessions: 2})

	first, _, err := r.Create()
	require.NoError(t, err)
	_, _, err = r.Create()
	require.NoError(t, err)

	_, _, err = r.Create()
	assert.True(t, errors.Is(err, ErrSessionLimitReached))

	require.NoError(t, r.End(first))
	_, _, err = r.Create()
	assert.NoError(t, err)
}

func TestRegistry_StartStop(t *testing.T) {
	t.Parallel()
	r := NewRegistry(
		Config{IdleTimeout: time.Nanosecond, SweepInterval: 5 * time.Millisecond},
		func() store.JournalStore { return memory.NewJournalStore() },
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, _, err := r.Create()
	require.NoError(t, err)

	r.Start(context.Background())
	assert.Eventually(t, func() bool { return r.Count() == 0 }, time.Second, 5*time.Millisecond)

	r.Stop()
	r.Stop()
}

func TestRegistry_StartWithCanceledContext(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRegistry(Config{SweepInterval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()
	r.Stop()
}

func TestRegistry_DisabledJanitor(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRegistry(Config{})
	r.Start(context.Background())
	r.Stop()
}
