package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-decision/internal/adapter/memory"
	"mesa-decision/internal/core/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type countingSweeper struct {
	calls atomic.Int64
	err   error
}

func (c *countingSweeper) Sweep(context.Context, time.Time) (int64, error) {
	c.calls.Add(1)
	return 2, c.err
}

func TestRunOnceSweepsMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewFrequencyStore()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ev := domain.FrequencyEvent{EventID: "r1", UserID: "u", AdID: 1, Type: domain.EventImpression, OccurredAt: start}
	_, _, err := store.Increment(ctx, ev, domain.WindowAround(start, time.Hour))
	require.NoError(t, err)

	s := NewSweepService(store, time.Minute, discard)
	s.now = func() time.Time { return start.Add(2 * time.Hour) }

	removed, err := s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, 0, store.Len())
}

func TestRunOnceReturnsSweepError(t *testing.T) {
	target := &countingSweeper{err: errors.New("db down")}
	s := NewSweepService(target, time.Minute, discard)

	_, err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestStartRunsOnInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	target := &countingSweeper{}

	s := NewSweepService(target, 20*time.Millisecond, discard)
	require.NoError(t, s.Start(ctx))

	assert.Eventually(t, func() bool { return target.calls.Load() >= 2 }, time.Second, 10*time.Millisecond)
}

func TestStartDisabled(t *testing.T) {
	target := &countingSweeper{}
	s := NewSweepService(target, 0, discard)

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, target.calls.Load())
}
