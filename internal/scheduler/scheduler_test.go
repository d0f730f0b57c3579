package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

type countingSyncer struct {
	calls atomic.Int32
	err   error
}

func (c *countingSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	if c.err != nil {
		return nil, c.err
	}
	return &domain.SyncStats{SourceID: "sanity"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	syncer := &countingSyncer{}
	sched := NewScheduler(syncer, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	assert.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_ContinuesAfterFailure(t *testing.T) {
	syncer := &countingSyncer{err: errors.New("cms down")}
	sched := NewScheduler(syncer, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := sched.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, syncer.calls.Load(), int32(2))
}

func TestScheduler_RunOnce(t *testing.T) {
	syncer := &countingSyncer{}
	sched := NewScheduler(syncer, time.Hour, testLogger())

	stats, err := sched.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sanity", stats.SourceID)
	assert.Equal(t, int32(1), syncer.calls.Load())
}
