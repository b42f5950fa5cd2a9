package workers_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/Go-Blog-Moderation/internal/workers"
)

type fakeCleaner struct {
	calls atomic.Int64
	days  atomic.Int64
	err   error
}

func (f *fakeCleaner) CleanupRejected(_ context.Context, olderThanDays int) (int64, error) {
	f.calls.Add(1)
	f.days.Store(int64(olderThanDays))
	if f.err != nil {
		return 0, f.err
	}
	return 2, nil
}

func TestCleanupWorkerRunsOnStartup(t *testing.T) {
	cleaner := &fakeCleaner{}
	w := workers.NewCleanupWorker(cleaner, 30, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// The startup pass happens before the first tick.
	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(30), cleaner.days.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestCleanupWorkerTicks(t *testing.T) {
	cleaner := &fakeCleaner{}
	w := workers.NewCleanupWorker(cleaner, 30, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestCleanupWorkerSurvivesErrors(t *testing.T) {
	cleaner := &fakeCleaner{err: errors.New("db down")}
	w := workers.NewCleanupWorker(cleaner, 30, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Failed runs never stop the loop.
	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}
