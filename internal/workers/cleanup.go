package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// RejectedCleaner is the narrow slice of the moderation engine the worker
// needs.
type RejectedCleaner interface {
	CleanupRejected(ctx context.Context, olderThanDays int) (int64, error)
}

type cleanupWorker struct {
	cleaner       RejectedCleaner
	retentionDays int
	interval      time.Duration
}

// NewCleanupWorker creates the retention worker that soft-deletes rejected
// comments older than retentionDays, once per interval.
func NewCleanupWorker(cleaner RejectedCleaner, retentionDays int, interval time.Duration) *cleanupWorker {
	return &cleanupWorker{
		cleaner:       cleaner,
		retentionDays: retentionDays,
		interval:      interval,
	}
}

func (w *cleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// One pass on startup so a long interval does not delay the first sweep.
	w.run(ctx)

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down cleanup worker")
			return
		}
	}
}

func (w *cleanupWorker) run(ctx context.Context) {
	affected, err := w.cleaner.CleanupRejected(ctx, w.retentionDays)
	if err != nil {
		logrus.Errorf("cleanup worker run failed: %v", err)
		return
	}
	logrus.Infof("cleanup worker finished, %d comments soft deleted", affected)
}
