package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

const defaultRunTimeout = 5 * time.Minute

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		interval:   interval,
		runTimeout: defaultRunTimeout,
		logger:     logger,
	}
}

// Start runs one sync immediately, then one per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

// RunOnce performs a single sync and returns its result.
func (s *Scheduler) RunOnce(ctx context.Context) (*domain.SyncStats, error) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	return s.syncer.Sync(syncCtx)
}

func (s *Scheduler) runSync(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
