// Package scheduler runs the periodic maintenance job: expired listings are
// deactivated and memoized recommendations flushed so rankings never carry
// dead opportunities past their deadline.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"opportunity-recommender/internal/matching"
	"opportunity-recommender/internal/storage/postgres"
)

// Scheduler wraps robfig/cron and manages the maintenance loop.
type Scheduler struct {
	cron   *cron.Cron
	store  *postgres.Store
	engine *matching.Engine
	logger *zap.Logger
	spec   string // cron spec, e.g. "@every 1h"
}

// New creates a Scheduler that sweeps every intervalHours hours.
func New(store *postgres.Store, engine *matching.Engine, intervalHours int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		store:  store,
		engine: engine,
		logger: logger,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. One sweep runs
// immediately so a restart does not wait a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("maintenance scheduler started", zap.String("spec", s.spec))

	go s.sweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("maintenance scheduler stopped")
}

func (s *Scheduler) sweep(ctx context.Context) {
	s.logger.Info("maintenance sweep started")

	deactivated, err := s.store.DeactivateExpired(ctx)
	if err != nil {
		s.logger.Error("expired sweep failed", zap.Error(err))
		return
	}

	if deactivated > 0 {
		s.logger.Info("expired opportunities deactivated", zap.Int64("count", deactivated))
		if err := s.engine.InvalidateAll(ctx); err != nil {
			s.logger.Warn("recommendation cache flush failed", zap.Error(err))
		}
	}

	s.logger.Info("maintenance sweep complete")
}
