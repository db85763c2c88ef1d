package sfs

import (
	"context"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"go.uber.org/zap"
)

type syncRunner interface {
	Sync(ctx context.Context) (*domain.SFSSyncResult, error)
}

// Scheduler repeats the enrollment sync on a fixed interval until the
// context is cancelled. A non-positive interval disables it.
type Scheduler struct {
	syncer   syncRunner
	interval time.Duration
}

func NewScheduler(syncer syncRunner, interval time.Duration) *Scheduler {
	return &Scheduler{syncer: syncer, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("SFS sync schedule disabled")
		return
	}
	zap.L().Info("SFS sync scheduler started", zap.Duration("interval", s.interval))
	s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping SFS scheduler")
			return
		case <-ticker.C:
			if _, err := s.syncer.Sync(ctx); err != nil {
				zap.L().Error("scheduled sfs sync failed", zap.Error(err))
			}
		}
	}
}
