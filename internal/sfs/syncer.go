package sfs

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	ListForEnrollmentSync(ctx context.Context) ([]domain.Application, error)
	SetCOR(ctx context.Context, id uuid.UUID, status domain.CORStatus, confirmedAt *time.Time) error
}

// Syncer checks every application still waiting on enrollment
// confirmation and records the ones the SFS already knows about.
type Syncer struct {
	repo    Repo
	checker Checker
	workers int
	newPool func(size int) WorkerPoolI
	now     func() time.Time
}

var processing sync.Map

func NewSyncer(repo Repo, checker Checker, workers int) *Syncer {
	return &Syncer{
		repo:    repo,
		checker: checker,
		workers: workers,
		newPool: func(size int) WorkerPoolI { return NewWorkerPool(size) },
		now:     time.Now,
	}
}

func (s *Syncer) Sync(ctx context.Context) (*domain.SFSSyncResult, error) {
	res := &domain.SFSSyncResult{StartedAt: s.now(), Errors: []string{}}

	apps, err := s.repo.ListForEnrollmentSync(ctx)
	if err != nil {
		zap.L().Error("can't fetch applications for sfs sync", zap.Error(err))
		return nil, err
	}

	pool := s.newPool(s.workers)
	defer pool.Close()

	var mu sync.Mutex
	record := func(fn func()) {
		mu.Lock()
		fn()
		mu.Unlock()
	}

	for _, app := range apps {
		app := app
		if _, loaded := processing.LoadOrStore(app.ID, struct{}{}); loaded {
			continue
		}
		record(func() { res.EnrollmentChecks++ })

		err := pool.AddTask(ctx, func() error {
			defer processing.Delete(app.ID)
			confirmed, err := s.handle(ctx, app)
			record(func() {
				switch {
				case err != nil:
					res.Errors = append(res.Errors, app.ReferenceNumber+": "+err.Error())
				case confirmed:
					res.EnrollmentConfirmed++
				default:
					res.EnrollmentPending++
				}
			})
			return err
		})
		if err != nil {
			processing.Delete(app.ID)
			record(func() { res.Errors = append(res.Errors, app.ReferenceNumber+": "+err.Error()) })
			break
		}
	}
	pool.Wait()

	res.CompletedAt = s.now()
	zap.L().Info("sfs sync finished",
		zap.Int("checked", res.EnrollmentChecks),
		zap.Int("confirmed", res.EnrollmentConfirmed),
		zap.Int("errors", len(res.Errors)))
	return res, nil
}

func (s *Syncer) handle(ctx context.Context, app domain.Application) (bool, error) {
	result, err := s.checker.Check(ctx, app)
	if err != nil {
		return false, err
	}
	if !result.Confirmed {
		if app.CORStatus == domain.CORPending {
			return false, nil
		}
		return false, s.repo.SetCOR(ctx, app.ID, domain.CORPending, nil)
	}
	now := s.now()
	return true, s.repo.SetCOR(ctx, app.ID, domain.CORConfirmed, &now)
}
