package scholarshipservice

import (
	"context"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, f domain.ScholarshipFilter) ([]domain.Scholarship, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
	Create(ctx context.Context, s *domain.Scholarship) (*domain.Scholarship, error)
	Update(ctx context.Context, s *domain.Scholarship) error
}

type LookupRepo interface {
	List(ctx context.Context, table string) ([]domain.Lookup, error)
}

type Activity interface {
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Service struct {
	repo     Repo
	lookups  LookupRepo
	activity Activity
}

func New(repo Repo, lookups LookupRepo, activity Activity) *Service {
	return &Service{
		repo:     repo,
		lookups:  lookups,
		activity: activity,
	}
}

func (s *Service) List(ctx context.Context, f domain.ScholarshipFilter) ([]domain.Scholarship, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Scholarship{}
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error) {
	sch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sch == nil {
		return nil, domain.ErrScholarshipNotFound
	}
	return sch, nil
}

func (s *Service) Types(ctx context.Context) ([]domain.Lookup, error) {
	return s.lookups.List(ctx, "scholarship_types")
}

func (s *Service) Categories(ctx context.Context) ([]domain.Lookup, error) {
	return s.lookups.List(ctx, "scholarship_categories")
}

// Create stores a new scholarship program. Type defaults to
// "scholarship" and status to Active.
func (s *Service) Create(ctx context.Context, actor domain.Actor, sch *domain.Scholarship) (*domain.Scholarship, error) {
	if sch.Type == "" {
		sch.Type = "scholarship"
	}
	if sch.Status == "" {
		sch.Status = domain.ScholarshipActive
	}
	if sch.RequiredDocuments == nil {
		sch.RequiredDocuments = []string{}
	}
	if err := sch.EligibilityCriteria.Stamp(); err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	if errs := sch.Validate(); len(errs) > 0 {
		return nil, domain.Invalid("Validation failed", errs)
	}

	created, err := s.repo.Create(ctx, sch)
	if err != nil {
		return nil, err
	}
	zap.L().Info("scholarship created", zap.String("code", created.Code))
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &actor.ID,
		Action:     domain.AuditScholarshipCreated,
		EntityType: "scholarship",
		EntityID:   created.ID.String(),
		Details:    map[string]any{"code": created.Code, "name": created.Name},
	})
	return created, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.ScholarshipPatch) (*domain.Scholarship, error) {
	sch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changed := patch.Apply(sch)
	if err := sch.EligibilityCriteria.Stamp(); err != nil {
		return nil, domain.BadRequest(err.Error())
	}
	if errs := sch.Validate(); len(errs) > 0 {
		return nil, domain.Invalid("Validation failed", errs)
	}
	if len(changed) == 0 {
		return sch, nil
	}
	if err := s.repo.Update(ctx, sch); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &actor.ID,
		Action:     domain.AuditScholarshipUpdated,
		EntityType: "scholarship",
		EntityID:   id.String(),
		Details:    map[string]any{"changes": changed},
	})
	return sch, nil
}
