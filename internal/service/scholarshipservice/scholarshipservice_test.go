package scholarshipservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLookupRepo, *MockActivity) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	lookups := NewMockLookupRepo(ctrl)
	activity := NewMockActivity(ctrl)
	service := New(repo, lookups, activity)
	defer ctrl.Finish()
	return service, repo, lookups, activity
}

func TestGet(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	id := uuid.New()

	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
	_, err := service.Get(context.Background(), id)
	assert.Equal(t, domain.ErrScholarshipNotFound, err)

	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("db error"))
	_, err = service.Get(context.Background(), id)
	assert.EqualError(t, err, "db error")
}

func TestList_NeverNil(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	repo.EXPECT().List(gomock.Any(), domain.ScholarshipFilter{Status: "Active"}).Return(nil, nil)

	list, err := service.List(context.Background(), domain.ScholarshipFilter{Status: "Active"})
	assert.NoError(t, err)
	assert.NotNil(t, list)
}

func TestCreate(t *testing.T) {
	service, repo, _, activity := NewMock(t)
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		input         *domain.Scholarship
		prepareMock   func()
		expectedError bool
	}{
		{
			name:          "Missing required fields",
			input:         &domain.Scholarship{},
			prepareMock:   func() {},
			expectedError: true,
		},
		{
			name: "Defaults applied",
			input: &domain.Scholarship{
				Code: "RUT", Name: "Rutherford", Value: decimal.NewFromInt(2500),
				DeadlineEnd: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), AcademicYear: "2024-2025",
			},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.Scholarship) (*domain.Scholarship, error) {
					assert.Equal(t, "scholarship", s.Type)
					assert.Equal(t, domain.ScholarshipActive, s.Status)
					assert.Equal(t, domain.BagSchemaVersion, s.EligibilityCriteria.SchemaVersion)
					s.ID = uuid.New()
					return s, nil
				})
				activity.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			sch, err := service.Create(context.Background(), actor, tt.input)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, 400, domain.StatusOf(err))
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, sch.ID)
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo, _, activity := NewMock(t)
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	id := uuid.New()
	stored := func() *domain.Scholarship {
		return &domain.Scholarship{
			ID: id, Code: "RUT", Name: "Rutherford", Status: domain.ScholarshipActive,
			DeadlineEnd: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), AcademicYear: "2024-2025",
		}
	}
	closed := domain.ScholarshipClosed
	bogus := "Archived"

	t.Run("Status change is audited", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e domain.AuditEntry) {
			assert.Equal(t, []string{"status"}, e.Details["changes"])
		})
		sch, err := service.Update(context.Background(), actor, id, domain.ScholarshipPatch{Status: &closed})
		assert.NoError(t, err)
		assert.Equal(t, domain.ScholarshipClosed, sch.Status)
	})

	t.Run("Invalid status", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored(), nil)
		_, err := service.Update(context.Background(), actor, id, domain.ScholarshipPatch{Status: &bogus})
		assert.Equal(t, domain.Invalid("Validation failed", []string{"Status must be Active or Closed"}), err)
	})

	t.Run("Empty patch writes nothing", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), id).Return(stored(), nil)
		_, err := service.Update(context.Background(), actor, id, domain.ScholarshipPatch{})
		assert.NoError(t, err)
	})
}
