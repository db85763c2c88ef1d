package scholarshiprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var cols = []string{
	"id", "code", "name", "type", "value", "deadline_start", "deadline_end", "payment_date",
	"eligibility_criteria", "required_documents", "selection_process", "max_awards", "category", "source_url",
	"status", "academic_year", "created_at", "updated_at",
}

func values(s domain.Scholarship) []any {
	return []any{
		s.ID, s.Code, s.Name, s.Type, s.Value, nil, s.DeadlineEnd, s.PaymentDate,
		s.EligibilityCriteria, s.RequiredDocuments, s.SelectionProcess, s.MaxAwards, s.Category, s.SourceURL,
		s.Status, s.AcademicYear, s.CreatedAt, s.UpdatedAt,
	}
}

func sample() domain.Scholarship {
	return domain.Scholarship{
		ID:                  uuid.New(),
		Code:                "AES-001",
		Name:                "Alexander Rutherford",
		Type:                domain.ScholarshipTypeOnline,
		Value:               decimal.RequireFromString("2500.00"),
		DeadlineEnd:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EligibilityCriteria: domain.EligibilityCriteria{SchemaVersion: 1, RequiresResidency: true},
		RequiredDocuments:   []string{"transcript"},
		Status:              domain.ScholarshipActive,
		AcademicYear:        "2024-2025",
	}
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	s := sample()

	tests := []struct {
		name      string
		filter    domain.ScholarshipFilter
		mockSetup func()
		expectErr bool
		result    []domain.Scholarship
	}{
		{
			name:   "Filtered by type and search",
			filter: domain.ScholarshipFilter{Type: domain.ScholarshipTypeOnline, Search: "ruth"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT "+scholarshipColumns+" FROM scholarships WHERE type = $1 AND (name ILIKE $2 OR code ILIKE $3) ORDER BY deadline_end ASC, name ASC")).
					WithArgs(domain.ScholarshipTypeOnline, "%ruth%", "%ruth%").
					WillReturnRows(pgxmock.NewRows(cols).AddRow(values(s)...))
			},
			result: []domain.Scholarship{s},
		},
		{
			name:   "Database error",
			filter: domain.ScholarshipFilter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + scholarshipColumns + " FROM scholarships ORDER BY")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	s := sample()
	query := regexp.QuoteMeta("SELECT " + scholarshipColumns + " FROM scholarships WHERE id = $1")

	mock.ExpectQuery(query).WithArgs(s.ID).WillReturnRows(pgxmock.NewRows(cols).AddRow(values(s)...))
	found, err := repo.FindByID(context.Background(), s.ID)
	assert.NoError(t, err)
	assert.Equal(t, &s, found)

	mock.ExpectQuery(query).WithArgs(s.ID).WillReturnError(pgx.ErrNoRows)
	found, err = repo.FindByID(context.Background(), s.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	s := sample()
	updated := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE scholarships")).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(updated))
	assert.NoError(t, repo.Update(context.Background(), &s))
	assert.Equal(t, updated, s.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE scholarships")).WillReturnError(pgx.ErrNoRows)
	assert.Equal(t, domain.ErrScholarshipNotFound, repo.Update(context.Background(), &s))
}
