package applicationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var appCols = []string{
	"id", "reference_number", "scholarship_id", "applicant_id", "status", "submitted_at",
	"personal_info", "postsecondary_info", "high_school_info", "additional_info", "academic_marks",
	"citizenship_status", "residency_status", "indigenous_status", "gender", "essay",
	"declaration_signed", "privacy_consent", "cor_status", "cor_confirmed_date",
	"reviewer_id", "review_notes", "decision", "decision_date", "created_at", "updated_at",
}

func appValues(a domain.Application) []any {
	return []any{
		a.ID, a.ReferenceNumber, a.ScholarshipID, a.ApplicantID, a.Status, nil,
		a.PersonalInfo, a.PostsecondaryInfo, a.HighSchoolInfo, a.AdditionalInfo, a.AcademicMarks,
		a.CitizenshipStatus, a.ResidencyStatus, a.IndigenousStatus, a.Gender, a.Essay,
		a.DeclarationSigned, a.PrivacyConsent, a.CORStatus, nil,
		nil, a.ReviewNotes, a.Decision, nil, a.CreatedAt, a.UpdatedAt,
	}
}

func draft() domain.Application {
	return domain.Application{
		ID:                uuid.New(),
		ReferenceNumber:   "AES-2025-ABC123",
		ScholarshipID:     uuid.New(),
		ApplicantID:       uuid.New(),
		Status:            domain.StatusDraft,
		PersonalInfo:      domain.PersonalInfo{SchemaVersion: 1, FirstName: "Jane", LastName: "Doe"},
		PostsecondaryInfo: domain.PostsecondaryInfo{SchemaVersion: 1, InstitutionName: "University of Alberta"},
		CitizenshipStatus: "Canadian Citizen",
		CORStatus:         domain.CORNone,
		CreatedAt:         time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	insert := regexp.QuoteMeta("INSERT INTO applications")
	id := uuid.New()
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Draft created",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))
			},
		},
		{
			name: "Concurrent duplicate hits the partial unique index",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_applications_active"})
			},
			expectErr: domain.Conflict("You have already applied for this scholarship"),
		},
		{
			name: "Other database error",
			mockSetup: func() {
				mock.ExpectQuery(insert).WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			a := draft()
			created, err := repo.Create(context.Background(), &a)
			if tt.expectErr != nil {
				assert.Equal(t, tt.expectErr.Error(), err.Error())
				assert.Equal(t, domain.StatusOf(tt.expectErr), domain.StatusOf(err))
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, id, created.ID)
			assert.Equal(t, now, created.CreatedAt)
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	a := draft()
	query := regexp.QuoteMeta("WHERE a.applicant_id = $1 AND a.scholarship_id = $2 AND a.status <> 'Withdrawn'")

	mock.ExpectQuery(query).WithArgs(a.ApplicantID, a.ScholarshipID).
		WillReturnRows(pgxmock.NewRows(appCols).AddRow(appValues(a)...))
	found, err := repo.FindActive(context.Background(), a.ApplicantID, a.ScholarshipID)
	assert.NoError(t, err)
	assert.Equal(t, &a, found)

	mock.ExpectQuery(query).WithArgs(a.ApplicantID, a.ScholarshipID).WillReturnError(pgx.ErrNoRows)
	found, err = repo.FindActive(context.Background(), a.ApplicantID, a.ScholarshipID)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_ChangeStatus(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta("UPDATE applications SET status = $3")

	tests := []struct {
		name      string
		rows      int64
		dbErr     error
		expectErr error
	}{
		{name: "Status moved", rows: 1},
		{name: "Status changed underneath", rows: 0, expectErr: domain.ErrStatusChanged},
		{name: "Database error", dbErr: errors.New("database error"), expectErr: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := mock.ExpectExec(query).WithArgs(id, domain.StatusSubmitted, domain.StatusApproved,
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg())
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.rows))
			}

			decision := domain.DecisionApproved
			now := time.Now()
			err := repo.ChangeStatus(context.Background(), domain.StatusChange{
				ID: id, From: domain.StatusSubmitted, To: domain.StatusApproved,
				Decision: &decision, DecisionDate: &now,
			})
			assert.Equal(t, tt.expectErr, err)
		})
	}
}

func TestRepository_SaveDraft(t *testing.T) {
	repo, mock := NewMock(t)
	a := draft()
	query := regexp.QuoteMeta("WHERE id = $1 AND status = 'Draft'")

	mock.ExpectExec(query).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SaveDraft(context.Background(), &a))

	mock.ExpectExec(query).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.Equal(t, domain.ErrStatusChanged, repo.SaveDraft(context.Background(), &a))
}

func TestRepository_AppendNote(t *testing.T) {
	repo, mock := NewMock(t)
	id, author := uuid.New(), uuid.New()
	query := regexp.QuoteMeta("reviewer_id = COALESCE(reviewer_id, $3)")

	mock.ExpectExec(query).WithArgs(id, "[2025-01-01T00:00:00Z] ok", author).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.AppendNote(context.Background(), id, "[2025-01-01T00:00:00Z] ok", author))

	mock.ExpectExec(query).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.Equal(t, domain.ErrApplicationNotFound, repo.AppendNote(context.Background(), id, "x", author))
}

func TestRepository_Queue(t *testing.T) {
	repo, mock := NewMock(t)
	scholarshipID := uuid.New()
	summary := domain.ApplicationSummary{
		ID:               uuid.New(),
		ReferenceNumber:  "AES-2025-0000AA",
		Status:           domain.StatusSubmitted,
		ScholarshipID:    scholarshipID,
		ScholarshipName:  "Rutherford",
		ScholarshipType:  domain.ScholarshipTypeOnline,
		ScholarshipValue: decimal.RequireFromString("1000"),
		DeadlineEnd:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ApplicantID:      uuid.New(),
		ApplicantName:    "Jane Doe",
		ApplicantEmail:   "jane@example.ca",
		CORStatus:        domain.CORPending,
		CreatedAt:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		DaysInQueue:      4,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM applications a")).
		WithArgs("Submitted", scholarshipID, "%jane%", "%jane%", "%jane%", "%jane%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(26))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.status <> 'Draft' AND a.status = $1 AND a.scholarship_id = $2")+
		`.+ORDER BY s\.name DESC NULLS LAST LIMIT \$7 OFFSET \$8`).
		WithArgs("Submitted", scholarshipID, "%jane%", "%jane%", "%jane%", "%jane%", 25, 25).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "reference_number", "status", "scholarship_id", "name", "type", "value", "deadline_end",
			"applicant_id", "applicant_name", "email", "reviewer_id", "reviewer_name", "cor_status", "decision",
			"submitted_at", "created_at", "updated_at", "days_in_queue",
		}).AddRow(
			summary.ID, summary.ReferenceNumber, summary.Status, summary.ScholarshipID, summary.ScholarshipName,
			summary.ScholarshipType, summary.ScholarshipValue, summary.DeadlineEnd, summary.ApplicantID,
			summary.ApplicantName, summary.ApplicantEmail, nil, "", summary.CORStatus, "",
			nil, summary.CreatedAt, summary.UpdatedAt, 4,
		))

	list, total, err := repo.Queue(context.Background(), domain.QueueFilter{
		Status:        "Submitted",
		ScholarshipID: &scholarshipID,
		Search:        "jane",
		SortBy:        "scholarship_name",
		SortDesc:      true,
		Page:          domain.Page{Page: 2},
	})
	assert.NoError(t, err)
	assert.Equal(t, 26, total)
	assert.Equal(t, []domain.ApplicationSummary{summary}, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Dashboard(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) FROM applications GROUP BY status")).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow(domain.StatusSubmitted, 3).
			AddRow(domain.StatusUnderReview, 2).
			AddRow(domain.StatusApproved, 5))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(")).
		WillReturnRows(pgxmock.NewRows([]string{"avg"}).AddRow(4.5))
	mock.ExpectQuery(regexp.QuoteMeta("FROM scholarships s")).
		WillReturnRows(pgxmock.NewRows([]string{"name", "count"}).AddRow("Rutherford", 10))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users u")).
		WillReturnRows(pgxmock.NewRows([]string{"name", "count"}))

	stats, err := repo.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 5, stats.PendingReview)
	assert.Equal(t, 4.5, stats.AvgTurnaroundDays)
	assert.Equal(t, []domain.NamedCount{{Name: "Rutherford", Count: 10}}, stats.ByScholarship)
	assert.Empty(t, stats.StaffWorkload)
	assert.NoError(t, mock.ExpectationsWereMet())
}
