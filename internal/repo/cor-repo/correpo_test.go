package correpo

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
	"github.com/stretchr/testify/assert"
)

var cols = []string{
	"id", "application_id", "reference_number", "applicant_id", "institution_name", "institution_email",
	"requested_by", "requested_by_name", "response_token", "status", "applicant_name", "program",
	"enrollment_status", "year_of_study", "custom_message", "confirmed_by", "response_notes",
	"responded_at", "created_at", "days_open",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_FindOpenByToken(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("WHERE c.response_token = $1 AND c.status = 'Sent'")
	req := domain.CORRequest{
		ID: uuid.New(), ApplicationID: uuid.New(), ReferenceNumber: "AES-2025-00000A", ApplicantID: uuid.New(),
		InstitutionName: "NAIT", InstitutionEmail: "registrar@nait.ca", ResponseToken: "tok",
		Status: domain.CORRequestSent, ApplicantName: "Jane Doe", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DaysOpen: 3,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.CORRequest
	}{
		{
			name: "Open request",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("tok").WillReturnRows(pgxmock.NewRows(cols).AddRow(
					req.ID, req.ApplicationID, req.ReferenceNumber, req.ApplicantID, req.InstitutionName,
					req.InstitutionEmail, nil, "", req.ResponseToken, req.Status, req.ApplicantName, "", "", "",
					"", "", "", nil, req.CreatedAt, 3))
			},
			result: &req,
		},
		{
			name: "Answered or unknown token",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("tok").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("tok").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindOpenByToken(context.Background(), "tok")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Respond(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta("WHERE id = $1 AND status = 'Sent'")
	resp := domain.CORResponse{Status: domain.CORResponseConfirmed, ConfirmedBy: "Registrar", Notes: "ok"}

	mock.ExpectExec(query).WithArgs(id, "Confirmed", "Registrar", "ok").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Respond(context.Background(), id, resp))

	mock.ExpectExec(query).WithArgs(id, "Confirmed", "Registrar", "ok").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.Equal(t, domain.ErrCORTokenNotFound, repo.Respond(context.Background(), id, resp))
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM cor_requests c WHERE c.status = $1 AND c.institution_name ILIKE $2")).
		WithArgs("Sent", "%nait%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $3 OFFSET $4")).
		WithArgs("Sent", "%nait%", 10, 0).
		WillReturnRows(pgxmock.NewRows(cols))

	list, total, err := repo.List(context.Background(), domain.CORFilter{
		Status: "Sent", Institution: "nait", Page: domain.Page{Page: 1, Limit: 10},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
