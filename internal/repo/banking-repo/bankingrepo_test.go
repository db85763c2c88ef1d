package bankingrepo

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

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	query := regexp.QuoteMeta("FROM banking_info WHERE user_id = $1")
	b := domain.BankingInfo{
		ID: uuid.New(), UserID: userID, InstitutionNumber: "001", TransitNumber: "12345",
		AccountNumber: "1234567", AuthorizationSigned: true,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.BankingInfo
	}{
		{
			name: "Found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{
					"id", "user_id", "institution_number", "transit_number", "account_number", "authorization_signed", "created_at", "updated_at",
				}).AddRow(b.ID, b.UserID, b.InstitutionNumber, b.TransitNumber, b.AccountNumber, true, b.CreatedAt, b.UpdatedAt))
			},
			result: &b,
		},
		{
			name: "Missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_SharedWith(t *testing.T) {
	repo, mock := NewMock(t)
	b := &domain.BankingInfo{UserID: uuid.New(), InstitutionNumber: "001", TransitNumber: "12345", AccountNumber: "999"}
	other := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("AND user_id <> $4")).
		WithArgs("001", "12345", "999", b.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(other))

	ids, err := repo.SharedWith(context.Background(), b)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{other}, ids)
}

func TestRepository_Duplicates(t *testing.T) {
	repo, mock := NewMock(t)
	u1, u2 := uuid.New(), uuid.New()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("AND b1.user_id < b2.user_id")).
		WillReturnRows(pgxmock.NewRows([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}).
			AddRow(u1, "One", "one@x.ca", u2, "Two", "two@x.ca", "001", "12345", "000123456789", created, created))

	list, err := repo.Duplicates(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "****6789", list[0].AccountMasked)
	assert.Equal(t, u1, list[0].User1ID)
	assert.Equal(t, u2, list[0].User2ID)
}
