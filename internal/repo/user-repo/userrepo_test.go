package userrepo

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

var userCols = []string{
	"id", "email", "display_name", "role", "oauth_provider", "aca_id", "asn", "first_name", "last_name",
	"date_of_birth", "phone", "address_line1", "address_line2", "city", "province", "postal_code",
	"citizenship_status", "residency_status", "indigenous_status", "gender", "sin_encrypted",
	"profile_complete", "is_blocked", "created_at", "last_login",
}

func userValues(u domain.User) []any {
	return []any{
		u.ID, u.Email, u.DisplayName, u.Role, u.OAuthProvider, u.ACAID, u.ASN, u.FirstName, u.LastName,
		nil, u.Phone, u.AddressLine1, u.AddressLine2, u.City, u.Province, u.PostalCode,
		u.CitizenshipStatus, u.ResidencyStatus, u.IndigenousStatus, u.Gender, u.SINEncrypted,
		u.ProfileComplete, u.IsBlocked, u.CreatedAt, nil,
	}
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE id = $1")
	user := domain.User{
		ID:            uuid.New(),
		Email:         "jane@example.ca",
		DisplayName:   "Jane Doe",
		Role:          domain.RoleApplicant,
		OAuthProvider: "aca",
		FirstName:     "Jane",
		LastName:      "Doe",
		CreatedAt:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(user.ID).
					WillReturnRows(pgxmock.NewRows(userCols).AddRow(userValues(user)...))
			},
			result: &user,
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(user.ID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), user.ID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		INSERT INTO users (email, display_name, role, oauth_provider, aca_id, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`)
	id := uuid.New()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("new@example.ca", "New User", domain.RoleScholarshipStaff, "microsoft", "", "New", "User").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("new@example.ca", "New User", domain.RoleScholarshipStaff, "microsoft", "", "New", "User").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user := &domain.User{
				Email: "new@example.ca", DisplayName: "New User", Role: domain.RoleScholarshipStaff,
				OAuthProvider: "microsoft", FirstName: "New", LastName: "User",
			}
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, result.ID)
				assert.Equal(t, created, result.CreatedAt)
			}
		})
	}
}

func TestRepository_SetRole(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta("UPDATE users SET role = $2 WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Role changed",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, domain.RoleFinance).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, domain.RoleFinance).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetRole(context.Background(), id, domain.RoleFinance)
			assert.Equal(t, tt.expectErr, err)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	user := domain.User{ID: uuid.New(), Email: "a@b.ca", Role: domain.RoleApplicant, CreatedAt: time.Now().UTC()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users u WHERE (u.email ILIKE $1 OR u.display_name ILIKE $2) AND u.role = $3")).
		WithArgs("%a@b%", "%a@b%", "applicant").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM users u WHERE .+ LIMIT \$4 OFFSET \$5`).
		WithArgs("%a@b%", "%a@b%", "applicant", 25, 0).
		WillReturnRows(pgxmock.NewRows(append(userCols, "application_count")).AddRow(append(userValues(user), 3)...))

	users, total, err := repo.List(context.Background(), domain.UserFilter{Search: "a@b", Role: "applicant"})
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, users, 1)
	assert.Equal(t, 3, users[0].ApplicationCount)
	assert.Equal(t, user.ID, users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByRoles(t *testing.T) {
	repo, mock := NewMock(t)
	staff := domain.User{ID: uuid.New(), Email: "s@gov.ab.ca", Role: domain.RoleFinance, CreatedAt: time.Now().UTC()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE role = ANY($1) AND is_blocked = false ORDER BY display_name")).
		WithArgs([]string{"scholarship_staff", "finance"}).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(userValues(staff)...))

	users, err := repo.FindByRoles(context.Background(), []domain.Role{domain.RoleScholarshipStaff, domain.RoleFinance})
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{staff}, users)
}
