package lookuprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
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

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		table     string
		mockSetup func()
		expectErr error
		result    []domain.Lookup
	}{
		{
			name:  "Provinces",
			table: "provinces",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT code, label FROM provinces ORDER BY sort_order, label")).
					WillReturnRows(pgxmock.NewRows([]string{"code", "label"}).AddRow("AB", "Alberta"))
			},
			result: []domain.Lookup{{Code: "AB", Label: "Alberta"}},
		},
		{
			name:      "Table outside the whitelist",
			table:     "users",
			mockSetup: func() {},
			expectErr: domain.BadRequest("Invalid lookup table"),
		},
		{
			name:  "Database error",
			table: "document_types",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM document_types")).WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			list, err := repo.List(context.Background(), tt.table)
			assert.Equal(t, tt.expectErr, err)
			assert.Equal(t, tt.result, list)
		})
	}
}

func TestRepository_Templates(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE active = true AND ($1 = '' OR type = $1)")).
		WithArgs("mi_letter").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type", "subject", "body_template"}).
			AddRow(id, "MI", "mi_letter", "Missing information", "Dear {{name}}"))

	list, err := repo.Templates(context.Background(), "mi_letter")
	assert.NoError(t, err)
	assert.Equal(t, []domain.CorrespondenceTemplate{{ID: id, Name: "MI", Type: "mi_letter", Subject: "Missing information", BodyTemplate: "Dear {{name}}"}}, list)
}
