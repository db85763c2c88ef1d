package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID, appID, id := uuid.New(), uuid.New(), uuid.New()
	sent := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO notifications (user_id, application_id, type, title, message)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Stored",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, &appID, domain.NotifySubmitted, "Application Submitted", "msg").
					WillReturnRows(pgxmock.NewRows([]string{"id", "sent_at"}).AddRow(id, sent))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			n := &domain.Notification{
				UserID: userID, ApplicationID: &appID, Type: domain.NotifySubmitted,
				Title: "Application Submitted", Message: "msg",
			}
			err := repo.Create(context.Background(), n)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, id, n.ID)
			assert.Equal(t, sent, n.SentAt)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	n := domain.Notification{ID: uuid.New(), UserID: userID, Type: "submitted", Title: "t", Message: "m", SentAt: time.Now().UTC()}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND ($2 = false OR read = false)")).
		WithArgs(userID, true, 50, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "application_id", "type", "title", "message", "read", "sent_at"}).
			AddRow(n.ID, n.UserID, nil, n.Type, n.Title, n.Message, false, n.SentAt))

	list, err := repo.List(context.Background(), userID, domain.NotificationFilter{UnreadOnly: true})
	assert.NoError(t, err)
	assert.Equal(t, []domain.Notification{n}, list)
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)
	userID, id := uuid.New(), uuid.New()
	query := regexp.QuoteMeta("UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2")

	mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.MarkRead(context.Background(), userID, id)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.MarkRead(context.Background(), userID, id)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = true WHERE user_id = $1 AND read = false")).
		WithArgs(userID).WillReturnResult(pgxmock.NewResult("UPDATE", 4))
	n, err := repo.MarkAllRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
