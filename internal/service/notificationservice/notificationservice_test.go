package notificationservice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	defer ctrl.Finish()
	return New(repo), repo
}

func TestService_List(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		filter    domain.NotificationFilter
		mockSetup func(repo *MockRepo)
		wantLen   int
		wantErr   bool
	}{
		{
			name:   "Defaults applied",
			filter: domain.NotificationFilter{},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().List(gomock.Any(), userID, domain.NotificationFilter{Limit: 50}).Return(nil, nil)
				repo.EXPECT().UnreadCount(gomock.Any(), userID).Return(0, nil)
			},
			wantLen: 0,
		},
		{
			name:   "Limit clamped and unread only",
			filter: domain.NotificationFilter{UnreadOnly: true, Limit: 1000, Offset: -3},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().List(gomock.Any(), userID, domain.NotificationFilter{UnreadOnly: true, Limit: 200}).
					Return([]domain.Notification{{Title: "Application Submitted"}}, nil)
				repo.EXPECT().UnreadCount(gomock.Any(), userID).Return(1, nil)
			},
			wantLen: 1,
		},
		{
			name: "Repository error",
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().List(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.mockSetup(repo)

			inbox, err := service.List(context.Background(), userID, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, inbox.Notifications)
			assert.Len(t, inbox.Notifications, tt.wantLen)
			assert.Equal(t, tt.wantLen, inbox.UnreadCount)
		})
	}
}

func TestService_MarkRead(t *testing.T) {
	userID, id := uuid.New(), uuid.New()

	t.Run("Marked", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().MarkRead(gomock.Any(), userID, id).Return(true, nil)
		assert.NoError(t, service.MarkRead(context.Background(), userID, id))
	})

	t.Run("Not owned", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().MarkRead(gomock.Any(), userID, id).Return(false, nil)
		err := service.MarkRead(context.Background(), userID, id)
		assert.Equal(t, http.StatusNotFound, domain.StatusOf(err))
	})
}

func TestService_MarkAllRead(t *testing.T) {
	userID := uuid.New()
	service, repo := NewMock(t)
	repo.EXPECT().MarkAllRead(gomock.Any(), userID).Return(int64(4), nil)

	n, err := service.MarkAllRead(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
