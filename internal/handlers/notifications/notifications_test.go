package notifications

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/service/notificationservice"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var user = domain.Actor{ID: uuid.New(), Role: domain.RoleApplicant}

func NewMock(t *testing.T) (*MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := New(service)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), user)))
		})
	})
	r.Get("/api/notifications", h.List)
	r.Get("/api/notifications/unread-count", h.UnreadCount)
	r.Put("/api/notifications/read-all", h.MarkAllRead)
	r.Put("/api/notifications/{id}/read", h.MarkRead)
	defer ctrl.Finish()
	return service, r
}

func TestList(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().List(gomock.Any(), user.ID, domain.NotificationFilter{UnreadOnly: true, Limit: 5, Offset: 10}).
		Return(&notificationservice.Inbox{Notifications: []domain.Notification{}, UnreadCount: 2}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notifications?unread=true&limit=5&offset=10", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"unread_count":2`)
}

func TestUnreadCount(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().UnreadCount(gomock.Any(), user.ID).Return(7, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notifications/unread-count", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":7}`, rr.Body.String())
}

func TestMarkRead(t *testing.T) {
	id := uuid.New()

	t.Run("Marked", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().MarkRead(gomock.Any(), user.ID, id).Return(nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/notifications/"+id.String()+"/read", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Someone else's", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().MarkRead(gomock.Any(), user.ID, id).Return(domain.NotFound("Notification not found"))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/notifications/"+id.String()+"/read", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("All", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().MarkAllRead(gomock.Any(), user.ID).Return(int64(3), nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/notifications/read-all", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
