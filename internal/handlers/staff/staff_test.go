package staff

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var reviewer = domain.Actor{ID: uuid.New(), Role: domain.RoleScholarshipStaff}

func NewMock(t *testing.T) (*MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := New(service)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), reviewer)))
		})
	})
	r.Get("/api/staff/queue", h.Queue)
	r.Post("/api/staff/applications/{id}/approve", h.Approve)
	r.Post("/api/staff/applications/{id}/reject", h.Reject)
	r.Post("/api/staff/applications/{id}/notes", h.AddNote)
	r.Post("/api/staff/bulk-assign", h.BulkAssign)
	defer ctrl.Finish()
	return service, r
}

func TestQueue(t *testing.T) {
	service, r := NewMock(t)
	schID := uuid.New()
	service.EXPECT().Queue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.QueueFilter) (domain.PageResult[domain.ApplicationSummary], error) {
			assert.Equal(t, "Submitted", f.Status)
			assert.Equal(t, &schID, f.ScholarshipID)
			assert.Nil(t, f.ReviewerID)
			assert.Equal(t, "submitted_at", f.SortBy)
			assert.False(t, f.SortDesc)
			assert.Equal(t, 2, f.Page.Page)
			return domain.NewPageResult[domain.ApplicationSummary](nil, 0, f.Page), nil
		})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
		"/api/staff/queue?status=Submitted&scholarship_id="+schID.String()+"&sort_by=submitted_at&sort_order=asc&page=2", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
}

func TestDecide(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		path         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Approve without body",
			path: "/approve",
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), reviewer, id, domain.Decision{}).
					Return(&domain.Application{Status: domain.StatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject with reasons",
			path: "/reject",
			body: `{"notes":"late","reasons":["Deadline missed"]}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Reject(gomock.Any(), reviewer, id, domain.Decision{Notes: "late", Reasons: []string{"Deadline missed"}}).
					Return(&domain.Application{Status: domain.StatusRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid transition",
			path: "/approve",
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), reviewer, id, gomock.Any()).
					Return(nil, domain.BadRequest("Cannot approve application in Draft status"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Concurrent change",
			path: "/approve",
			prepareMock: func(s *MockService) {
				s.EXPECT().Approve(gomock.Any(), reviewer, id, gomock.Any()).Return(nil, domain.ErrStatusChanged)
			},
			expectedCode: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := NewMock(t)
			tt.prepareMock(service)

			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = &bytes.Buffer{}
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/staff/applications/"+id.String()+tt.path, body))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddNote(t *testing.T) {
	service, r := NewMock(t)
	id := uuid.New()
	service.EXPECT().AddNote(gomock.Any(), reviewer, id, "Transcript verified").Return(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/staff/applications/"+id.String()+"/notes",
		bytes.NewBufferString(`{"notes":"Transcript verified"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBulkAssign(t *testing.T) {
	t.Run("Missing reviewer", func(t *testing.T) {
		_, r := NewMock(t)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/staff/bulk-assign",
			bytes.NewBufferString(`{"application_ids":["`+uuid.NewString()+`"]}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Per-application outcomes", func(t *testing.T) {
		service, r := NewMock(t)
		a, b, rev := uuid.New(), uuid.New(), uuid.New()
		service.EXPECT().BulkAssign(gomock.Any(), reviewer, []uuid.UUID{a, b}, rev).Return([]domain.AssignOutcome{
			{ApplicationID: a, Status: domain.StatusUnderReview},
			{ApplicationID: b, Error: "Application not found"},
		}, nil)

		body := `{"application_ids":["` + a.String() + `","` + b.String() + `"],"reviewer_id":"` + rev.String() + `"}`
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/staff/bulk-assign", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Application not found")
	})
}
