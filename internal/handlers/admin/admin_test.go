package admin

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

var admin = domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

func NewMock(t *testing.T) (*MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := New(service)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), admin)))
		})
	})
	r.Get("/api/admin/users", h.Users)
	r.Put("/api/admin/users/{id}/role", h.ChangeRole)
	r.Put("/api/admin/users/{id}/block", h.SetBlocked)
	r.Post("/api/admin/import/legacy", h.ImportLegacy)
	r.Get("/api/admin/audit/export", h.ExportAudit)
	r.Post("/api/admin/sfs/sync", h.SyncSFS)
	defer ctrl.Finish()
	return service, r
}

func TestUsers(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().Users(gomock.Any(), domain.UserFilter{Role: "applicant", Page: domain.Page{Page: 2, Limit: 10}}).
		Return(domain.NewPageResult([]domain.UserSummary{{User: domain.User{Email: "a@b.ca"}}}, 11, domain.Page{Page: 2, Limit: 10}), nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/users?role=applicant&page=2&limit=10", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_pages":2`)
}

func TestChangeRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Changed",
			body: `{"role":"finance"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().ChangeRole(gomock.Any(), admin, id, "finance").
					Return(&domain.RoleChange{Message: "Role updated from applicant to finance"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown role",
			body: `{"role":"wizard"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().ChangeRole(gomock.Any(), admin, id, "wizard").Return(nil, domain.BadRequest("Invalid role: wizard"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `{`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/admin/users/"+id.String()+"/role", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSetBlocked_Self(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().SetBlocked(gomock.Any(), admin, admin.ID, true).Return("", domain.BadRequest("Cannot block yourself"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/admin/users/"+admin.ID.String()+"/block", bytes.NewBufferString(`{"blocked":true}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cannot block yourself")
}

func TestImportLegacy(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().ImportLegacy(gomock.Any(), admin, gomock.Any(), "paper-2024.json").
		DoAndReturn(func(_ context.Context, _ domain.Actor, subs []domain.LegacySubmission, _ string) (*domain.ImportResult, error) {
			assert.Len(t, subs, 2)
			assert.Equal(t, "MERIT-01", subs[0].ScholarshipCode)
			return &domain.ImportResult{Imported: 1, Failed: 1, Total: 2,
				Errors: []domain.ImportRowError{{Email: "", Error: "Email is required"}}}, nil
		})

	body := `{"file_name":"paper-2024.json","submissions":[{"email":"a@b.ca","scholarship_code":"MERIT-01"},{"scholarship_code":"MERIT-01"}]}`
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/admin/import/legacy", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"failed":1`)
}

func TestExportAudit(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().ExportAudit(gomock.Any(), domain.AuditFilter{Action: "LOGIN", Page: domain.Page{Page: 1, Limit: domain.DefaultPageLimit}}).
		Return("audit_log_2025-03-01.csv", `"Timestamp","User"`, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/audit/export?action=LOGIN", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "audit_log_2025-03-01.csv")
	assert.Equal(t, `"Timestamp","User"`, rr.Body.String())
}

func TestSyncSFS(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().SyncSFS(gomock.Any(), admin).Return(&domain.SFSSyncResult{EnrollmentChecks: 4, EnrollmentConfirmed: 1}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/admin/sfs/sync", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"enrollment_checks":4`)
}
