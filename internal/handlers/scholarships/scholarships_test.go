package scholarships

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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ScholarshipHandler, *MockService, chi.Router) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	r := chi.NewRouter()
	r.Get("/api/scholarships", handler.List)
	r.Get("/api/scholarships/{id}", handler.Get)
	r.Post("/api/admin/scholarships", handler.Create)
	r.Put("/api/admin/scholarships/{id}", handler.Update)
	defer ctrl.Finish()
	return handler, service, r
}

func TestList(t *testing.T) {
	_, service, r := NewMock(t)
	service.EXPECT().List(gomock.Any(), domain.ScholarshipFilter{Category: "Indigenous", Search: "award"}).
		Return([]domain.Scholarship{{Code: "IND-1", Name: "Indigenous Career Award"}}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/scholarships?category=Indigenous&search=award", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "IND-1")
}

func TestGet(t *testing.T) {
	_, service, r := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name         string
		path         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			path: "/api/scholarships/" + id.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), id).Return(&domain.Scholarship{ID: id, Value: decimal.NewFromInt(1000)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed id",
			path:         "/api/scholarships/abc",
			prepareMock:  func() {},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Missing",
			path: "/api/scholarships/" + id.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), id).Return(nil, domain.ErrScholarshipNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdate(t *testing.T) {
	_, service, r := NewMock(t)
	id := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	service.EXPECT().Update(gomock.Any(), actor, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ uuid.UUID, p domain.ScholarshipPatch) (*domain.Scholarship, error) {
			assert.Equal(t, "Closed", *p.Status)
			assert.Nil(t, p.Name)
			return &domain.Scholarship{ID: id, Status: "Closed"}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/admin/scholarships/"+id.String(), bytes.NewBufferString(`{"status":"Closed"}`))
	req = req.WithContext(auth.WithActor(req.Context(), actor))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreate_Invalid(t *testing.T) {
	_, service, r := NewMock(t)
	service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Invalid("Validation failed", []string{"Code is required"}))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/admin/scholarships", bytes.NewBufferString(`{"name":"X"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Code is required")
}
