package cor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var staff = domain.Actor{ID: uuid.New(), Role: domain.RoleScholarshipStaff}

func NewMock(t *testing.T) (*MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := New(service)

	r := chi.NewRouter()
	r.Get("/api/cor/respond/{token}", h.Lookup)
	r.Post("/api/cor/respond/{token}", h.Respond)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), staff)))
			})
		})
		r.Post("/api/cor/check/{id}", h.Check)
		r.Post("/api/cor/request/{id}", h.Request)
		r.Get("/api/cor/all", h.List)
	})
	defer ctrl.Finish()
	return service, r
}

func TestRespond(t *testing.T) {
	appID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Confirmed",
			body: `{"status":"Confirmed","confirmed_by":"Registrar"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Respond(gomock.Any(), "tok123", domain.CORResponse{Status: "Confirmed", ConfirmedBy: "Registrar"}).
					Return(&domain.CORResponseResult{
						Message:           "COR response recorded: Confirmed",
						ApplicationStatus: domain.CORConfirmed,
						ApplicationID:     appID,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Token already used",
			body: `{"status":"Confirmed"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Respond(gomock.Any(), "tok123", gomock.Any()).Return(nil, domain.ErrCORTokenNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Unknown answer",
			body: `{"status":"Maybe"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().Respond(gomock.Any(), "tok123", gomock.Any()).
					Return(nil, domain.BadRequest("Invalid status. Must be: Confirmed, Not Confirmed, or Unable to Confirm"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `nope`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/cor/respond/tok123", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestLookup_HidesToken(t *testing.T) {
	service, r := NewMock(t)
	service.EXPECT().Lookup(gomock.Any(), "tok123").Return(&domain.CORRequest{
		InstitutionName: "University of Alberta",
		ResponseToken:   "tok123",
		Status:          domain.CORRequestSent,
	}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/cor/respond/tok123", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "tok123")
}

func TestRequest(t *testing.T) {
	id := uuid.New()

	t.Run("Default institution email", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().Request(gomock.Any(), staff, id, domain.CORRequestInput{}).
			Return(&domain.CORSent{Status: domain.CORRequested, InstitutionMail: "registrar@universityofalberta.ca"}, nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/cor/request/"+id.String(), nil))
		assert.Equal(t, http.StatusCreated, rr.Code)

		var sent domain.CORSent
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&sent))
		assert.Equal(t, domain.CORRequested, sent.Status)
	})

	t.Run("Already confirmed", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().Request(gomock.Any(), staff, id, domain.CORRequestInput{InstitutionEmail: "reg@mru.ca"}).
			Return(nil, domain.BadRequest("COR is already confirmed"))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/cor/request/"+id.String(),
			bytes.NewBufferString(`{"institution_email":"reg@mru.ca"}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCheckAndList(t *testing.T) {
	service, r := NewMock(t)
	id := uuid.New()
	service.EXPECT().Check(gomock.Any(), staff, id).
		Return(&domain.CORCheckResult{Status: domain.CORConfirmed, Source: "SFS"}, nil)
	service.EXPECT().List(gomock.Any(), domain.CORFilter{Status: "Sent", Page: domain.Page{Page: 1, Limit: domain.DefaultPageLimit}}).
		Return(domain.NewPageResult[domain.CORRequest](nil, 0, domain.Page{}), nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/cor/check/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/cor/all?status=Sent", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
