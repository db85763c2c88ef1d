package payments

import (
	"bytes"
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

var finance = domain.Actor{ID: uuid.New(), Role: domain.RoleFinance}

func NewMock(t *testing.T) (*MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := New(service)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), finance)))
		})
	})
	r.Post("/api/payments/batch", h.CreateBatch)
	r.Post("/api/payments/batches/{id}/confirm", h.ConfirmBatch)
	r.Get("/api/payments/batches/{id}/file", h.File)
	r.Get("/api/payments/batches/{id}/workbook", h.Workbook)
	defer ctrl.Finish()
	return service, r
}

func TestCreateBatch(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	body := `{"application_ids":["` + a.String() + `","` + b.String() + `"]}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
		contains     string
	}{
		{
			name: "Created",
			body: body,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateBatch(gomock.Any(), finance, []uuid.UUID{a, b}).Return(&domain.BatchResult{
					BatchNumber: "PAY-20250301-101500",
					TotalAmount: decimal.NewFromInt(2500),
				}, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     "PAY-20250301-101500",
		},
		{
			name: "Rejected as a whole",
			body: body,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateBatch(gomock.Any(), finance, gomock.Any()).
					Return(nil, domain.Invalid("1 application(s) cannot be paid", []string{"AES-1 is missing banking info"}))
			},
			expectedCode: http.StatusBadRequest,
			contains:     "missing banking info",
		},
		{
			name:         "Malformed body",
			body:         `{"application_ids":"x"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/payments/batch", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestConfirmBatch(t *testing.T) {
	service, r := NewMock(t)
	id := uuid.New()
	service.EXPECT().ConfirmBatch(gomock.Any(), finance, id).Return(3, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/payments/batches/"+id.String()+"/confirm", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "3 payments marked as Paid")
}

func TestDownloads(t *testing.T) {
	id := uuid.New()

	t.Run("Settlement file", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().File(gomock.Any(), id).Return("payment_batch_PAY_20250301_101500.1gx", "H|...", nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/payments/batches/"+id.String()+"/file", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `attachment; filename="payment_batch_PAY_20250301_101500.1gx"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "H|...", rr.Body.String())
	})

	t.Run("Workbook", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().Workbook(gomock.Any(), id).Return("payment_batch_PAY-1.xlsx", []byte("PK"), nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/payments/batches/"+id.String()+"/workbook", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
	})

	t.Run("Unknown batch", func(t *testing.T) {
		service, r := NewMock(t)
		service.EXPECT().File(gomock.Any(), id).Return("", "", domain.ErrBatchNotFound)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/payments/batches/"+id.String()+"/file", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
