package analytics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestDashboard(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Report",
			prepareMock: func(s *MockService) {
				s.EXPECT().Dashboard(gomock.Any()).Return(&domain.AnalyticsDashboard{
					KPIs: domain.KPIs{ApprovalRate: 75, TargetTurnaroundDays: domain.TargetTurnaroundDays},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Database down",
			prepareMock: func(s *MockService) {
				s.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			New(service).Dashboard(rr, httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusInternalServerError {
				assert.NotContains(t, rr.Body.String(), "connection refused")
			}
		})
	}
}
