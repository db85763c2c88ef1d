package analyticsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	apps *MockAppRepo
	repo *MockRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		apps: NewMockAppRepo(ctrl),
		repo: NewMockRepo(ctrl),
	}
	defer ctrl.Finish()
	return New(m.apps, m.repo), m
}

func TestDashboard(t *testing.T) {
	t.Run("Assembled", func(t *testing.T) {
		service, m := NewMock(t)
		m.apps.EXPECT().Dashboard(gomock.Any()).Return(&domain.DashboardStats{
			Total: 20,
			ByStatus: map[domain.Status]int{
				domain.StatusDraft:       4,
				domain.StatusSubmitted:   6,
				domain.StatusApproved:    3,
				domain.StatusPaid:        3,
				domain.StatusRejected:    2,
				domain.StatusMissingInfo: 2,
			},
			AvgTurnaroundDays: 12.5,
			ByScholarship:     []domain.NamedCount{{Name: "Rutherford", Count: 16}},
		}, nil)
		m.repo.EXPECT().MonthlyTrends(gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().ProcessingTimes(gomock.Any()).Return([]domain.NamedCount{{Name: "0-7 days", Count: 8}}, nil)
		m.repo.EXPECT().PaymentStats(gomock.Any()).Return(&domain.PaymentStats{
			TotalBatches: 2, PaidBatches: 1, TotalDisbursed: decimal.RequireFromString("7500"),
		}, nil)

		d, err := service.Dashboard(context.Background())
		require.NoError(t, err)

		assert.Equal(t, domain.StatusSubmitted, d.StatusDistribution[0].Status)
		assert.Equal(t, 30, d.StatusDistribution[0].Percentage)
		assert.Equal(t, 16, d.KPIs.TotalApplications)
		assert.Equal(t, 6, d.KPIs.TotalApproved)
		assert.Equal(t, 75, d.KPIs.ApprovalRate)
		assert.Equal(t, 13, d.KPIs.MIRate)
		assert.Equal(t, 50, d.KPIs.PaymentCompletionRate)
		assert.Equal(t, 30, d.KPIs.TargetTurnaroundDays)
		assert.Equal(t, 12.5, d.KPIs.AvgTurnaroundDays)
		assert.NotNil(t, d.MonthlyTrends)
		assert.Len(t, d.TopScholarships, 1)
		assert.Equal(t, 1, d.PaymentStats.PaidBatches)
	})

	t.Run("Any query failure fails the report", func(t *testing.T) {
		service, m := NewMock(t)
		m.apps.EXPECT().Dashboard(gomock.Any()).Return(&domain.DashboardStats{ByStatus: map[domain.Status]int{}}, nil).AnyTimes()
		m.repo.EXPECT().MonthlyTrends(gomock.Any()).Return(nil, errors.New("database error")).AnyTimes()
		m.repo.EXPECT().ProcessingTimes(gomock.Any()).Return(nil, nil).AnyTimes()
		m.repo.EXPECT().PaymentStats(gomock.Any()).Return(&domain.PaymentStats{}, nil).AnyTimes()

		_, err := service.Dashboard(context.Background())
		assert.EqualError(t, err, "database error")
	})
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(3, 0))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 100, percent(5, 5))
}
