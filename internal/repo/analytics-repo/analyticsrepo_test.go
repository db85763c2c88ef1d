package analyticsrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_MonthlyTrends(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		want      []domain.MonthlyTrend
		expectErr bool
	}{
		{
			name: "Rows",
			mockSetup: func() {
				mock.ExpectQuery("FROM applications").
					WillReturnRows(pgxmock.NewRows([]string{"month", "total", "approved", "rejected", "missing_info"}).
						AddRow("2025-01", 10, 4, 2, 1).
						AddRow("2025-02", 3, 0, 0, 0))
			},
			want: []domain.MonthlyTrend{
				{Month: "2025-01", Total: 10, Approved: 4, Rejected: 2, MissingInfo: 1},
				{Month: "2025-02", Total: 3},
			},
		},
		{
			name: "No applications",
			mockSetup: func() {
				mock.ExpectQuery("FROM applications").
					WillReturnRows(pgxmock.NewRows([]string{"month", "total", "approved", "rejected", "missing_info"}))
			},
			want: []domain.MonthlyTrend{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("FROM applications").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.MonthlyTrends(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ProcessingTimes(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery("GROUP BY bucket, sort_order").
		WillReturnRows(pgxmock.NewRows([]string{"bucket", "count"}).AddRow("0-7 days", 5).AddRow("30+ days", 1))

	got, err := repo.ProcessingTimes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.NamedCount{{Name: "0-7 days", Count: 5}, {Name: "30+ days", Count: 1}}, got)
}

func TestRepository_PaymentStats(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Totals", func(t *testing.T) {
		mock.ExpectQuery("FROM payment_batches").
			WillReturnRows(pgxmock.NewRows([]string{"total", "paid", "sum"}).AddRow(4, 3, decimal.RequireFromString("12500.00")))

		got, err := repo.PaymentStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, got.TotalBatches)
		assert.Equal(t, 3, got.PaidBatches)
		assert.Equal(t, "12500.00", got.TotalDisbursed.StringFixed(2))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("FROM payment_batches").WillReturnError(errors.New("database error"))
		_, err := repo.PaymentStats(context.Background())
		assert.Error(t, err)
	})
}
