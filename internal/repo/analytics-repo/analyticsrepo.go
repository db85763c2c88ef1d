package analyticsrepo

import (
	"context"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// MonthlyTrends covers applications created over the last twelve months.
func (r *Repository) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	query := `
		SELECT TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS month,
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('Approved', 'Paid', 'Pending Payment')),
			COUNT(*) FILTER (WHERE status = 'Rejected'),
			COUNT(*) FILTER (WHERE status = 'Missing Info')
		FROM applications
		WHERE created_at >= NOW() - INTERVAL '12 months'
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't load monthly trends", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.MonthlyTrend{}
	for rows.Next() {
		var m domain.MonthlyTrend
		if err := rows.Scan(&m.Month, &m.Total, &m.Approved, &m.Rejected, &m.MissingInfo); err != nil {
			zap.L().Error("can't scan monthly trend", zap.Error(err))
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ProcessingTimes buckets decided applications by days from submission.
func (r *Repository) ProcessingTimes(ctx context.Context) ([]domain.NamedCount, error) {
	query := `
		SELECT bucket, COUNT(*)
		FROM (
			SELECT CASE
					WHEN days <= 7 THEN '0-7 days'
					WHEN days <= 14 THEN '8-14 days'
					WHEN days <= 30 THEN '15-30 days'
					ELSE '30+ days'
				END AS bucket,
				CASE
					WHEN days <= 7 THEN 1
					WHEN days <= 14 THEN 2
					WHEN days <= 30 THEN 3
					ELSE 4
				END AS sort_order
			FROM (
				SELECT EXTRACT(EPOCH FROM (decision_date - submitted_at)) / 86400 AS days
				FROM applications
				WHERE decision_date IS NOT NULL AND submitted_at IS NOT NULL
			) d
		) b
		GROUP BY bucket, sort_order
		ORDER BY sort_order
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't load processing times", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.NamedCount{}
	for rows.Next() {
		var c domain.NamedCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			zap.L().Error("can't scan processing time", zap.Error(err))
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *Repository) PaymentStats(ctx context.Context) (*domain.PaymentStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Paid'),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'Paid'), 0)
		FROM payment_batches
	`
	var s domain.PaymentStats
	if err := r.db.QueryRow(ctx, query).Scan(&s.TotalBatches, &s.PaidBatches, &s.TotalDisbursed); err != nil {
		zap.L().Error("can't load payment stats", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
