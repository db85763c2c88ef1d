package analyticsservice

import (
	"context"
	"sort"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"golang.org/x/sync/errgroup"
)

type AppRepo interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type Repo interface {
	MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	ProcessingTimes(ctx context.Context) ([]domain.NamedCount, error)
	PaymentStats(ctx context.Context) (*domain.PaymentStats, error)
}

type Service struct {
	apps AppRepo
	repo Repo
}

func New(apps AppRepo, repo Repo) *Service {
	return &Service{apps: apps, repo: repo}
}

// Dashboard runs the report queries concurrently; the first failure
// cancels the rest.
func (s *Service) Dashboard(ctx context.Context) (*domain.AnalyticsDashboard, error) {
	var (
		stats    *domain.DashboardStats
		trends   []domain.MonthlyTrend
		times    []domain.NamedCount
		payments *domain.PaymentStats
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = s.apps.Dashboard(ctx)
		return err
	})
	g.Go(func() (err error) {
		trends, err = s.repo.MonthlyTrends(ctx)
		return err
	})
	g.Go(func() (err error) {
		times, err = s.repo.ProcessingTimes(ctx)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.repo.PaymentStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &domain.AnalyticsDashboard{
		StatusDistribution: distribution(stats.ByStatus),
		KPIs:               kpis(stats),
		MonthlyTrends:      nonNil(trends),
		TopScholarships:    nonNil(stats.ByScholarship),
		ProcessingTimes:    nonNil(times),
	}
	if payments != nil {
		d.PaymentStats = *payments
	}
	return d, nil
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (part*200 + whole) / (whole * 2)
}

func distribution(byStatus map[domain.Status]int) []domain.StatusShare {
	total := 0
	for _, n := range byStatus {
		total += n
	}
	list := make([]domain.StatusShare, 0, len(byStatus))
	for status, n := range byStatus {
		list = append(list, domain.StatusShare{Status: status, Count: n, Percentage: percent(n, total)})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Status < list[j].Status
	})
	return list
}

func kpis(stats *domain.DashboardStats) domain.KPIs {
	by := stats.ByStatus
	approved := by[domain.StatusApproved] + by[domain.StatusPendingPayment] + by[domain.StatusPaid]
	rejected := by[domain.StatusRejected]
	total := stats.Total - by[domain.StatusDraft]
	return domain.KPIs{
		TotalApplications:     total,
		ApprovalRate:          percent(approved, approved+rejected),
		MIRate:                percent(by[domain.StatusMissingInfo], total),
		PaymentCompletionRate: percent(by[domain.StatusPaid], approved),
		AvgTurnaroundDays:     stats.AvgTurnaroundDays,
		TargetTurnaroundDays:  domain.TargetTurnaroundDays,
		TotalApproved:         approved,
		TotalRejected:         rejected,
		TotalMI:               by[domain.StatusMissingInfo],
		TotalPaid:             by[domain.StatusPaid],
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
