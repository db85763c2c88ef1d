package domain

import "github.com/shopspring/decimal"

// TargetTurnaroundDays is the published service standard for decisions.
const TargetTurnaroundDays = 30

type StatusShare struct {
	Status     Status `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type KPIs struct {
	TotalApplications     int     `json:"total_applications"`
	ApprovalRate          int     `json:"approval_rate"`
	MIRate                int     `json:"mi_rate"`
	PaymentCompletionRate int     `json:"payment_completion_rate"`
	AvgTurnaroundDays     float64 `json:"avg_turnaround_days"`
	TargetTurnaroundDays  int     `json:"target_turnaround_days"`
	TotalApproved         int     `json:"total_approved"`
	TotalRejected         int     `json:"total_rejected"`
	TotalMI               int     `json:"total_mi"`
	TotalPaid             int     `json:"total_paid"`
}

type MonthlyTrend struct {
	Month       string `json:"month"`
	Total       int    `json:"total"`
	Approved    int    `json:"approved"`
	Rejected    int    `json:"rejected"`
	MissingInfo int    `json:"missing_info"`
}

type PaymentStats struct {
	TotalBatches   int             `json:"total_batches"`
	PaidBatches    int             `json:"paid_batches"`
	TotalDisbursed decimal.Decimal `json:"total_disbursed"`
}

type AnalyticsDashboard struct {
	StatusDistribution []StatusShare  `json:"status_distribution"`
	KPIs               KPIs           `json:"kpis"`
	MonthlyTrends      []MonthlyTrend `json:"monthly_trends"`
	TopScholarships    []NamedCount   `json:"top_scholarships"`
	ProcessingTimes    []NamedCount   `json:"processing_times"`
	PaymentStats       PaymentStats   `json:"payment_stats"`
}
