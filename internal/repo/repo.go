package repo

import (
	"github.com/GlebRadaev/aescholar/internal/pg"
	analyticsrepo "github.com/GlebRadaev/aescholar/internal/repo/analytics-repo"
	applicationrepo "github.com/GlebRadaev/aescholar/internal/repo/application-repo"
	auditrepo "github.com/GlebRadaev/aescholar/internal/repo/audit-repo"
	bankingrepo "github.com/GlebRadaev/aescholar/internal/repo/banking-repo"
	correpo "github.com/GlebRadaev/aescholar/internal/repo/cor-repo"
	documentrepo "github.com/GlebRadaev/aescholar/internal/repo/document-repo"
	importrepo "github.com/GlebRadaev/aescholar/internal/repo/import-repo"
	lookuprepo "github.com/GlebRadaev/aescholar/internal/repo/lookup-repo"
	notificationrepo "github.com/GlebRadaev/aescholar/internal/repo/notification-repo"
	paymentrepo "github.com/GlebRadaev/aescholar/internal/repo/payment-repo"
	scholarshiprepo "github.com/GlebRadaev/aescholar/internal/repo/scholarship-repo"
	userrepo "github.com/GlebRadaev/aescholar/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	ScholarshipRepo  *scholarshiprepo.Repository
	ApplicationRepo  *applicationrepo.Repository
	DocumentRepo     *documentrepo.Repository
	BankingRepo      *bankingrepo.Repository
	PaymentRepo      *paymentrepo.Repository
	CORRepo          *correpo.Repository
	NotificationRepo *notificationrepo.Repository
	AuditRepo        *auditrepo.Repository
	LookupRepo       *lookuprepo.Repository
	ImportRepo       *importrepo.Repository
	AnalyticsRepo    *analyticsrepo.Repository
	TxManager        pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ScholarshipRepo:  scholarshiprepo.New(conn),
		ApplicationRepo:  applicationrepo.New(conn),
		DocumentRepo:     documentrepo.New(conn),
		BankingRepo:      bankingrepo.New(conn),
		PaymentRepo:      paymentrepo.New(conn, txManager),
		CORRepo:          correpo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		AuditRepo:        auditrepo.New(conn),
		LookupRepo:       lookuprepo.New(conn),
		ImportRepo:       importrepo.New(conn),
		AnalyticsRepo:    analyticsrepo.New(conn),
		TxManager:        txManager,
	}
}
