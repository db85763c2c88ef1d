package service

import (
	"github.com/GlebRadaev/aescholar/internal/handlers/admin"
	"github.com/GlebRadaev/aescholar/internal/handlers/analytics"
	"github.com/GlebRadaev/aescholar/internal/handlers/applications"
	"github.com/GlebRadaev/aescholar/internal/handlers/auth"
	"github.com/GlebRadaev/aescholar/internal/handlers/cor"
	"github.com/GlebRadaev/aescholar/internal/handlers/notifications"
	"github.com/GlebRadaev/aescholar/internal/handlers/payments"
	"github.com/GlebRadaev/aescholar/internal/handlers/profile"
	"github.com/GlebRadaev/aescholar/internal/handlers/scholarships"
	"github.com/GlebRadaev/aescholar/internal/handlers/staff"
	"github.com/GlebRadaev/aescholar/internal/sfs"

	pkgauth "github.com/GlebRadaev/aescholar/pkg/auth"

	"github.com/GlebRadaev/aescholar/internal/repo"
	"github.com/GlebRadaev/aescholar/internal/service/activity"
	"github.com/GlebRadaev/aescholar/internal/service/adminservice"
	"github.com/GlebRadaev/aescholar/internal/service/analyticsservice"
	"github.com/GlebRadaev/aescholar/internal/service/applicationservice"
	"github.com/GlebRadaev/aescholar/internal/service/authservice"
	"github.com/GlebRadaev/aescholar/internal/service/corservice"
	"github.com/GlebRadaev/aescholar/internal/service/notificationservice"
	"github.com/GlebRadaev/aescholar/internal/service/paymentservice"
	"github.com/GlebRadaev/aescholar/internal/service/profileservice"
	"github.com/GlebRadaev/aescholar/internal/service/scholarshipservice"
	"github.com/GlebRadaev/aescholar/internal/service/staffservice"
)

// Deps are the non-database collaborators the services need.
type Deps struct {
	Storage    applicationservice.Storage
	Cipher     profileservice.Cipher
	Checker    sfs.Checker
	JWT        pkgauth.JWTServiceInterface
	Auth       authservice.Options
	SFSWorkers int
}

type Services struct {
	AuthService         auth.Service
	ProfileService      profile.Service
	ScholarshipService  scholarships.Service
	ApplicationService  applications.Service
	StaffService        staff.Service
	CORService          cor.Service
	PaymentService      payments.Service
	AdminService        admin.Service
	NotificationService notifications.Service
	AnalyticsService    analytics.Service

	Authenticator *pkgauth.Authenticator
	Syncer        *sfs.Syncer
}

func New(repo *repo.Repositories, deps Deps) *Services {
	recorder := activity.New(repo.NotificationRepo, repo.AuditRepo, repo.TxManager)
	syncer := sfs.NewSyncer(repo.ApplicationRepo, deps.Checker, deps.SFSWorkers)

	return &Services{
		AuthService:        authservice.New(repo.UserRepo, recorder, &pkgauth.HashService{}, deps.JWT, deps.Auth),
		ProfileService:     profileservice.New(repo.UserRepo, repo.BankingRepo, repo.LookupRepo, recorder, deps.Cipher),
		ScholarshipService: scholarshipservice.New(repo.ScholarshipRepo, repo.LookupRepo, recorder),
		ApplicationService: applicationservice.New(repo.ApplicationRepo, repo.ScholarshipRepo, repo.UserRepo,
			repo.DocumentRepo, deps.Storage, recorder),
		StaffService: staffservice.New(repo.ApplicationRepo, repo.ScholarshipRepo, repo.UserRepo,
			repo.DocumentRepo, repo.AuditRepo, repo.LookupRepo, recorder),
		CORService:     corservice.New(repo.ApplicationRepo, repo.CORRepo, deps.Checker, recorder, repo.TxManager),
		PaymentService: paymentservice.New(repo.PaymentRepo, repo.BankingRepo, recorder, repo.TxManager),
		AdminService: adminservice.New(repo.UserRepo, repo.ApplicationRepo, repo.ScholarshipRepo, repo.ImportRepo,
			repo.AuditRepo, syncer, recorder, repo.TxManager),
		NotificationService: notificationservice.New(repo.NotificationRepo),
		AnalyticsService:    analyticsservice.New(repo.ApplicationRepo, repo.AnalyticsRepo),

		Authenticator: pkgauth.NewAuthenticator(deps.JWT, repo.UserRepo),
		Syncer:        syncer,
	}
}
