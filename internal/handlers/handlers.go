package handlers

import (
	"context"
	"net/http"
	"time"

	_ "github.com/GlebRadaev/aescholar/docs"
	"github.com/GlebRadaev/aescholar/internal/domain"
	adminhandlers "github.com/GlebRadaev/aescholar/internal/handlers/admin"
	analyticshandlers "github.com/GlebRadaev/aescholar/internal/handlers/analytics"
	applicationshandlers "github.com/GlebRadaev/aescholar/internal/handlers/applications"
	authhandlers "github.com/GlebRadaev/aescholar/internal/handlers/auth"
	corhandlers "github.com/GlebRadaev/aescholar/internal/handlers/cor"
	notificationshandlers "github.com/GlebRadaev/aescholar/internal/handlers/notifications"
	paymentshandlers "github.com/GlebRadaev/aescholar/internal/handlers/payments"
	profilehandlers "github.com/GlebRadaev/aescholar/internal/handlers/profile"
	scholarshipshandlers "github.com/GlebRadaev/aescholar/internal/handlers/scholarships"
	staffhandlers "github.com/GlebRadaev/aescholar/internal/handlers/staff"
	"github.com/GlebRadaev/aescholar/internal/metrics"
	"github.com/GlebRadaev/aescholar/internal/service"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const requestTimeout = 60 * time.Second

type AuthHandler interface {
	ACALogin(w http.ResponseWriter, r *http.Request)
	StaffLogin(w http.ResponseWriter, r *http.Request)
	DevLogin(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	CreateProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetBanking(w http.ResponseWriter, r *http.Request)
	SaveBanking(w http.ResponseWriter, r *http.Request)
	Lookup(w http.ResponseWriter, r *http.Request)
}

type ScholarshipHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Types(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SaveDraft(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	RespondMI(w http.ResponseWriter, r *http.Request)
	AddDocument(w http.ResponseWriter, r *http.Request)
	RemoveDocument(w http.ResponseWriter, r *http.Request)
}

type StaffHandler interface {
	Queue(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Members(w http.ResponseWriter, r *http.Request)
	Rankings(w http.ResponseWriter, r *http.Request)
	Templates(w http.ResponseWriter, r *http.Request)
	ReviewDetail(w http.ResponseWriter, r *http.Request)
	AddNote(w http.ResponseWriter, r *http.Request)
	RequestMI(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	BulkAssign(w http.ResponseWriter, r *http.Request)
}

type CORHandler interface {
	Lookup(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	Request(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Eligible(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ConfirmBatch(w http.ResponseWriter, r *http.Request)
	File(w http.ResponseWriter, r *http.Request)
	Workbook(w http.ResponseWriter, r *http.Request)
	Duplicates(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Users(w http.ResponseWriter, r *http.Request)
	User(w http.ResponseWriter, r *http.Request)
	Roles(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	SetBlocked(w http.ResponseWriter, r *http.Request)
	ImportHistory(w http.ResponseWriter, r *http.Request)
	ImportLegacy(w http.ResponseWriter, r *http.Request)
	AuditLogs(w http.ResponseWriter, r *http.Request)
	AuditActions(w http.ResponseWriter, r *http.Request)
	ExportAudit(w http.ResponseWriter, r *http.Request)
	SyncSFS(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
}

// Authenticator puts the caller into the request context.
type Authenticator interface {
	Middleware(next http.Handler) http.Handler
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AuthHandler         AuthHandler
	ProfileHandler      ProfileHandler
	ScholarshipHandler  ScholarshipHandler
	ApplicationHandler  ApplicationHandler
	StaffHandler        StaffHandler
	CORHandler          CORHandler
	PaymentHandler      PaymentHandler
	AdminHandler        AdminHandler
	NotificationHandler NotificationHandler
	AnalyticsHandler    AnalyticsHandler

	Authenticator Authenticator
	DB            Pinger
	FrontendURL   string
}

func New(s *service.Services, db Pinger, frontendURL string) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		ProfileHandler:      profilehandlers.New(s.ProfileService),
		ScholarshipHandler:  scholarshipshandlers.New(s.ScholarshipService),
		ApplicationHandler:  applicationshandlers.New(s.ApplicationService),
		StaffHandler:        staffhandlers.New(s.StaffService),
		CORHandler:          corhandlers.New(s.CORService),
		PaymentHandler:      paymentshandlers.New(s.PaymentService),
		AdminHandler:        adminhandlers.New(s.AdminService),
		NotificationHandler: notificationshandlers.New(s.NotificationService),
		AnalyticsHandler:    analyticshandlers.New(s.AnalyticsService),
		Authenticator:       s.Authenticator,
		DB:                  db,
		FrontendURL:         frontendURL,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(requestTimeout),
		metrics.Middleware,
		h.cors,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/aca", h.AuthHandler.ACALogin)
			r.Post("/microsoft", h.AuthHandler.StaffLogin)
			r.Post("/dev-login", h.AuthHandler.DevLogin)

			r.Group(func(r chi.Router) {
				r.Use(h.Authenticator.Middleware)
				r.Get("/me", h.AuthHandler.Me)
				r.Post("/refresh", h.AuthHandler.Refresh)
				r.Post("/logout", h.AuthHandler.Logout)
			})
		})

		r.Route("/scholarships", func(r chi.Router) {
			r.Get("/", h.ScholarshipHandler.List)
			r.Get("/types", h.ScholarshipHandler.Types)
			r.Get("/categories", h.ScholarshipHandler.Categories)
			r.Get("/{id}", h.ScholarshipHandler.Get)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/lookups/{table}", h.ProfileHandler.Lookup)

			r.Group(func(r chi.Router) {
				r.Use(h.Authenticator.Middleware)
				r.Get("/me", h.ProfileHandler.GetProfile)
				r.Post("/me", h.ProfileHandler.CreateProfile)
				r.Put("/me", h.ProfileHandler.UpdateProfile)
				r.Get("/banking", h.ProfileHandler.GetBanking)
				r.Post("/banking", h.ProfileHandler.SaveBanking)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(h.Authenticator.Middleware)
			// owner or staff, checked by the service
			r.Get("/{id}", h.ApplicationHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireCapability(domain.CapApply))
				r.Post("/", h.ApplicationHandler.Start)
				r.Get("/my", h.ApplicationHandler.ListMine)
				r.Put("/{id}", h.ApplicationHandler.SaveDraft)
				r.Post("/{id}/submit", h.ApplicationHandler.Submit)
				r.Post("/{id}/withdraw", h.ApplicationHandler.Withdraw)
				r.Post("/{id}/respond-mi", h.ApplicationHandler.RespondMI)
				r.Post("/{id}/documents", h.ApplicationHandler.AddDocument)
				r.Delete("/{id}/documents/{docId}", h.ApplicationHandler.RemoveDocument)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.Use(h.Authenticator.Middleware, auth.RequireCapability(domain.CapReview))
			r.Get("/queue", h.StaffHandler.Queue)
			r.Get("/dashboard", h.StaffHandler.Dashboard)
			r.Get("/members", h.StaffHandler.Members)
			r.Get("/rankings/{scholarshipId}", h.StaffHandler.Rankings)
			r.Get("/templates", h.StaffHandler.Templates)
			r.Post("/bulk-assign", h.StaffHandler.BulkAssign)
			r.Route("/applications/{id}", func(r chi.Router) {
				r.Get("/", h.StaffHandler.ReviewDetail)
				r.Post("/notes", h.StaffHandler.AddNote)
				r.Post("/request-mi", h.StaffHandler.RequestMI)
				r.Post("/approve", h.StaffHandler.Approve)
				r.Post("/reject", h.StaffHandler.Reject)
				r.Post("/assign", h.StaffHandler.Assign)
			})
		})

		r.Route("/cor", func(r chi.Router) {
			r.Get("/respond/{token}", h.CORHandler.Lookup)
			r.Post("/respond/{token}", h.CORHandler.Respond)

			r.Group(func(r chi.Router) {
				r.Use(h.Authenticator.Middleware, auth.RequireCapability(domain.CapReview))
				r.Post("/check/{id}", h.CORHandler.Check)
				r.Post("/request/{id}", h.CORHandler.Request)
				r.Get("/status/{id}", h.CORHandler.Status)
				r.Get("/pending", h.CORHandler.Pending)
				r.Get("/all", h.CORHandler.List)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(h.Authenticator.Middleware, auth.RequireCapability(domain.CapPayments))
			r.Get("/eligible", h.PaymentHandler.Eligible)
			r.Post("/batch", h.PaymentHandler.CreateBatch)
			r.Get("/batches", h.PaymentHandler.ListBatches)
			r.Get("/batches/{id}", h.PaymentHandler.GetBatch)
			r.Post("/batches/{id}/confirm", h.PaymentHandler.ConfirmBatch)
			r.Get("/batches/{id}/file", h.PaymentHandler.File)
			r.Get("/batches/{id}/workbook", h.PaymentHandler.Workbook)
			r.Get("/duplicates", h.PaymentHandler.Duplicates)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.Authenticator.Middleware, auth.RequireCapability(domain.CapAdmin))
			r.Get("/scholarships", h.ScholarshipHandler.List)
			r.Post("/scholarships", h.ScholarshipHandler.Create)
			r.Get("/scholarships/{id}", h.ScholarshipHandler.Get)
			r.Put("/scholarships/{id}", h.ScholarshipHandler.Update)
			r.Get("/lookups/{table}", h.ProfileHandler.Lookup)

			r.Get("/users", h.AdminHandler.Users)
			r.Get("/users/{id}", h.AdminHandler.User)
			r.Put("/users/{id}/role", h.AdminHandler.ChangeRole)
			r.Put("/users/{id}/block", h.AdminHandler.SetBlocked)
			r.Get("/roles", h.AdminHandler.Roles)
			r.Get("/import/history", h.AdminHandler.ImportHistory)
			r.Post("/import/legacy", h.AdminHandler.ImportLegacy)
			r.Get("/audit", h.AdminHandler.AuditLogs)
			r.Get("/audit/actions", h.AdminHandler.AuditActions)
			r.Get("/audit/export", h.AdminHandler.ExportAudit)
			r.Post("/sfs/sync", h.AdminHandler.SyncSFS)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(h.Authenticator.Middleware)
			r.Get("/", h.NotificationHandler.List)
			r.Get("/unread-count", h.NotificationHandler.UnreadCount)
			r.Put("/read-all", h.NotificationHandler.MarkAllRead)
			r.Put("/{id}/read", h.NotificationHandler.MarkRead)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(h.Authenticator.Middleware, auth.RequireCapability(domain.CapAnalytics))
			r.Get("/dashboard", h.AnalyticsHandler.Dashboard)
		})
	})

	return r
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// health godoc
//
//	@Summary	Liveness and database reachability
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Failure	503	{object}	healthResponse
//	@Router		/api/health [get]
func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Database: "connected", Timestamp: time.Now().UTC()}
	if err := h.DB.Ping(ctx); err != nil {
		zap.L().Error("health check: database unreachable", zap.Error(err))
		resp.Status, resp.Database = "degraded", "disconnected"
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handlers) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.FrontendURL)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Expose-Headers", "Authorization, Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
