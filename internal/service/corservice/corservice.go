// Package corservice runs the Confirmation of Registration handshake:
// an automatic lookup in the Student Finance System, and otherwise a
// tokenised request an institution answers without an account.
package corservice

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/GlebRadaev/aescholar/internal/service/activity"
	"github.com/GlebRadaev/aescholar/internal/sfs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var whitespace = regexp.MustCompile(`\s+`)

type AppRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	SetCOR(ctx context.Context, id uuid.UUID, status domain.CORStatus, confirmedAt *time.Time) error
}

type Repo interface {
	Create(ctx context.Context, c *domain.CORRequest) (*domain.CORRequest, error)
	FindOpenByToken(ctx context.Context, token string) (*domain.CORRequest, error)
	Respond(ctx context.Context, id uuid.UUID, resp domain.CORResponse) error
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.CORRequest, error)
	Pending(ctx context.Context) ([]domain.CORRequest, error)
	List(ctx context.Context, f domain.CORFilter) ([]domain.CORRequest, int, error)
}

type Activity interface {
	Notify(ctx context.Context, userID uuid.UUID, applicationID *uuid.UUID, typ, title, message string)
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Service struct {
	apps      AppRepo
	requests  Repo
	checker   sfs.Checker
	activity  Activity
	txManager pg.TXManager
	now       func() time.Time
}

func New(apps AppRepo, requests Repo, checker sfs.Checker, activity Activity, txManager pg.TXManager) *Service {
	return &Service{
		apps:      apps,
		requests:  requests,
		checker:   checker,
		activity:  activity,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

// Check asks the SFS whether enrollment is already on file. A hit
// confirms the COR immediately; a miss marks it Pending.
func (s *Service) Check(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.CORCheckResult, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.checker.Check(ctx, *app)
	if err != nil {
		zap.L().Error("sfs check failed", zap.String("reference", app.ReferenceNumber), zap.Error(err))
		return nil, fmt.Errorf("can't check enrollment: %w", err)
	}

	institution := app.PostsecondaryInfo.InstitutionName
	if res.Confirmed {
		now := s.now()
		if err := s.apps.SetCOR(ctx, id, domain.CORConfirmed, &now); err != nil {
			return nil, err
		}
		s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditCORAutoConfirmed, map[string]any{
			"source": "SFS", "institution": institution, "sfs_id": res.SFSID, "confirmed_date": now.Format(time.RFC3339),
		}))
		return &domain.CORCheckResult{Status: domain.CORConfirmed, Source: "SFS", Message: "COR confirmed via Student Finance System"}, nil
	}

	if err := s.apps.SetCOR(ctx, id, domain.CORPending, nil); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditCORCheckPending, map[string]any{
		"source": "SFS", "institution": institution, "result": "No existing COR found",
	}))
	return &domain.CORCheckResult{Status: domain.CORPending, Source: "SFS", Message: "No existing COR found. Manual COR request needed."}, nil
}

// DefaultInstitutionEmail guesses the registrar mailbox of an institution.
func DefaultInstitutionEmail(institution string) string {
	return "registrar@" + whitespace.ReplaceAllString(strings.ToLower(institution), "") + ".ca"
}

// Request sends a COR request to the institution. The request row and
// the application's Requested status are written together.
func (s *Service) Request(ctx context.Context, actor domain.Actor, id uuid.UUID, in domain.CORRequestInput) (*domain.CORSent, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.CORStatus == domain.CORConfirmed {
		return nil, domain.BadRequest("COR is already confirmed")
	}
	institution := app.PostsecondaryInfo.InstitutionName
	if institution == "" {
		return nil, domain.BadRequest("Application has no post-secondary institution")
	}
	email := strings.TrimSpace(in.InstitutionEmail)
	if email == "" {
		email = DefaultInstitutionEmail(institution)
	}
	token, err := domain.NewCORToken()
	if err != nil {
		return nil, fmt.Errorf("can't generate cor token: %w", err)
	}

	req := &domain.CORRequest{
		ApplicationID:    id,
		InstitutionName:  institution,
		InstitutionEmail: email,
		RequestedBy:      &actor.ID,
		ResponseToken:    token,
		Status:           domain.CORRequestSent,
		ApplicantName:    app.PersonalInfo.FullName(),
		Program:          app.PostsecondaryInfo.Program,
		EnrollmentStatus: app.PostsecondaryInfo.EnrollmentStatus,
		YearOfStudy:      app.PostsecondaryInfo.YearOfStudy,
		CustomMessage:    in.CustomMessage,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.requests.Create(ctx, req); err != nil {
			return err
		}
		return s.apps.SetCOR(ctx, id, domain.CORRequested, nil)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("cor request sent", zap.String("reference", app.ReferenceNumber), zap.String("institution", institution))
	s.activity.Notify(ctx, app.ApplicantID, &app.ID, domain.NotifyCORRequest, "COR Request Sent",
		fmt.Sprintf("A Confirmation of Registration request has been sent to %s for your application %s.", institution, app.ReferenceNumber))
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditCORRequestSent, map[string]any{
		"institution": institution, "institution_email": email,
	}))
	return &domain.CORSent{
		Message:         "COR request sent successfully",
		RequestID:       req.ID,
		Institution:     institution,
		InstitutionMail: email,
		ResponseToken:   token,
		Status:          domain.CORRequested,
	}, nil
}

// Lookup shows an institution the request behind its token.
func (s *Service) Lookup(ctx context.Context, token string) (*domain.CORRequest, error) {
	req, err := s.requests.FindOpenByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrCORTokenNotFound
	}
	return req, nil
}

// Respond consumes a token. Only a request still in Sent can be answered,
// so a replayed token gets ErrCORTokenNotFound.
func (s *Service) Respond(ctx context.Context, token string, resp domain.CORResponse) (*domain.CORResponseResult, error) {
	req, err := s.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	appStatus, err := resp.ApplicationCORStatus()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.ConfirmedBy) == "" {
		resp.ConfirmedBy = "Institution"
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.requests.Respond(ctx, req.ID, resp); err != nil {
			return err
		}
		var confirmedAt *time.Time
		if appStatus == domain.CORConfirmed {
			now := s.now()
			confirmedAt = &now
		}
		return s.apps.SetCOR(ctx, req.ApplicationID, appStatus, confirmedAt)
	})
	if err != nil {
		return nil, err
	}

	title := "COR Confirmed"
	message := fmt.Sprintf("Your enrollment at %s has been confirmed for application %s.", req.InstitutionName, req.ReferenceNumber)
	if appStatus != domain.CORConfirmed {
		title = "COR Not Confirmed"
		message = fmt.Sprintf("The institution was unable to confirm your enrollment for application %s. Please contact the scholarship office.", req.ReferenceNumber)
	}
	s.activity.Notify(ctx, req.ApplicantID, &req.ApplicationID, domain.NotifyCORRequest, title, message)
	s.activity.Audit(ctx, domain.AuditEntry{
		ApplicationID: &req.ApplicationID,
		Action:        domain.AuditCORResponseReceived,
		EntityType:    "cor_request",
		EntityID:      req.ID.String(),
		Details: map[string]any{
			"institution": req.InstitutionName, "status": resp.Status, "confirmed_by": resp.ConfirmedBy, "notes": resp.Notes,
		},
	})
	return &domain.CORResponseResult{
		Message:           "COR response recorded: " + resp.Status,
		ApplicationStatus: appStatus,
		ApplicationID:     req.ApplicationID,
		ReferenceNumber:   req.ReferenceNumber,
	}, nil
}

func (s *Service) Status(ctx context.Context, id uuid.UUID) (*domain.CORStatusView, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.ListByApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.CORStatusView{
		ApplicationID:    app.ID,
		ReferenceNumber:  app.ReferenceNumber,
		CORStatus:        app.CORStatus,
		CORConfirmedDate: app.CORConfirmedDate,
		InstitutionName:  app.PostsecondaryInfo.InstitutionName,
		Requests:         requests,
	}, nil
}

func (s *Service) Pending(ctx context.Context) ([]domain.CORRequest, error) {
	return s.requests.Pending(ctx)
}

func (s *Service) List(ctx context.Context, f domain.CORFilter) (domain.PageResult[domain.CORRequest], error) {
	list, total, err := s.requests.List(ctx, f)
	if err != nil {
		return domain.PageResult[domain.CORRequest]{}, err
	}
	return domain.NewPageResult(list, total, f.Page), nil
}
