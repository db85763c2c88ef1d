package staffservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/metrics"
	"github.com/GlebRadaev/aescholar/internal/service/activity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reviewerRoles may be assigned applications.
var reviewerRoles = []domain.Role{
	domain.RoleScholarshipStaff, domain.RoleScholarshipManager, domain.RoleAdmin, domain.RoleSuperadmin,
}

type AppRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	Queue(ctx context.Context, f domain.QueueFilter) ([]domain.ApplicationSummary, int, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	Rankings(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Ranking, error)
	AppendNote(ctx context.Context, id uuid.UUID, entry string, author uuid.UUID) error
	ChangeStatus(ctx context.Context, c domain.StatusChange) error
}

type ScholarshipRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error)
}

type DocumentRepo interface {
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error)
}

type AuditRepo interface {
	History(ctx context.Context, applicationID uuid.UUID) ([]domain.AuditEntry, error)
}

type TemplateRepo interface {
	Templates(ctx context.Context, typ string) ([]domain.CorrespondenceTemplate, error)
}

type Activity interface {
	Notify(ctx context.Context, userID uuid.UUID, applicationID *uuid.UUID, typ, title, message string)
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Service struct {
	apps         AppRepo
	scholarships ScholarshipRepo
	users        UserRepo
	documents    DocumentRepo
	audit        AuditRepo
	templates    TemplateRepo
	activity     Activity
	now          func() time.Time
}

func New(apps AppRepo, scholarships ScholarshipRepo, users UserRepo, documents DocumentRepo,
	audit AuditRepo, templates TemplateRepo, activity Activity) *Service {
	return &Service{
		apps:         apps,
		scholarships: scholarships,
		users:        users,
		documents:    documents,
		audit:        audit,
		templates:    templates,
		activity:     activity,
		now:          time.Now,
	}
}

func (s *Service) Queue(ctx context.Context, f domain.QueueFilter) (domain.PageResult[domain.ApplicationSummary], error) {
	list, total, err := s.apps.Queue(ctx, f)
	if err != nil {
		return domain.PageResult[domain.ApplicationSummary]{}, err
	}
	return domain.NewPageResult(list, total, f.Page), nil
}

func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.apps.Dashboard(ctx)
}

func (s *Service) Members(ctx context.Context) ([]domain.User, error) {
	members, err := s.users.FindByRoles(ctx, reviewerRoles)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []domain.User{}
	}
	return members, nil
}

func (s *Service) Rankings(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Ranking, error) {
	list, err := s.apps.Rankings(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Ranking{}
	}
	return list, nil
}

func (s *Service) Templates(ctx context.Context, typ string) ([]domain.CorrespondenceTemplate, error) {
	list, err := s.templates.Templates(ctx, typ)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.CorrespondenceTemplate{}
	}
	return list, nil
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

// ReviewDetail gathers everything a reviewer needs on one screen.
func (s *Service) ReviewDetail(ctx context.Context, id uuid.UUID) (*domain.ApplicationDetail, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	sch, err := s.scholarships.FindByID(ctx, app.ScholarshipID)
	if err != nil {
		return nil, err
	}
	docs, err := s.documents.ListByApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.audit.History(ctx, id)
	if err != nil {
		return nil, err
	}
	eligibility := app.Eligibility()
	return &domain.ApplicationDetail{
		Application: *app,
		Scholarship: sch,
		Documents:   docs,
		History:     history,
		Eligibility: &eligibility,
	}, nil
}

func (s *Service) stamp() string {
	return "[" + s.now().UTC().Format(time.RFC3339) + "]"
}

// AddNote appends a timestamped review note. The author becomes the
// reviewer when nobody is assigned yet.
func (s *Service) AddNote(ctx context.Context, actor domain.Actor, id uuid.UUID, notes string) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return domain.BadRequest("Notes are required")
	}
	if err := s.apps.AppendNote(ctx, id, s.stamp()+" "+notes, actor.ID); err != nil {
		return err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditReviewNoteAdded, map[string]any{"notes": notes}))
	return nil
}

// decide applies a staff transition. The acting reviewer is recorded
// only when nobody is assigned yet.
func (s *Service) decide(ctx context.Context, actor domain.Actor, app *domain.Application, action domain.Action, change domain.StatusChange) error {
	to, err := domain.Transition(app.Status, action)
	if err != nil {
		return err
	}
	change.ID, change.From, change.To = app.ID, app.Status, to
	if app.ReviewerID == nil && change.ReviewerID == nil {
		change.ReviewerID = &actor.ID
	}
	if err := s.apps.ChangeStatus(ctx, change); err != nil {
		return err
	}
	metrics.Transitions.WithLabelValues(string(to)).Inc()
	app.Status = to
	if change.ReviewerID != nil {
		app.ReviewerID = change.ReviewerID
	}
	if change.Decision != nil {
		app.Decision = *change.Decision
		app.DecisionDate = change.DecisionDate
	}
	return nil
}

func (s *Service) RequestMI(ctx context.Context, actor domain.Actor, id uuid.UUID, req domain.MIRequest) (*domain.Application, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.decide(ctx, actor, app, domain.ActionRequestMI, domain.StatusChange{}); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditMISent,
		map[string]any{"reasons": req.Reasons, "customMessage": req.CustomMessage}))
	s.activity.Notify(ctx, app.ApplicantID, &app.ID, domain.NotifyMIRequest, "Missing Information Requested",
		fmt.Sprintf("Missing information has been requested for your application %s. Please review and provide the required documents.", app.ReferenceNumber))
	return app, nil
}

func (s *Service) Approve(ctx context.Context, actor domain.Actor, id uuid.UUID, d domain.Decision) (*domain.Application, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	decision := domain.DecisionApproved
	change := domain.StatusChange{Decision: &decision, DecisionDate: &now}
	if d.Notes != "" {
		note := s.stamp() + " APPROVED: " + d.Notes
		change.NoteEntry = &note
	}
	if err := s.decide(ctx, actor, app, domain.ActionApprove, change); err != nil {
		return nil, err
	}
	zap.L().Info("application approved", zap.String("reference", app.ReferenceNumber))
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditApplicationApproved,
		map[string]any{"reference_number": app.ReferenceNumber, "notes": d.Notes}))
	s.activity.Notify(ctx, app.ApplicantID, &app.ID, domain.NotifyDecisionAvailable, "Application Approved",
		fmt.Sprintf("Congratulations! Your application %s has been approved.", app.ReferenceNumber))
	return app, nil
}

// Reject needs at least one reason; the reasons go to the audit trail.
func (s *Service) Reject(ctx context.Context, actor domain.Actor, id uuid.UUID, d domain.Decision) (*domain.Application, error) {
	var reasons []string
	for _, r := range d.Reasons {
		if r = strings.TrimSpace(r); r != "" {
			reasons = append(reasons, r)
		}
	}
	if len(reasons) == 0 {
		return nil, domain.BadRequest("At least one rejection reason is required")
	}
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	decision := domain.DecisionRejected
	change := domain.StatusChange{Decision: &decision, DecisionDate: &now}
	if d.Notes != "" {
		note := s.stamp() + " REJECTED: " + d.Notes
		change.NoteEntry = &note
	}
	if err := s.decide(ctx, actor, app, domain.ActionReject, change); err != nil {
		return nil, err
	}
	zap.L().Info("application rejected", zap.String("reference", app.ReferenceNumber))
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditApplicationRejected,
		map[string]any{"reference_number": app.ReferenceNumber, "reasons": reasons, "notes": d.Notes}))
	s.activity.Notify(ctx, app.ApplicantID, &app.ID, domain.NotifyDecisionAvailable, "Application Decision",
		fmt.Sprintf("A decision has been made on your application %s. Please check your dashboard for details.", app.ReferenceNumber))
	return app, nil
}

func (s *Service) assignee(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil || !domain.Authorize(user.Role, domain.CapReview) {
		return domain.BadRequest("Assignee must be a scholarship staff member")
	}
	return nil
}

// Assign overwrites the reviewer. A Submitted application moves to
// Under Review, one already under review keeps its status.
func (s *Service) Assign(ctx context.Context, actor domain.Actor, id, assigneeID uuid.UUID) (*domain.Application, error) {
	if err := s.assignee(ctx, assigneeID); err != nil {
		return nil, err
	}
	return s.assign(ctx, actor, id, assigneeID)
}

func (s *Service) assign(ctx context.Context, actor domain.Actor, id, assigneeID uuid.UUID) (*domain.Application, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.decide(ctx, actor, app, domain.ActionAssign, domain.StatusChange{ReviewerID: &assigneeID}); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditApplicationAssigned,
		map[string]any{"assigned_to": assigneeID.String()}))
	return app, nil
}

// BulkAssign assigns every application it can and reports the rest.
func (s *Service) BulkAssign(ctx context.Context, actor domain.Actor, ids []uuid.UUID, assigneeID uuid.UUID) ([]domain.AssignOutcome, error) {
	if len(ids) == 0 {
		return nil, domain.BadRequest("No applications selected")
	}
	if err := s.assignee(ctx, assigneeID); err != nil {
		return nil, err
	}
	outcomes := make([]domain.AssignOutcome, 0, len(ids))
	for _, id := range ids {
		app, err := s.assign(ctx, actor, id, assigneeID)
		if err != nil {
			outcomes = append(outcomes, domain.AssignOutcome{ApplicationID: id, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, domain.AssignOutcome{
			ApplicationID:   id,
			ReferenceNumber: app.ReferenceNumber,
			Status:          app.Status,
		})
	}
	return outcomes, nil
}
