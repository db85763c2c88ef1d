// Package applicationservice drives the applicant side of the application
// workflow: start, draft edits, submission, withdrawal, missing-info
// responses and document management.
package applicationservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/metrics"
	"github.com/GlebRadaev/aescholar/internal/service/activity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppRepo interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	FindActive(ctx context.Context, applicantID, scholarshipID uuid.UUID) (*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.ApplicationSummary, error)
	SaveDraft(ctx context.Context, a *domain.Application) error
	ChangeStatus(ctx context.Context, c domain.StatusChange) error
}

type ScholarshipRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type DocumentRepo interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	CountByApplication(ctx context.Context, applicationID uuid.UUID) (int, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error)
	Delete(ctx context.Context, applicationID, documentID uuid.UUID) (*domain.Document, error)
}

// Storage keeps uploaded file bodies; the database only holds the path.
type Storage interface {
	Save(ctx context.Context, applicationID uuid.UUID, fileName string, body io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
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
	storage      Storage
	activity     Activity
	now          func() time.Time
}

func New(apps AppRepo, scholarships ScholarshipRepo, users UserRepo, documents DocumentRepo, storage Storage, activity Activity) *Service {
	return &Service{
		apps:         apps,
		scholarships: scholarships,
		users:        users,
		documents:    documents,
		storage:      storage,
		activity:     activity,
		now:          time.Now,
	}
}

// Start opens a draft for the applicant. An existing draft for the same
// scholarship is returned as is with created=false.
func (s *Service) Start(ctx context.Context, actor domain.Actor, scholarshipID uuid.UUID) (*domain.Application, bool, error) {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, domain.ErrUserNotFound
	}
	if !user.ProfileComplete {
		return nil, false, domain.BadRequest("Please complete your profile before applying")
	}

	sch, err := s.scholarships.FindByID(ctx, scholarshipID)
	if err != nil {
		return nil, false, err
	}
	if sch == nil {
		return nil, false, domain.ErrScholarshipNotFound
	}
	if sch.Type != domain.ScholarshipTypeOnline {
		return nil, false, domain.BadRequest("This scholarship does not accept online applications")
	}
	now := s.now()
	if sch.DeadlinePassed(now) {
		return nil, false, domain.BadRequest("The application deadline has passed")
	}

	existing, err := s.apps.FindActive(ctx, actor.ID, scholarshipID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.Status == domain.StatusDraft {
			return existing, false, nil
		}
		return nil, false, domain.Conflict("You have already applied for this scholarship")
	}

	ref, err := domain.NewReferenceNumber(now)
	if err != nil {
		return nil, false, fmt.Errorf("can't generate reference number: %w", err)
	}
	app := prefill(user)
	app.ReferenceNumber = ref
	app.ScholarshipID = scholarshipID
	app.ApplicantID = actor.ID
	app.Status = domain.StatusDraft

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, false, err
	}
	zap.L().Info("application started", zap.String("reference", ref))
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, created.ID, domain.AuditApplicationStarted,
		map[string]any{"reference_number": ref, "scholarship": sch.Name}))
	return created, true, nil
}

// prefill copies the applicant's profile into a fresh draft.
func prefill(u *domain.User) *domain.Application {
	info := domain.PersonalInfo{
		SchemaVersion: domain.BagSchemaVersion,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		AddressLine1:  u.AddressLine1,
		AddressLine2:  u.AddressLine2,
		City:          u.City,
		Province:      u.Province,
		PostalCode:    u.PostalCode,
		ASN:           u.ASN,
	}
	if u.DateOfBirth != nil {
		info.DateOfBirth = u.DateOfBirth.Format(time.DateOnly)
	}
	return &domain.Application{
		PersonalInfo:      info,
		PostsecondaryInfo: domain.PostsecondaryInfo{SchemaVersion: domain.BagSchemaVersion},
		HighSchoolInfo:    domain.HighSchoolInfo{SchemaVersion: domain.BagSchemaVersion},
		AdditionalInfo:    domain.AdditionalInfo{SchemaVersion: domain.BagSchemaVersion},
		AcademicMarks:     domain.AcademicMarks{SchemaVersion: domain.BagSchemaVersion},
		CitizenshipStatus: u.CitizenshipStatus,
		ResidencyStatus:   u.ResidencyStatus,
		IndigenousStatus:  u.IndigenousStatus,
		Gender:            u.Gender,
	}
}

func (s *Service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.ApplicationSummary, error) {
	list, err := s.apps.ListByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.ApplicationSummary{}
	}
	return list, nil
}

// Get returns the application with its scholarship and documents. Staff
// may read any application, applicants only their own.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ApplicationDetail, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	if app.ApplicantID != actor.ID && !actor.Role.IsStaff() {
		return nil, domain.ErrForbidden
	}

	sch, err := s.scholarships.FindByID(ctx, app.ScholarshipID)
	if err != nil {
		return nil, err
	}
	docs, err := s.documents.ListByApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.ApplicationDetail{Application: *app, Scholarship: sch, Documents: docs}, nil
}

// owned loads an application belonging to the actor. Someone else's
// application is reported as missing.
func (s *Service) owned(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil || app.ApplicantID != actor.ID {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

func (s *Service) SaveDraft(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.DraftPatch) (*domain.Application, error) {
	app, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if _, err := domain.Transition(app.Status, domain.ActionSaveDraft); err != nil {
		return nil, err
	}
	if err := patch.Apply(app); err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			return nil, derr
		}
		return nil, domain.BadRequest(err.Error())
	}
	if err := s.apps.SaveDraft(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Submit moves a complete draft to Submitted. An incomplete draft is left
// untouched and the missing items are returned as the error list.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error) {
	app, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	to, err := domain.Transition(app.Status, domain.ActionSubmit)
	if err != nil {
		return nil, err
	}
	if missing := app.MissingForSubmit(); len(missing) > 0 {
		return nil, domain.Invalid("Application is incomplete", missing)
	}

	now := s.now()
	change := domain.StatusChange{ID: app.ID, From: app.Status, To: to, SubmittedAt: &now}
	if err := s.apps.ChangeStatus(ctx, change); err != nil {
		return nil, err
	}
	metrics.Transitions.WithLabelValues(string(to)).Inc()
	app.Status = to
	app.SubmittedAt = &now

	name := s.scholarshipName(ctx, app.ScholarshipID)
	s.activity.Notify(ctx, app.ApplicantID, &app.ID, domain.NotifySubmitted, "Application Submitted",
		fmt.Sprintf("Your application %s for %s has been submitted successfully.", app.ReferenceNumber, name))
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, app.ID, domain.AuditApplicationSubmitted,
		map[string]any{"reference_number": app.ReferenceNumber, "scholarship": name}))
	return app, nil
}

func (s *Service) scholarshipName(ctx context.Context, id uuid.UUID) string {
	sch, err := s.scholarships.FindByID(ctx, id)
	if err != nil || sch == nil {
		return "the scholarship"
	}
	return sch.Name
}

func (s *Service) Withdraw(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error) {
	app, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	from := app.Status
	if err := s.move(ctx, app, domain.ActionWithdraw); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, app.ID, domain.AuditApplicationWithdrawn,
		map[string]any{"reference_number": app.ReferenceNumber, "from": string(from)}))
	return app, nil
}

// RespondMI resubmits an application after the applicant supplied the
// requested material.
func (s *Service) RespondMI(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error) {
	app, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.move(ctx, app, domain.ActionRespondMI); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, app.ID, domain.AuditApplicationResubmitted,
		map[string]any{"reference_number": app.ReferenceNumber}))
	return app, nil
}

func (s *Service) move(ctx context.Context, app *domain.Application, action domain.Action) error {
	to, err := domain.Transition(app.Status, action)
	if err != nil {
		return err
	}
	if err := s.apps.ChangeStatus(ctx, domain.StatusChange{ID: app.ID, From: app.Status, To: to}); err != nil {
		return err
	}
	metrics.Transitions.WithLabelValues(string(to)).Inc()
	app.Status = to
	return nil
}

// AddDocument stores an upload against an application that is still
// editable by the applicant.
func (s *Service) AddDocument(ctx context.Context, actor domain.Actor, id uuid.UUID, upload domain.DocumentUpload) (*domain.Document, error) {
	app, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.DocumentsEditable() {
		return nil, domain.BadRequest("Cannot add documents in current status")
	}
	if err := upload.Validate(); err != nil {
		return nil, err
	}
	count, err := s.documents.CountByApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxDocumentsPerApp {
		return nil, domain.BadRequest(fmt.Sprintf("An application can have at most %d documents", domain.MaxDocumentsPerApp))
	}

	path, err := s.storage.Save(ctx, id, upload.FileName, upload.Body)
	if err != nil {
		return nil, fmt.Errorf("can't store document: %w", err)
	}
	docType := upload.DocumentType
	if docType == "" {
		docType = domain.DefaultDocumentType
	}
	doc, err := s.documents.Create(ctx, &domain.Document{
		ApplicationID: id,
		FileName:      upload.FileName,
		FileType:      upload.ContentType,
		FileSize:      upload.Size,
		StoragePath:   path,
		DocumentType:  docType,
	})
	if err != nil {
		if rmErr := s.storage.Remove(ctx, path); rmErr != nil {
			zap.L().Warn("can't remove orphaned upload", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, err
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditDocumentUploaded,
		map[string]any{"file_name": doc.FileName, "document_type": doc.DocumentType}))
	return doc, nil
}

func (s *Service) RemoveDocument(ctx context.Context, actor domain.Actor, id, documentID uuid.UUID) error {
	app, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if !app.Status.DocumentsEditable() {
		return domain.ErrDocumentNotFound
	}
	doc, err := s.documents.Delete(ctx, id, documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrDocumentNotFound
	}
	if err := s.storage.Remove(ctx, doc.StoragePath); err != nil {
		zap.L().Warn("can't remove stored document", zap.String("path", doc.StoragePath), zap.Error(err))
	}
	s.activity.Audit(ctx, activity.ApplicationEntry(actor.ID, id, domain.AuditDocumentRemoved,
		map[string]any{"file_name": doc.FileName}))
	return nil
}
