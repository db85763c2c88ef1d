package adminservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/export"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/GlebRadaev/aescholar/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	auditExportLimit   = 10000
	auditedImportErrs  = 10
	reportedImportErrs = 50
	defaultCitizenship = "Canadian Citizen"
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.UserSummary, int, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
}

type AppRepo interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
}

type ScholarshipRepo interface {
	FindByCodeOrName(ctx context.Context, code, name string) (*domain.Scholarship, error)
}

type ImportRepo interface {
	CreateHistory(ctx context.Context, h *domain.ImportHistory) error
	ListHistory(ctx context.Context) ([]domain.ImportHistory, error)
}

type AuditRepo interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error)
	Export(ctx context.Context, f domain.AuditFilter, limit int) ([]domain.AuditEntry, error)
	Actions(ctx context.Context) ([]string, error)
}

type Syncer interface {
	Sync(ctx context.Context) (*domain.SFSSyncResult, error)
}

type Activity interface {
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Service struct {
	users        UserRepo
	apps         AppRepo
	scholarships ScholarshipRepo
	imports      ImportRepo
	audit        AuditRepo
	syncer       Syncer
	activity     Activity
	txManager    pg.TXManager
	now          func() time.Time
}

func New(users UserRepo, apps AppRepo, scholarships ScholarshipRepo, imports ImportRepo, audit AuditRepo,
	syncer Syncer, activity Activity, txManager pg.TXManager) *Service {
	return &Service{
		users:        users,
		apps:         apps,
		scholarships: scholarships,
		imports:      imports,
		audit:        audit,
		syncer:       syncer,
		activity:     activity,
		txManager:    txManager,
		now:          time.Now,
	}
}

func (s *Service) Users(ctx context.Context, f domain.UserFilter) (domain.PageResult[domain.UserSummary], error) {
	list, total, err := s.users.List(ctx, f)
	if err != nil {
		return domain.PageResult[domain.UserSummary]{}, err
	}
	return domain.NewPageResult(list, total, f.Page), nil
}

func (s *Service) User(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) Roles() []domain.RoleInfo {
	return domain.RoleInfos()
}

func validRoles() string {
	names := make([]string, len(domain.Roles))
	for i, r := range domain.Roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// ChangeRole reassigns a user's role. Admins cannot demote themselves.
func (s *Service) ChangeRole(ctx context.Context, actor domain.Actor, id uuid.UUID, newRole string) (*domain.RoleChange, error) {
	role, ok := domain.ParseRole(newRole)
	if id == actor.ID && (!ok || !domain.Authorize(role, domain.CapAdmin)) {
		return nil, domain.BadRequest("Cannot remove your own admin role")
	}
	if !ok {
		return nil, domain.BadRequest(fmt.Sprintf("Invalid role: %s. Valid roles: %s", newRole, validRoles()))
	}
	target, err := s.User(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetRole(ctx, id, role); err != nil {
		return nil, err
	}

	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &actor.ID,
		Action:     domain.AuditUserRoleChanged,
		EntityType: "user",
		EntityID:   id.String(),
		Details:    map[string]any{"target_user_id": id, "target_name": target.DisplayName},
		OldValues:  map[string]any{"role": target.Role},
		NewValues:  map[string]any{"role": role},
	})
	return &domain.RoleChange{
		Message: fmt.Sprintf("Role updated from %s to %s", target.Role, role),
		UserID:  id,
		OldRole: target.Role,
		NewRole: role,
	}, nil
}

func (s *Service) SetBlocked(ctx context.Context, actor domain.Actor, id uuid.UUID, blocked bool) (string, error) {
	if id == actor.ID {
		return "", domain.BadRequest("Cannot block yourself")
	}
	target, err := s.User(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.users.SetBlocked(ctx, id, blocked); err != nil {
		return "", err
	}

	action, message := domain.AuditUserUnblocked, "User unblocked"
	if blocked {
		action, message = domain.AuditUserBlocked, "User blocked"
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &actor.ID,
		Action:     action,
		EntityType: "user",
		EntityID:   id.String(),
		Details:    map[string]any{"target_user_id": id, "target_name": target.DisplayName},
	})
	return message, nil
}

func (s *Service) ImportHistory(ctx context.Context) ([]domain.ImportHistory, error) {
	return s.imports.ListHistory(ctx)
}

// ImportLegacy loads legacy submissions in one transaction. Each row runs
// under its own savepoint: a bad row is reported and skipped while the
// rest commit together with the import history record.
func (s *Service) ImportLegacy(ctx context.Context, actor domain.Actor, subs []domain.LegacySubmission, fileName string) (*domain.ImportResult, error) {
	if len(subs) == 0 {
		return nil, domain.BadRequest("No submissions provided")
	}
	now := s.now()
	if fileName == "" {
		fileName = "legacy_import_" + now.UTC().Format(time.DateOnly)
	}

	result := &domain.ImportResult{Total: len(subs), Errors: []domain.ImportRowError{}}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, sub := range subs {
			err := s.txManager.Begin(ctx, func(ctx context.Context) error {
				return s.importRow(ctx, sub, now)
			})
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, domain.ImportRowError{Email: sub.Email, Error: rowError(err)})
				continue
			}
			result.Imported++
		}

		status := "completed"
		if result.Failed > 0 {
			status = "completed_with_errors"
		}
		h := &domain.ImportHistory{
			FileName:        fileName,
			TableName:       "applications",
			RecordsImported: result.Imported,
			RecordsFailed:   result.Failed,
			Status:          status,
		}
		if actor.ID != uuid.Nil {
			h.ImportedBy = &actor.ID
		}
		return s.imports.CreateHistory(ctx, h)
	})
	if err != nil {
		zap.L().Error("legacy import failed", zap.String("file", fileName), zap.Error(err))
		return nil, err
	}

	zap.L().Info("legacy import finished",
		zap.String("file", fileName), zap.Int("imported", result.Imported), zap.Int("failed", result.Failed))
	entry := domain.AuditEntry{
		Action: domain.AuditLegacyImport,
		Details: map[string]any{
			"file": fileName, "imported": result.Imported, "failed": result.Failed,
			"errors": result.Errors[:min(len(result.Errors), auditedImportErrs)],
		},
	}
	if actor.ID != uuid.Nil {
		entry.UserID = &actor.ID
	}
	s.activity.Audit(ctx, entry)

	result.Errors = result.Errors[:min(len(result.Errors), reportedImportErrs)]
	return result, nil
}

func rowError(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	return err.Error()
}

func (s *Service) importRow(ctx context.Context, sub domain.LegacySubmission, now time.Time) error {
	email := strings.TrimSpace(sub.Email)
	if email == "" {
		return domain.BadRequest("Email is required")
	}
	status := sub.Status
	if status == "" {
		status = domain.StatusSubmitted
	}
	if !status.Valid() {
		return domain.BadRequest(fmt.Sprintf("Invalid status: %s", status))
	}
	if errs := append(validate.Name("First name", sub.FirstName), validate.Name("Last name", sub.LastName)...); len(errs) > 0 {
		return domain.BadRequest(errs[0])
	}

	applicant, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if applicant == nil {
		applicant, err = s.users.Create(ctx, &domain.User{
			Email:         email,
			DisplayName:   strings.TrimSpace(sub.FirstName + " " + sub.LastName),
			Role:          domain.RoleApplicant,
			OAuthProvider: "legacy",
			FirstName:     sub.FirstName,
			LastName:      sub.LastName,
		})
		if err != nil {
			return err
		}
	}

	sch, err := s.scholarships.FindByCodeOrName(ctx, sub.ScholarshipCode, sub.ScholarshipName)
	if err != nil {
		return err
	}
	if sch == nil {
		key := sub.ScholarshipCode
		if key == "" {
			key = sub.ScholarshipName
		}
		return domain.NotFound("Scholarship not found: " + key)
	}

	ref, err := domain.NewLegacyReferenceNumber()
	if err != nil {
		return err
	}
	submittedAt := now
	if sub.SubmittedAt != nil {
		submittedAt = *sub.SubmittedAt
	}
	citizenship := sub.CitizenshipStatus
	if citizenship == "" {
		citizenship = defaultCitizenship
	}

	_, err = s.apps.Create(ctx, &domain.Application{
		ReferenceNumber: ref,
		ScholarshipID:   sch.ID,
		ApplicantID:     applicant.ID,
		Status:          status,
		SubmittedAt:     &submittedAt,
		PersonalInfo: domain.PersonalInfo{
			SchemaVersion: domain.BagSchemaVersion,
			FirstName:     sub.FirstName,
			LastName:      sub.LastName,
			Email:         email,
			Legacy:        true,
		},
		CitizenshipStatus: citizenship,
	})
	return err
}

func (s *Service) AuditLogs(ctx context.Context, f domain.AuditFilter) (domain.PageResult[domain.AuditEntry], error) {
	list, total, err := s.audit.List(ctx, f)
	if err != nil {
		return domain.PageResult[domain.AuditEntry]{}, err
	}
	return domain.NewPageResult(list, total, f.Page), nil
}

func (s *Service) AuditActions(ctx context.Context) ([]string, error) {
	actions, err := s.audit.Actions(ctx)
	if err != nil {
		return nil, err
	}
	if actions == nil {
		actions = []string{}
	}
	return actions, nil
}

// ExportAudit renders at most auditExportLimit entries as CSV.
func (s *Service) ExportAudit(ctx context.Context, f domain.AuditFilter) (name, content string, err error) {
	entries, err := s.audit.Export(ctx, f, auditExportLimit)
	if err != nil {
		return "", "", err
	}
	return export.AuditFileName(s.now()), export.AuditCSV(entries), nil
}

func (s *Service) SyncSFS(ctx context.Context, actor domain.Actor) (*domain.SFSSyncResult, error) {
	res, err := s.syncer.Sync(ctx)
	if err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID: &actor.ID,
		Action: domain.AuditSFSSync,
		Details: map[string]any{
			"enrollment_checks":    res.EnrollmentChecks,
			"enrollment_confirmed": res.EnrollmentConfirmed,
			"enrollment_pending":   res.EnrollmentPending,
			"errors":               len(res.Errors),
		},
	})
	return res, nil
}
