package auditrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const entryColumns = `l.id, l.user_id, l.application_id, l.action, l.entity_type, l.entity_id,
	l.details, l.old_values, l.new_values, l.created_at,
	COALESCE(u.display_name, ''), COALESCE(u.email, ''), COALESCE(u.role, '')`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (user_id, application_id, action, entity_type, entity_id, details, old_values, new_values)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, e.UserID, e.ApplicationID, e.Action, e.EntityType, e.EntityID,
		e.Details, e.OldValues, e.NewValues).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		zap.L().Error("can't write audit entry", zap.Error(err))
		return err
	}
	return nil
}

// History is the audit trail of one application, oldest first.
func (r *Repository) History(ctx context.Context, applicationID uuid.UUID) ([]domain.AuditEntry, error) {
	query := "SELECT " + entryColumns + " FROM audit_logs l LEFT JOIN users u ON u.id = l.user_id WHERE l.application_id = $1 ORDER BY l.created_at ASC"
	return r.query(ctx, query, applicationID)
}

func (r *Repository) filter(f domain.AuditFilter) *pg.Filter {
	filter := &pg.Filter{}
	if f.Action != "" {
		filter.Add("l.action = ?", f.Action)
	}
	if f.UserID != nil {
		filter.Add("l.user_id = ?", *f.UserID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		filter.Add("(l.action ILIKE ? OR u.email ILIKE ? OR u.display_name ILIKE ? OR l.details::text ILIKE ?)",
			like, like, like, like)
	}
	return filter
}

func (r *Repository) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	filter := r.filter(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM audit_logs l LEFT JOIN users u ON u.id = l.user_id " + filter.Where()
	if err := r.db.QueryRow(ctx, countQuery, filter.Args()...).Scan(&total); err != nil {
		zap.L().Error("can't count audit entries", zap.Error(err))
		return nil, 0, err
	}

	page := f.Page.Normalize()
	query := fmt.Sprintf("SELECT %s FROM audit_logs l LEFT JOIN users u ON u.id = l.user_id %s ORDER BY l.created_at DESC LIMIT %s OFFSET %s",
		entryColumns, filter.Where(), filter.Arg(page.Limit), filter.Arg(page.Offset()))
	list, err := r.query(ctx, query, filter.Args()...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Export returns up to limit entries matching f, newest first.
func (r *Repository) Export(ctx context.Context, f domain.AuditFilter, limit int) ([]domain.AuditEntry, error) {
	filter := r.filter(f)
	query := fmt.Sprintf("SELECT %s FROM audit_logs l LEFT JOIN users u ON u.id = l.user_id %s ORDER BY l.created_at DESC LIMIT %s",
		entryColumns, filter.Where(), filter.Arg(limit))
	return r.query(ctx, query, filter.Args()...)
}

func (r *Repository) Actions(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT DISTINCT action FROM audit_logs ORDER BY action")
	if err != nil {
		zap.L().Error("can't list audit actions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	actions := []string{}
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			zap.L().Error("can't scan audit action", zap.Error(err))
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list audit entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.AuditEntry{}
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ApplicationID, &e.Action, &e.EntityType, &e.EntityID,
			&e.Details, &e.OldValues, &e.NewValues, &e.CreatedAt, &e.UserName, &e.UserEmail, &e.UserRole); err != nil {
			zap.L().Error("can't scan audit entry", zap.Error(err))
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
