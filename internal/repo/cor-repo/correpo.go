package correpo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const requestColumns = `c.id, c.application_id, a.reference_number, a.applicant_id, c.institution_name,
	c.institution_email, c.requested_by, COALESCE(rb.display_name, ''), c.response_token, c.status,
	c.applicant_name, c.program, c.enrollment_status, c.year_of_study, c.custom_message, c.confirmed_by,
	c.response_notes, c.responded_at, c.created_at,
	EXTRACT(DAY FROM NOW() - c.created_at)::int AS days_open`

const requestJoins = `FROM cor_requests c
	JOIN applications a ON a.id = c.application_id
	LEFT JOIN users rb ON rb.id = c.requested_by`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row, c *domain.CORRequest) error {
	return row.Scan(&c.ID, &c.ApplicationID, &c.ReferenceNumber, &c.ApplicantID, &c.InstitutionName,
		&c.InstitutionEmail, &c.RequestedBy, &c.RequestedByName, &c.ResponseToken, &c.Status,
		&c.ApplicantName, &c.Program, &c.EnrollmentStatus, &c.YearOfStudy, &c.CustomMessage, &c.ConfirmedBy,
		&c.ResponseNotes, &c.RespondedAt, &c.CreatedAt, &c.DaysOpen)
}

func (r *Repository) Create(ctx context.Context, c *domain.CORRequest) (*domain.CORRequest, error) {
	query := `
		INSERT INTO cor_requests (application_id, institution_name, institution_email, requested_by, response_token,
			status, applicant_name, program, enrollment_status, year_of_study, custom_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, c.ApplicationID, c.InstitutionName, c.InstitutionEmail, c.RequestedBy,
		c.ResponseToken, c.Status, c.ApplicantName, c.Program, c.EnrollmentStatus, c.YearOfStudy, c.CustomMessage,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		zap.L().Error("can't create cor request", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// FindOpenByToken returns the request behind token while it still awaits
// an answer. Answered requests are invisible.
func (r *Repository) FindOpenByToken(ctx context.Context, token string) (*domain.CORRequest, error) {
	query := "SELECT " + requestColumns + " " + requestJoins + " WHERE c.response_token = $1 AND c.status = 'Sent'"
	var c domain.CORRequest
	err := scan(r.db.QueryRow(ctx, query, token), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cor request", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// Respond consumes an open request. A request that was answered meanwhile
// reports ErrCORTokenNotFound, so each token is usable once.
func (r *Repository) Respond(ctx context.Context, id uuid.UUID, resp domain.CORResponse) error {
	query := `
		UPDATE cor_requests
		SET status = $2, confirmed_by = $3, response_notes = $4, responded_at = NOW()
		WHERE id = $1 AND status = 'Sent'
	`
	tag, err := r.db.Exec(ctx, query, id, resp.Status, resp.ConfirmedBy, resp.Notes)
	if err != nil {
		zap.L().Error("can't record cor response", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCORTokenNotFound
	}
	return nil
}

func (r *Repository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.CORRequest, error) {
	query := "SELECT " + requestColumns + " " + requestJoins + " WHERE c.application_id = $1 ORDER BY c.created_at DESC"
	return r.list(ctx, query, applicationID)
}

func (r *Repository) Pending(ctx context.Context) ([]domain.CORRequest, error) {
	query := "SELECT " + requestColumns + " " + requestJoins + " WHERE c.status = 'Sent' ORDER BY c.created_at ASC"
	return r.list(ctx, query)
}

func (r *Repository) List(ctx context.Context, f domain.CORFilter) ([]domain.CORRequest, int, error) {
	var filter pg.Filter
	if f.Status != "" {
		filter.Add("c.status = ?", f.Status)
	}
	if f.Institution != "" {
		filter.Add("c.institution_name ILIKE ?", "%"+f.Institution+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM cor_requests c "+filter.Where(), filter.Args()...).Scan(&total); err != nil {
		zap.L().Error("can't count cor requests", zap.Error(err))
		return nil, 0, err
	}

	page := f.Page.Normalize()
	query := fmt.Sprintf("SELECT %s %s %s ORDER BY c.created_at DESC LIMIT %s OFFSET %s",
		requestColumns, requestJoins, filter.Where(), filter.Arg(page.Limit), filter.Arg(page.Offset()))
	list, err := r.list(ctx, query, filter.Args()...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.CORRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list cor requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.CORRequest{}
	for rows.Next() {
		var c domain.CORRequest
		if err := scan(rows, &c); err != nil {
			zap.L().Error("can't scan cor request", zap.Error(err))
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
