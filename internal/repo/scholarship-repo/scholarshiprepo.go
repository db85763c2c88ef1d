package scholarshiprepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const scholarshipColumns = `id, code, name, type, value, deadline_start, deadline_end, payment_date,
	eligibility_criteria, required_documents, selection_process, max_awards, category, source_url,
	status, academic_year, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row, s *domain.Scholarship) error {
	return row.Scan(
		&s.ID, &s.Code, &s.Name, &s.Type, &s.Value, &s.DeadlineStart, &s.DeadlineEnd, &s.PaymentDate,
		&s.EligibilityCriteria, &s.RequiredDocuments, &s.SelectionProcess, &s.MaxAwards, &s.Category, &s.SourceURL,
		&s.Status, &s.AcademicYear, &s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *Repository) List(ctx context.Context, f domain.ScholarshipFilter) ([]domain.Scholarship, error) {
	var filter pg.Filter
	if f.Type != "" {
		filter.Add("type = ?", f.Type)
	}
	if f.Category != "" {
		filter.Add("category = ?", f.Category)
	}
	if f.Status != "" {
		filter.Add("status = ?", f.Status)
	}
	if f.AcademicYear != "" {
		filter.Add("academic_year = ?", f.AcademicYear)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		filter.Add("(name ILIKE ? OR code ILIKE ?)", like, like)
	}

	query := "SELECT " + scholarshipColumns + " FROM scholarships " + filter.Where() + " ORDER BY deadline_end ASC, name ASC"
	rows, err := r.db.Query(ctx, query, filter.Args()...)
	if err != nil {
		zap.L().Error("can't list scholarships", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Scholarship
	for rows.Next() {
		var s domain.Scholarship
		if err := scan(rows, &s); err != nil {
			zap.L().Error("can't scan scholarship row", zap.Error(err))
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error) {
	return r.findOne(ctx, "SELECT "+scholarshipColumns+" FROM scholarships WHERE id = $1", id)
}

// FindByCodeOrName resolves a legacy row's scholarship by exact code first,
// then by a fuzzy name match.
func (r *Repository) FindByCodeOrName(ctx context.Context, code, name string) (*domain.Scholarship, error) {
	query := `
		SELECT ` + scholarshipColumns + `
		FROM scholarships
		WHERE code = $1 OR ($2 <> '' AND name ILIKE '%' || $2 || '%')
		ORDER BY (code = $1) DESC
		LIMIT 1
	`
	return r.findOne(ctx, query, code, name)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Scholarship, error) {
	var s domain.Scholarship
	err := scan(r.db.QueryRow(ctx, query, args...), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find scholarship", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.Scholarship) (*domain.Scholarship, error) {
	query := `
		INSERT INTO scholarships (code, name, type, value, deadline_start, deadline_end, payment_date,
			eligibility_criteria, required_documents, selection_process, max_awards, category, source_url,
			status, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		s.Code, s.Name, s.Type, s.Value, s.DeadlineStart, s.DeadlineEnd, s.PaymentDate,
		s.EligibilityCriteria, s.RequiredDocuments, s.SelectionProcess, s.MaxAwards, s.Category, s.SourceURL,
		s.Status, s.AcademicYear,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create scholarship", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.Scholarship) error {
	query := `
		UPDATE scholarships
		SET name = $2, type = $3, value = $4, deadline_start = $5, deadline_end = $6, payment_date = $7,
			eligibility_criteria = $8, required_documents = $9, selection_process = $10, max_awards = $11,
			category = $12, source_url = $13, status = $14, academic_year = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		s.ID, s.Name, s.Type, s.Value, s.DeadlineStart, s.DeadlineEnd, s.PaymentDate,
		s.EligibilityCriteria, s.RequiredDocuments, s.SelectionProcess, s.MaxAwards,
		s.Category, s.SourceURL, s.Status, s.AcademicYear,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrScholarshipNotFound
	}
	if err != nil {
		zap.L().Error("can't update scholarship", zap.Error(err))
		return err
	}
	return nil
}
