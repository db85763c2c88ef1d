package lookuprepo

import (
	"context"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"go.uber.org/zap"
)

// Tables holds every lookup table that may be read by name.
var Tables = map[string]bool{
	"scholarship_types":      true,
	"scholarship_categories": true,
	"citizenship_types":      true,
	"document_types":         true,
	"provinces":              true,
	"correspondence_types":   true,
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, table string) ([]domain.Lookup, error) {
	if !Tables[table] {
		return nil, domain.BadRequest("Invalid lookup table")
	}
	// table is whitelisted above, so it is safe to splice in.
	rows, err := r.db.Query(ctx, "SELECT code, label FROM "+table+" ORDER BY sort_order, label")
	if err != nil {
		zap.L().Error("can't read lookup table", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.Lookup{}
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.Code, &l.Label); err != nil {
			zap.L().Error("can't scan lookup row", zap.Error(err))
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Templates lists active correspondence templates, optionally of one type.
func (r *Repository) Templates(ctx context.Context, typ string) ([]domain.CorrespondenceTemplate, error) {
	query := `
		SELECT id, name, type, subject, body_template
		FROM correspondence_templates
		WHERE active = true AND ($1 = '' OR type = $1)
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, typ)
	if err != nil {
		zap.L().Error("can't list templates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.CorrespondenceTemplate{}
	for rows.Next() {
		var t domain.CorrespondenceTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.Subject, &t.BodyTemplate); err != nil {
			zap.L().Error("can't scan template", zap.Error(err))
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
