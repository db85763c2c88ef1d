package importrepo

import (
	"context"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateHistory(ctx context.Context, h *domain.ImportHistory) error {
	query := `
		INSERT INTO import_history (file_name, table_name, records_imported, records_failed, status, imported_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, import_date
	`
	err := r.db.QueryRow(ctx, query, h.FileName, h.TableName, h.RecordsImported, h.RecordsFailed, h.Status, h.ImportedBy).
		Scan(&h.ID, &h.ImportDate)
	if err != nil {
		zap.L().Error("can't record import history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListHistory(ctx context.Context) ([]domain.ImportHistory, error) {
	query := `
		SELECT id, import_date, file_name, table_name, records_imported, records_failed, status, imported_by
		FROM import_history
		ORDER BY import_date DESC
		LIMIT 100
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list import history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.ImportHistory{}
	for rows.Next() {
		var h domain.ImportHistory
		if err := rows.Scan(&h.ID, &h.ImportDate, &h.FileName, &h.TableName, &h.RecordsImported,
			&h.RecordsFailed, &h.Status, &h.ImportedBy); err != nil {
			zap.L().Error("can't scan import history", zap.Error(err))
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
