package documentrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const documentColumns = "id, application_id, file_name, file_type, file_size, storage_path, document_type, verified, uploaded_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row, d *domain.Document) error {
	return row.Scan(&d.ID, &d.ApplicationID, &d.FileName, &d.FileType, &d.FileSize, &d.StoragePath,
		&d.DocumentType, &d.Verified, &d.UploadedAt)
}

func (r *Repository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	query := `
		INSERT INTO documents (application_id, file_name, file_type, file_size, storage_path, document_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, uploaded_at
	`
	err := r.db.QueryRow(ctx, query, d.ApplicationID, d.FileName, d.FileType, d.FileSize, d.StoragePath, d.DocumentType).
		Scan(&d.ID, &d.UploadedAt)
	if err != nil {
		zap.L().Error("can't save document", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) CountByApplication(ctx context.Context, applicationID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM documents WHERE application_id = $1", applicationID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count documents", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error) {
	query := "SELECT " + documentColumns + " FROM documents WHERE application_id = $1 ORDER BY uploaded_at ASC"
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		zap.L().Error("can't list documents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var d domain.Document
		if err := scan(rows, &d); err != nil {
			zap.L().Error("can't scan document row", zap.Error(err))
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Delete removes a document of the given application and returns it so the
// caller can drop the stored file. A nil document means nothing matched.
func (r *Repository) Delete(ctx context.Context, applicationID, documentID uuid.UUID) (*domain.Document, error) {
	query := "DELETE FROM documents WHERE id = $1 AND application_id = $2 RETURNING " + documentColumns
	var d domain.Document
	err := scan(r.db.QueryRow(ctx, query, documentID, applicationID), &d)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't delete document", zap.Error(err))
		return nil, err
	}
	return &d, nil
}
