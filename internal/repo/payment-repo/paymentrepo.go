package paymentrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const candidateQuery = `
	SELECT a.id, a.reference_number, a.status, a.applicant_id, u.first_name, u.last_name, u.email,
		s.name, s.value, b.id IS NOT NULL, COALESCE(b.institution_number, ''), COALESCE(b.transit_number, ''),
		COALESCE(b.account_number, ''), COALESCE(b.authorization_signed, false)
	FROM applications a
	JOIN users u ON u.id = a.applicant_id
	JOIN scholarships s ON s.id = a.scholarship_id
	LEFT JOIN banking_info b ON b.user_id = a.applicant_id
`

const batchColumns = `pb.id, pb.batch_number, pb.generated_by, COALESCE(g.display_name, ''), pb.application_count,
	pb.total_amount, pb.file_name, pb.status, pb.confirmed_by, pb.confirmed_at, pb.created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Eligible lists approved applications with their banking state.
func (r *Repository) Eligible(ctx context.Context) ([]domain.PaymentCandidate, error) {
	return r.candidates(ctx, candidateQuery+" WHERE a.status = 'Approved' ORDER BY a.decision_date ASC")
}

// Candidates loads the requested applications whatever their status, so
// the caller can report every ineligible one.
func (r *Repository) Candidates(ctx context.Context, ids []uuid.UUID) ([]domain.PaymentCandidate, error) {
	return r.candidates(ctx, candidateQuery+" WHERE a.id = ANY($1) ORDER BY a.reference_number ASC", ids)
}

func (r *Repository) candidates(ctx context.Context, query string, args ...any) ([]domain.PaymentCandidate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't load payment candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.PaymentCandidate
	for rows.Next() {
		var c domain.PaymentCandidate
		if err := rows.Scan(&c.ApplicationID, &c.ReferenceNumber, &c.Status, &c.ApplicantID, &c.FirstName,
			&c.LastName, &c.Email, &c.ScholarshipName, &c.Amount, &c.HasBankingRow, &c.InstitutionNumber,
			&c.TransitNumber, &c.AccountNumber, &c.AuthorizationSigned); err != nil {
			zap.L().Error("can't scan payment candidate", zap.Error(err))
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateBatch stores the batch with its items and moves every application
// to Pending Payment. Any application that left Approved in the meantime
// aborts the whole batch.
func (r *Repository) CreateBatch(ctx context.Context, batch *domain.PaymentBatch, items []domain.PaymentItem) error {
	insertBatch := `
		INSERT INTO payment_batches (batch_number, generated_by, application_count, total_amount, file_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	insertItem := `
		INSERT INTO payment_items (batch_id, application_id, applicant_id, reference_number, payee_name,
			scholarship_name, amount, institution_number, transit_number, account_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	queue := `
		UPDATE applications SET status = 'Pending Payment', updated_at = NOW()
		WHERE id = $1 AND status = 'Approved'
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertBatch, batch.BatchNumber, batch.GeneratedBy, batch.ApplicationCount,
			batch.TotalAmount, batch.FileName, batch.Status).Scan(&batch.ID, &batch.CreatedAt)
		if err != nil {
			zap.L().Error("can't create payment batch", zap.Error(err))
			return err
		}

		for i := range items {
			it := &items[i]
			it.BatchID = batch.ID
			err := r.db.QueryRow(ctx, insertItem, it.BatchID, it.ApplicationID, it.ApplicantID, it.ReferenceNumber,
				it.PayeeName, it.ScholarshipName, it.Amount, it.InstitutionNumber, it.TransitNumber,
				it.AccountNumber, it.Status).Scan(&it.ID, &it.CreatedAt)
			if err != nil {
				zap.L().Error("can't create payment item", zap.Error(err))
				return err
			}

			tag, err := r.db.Exec(ctx, queue, it.ApplicationID)
			if err != nil {
				zap.L().Error("can't queue application for payment", zap.Error(err))
				return err
			}
			if tag.RowsAffected() == 0 {
				return domain.ErrStatusChanged
			}
		}
		return nil
	})
}

func (r *Repository) ListBatches(ctx context.Context) ([]domain.PaymentBatch, error) {
	query := "SELECT " + batchColumns + " FROM payment_batches pb LEFT JOIN users g ON g.id = pb.generated_by ORDER BY pb.created_at DESC"
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list payment batches", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.PaymentBatch{}
	for rows.Next() {
		var b domain.PaymentBatch
		if err := scanBatch(rows, &b); err != nil {
			zap.L().Error("can't scan payment batch", zap.Error(err))
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBatch(row pgx.Row, b *domain.PaymentBatch) error {
	return row.Scan(&b.ID, &b.BatchNumber, &b.GeneratedBy, &b.GeneratedByName, &b.ApplicationCount,
		&b.TotalAmount, &b.FileName, &b.Status, &b.ConfirmedBy, &b.ConfirmedAt, &b.CreatedAt)
}

func (r *Repository) FindBatch(ctx context.Context, id uuid.UUID) (*domain.PaymentBatch, error) {
	query := "SELECT " + batchColumns + " FROM payment_batches pb LEFT JOIN users g ON g.id = pb.generated_by WHERE pb.id = $1"
	var b domain.PaymentBatch
	err := scanBatch(r.db.QueryRow(ctx, query, id), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment batch", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Items(ctx context.Context, batchID uuid.UUID) ([]domain.PaymentItem, error) {
	query := `
		SELECT id, batch_id, application_id, applicant_id, reference_number, payee_name, scholarship_name,
			amount, institution_number, transit_number, account_number, status, created_at
		FROM payment_items
		WHERE batch_id = $1
		ORDER BY reference_number ASC
	`
	rows, err := r.db.Query(ctx, query, batchID)
	if err != nil {
		zap.L().Error("can't list payment items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []domain.PaymentItem{}
	for rows.Next() {
		var it domain.PaymentItem
		if err := rows.Scan(&it.ID, &it.BatchID, &it.ApplicationID, &it.ApplicantID, &it.ReferenceNumber,
			&it.PayeeName, &it.ScholarshipName, &it.Amount, &it.InstitutionNumber, &it.TransitNumber,
			&it.AccountNumber, &it.Status, &it.CreatedAt); err != nil {
			zap.L().Error("can't scan payment item", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ConfirmBatch marks the batch, its items and their applications as paid.
func (r *Repository) ConfirmBatch(ctx context.Context, id, confirmedBy uuid.UUID) error {
	markBatch := `
		UPDATE payment_batches SET status = 'Paid', confirmed_by = $2, confirmed_at = NOW()
		WHERE id = $1 AND status = 'Generated'
	`
	markItems := "UPDATE payment_items SET status = 'Paid' WHERE batch_id = $1"
	markApplications := `
		UPDATE applications SET status = 'Paid', updated_at = NOW()
		WHERE id IN (SELECT application_id FROM payment_items WHERE batch_id = $1) AND status = 'Pending Payment'
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, markBatch, id, confirmedBy)
		if err != nil {
			zap.L().Error("can't confirm payment batch", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.BadRequest("Batch is not awaiting confirmation")
		}
		if _, err := r.db.Exec(ctx, markItems, id); err != nil {
			zap.L().Error("can't mark payment items paid", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, markApplications, id); err != nil {
			zap.L().Error("can't mark applications paid", zap.Error(err))
			return err
		}
		return nil
	})
}
