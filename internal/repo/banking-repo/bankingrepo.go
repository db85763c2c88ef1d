package bankingrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.BankingInfo, error) {
	query := `
		SELECT id, user_id, institution_number, transit_number, account_number, authorization_signed, created_at, updated_at
		FROM banking_info
		WHERE user_id = $1
	`
	var b domain.BankingInfo
	err := r.db.QueryRow(ctx, query, userID).Scan(&b.ID, &b.UserID, &b.InstitutionNumber, &b.TransitNumber,
		&b.AccountNumber, &b.AuthorizationSigned, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find banking info", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

// Upsert keeps a single banking row per user.
func (r *Repository) Upsert(ctx context.Context, b *domain.BankingInfo) (*domain.BankingInfo, error) {
	query := `
		INSERT INTO banking_info (user_id, institution_number, transit_number, account_number, authorization_signed)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET institution_number = EXCLUDED.institution_number,
			transit_number = EXCLUDED.transit_number,
			account_number = EXCLUDED.account_number,
			authorization_signed = EXCLUDED.authorization_signed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, b.UserID, b.InstitutionNumber, b.TransitNumber, b.AccountNumber, b.AuthorizationSigned).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save banking info", zap.Error(err))
		return nil, err
	}
	return b, nil
}

// SharedWith lists the other users registered with the same account.
func (r *Repository) SharedWith(ctx context.Context, b *domain.BankingInfo) ([]uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM banking_info
		WHERE institution_number = $1 AND transit_number = $2 AND account_number = $3 AND user_id <> $4
	`
	rows, err := r.db.Query(ctx, query, b.InstitutionNumber, b.TransitNumber, b.AccountNumber, b.UserID)
	if err != nil {
		zap.L().Error("can't check duplicate accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan duplicate account row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Duplicates reports every pair of distinct users sharing an account.
func (r *Repository) Duplicates(ctx context.Context) ([]domain.DuplicateAccount, error) {
	query := `
		SELECT b1.user_id, u1.display_name, u1.email, b2.user_id, u2.display_name, u2.email,
			b1.institution_number, b1.transit_number, b1.account_number, u1.created_at, u2.created_at
		FROM banking_info b1
		JOIN banking_info b2 ON b1.institution_number = b2.institution_number
			AND b1.transit_number = b2.transit_number
			AND b1.account_number = b2.account_number
			AND b1.user_id < b2.user_id
		JOIN users u1 ON u1.id = b1.user_id
		JOIN users u2 ON u2.id = b2.user_id
		ORDER BY b1.institution_number, b1.transit_number
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list duplicate accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.DuplicateAccount{}
	for rows.Next() {
		var d domain.DuplicateAccount
		var account string
		if err := rows.Scan(&d.User1ID, &d.User1Name, &d.User1Email, &d.User2ID, &d.User2Name, &d.User2Email,
			&d.InstitutionNumber, &d.TransitNumber, &account, &d.User1Created, &d.User2Created); err != nil {
			zap.L().Error("can't scan duplicate account row", zap.Error(err))
			return nil, err
		}
		d.AccountMasked = domain.MaskAccount(account)
		list = append(list, d)
	}
	return list, rows.Err()
}
