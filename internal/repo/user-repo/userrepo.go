package userrepo

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

const userColumns = `id, email, display_name, role, oauth_provider, aca_id, asn, first_name, last_name,
	date_of_birth, phone, address_line1, address_line2, city, province, postal_code,
	citizenship_status, residency_status, indigenous_status, gender, sin_encrypted,
	profile_complete, is_blocked, created_at, last_login`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row, u *domain.User, extra ...any) error {
	dest := []any{
		&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.OAuthProvider, &u.ACAID, &u.ASN, &u.FirstName, &u.LastName,
		&u.DateOfBirth, &u.Phone, &u.AddressLine1, &u.AddressLine2, &u.City, &u.Province, &u.PostalCode,
		&u.CitizenshipStatus, &u.ResidencyStatus, &u.IndigenousStatus, &u.Gender, &u.SINEncrypted,
		&u.ProfileComplete, &u.IsBlocked, &u.CreatedAt, &u.LastLogin,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE " + where
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query, arg), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER($1)", email)
}

func (r *Repository) FindByACAID(ctx context.Context, acaID string) (*domain.User, error) {
	return r.findOne(ctx, "aca_id = $1", acaID)
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, display_name, role, oauth_provider, aca_id, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Email, user.DisplayName, user.Role, user.OAuthProvider, user.ACAID, user.FirstName, user.LastName,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET last_login = NOW() WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't update last login", zap.Error(err))
	}
	return err
}

// SaveProfile writes every applicant-editable profile column.
func (r *Repository) SaveProfile(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users
		SET display_name = $2, first_name = $3, last_name = $4, date_of_birth = $5, phone = $6,
			address_line1 = $7, address_line2 = $8, city = $9, province = $10, postal_code = $11,
			citizenship_status = $12, residency_status = $13, indigenous_status = $14, gender = $15,
			asn = $16, sin_encrypted = $17, profile_complete = $18
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		u.ID, u.DisplayName, u.FirstName, u.LastName, u.DateOfBirth, u.Phone,
		u.AddressLine1, u.AddressLine2, u.City, u.Province, u.PostalCode,
		u.CitizenshipStatus, u.ResidencyStatus, u.IndigenousStatus, u.Gender,
		u.ASN, u.SINEncrypted, u.ProfileComplete,
	)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, f domain.UserFilter) ([]domain.UserSummary, int, error) {
	var filter pg.Filter
	if f.Search != "" {
		like := "%" + f.Search + "%"
		filter.Add("(u.email ILIKE ? OR u.display_name ILIKE ?)", like, like)
	}
	if f.Role != "" {
		filter.Add("u.role = ?", f.Role)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM users u " + filter.Where()
	if err := r.db.QueryRow(ctx, countQuery, filter.Args()...).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return nil, 0, err
	}

	page := f.Page.Normalize()
	query := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM applications a WHERE a.applicant_id = u.id) AS application_count
		FROM users u
		%s
		ORDER BY u.created_at DESC
		LIMIT %s OFFSET %s
	`, userColumns, filter.Where(), filter.Arg(page.Limit), filter.Arg(page.Offset()))
	rows, err := r.db.Query(ctx, query, filter.Args()...)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var s domain.UserSummary
		if err := scanUser(rows, &s.User, &s.ApplicationCount); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, 0, err
		}
		users = append(users, s)
	}
	return users, total, rows.Err()
}

func (r *Repository) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	tag, err := r.db.Exec(ctx, "UPDATE users SET role = $2 WHERE id = $1", id, role)
	if err != nil {
		zap.L().Error("can't update role", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *Repository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE users SET is_blocked = $2 WHERE id = $1", id, blocked)
	if err != nil {
		zap.L().Error("can't update blocked flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindByRoles returns active users holding any of roles.
func (r *Repository) FindByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	query := "SELECT " + userColumns + " FROM users WHERE role = ANY($1) AND is_blocked = false ORDER BY display_name"
	rows, err := r.db.Query(ctx, query, names)
	if err != nil {
		zap.L().Error("can't find users by role", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
