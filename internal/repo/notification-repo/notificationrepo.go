package notificationrepo

import (
	"context"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, application_id, type, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sent_at
	`
	err := r.db.QueryRow(ctx, query, n.UserID, n.ApplicationID, n.Type, n.Title, n.Message).Scan(&n.ID, &n.SentAt)
	if err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID, f domain.NotificationFilter) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, application_id, type, title, message, read, sent_at
		FROM notifications
		WHERE user_id = $1 AND ($2 = false OR read = false)
		ORDER BY sent_at DESC
		LIMIT $3 OFFSET $4
	`
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, query, userID, f.UnreadOnly, limit, f.Offset)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ApplicationID, &n.Type, &n.Title, &n.Message, &n.Read, &n.SentAt); err != nil {
			zap.L().Error("can't scan notification", zap.Error(err))
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *Repository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = false", userID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count unread notifications", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// MarkRead flags one of the user's notifications. It reports false when
// the notification does not belong to the user.
func (r *Repository) MarkRead(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "UPDATE notifications SET read = true WHERE user_id = $1 AND read = false", userID)
	if err != nil {
		zap.L().Error("can't mark notifications read", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
