// Package activity writes the notification and audit side effects of
// workflow operations. Writes are best effort: a failure is logged and
// counted, never returned to the caller.
package activity

import (
	"context"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/metrics"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type AuditRepo interface {
	Create(ctx context.Context, e *domain.AuditEntry) error
}

type Recorder struct {
	notifications NotificationRepo
	audit         AuditRepo
	txManager     pg.TXManager
}

func New(notifications NotificationRepo, audit AuditRepo, txManager pg.TXManager) *Recorder {
	return &Recorder{
		notifications: notifications,
		audit:         audit,
		txManager:     txManager,
	}
}

// Notify drops a message into the user's inbox. Inside an open transaction
// the write runs under its own savepoint, so a failure here cannot abort
// the caller's work.
func (r *Recorder) Notify(ctx context.Context, userID uuid.UUID, applicationID *uuid.UUID, typ, title, message string) {
	n := &domain.Notification{
		UserID:        userID,
		ApplicationID: applicationID,
		Type:          typ,
		Title:         title,
		Message:       message,
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.notifications.Create(ctx, n)
	})
	if err != nil {
		metrics.SideEffectFailures.WithLabelValues("notification").Inc()
		zap.L().Warn("can't send notification", zap.String("type", typ), zap.Stringer("user_id", userID), zap.Error(err))
	}
}

// NotifyMany sends the same message to every user in ids.
func (r *Recorder) NotifyMany(ctx context.Context, ids []uuid.UUID, applicationID *uuid.UUID, typ, title, message string) {
	for _, id := range ids {
		r.Notify(ctx, id, applicationID, typ, title, message)
	}
}

func (r *Recorder) Audit(ctx context.Context, e domain.AuditEntry) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.audit.Create(ctx, &e)
	})
	if err != nil {
		metrics.SideEffectFailures.WithLabelValues("audit").Inc()
		zap.L().Warn("can't write audit entry", zap.String("action", e.Action), zap.Error(err))
	}
}

// ApplicationEntry builds the audit entry most application operations write.
func ApplicationEntry(actor uuid.UUID, applicationID uuid.UUID, action string, details map[string]any) domain.AuditEntry {
	return domain.AuditEntry{
		UserID:        &actor,
		ApplicationID: &applicationID,
		Action:        action,
		EntityType:    "application",
		EntityID:      applicationID.String(),
		Details:       details,
	}
}
