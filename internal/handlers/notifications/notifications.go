package notifications

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/dto"
	"github.com/GlebRadaev/aescholar/internal/service/notificationservice"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, f domain.NotificationFilter) (*notificationservice.Inbox, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

// List godoc
//
//	@Summary	Own notifications, newest first
//	@Tags		Notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Offset"
//	@Param		unread	query		bool	false	"Unread only"
//	@Success	200		{object}	notificationservice.Inbox
//	@Router		/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	inbox, err := h.notificationService.List(r.Context(), actor.ID, domain.NotificationFilter{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Limit:      utils.QueryInt(r, "limit", 0),
		Offset:     utils.QueryInt(r, "offset", 0),
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inbox)
}

// UnreadCount godoc
//
//	@Summary	Number of unread notifications
//	@Tags		Notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	unreadCountResponse
//	@Router		/api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	n, err := h.notificationService.UnreadCount(r.Context(), actor.ID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unreadCountResponse{Count: n})
}

// MarkRead godoc
//
//	@Summary	Mark one notification read
//	@Tags		Notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Notification id"
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	if err := h.notificationService.MarkRead(r.Context(), actor.ID, id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Notification marked as read"})
}

// MarkAllRead godoc
//
//	@Summary	Mark every notification read
//	@Tags		Notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Router		/api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if _, err := h.notificationService.MarkAllRead(r.Context(), actor.ID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "All notifications marked as read"})
}
