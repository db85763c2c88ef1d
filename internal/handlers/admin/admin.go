package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/dto"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Users(ctx context.Context, f domain.UserFilter) (domain.PageResult[domain.UserSummary], error)
	User(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Roles() []domain.RoleInfo
	ChangeRole(ctx context.Context, actor domain.Actor, id uuid.UUID, newRole string) (*domain.RoleChange, error)
	SetBlocked(ctx context.Context, actor domain.Actor, id uuid.UUID, blocked bool) (string, error)
	ImportHistory(ctx context.Context) ([]domain.ImportHistory, error)
	ImportLegacy(ctx context.Context, actor domain.Actor, subs []domain.LegacySubmission, fileName string) (*domain.ImportResult, error)
	AuditLogs(ctx context.Context, f domain.AuditFilter) (domain.PageResult[domain.AuditEntry], error)
	AuditActions(ctx context.Context) ([]string, error)
	ExportAudit(ctx context.Context, f domain.AuditFilter) (name, content string, err error)
	SyncSFS(ctx context.Context, actor domain.Actor) (*domain.SFSSyncResult, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func page(r *http.Request) domain.Page {
	return domain.Page{
		Page:  utils.QueryInt(r, "page", 1),
		Limit: utils.QueryInt(r, "limit", domain.DefaultPageLimit),
	}
}

func auditFilter(r *http.Request) domain.AuditFilter {
	q := r.URL.Query()
	return domain.AuditFilter{
		Search: q.Get("search"),
		Action: q.Get("action"),
		UserID: utils.QueryUUID(r, "user_id"),
		Page:   page(r),
	}
}

// Users godoc
//
//	@Summary	Users with application counts
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search	query		string	false	"Name or email"
//	@Param		role	query		string	false	"Role"
//	@Param		page	query		int		false	"Page"
//	@Param		limit	query		int		false	"Page size"
//	@Success	200		{object}	domain.PageResult[domain.UserSummary]
//	@Router		/api/admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.adminService.Users(r.Context(), domain.UserFilter{
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Page:   page(r),
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// User godoc
//
//	@Summary	User by id
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	domain.User
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/admin/users/{id} [get]
func (h *AdminHandler) User(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrUserNotFound)
		return
	}
	u, err := h.adminService.User(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// Roles godoc
//
//	@Summary	Roles and their permissions
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.RoleInfo
//	@Router		/api/admin/roles [get]
func (h *AdminHandler) Roles(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.adminService.Roles())
}

// ChangeRole godoc
//
//	@Summary	Change a user's role
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"User id"
//	@Param		request	body		dto.RoleRequestDTO	true	"New role"
//	@Success	200		{object}	domain.RoleChange
//	@Failure	400		{object}	utils.Response	"Invalid role or self-demotion"
//	@Router		/api/admin/users/{id}/role [put]
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrUserNotFound)
		return
	}
	var req dto.RoleRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.adminService.ChangeRole(r.Context(), auth.ActorFromContext(r.Context()), id, req.Role)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// SetBlocked godoc
//
//	@Summary	Block or unblock a user
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"User id"
//	@Param		request	body		dto.BlockRequestDTO	true	"Blocked flag"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Cannot block yourself"
//	@Router		/api/admin/users/{id}/block [put]
func (h *AdminHandler) SetBlocked(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrUserNotFound)
		return
	}
	var req dto.BlockRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	msg, err := h.adminService.SetBlocked(r.Context(), auth.ActorFromContext(r.Context()), id, req.Blocked)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: msg})
}

// ImportHistory godoc
//
//	@Summary	Past legacy imports
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.ImportHistory
//	@Router		/api/admin/import/history [get]
func (h *AdminHandler) ImportHistory(w http.ResponseWriter, r *http.Request) {
	list, err := h.adminService.ImportHistory(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// ImportLegacy godoc
//
//	@Summary		Import legacy submissions
//	@Description	Rows fail individually; the rest are committed together.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.LegacyImportRequestDTO	true	"Submissions"
//	@Success		200		{object}	domain.ImportResult
//	@Failure		400		{object}	utils.Response	"No submissions provided"
//	@Router			/api/admin/import/legacy [post]
func (h *AdminHandler) ImportLegacy(w http.ResponseWriter, r *http.Request) {
	var req dto.LegacyImportRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.adminService.ImportLegacy(r.Context(), auth.ActorFromContext(r.Context()), req.Submissions, req.FileName)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// AuditLogs godoc
//
//	@Summary	Audit trail
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search	query		string	false	"Free text"
//	@Param		action	query		string	false	"Action"
//	@Param		user_id	query		string	false	"Acting user"
//	@Param		page	query		int		false	"Page"
//	@Param		limit	query		int		false	"Page size"
//	@Success	200		{object}	domain.PageResult[domain.AuditEntry]
//	@Router		/api/admin/audit [get]
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	res, err := h.adminService.AuditLogs(r.Context(), auditFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// AuditActions godoc
//
//	@Summary	Distinct audit actions
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	string
//	@Router		/api/admin/audit/actions [get]
func (h *AdminHandler) AuditActions(w http.ResponseWriter, r *http.Request) {
	list, err := h.adminService.AuditActions(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// ExportAudit godoc
//
//	@Summary	Audit trail as CSV
//	@Tags		Admin
//	@Produce	text/csv
//	@Security	BearerAuth
//	@Param		search	query		string	false	"Free text"
//	@Param		action	query		string	false	"Action"
//	@Param		user_id	query		string	false	"Acting user"
//	@Success	200		{string}	string	"CSV"
//	@Router		/api/admin/audit/export [get]
func (h *AdminHandler) ExportAudit(w http.ResponseWriter, r *http.Request) {
	name, content, err := h.adminService.ExportAudit(r.Context(), auditFilter(r))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		zap.L().Error("can't write audit export", zap.Error(err))
	}
}

// SyncSFS godoc
//
//	@Summary	Check pending enrollments against Student Finance System
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.SFSSyncResult
//	@Router		/api/admin/sfs/sync [post]
func (h *AdminHandler) SyncSFS(w http.ResponseWriter, r *http.Request) {
	res, err := h.adminService.SyncSFS(r.Context(), auth.ActorFromContext(r.Context()))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}
