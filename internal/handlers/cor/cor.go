package cor

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/dto"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	Check(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.CORCheckResult, error)
	Request(ctx context.Context, actor domain.Actor, id uuid.UUID, in domain.CORRequestInput) (*domain.CORSent, error)
	Lookup(ctx context.Context, token string) (*domain.CORRequest, error)
	Respond(ctx context.Context, token string, resp domain.CORResponse) (*domain.CORResponseResult, error)
	Status(ctx context.Context, id uuid.UUID) (*domain.CORStatusView, error)
	Pending(ctx context.Context) ([]domain.CORRequest, error)
	List(ctx context.Context, f domain.CORFilter) (domain.PageResult[domain.CORRequest], error)
}

type CORHandler struct {
	corService Service
}

func New(corService Service) *CORHandler {
	return &CORHandler{corService: corService}
}

// Lookup godoc
//
//	@Summary		Open enrollment confirmation request
//	@Description	Public. The token is the only credential.
//	@Tags			COR
//	@Produce		json
//	@Param			token	path		string	true	"Response token"
//	@Success		200		{object}	domain.CORRequest
//	@Failure		404		{object}	utils.Response	"COR request not found or already processed"
//	@Router			/api/cor/respond/{token} [get]
func (h *CORHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	req, err := h.corService.Lookup(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, req)
}

// Respond godoc
//
//	@Summary		Answer an enrollment confirmation request
//	@Description	Public. A token can be answered once.
//	@Tags			COR
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string				true	"Response token"
//	@Param			request	body		dto.CORResponseDTO	true	"Confirmed, Not Confirmed or Unable to Confirm"
//	@Success		200		{object}	domain.CORResponseResult
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		404		{object}	utils.Response	"COR request not found or already processed"
//	@Router			/api/cor/respond/{token} [post]
func (h *CORHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req dto.CORResponseDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.corService.Respond(r.Context(), chi.URLParam(r, "token"), domain.CORResponse{
		Status:      req.Status,
		ConfirmedBy: req.ConfirmedBy,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// Check godoc
//
//	@Summary	Check enrollment with Student Finance System
//	@Tags		COR
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.CORCheckResult
//	@Router		/api/cor/check/{id} [post]
func (h *CORHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	res, err := h.corService.Check(r.Context(), auth.ActorFromContext(r.Context()), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// Request godoc
//
//	@Summary	Ask the institution to confirm enrollment
//	@Tags		COR
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Application id"
//	@Param		request	body		dto.CORRequestDTO	false	"Institution contact"
//	@Success	201		{object}	domain.CORSent
//	@Failure	400		{object}	utils.Response	"COR already confirmed or no institution"
//	@Router		/api/cor/request/{id} [post]
func (h *CORHandler) Request(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	var req dto.CORRequestDTO
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	res, err := h.corService.Request(r.Context(), auth.ActorFromContext(r.Context()), id, domain.CORRequestInput{
		InstitutionEmail: req.InstitutionEmail,
		CustomMessage:    req.CustomMessage,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// Status godoc
//
//	@Summary	COR state and request history for an application
//	@Tags		COR
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.CORStatusView
//	@Router		/api/cor/status/{id} [get]
func (h *CORHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	res, err := h.corService.Status(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// Pending godoc
//
//	@Summary	Unanswered COR requests
//	@Tags		COR
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.CORRequest
//	@Router		/api/cor/pending [get]
func (h *CORHandler) Pending(w http.ResponseWriter, r *http.Request) {
	list, err := h.corService.Pending(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// List godoc
//
//	@Summary	All COR requests
//	@Tags		COR
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status		query		string	false	"Request status"
//	@Param		institution	query		string	false	"Institution name"
//	@Param		page		query		int		false	"Page"
//	@Param		limit		query		int		false	"Page size"
//	@Success	200			{object}	domain.PageResult[domain.CORRequest]
//	@Router		/api/cor/all [get]
func (h *CORHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.corService.List(r.Context(), domain.CORFilter{
		Status:      q.Get("status"),
		Institution: q.Get("institution"),
		Page: domain.Page{
			Page:  utils.QueryInt(r, "page", 1),
			Limit: utils.QueryInt(r, "limit", domain.DefaultPageLimit),
		},
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}
