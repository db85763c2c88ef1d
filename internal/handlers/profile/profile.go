package profile

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.ProfileView, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, in domain.ProfileInput) (*domain.ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.ProfileView, error)
	GetBanking(ctx context.Context, userID uuid.UUID) (*domain.BankingInfo, error)
	SaveBanking(ctx context.Context, userID uuid.UUID, in domain.BankingInput) (*domain.BankingResult, error)
	Lookup(ctx context.Context, table string) ([]domain.Lookup, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile godoc
//
//	@Summary	Own profile
//	@Tags		Profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.ProfileView
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/profile/me [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	p, err := h.profileService.GetProfile(r.Context(), actor.ID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// CreateProfile godoc
//
//	@Summary		Complete profile
//	@Description	Validates every field, encrypts the SIN and marks the profile complete.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		domain.ProfileInput	true	"Profile"
//	@Success		201		{object}	domain.ProfileView
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Router			/api/profile/me [post]
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var in domain.ProfileInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	p, err := h.profileService.CreateProfile(r.Context(), actor.ID, in)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// UpdateProfile godoc
//
//	@Summary	Update profile fields
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		domain.ProfilePatch	true	"Changed fields"
//	@Success	200		{object}	domain.ProfileView
//	@Failure	400		{object}	utils.Response	"Validation failed"
//	@Router		/api/profile/me [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProfilePatch
	if err := utils.DecodeJSON(r, &patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	p, err := h.profileService.UpdateProfile(r.Context(), actor.ID, patch)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GetBanking godoc
//
//	@Summary	Own banking details, account masked
//	@Tags		Profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.BankingInfo
//	@Router		/api/profile/banking [get]
func (h *ProfileHandler) GetBanking(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	b, err := h.profileService.GetBanking(r.Context(), actor.ID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, b)
}

// SaveBanking godoc
//
//	@Summary		Save banking details
//	@Description	Accounts shared with another user are saved but flagged to staff.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		domain.BankingInput	true	"Deposit details"
//	@Success		200		{object}	domain.BankingResult
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Router			/api/profile/banking [post]
func (h *ProfileHandler) SaveBanking(w http.ResponseWriter, r *http.Request) {
	var in domain.BankingInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	res, err := h.profileService.SaveBanking(r.Context(), actor.ID, in)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// Lookup godoc
//
//	@Summary	Reference data
//	@Tags		Profile
//	@Produce	json
//	@Param		table	path		string	true	"Lookup table"
//	@Success	200		{array}		domain.Lookup
//	@Failure	404		{object}	utils.Response	"Unknown lookup table"
//	@Router		/api/profile/lookups/{table} [get]
func (h *ProfileHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	list, err := h.profileService.Lookup(r.Context(), chi.URLParam(r, "table"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
