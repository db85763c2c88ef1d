package auth

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/dto"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	ACALogin(ctx context.Context, email, displayName, acaID string) (*domain.Session, error)
	StaffLogin(ctx context.Context, email, displayName string) (*domain.Session, error)
	DevLogin(ctx context.Context, email, role, password string) (*domain.Session, error)
	Me(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Refresh(ctx context.Context, userID uuid.UUID) (*domain.Session, error)
	Logout(ctx context.Context, userID uuid.UUID)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) session(w http.ResponseWriter, s *domain.Session, err error) {
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+s.Token)
	utils.RespondWithJSON(w, http.StatusOK, s)
}

// ACALogin godoc
//
//	@Summary		Sign in with Alberta.ca Account
//	@Description	Mocked ACA callback. Unknown people are registered as applicants.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ACALoginRequestDTO	true	"ACA identity"
//	@Success		200		{object}	domain.Session
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Account is blocked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/aca [post]
func (h *AuthHandler) ACALogin(w http.ResponseWriter, r *http.Request) {
	var req dto.ACALoginRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s, err := h.authService.ACALogin(r.Context(), req.Email, req.DisplayName, req.ACAID)
	h.session(w, s, err)
}

// StaffLogin godoc
//
//	@Summary		Sign in as staff
//	@Description	Mocked Microsoft sign-in. Existing users must hold a staff role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StaffLoginRequestDTO	true	"Staff identity"
//	@Success		200		{object}	domain.Session
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not a staff account"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/microsoft [post]
func (h *AuthHandler) StaffLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.StaffLoginRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s, err := h.authService.StaffLogin(r.Context(), req.Email, req.DisplayName)
	h.session(w, s, err)
}

// DevLogin godoc
//
//	@Summary		Development login
//	@Description	Signs in as any role. Disabled in production.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DevLoginRequestDTO	true	"Identity and role"
//	@Success		200		{object}	domain.Session
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Disabled in production"
//	@Router			/api/auth/dev-login [post]
func (h *AuthHandler) DevLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.DevLoginRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s, err := h.authService.DevLogin(r.Context(), req.Email, req.Role, req.Password)
	h.session(w, s, err)
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		Auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.User
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	user, err := h.authService.Me(r.Context(), actor.ID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// Refresh godoc
//
//	@Summary	Issue a fresh token
//	@Tags		Auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Session
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Account is blocked"
//	@Router		/api/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	s, err := h.authService.Refresh(r.Context(), actor.ID)
	h.session(w, s, err)
}

// Logout godoc
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Router		/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	h.authService.Logout(r.Context(), actor.ID)
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Logged out successfully"})
}
