package scholarships

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
	List(ctx context.Context, f domain.ScholarshipFilter) ([]domain.Scholarship, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
	Types(ctx context.Context) ([]domain.Lookup, error)
	Categories(ctx context.Context) ([]domain.Lookup, error)
	Create(ctx context.Context, actor domain.Actor, sch *domain.Scholarship) (*domain.Scholarship, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.ScholarshipPatch) (*domain.Scholarship, error)
}

type ScholarshipHandler struct {
	scholarshipService Service
}

func New(scholarshipService Service) *ScholarshipHandler {
	return &ScholarshipHandler{scholarshipService: scholarshipService}
}

// List godoc
//
//	@Summary	Scholarship catalogue
//	@Tags		Scholarships
//	@Produce	json
//	@Param		type			query	string	false	"Scholarship type"
//	@Param		category		query	string	false	"Category"
//	@Param		status			query	string	false	"Status"
//	@Param		search			query	string	false	"Name or code"
//	@Param		academic_year	query	string	false	"Academic year"
//	@Success	200				{array}	domain.Scholarship
//	@Router		/api/scholarships [get]
func (h *ScholarshipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.scholarshipService.List(r.Context(), domain.ScholarshipFilter{
		Type:         q.Get("type"),
		Category:     q.Get("category"),
		Status:       q.Get("status"),
		Search:       q.Get("search"),
		AcademicYear: q.Get("academic_year"),
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Get godoc
//
//	@Summary	Scholarship by id
//	@Tags		Scholarships
//	@Produce	json
//	@Param		id	path		string	true	"Scholarship id"
//	@Success	200	{object}	domain.Scholarship
//	@Failure	404	{object}	utils.Response	"Scholarship not found"
//	@Router		/api/scholarships/{id} [get]
func (h *ScholarshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrScholarshipNotFound)
		return
	}
	sch, err := h.scholarshipService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sch)
}

// Types godoc
//
//	@Summary	Scholarship types
//	@Tags		Scholarships
//	@Produce	json
//	@Success	200	{array}	domain.Lookup
//	@Router		/api/scholarships/types [get]
func (h *ScholarshipHandler) Types(w http.ResponseWriter, r *http.Request) {
	list, err := h.scholarshipService.Types(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Categories godoc
//
//	@Summary	Scholarship categories
//	@Tags		Scholarships
//	@Produce	json
//	@Success	200	{array}	domain.Lookup
//	@Router		/api/scholarships/categories [get]
func (h *ScholarshipHandler) Categories(w http.ResponseWriter, r *http.Request) {
	list, err := h.scholarshipService.Categories(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Create godoc
//
//	@Summary	Create a scholarship program
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		domain.Scholarship	true	"Scholarship"
//	@Success	201		{object}	domain.Scholarship
//	@Failure	400		{object}	utils.Response	"Validation failed"
//	@Failure	403		{object}	utils.Response	"Insufficient permissions"
//	@Router		/api/admin/scholarships [post]
func (h *ScholarshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sch domain.Scholarship
	if err := utils.DecodeJSON(r, &sch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.scholarshipService.Create(r.Context(), auth.ActorFromContext(r.Context()), &sch)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// Update godoc
//
//	@Summary	Update a scholarship program
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"Scholarship id"
//	@Param		request	body		dto.ScholarshipPatchRequestDTO	true	"Changed fields"
//	@Success	200		{object}	domain.Scholarship
//	@Failure	400		{object}	utils.Response	"Validation failed"
//	@Failure	404		{object}	utils.Response	"Scholarship not found"
//	@Router		/api/admin/scholarships/{id} [put]
func (h *ScholarshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrScholarshipNotFound)
		return
	}
	var req dto.ScholarshipPatchRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sch, err := h.scholarshipService.Update(r.Context(), auth.ActorFromContext(r.Context()), id, req.Patch())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sch)
}
