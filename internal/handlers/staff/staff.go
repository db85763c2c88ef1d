package staff

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
	Queue(ctx context.Context, f domain.QueueFilter) (domain.PageResult[domain.ApplicationSummary], error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	Members(ctx context.Context) ([]domain.User, error)
	Rankings(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Ranking, error)
	Templates(ctx context.Context, typ string) ([]domain.CorrespondenceTemplate, error)
	ReviewDetail(ctx context.Context, id uuid.UUID) (*domain.ApplicationDetail, error)
	AddNote(ctx context.Context, actor domain.Actor, id uuid.UUID, notes string) error
	RequestMI(ctx context.Context, actor domain.Actor, id uuid.UUID, req domain.MIRequest) (*domain.Application, error)
	Approve(ctx context.Context, actor domain.Actor, id uuid.UUID, d domain.Decision) (*domain.Application, error)
	Reject(ctx context.Context, actor domain.Actor, id uuid.UUID, d domain.Decision) (*domain.Application, error)
	Assign(ctx context.Context, actor domain.Actor, id, assigneeID uuid.UUID) (*domain.Application, error)
	BulkAssign(ctx context.Context, actor domain.Actor, ids []uuid.UUID, assigneeID uuid.UUID) ([]domain.AssignOutcome, error)
}

type StaffHandler struct {
	staffService Service
}

func New(staffService Service) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Queue godoc
//
//	@Summary	Review work queue
//	@Tags		Staff
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status			query		string	false	"Status"
//	@Param		scholarship_id	query		string	false	"Scholarship"
//	@Param		reviewer_id		query		string	false	"Assigned reviewer"
//	@Param		search			query		string	false	"Reference, name or email"
//	@Param		sort_by			query		string	false	"Sort column"
//	@Param		sort_order		query		string	false	"asc or desc"
//	@Param		page			query		int		false	"Page"
//	@Param		limit			query		int		false	"Page size"
//	@Success	200				{object}	domain.PageResult[domain.ApplicationSummary]
//	@Router		/api/staff/queue [get]
func (h *StaffHandler) Queue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.staffService.Queue(r.Context(), domain.QueueFilter{
		Status:        q.Get("status"),
		ScholarshipID: utils.QueryUUID(r, "scholarship_id"),
		ReviewerID:    utils.QueryUUID(r, "reviewer_id"),
		Search:        q.Get("search"),
		SortBy:        q.Get("sort_by"),
		SortDesc:      q.Get("sort_order") != "asc",
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

// Dashboard godoc
//
//	@Summary	Queue counts and turnaround
//	@Tags		Staff
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.DashboardStats
//	@Router		/api/staff/dashboard [get]
func (h *StaffHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.staffService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// Members godoc
//
//	@Summary	Staff who can be assigned work
//	@Tags		Staff
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.User
//	@Router		/api/staff/members [get]
func (h *StaffHandler) Members(w http.ResponseWriter, r *http.Request) {
	list, err := h.staffService.Members(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Rankings godoc
//
//	@Summary	Applicants ranked by average mark
//	@Tags		Staff
//	@Produce	json
//	@Security	BearerAuth
//	@Param		scholarshipId	path	string	true	"Scholarship id"
//	@Success	200				{array}	domain.Ranking
//	@Router		/api/staff/rankings/{scholarshipId} [get]
func (h *StaffHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "scholarshipId")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrScholarshipNotFound)
		return
	}
	list, err := h.staffService.Rankings(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Templates godoc
//
//	@Summary	Correspondence templates
//	@Tags		Staff
//	@Produce	json
//	@Security	BearerAuth
//	@Param		type	query	string	false	"Template type"
//	@Success	200		{array}	domain.CorrespondenceTemplate
//	@Router		/api/staff/templates [get]
func (h *StaffHandler) Templates(w http.ResponseWriter, r *http.Request) {
	list, err := h.staffService.Templates(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// ReviewDetail godoc
//
//	@Summary	Application with documents, history and eligibility flags
//	@Tags		Staff
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.ApplicationDetail
//	@Failure	404	{object}	utils.Response	"Application not found"
//	@Router		/api/staff/applications/{id} [get]
func (h *StaffHandler) ReviewDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	detail, err := h.staffService.ReviewDetail(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// AddNote godoc
//
//	@Summary	Append a review note
//	@Tags		Staff
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Application id"
//	@Param		request	body		dto.NoteRequestDTO	true	"Note"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Router		/api/staff/applications/{id}/notes [post]
func (h *StaffHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	var req dto.NoteRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.staffService.AddNote(r.Context(), auth.ActorFromContext(r.Context()), id, req.Notes); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Notes saved"})
}

// RequestMI godoc
//
//	@Summary	Send a missing-information letter
//	@Tags		Staff
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Application id"
//	@Param		request	body		domain.MIRequest	true	"Reasons"
//	@Success	200		{object}	domain.Application
//	@Failure	400		{object}	utils.Response	"Invalid transition"
//	@Router		/api/staff/applications/{id}/request-mi [post]
func (h *StaffHandler) RequestMI(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	var req domain.MIRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	app, err := h.staffService.RequestMI(r.Context(), auth.ActorFromContext(r.Context()), id, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

type decideFn func(ctx context.Context, actor domain.Actor, id uuid.UUID, d domain.Decision) (*domain.Application, error)

func (h *StaffHandler) decide(w http.ResponseWriter, r *http.Request, fn decideFn) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	var d domain.Decision
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &d); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	app, err := fn(r.Context(), auth.ActorFromContext(r.Context()), id, d)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

// Approve godoc
//
//	@Summary	Approve an application
//	@Tags		Staff
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"Application id"
//	@Param		request	body		domain.Decision	false	"Decision notes"
//	@Success	200		{object}	domain.Application
//	@Failure	400		{object}	utils.Response	"Invalid transition"
//	@Failure	409		{object}	utils.Response	"Status changed concurrently"
//	@Router		/api/staff/applications/{id}/approve [post]
func (h *StaffHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.staffService.Approve)
}

// Reject godoc
//
//	@Summary	Reject an application
//	@Tags		Staff
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"Application id"
//	@Param		request	body		domain.Decision	false	"Decision notes and reasons"
//	@Success	200		{object}	domain.Application
//	@Failure	400		{object}	utils.Response	"Invalid transition"
//	@Router		/api/staff/applications/{id}/reject [post]
func (h *StaffHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.staffService.Reject)
}

// Assign godoc
//
//	@Summary	Assign a reviewer
//	@Tags		Staff
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Application id"
//	@Param		request	body		dto.AssignRequestDTO	true	"Reviewer"
//	@Success	200		{object}	domain.Application
//	@Router		/api/staff/applications/{id}/assign [post]
func (h *StaffHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	var req dto.AssignRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || req.ReviewerID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "reviewer_id is required")
		return
	}
	app, err := h.staffService.Assign(r.Context(), auth.ActorFromContext(r.Context()), id, req.ReviewerID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

// BulkAssign godoc
//
//	@Summary	Assign a reviewer to many applications
//	@Tags		Staff
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body	dto.BulkAssignRequestDTO	true	"Applications and reviewer"
//	@Success	200		{array}	domain.AssignOutcome
//	@Router		/api/staff/bulk-assign [post]
func (h *StaffHandler) BulkAssign(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkAssignRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.ApplicationIDs) == 0 || req.ReviewerID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "application_ids and reviewer_id are required")
		return
	}
	res, err := h.staffService.BulkAssign(r.Context(), auth.ActorFromContext(r.Context()), req.ApplicationIDs, req.ReviewerID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}
