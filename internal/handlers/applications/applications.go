package applications

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/dto"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	Start(ctx context.Context, actor domain.Actor, scholarshipID uuid.UUID) (*domain.Application, bool, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.ApplicationSummary, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ApplicationDetail, error)
	SaveDraft(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.DraftPatch) (*domain.Application, error)
	Submit(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error)
	Withdraw(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error)
	RespondMI(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error)
	AddDocument(ctx context.Context, actor domain.Actor, id uuid.UUID, upload domain.DocumentUpload) (*domain.Document, error)
	RemoveDocument(ctx context.Context, actor domain.Actor, id, documentID uuid.UUID) error
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Start godoc
//
//	@Summary		Start an application
//	@Description	Returns the open draft when one already exists for the scholarship.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.StartApplicationRequestDTO	true	"Scholarship"
//	@Success		201		{object}	dto.StartApplicationResponseDTO	"Draft created"
//	@Success		200		{object}	dto.StartApplicationResponseDTO	"Existing draft"
//	@Failure		400		{object}	utils.Response					"Profile incomplete or deadline passed"
//	@Failure		409		{object}	utils.Response					"Already applied"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartApplicationRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || req.ScholarshipID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "scholarship_id is required")
		return
	}
	app, created, err := h.applicationService.Start(r.Context(), auth.ActorFromContext(r.Context()), req.ScholarshipID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	utils.RespondWithJSON(w, code, dto.StartApplicationResponseDTO{Application: app, Existing: !created})
}

// ListMine godoc
//
//	@Summary	Own applications
//	@Tags		Applications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.ApplicationSummary
//	@Router		/api/applications/my [get]
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.applicationService.ListMine(r.Context(), auth.ActorFromContext(r.Context()))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Get godoc
//
//	@Summary	Application with documents
//	@Tags		Applications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.ApplicationDetail
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Failure	404	{object}	utils.Response	"Application not found"
//	@Router		/api/applications/{id} [get]
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	detail, err := h.applicationService.Get(r.Context(), auth.ActorFromContext(r.Context()), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// SaveDraft godoc
//
//	@Summary	Save draft sections
//	@Tags		Applications
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Application id"
//	@Param		request	body		dto.DraftRequestDTO	true	"Changed sections"
//	@Success	200		{object}	domain.Application
//	@Failure	400		{object}	utils.Response	"Not editable"
//	@Router		/api/applications/{id} [put]
func (h *ApplicationHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	var req dto.DraftRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	app, err := h.applicationService.SaveDraft(r.Context(), auth.ActorFromContext(r.Context()), id, req.Patch())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

type transition func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Application, error)

func (h *ApplicationHandler) move(w http.ResponseWriter, r *http.Request, fn transition) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	app, err := fn(r.Context(), auth.ActorFromContext(r.Context()), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, app)
}

// Submit godoc
//
//	@Summary	Submit a draft
//	@Tags		Applications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.Application
//	@Failure	400	{object}	utils.Response	"Incomplete application or invalid transition"
//	@Router		/api/applications/{id}/submit [post]
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.applicationService.Submit)
}

// Withdraw godoc
//
//	@Summary	Withdraw an application
//	@Tags		Applications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.Application
//	@Failure	400	{object}	utils.Response	"Invalid transition"
//	@Router		/api/applications/{id}/withdraw [post]
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.applicationService.Withdraw)
}

// RespondMI godoc
//
//	@Summary	Return an application after a missing-information request
//	@Tags		Applications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Application id"
//	@Success	200	{object}	domain.Application
//	@Failure	400	{object}	utils.Response	"Invalid transition"
//	@Router		/api/applications/{id}/respond-mi [post]
func (h *ApplicationHandler) RespondMI(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.applicationService.RespondMI)
}

// AddDocument godoc
//
//	@Summary	Upload a supporting document
//	@Tags		Applications
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id				path		string	true	"Application id"
//	@Param		file			formData	file	true	"pdf, docx, doc, jpg, jpeg or png up to 10MB"
//	@Param		document_type	formData	string	false	"Document type"
//	@Success	201				{object}	domain.Document
//	@Failure	400				{object}	utils.Response	"Rejected upload"
//	@Router		/api/applications/{id}/documents [post]
func (h *ApplicationHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxDocumentSize+1<<20)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondWithError(w, http.StatusBadRequest, "File too large")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	doc, err := h.applicationService.AddDocument(r.Context(), auth.ActorFromContext(r.Context()), id, domain.DocumentUpload{
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		DocumentType: r.FormValue("document_type"),
		Body:         file,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, doc)
}

// RemoveDocument godoc
//
//	@Summary	Delete an uploaded document
//	@Tags		Applications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Application id"
//	@Param		docId	path		string	true	"Document id"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	404		{object}	utils.Response	"Document not found or cannot be deleted"
//	@Router		/api/applications/{id}/documents/{docId} [delete]
func (h *ApplicationHandler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrApplicationNotFound)
		return
	}
	docID, ok := utils.URLParamUUID(r, "docId")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrDocumentNotFound)
		return
	}
	if err := h.applicationService.RemoveDocument(r.Context(), auth.ActorFromContext(r.Context()), id, docID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Document deleted"})
}
