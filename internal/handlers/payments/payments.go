package payments

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

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service interface {
	Eligible(ctx context.Context) ([]domain.EligiblePayment, error)
	CreateBatch(ctx context.Context, actor domain.Actor, ids []uuid.UUID) (*domain.BatchResult, error)
	ListBatches(ctx context.Context) ([]domain.PaymentBatch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.BatchDetail, error)
	ConfirmBatch(ctx context.Context, actor domain.Actor, id uuid.UUID) (int, error)
	File(ctx context.Context, id uuid.UUID) (name, content string, err error)
	Workbook(ctx context.Context, id uuid.UUID) (name string, data []byte, err error)
	Duplicates(ctx context.Context) ([]domain.DuplicateAccount, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Eligible godoc
//
//	@Summary	Approved applications awaiting payment
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.EligiblePayment
//	@Router		/api/payments/eligible [get]
func (h *PaymentHandler) Eligible(w http.ResponseWriter, r *http.Request) {
	list, err := h.paymentService.Eligible(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CreateBatch godoc
//
//	@Summary		Generate a payment batch
//	@Description	Every selected application must be Approved with banking details on file, otherwise nothing is created.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateBatchRequestDTO	true	"Applications to pay"
//	@Success		201		{object}	domain.BatchResult
//	@Failure		400		{object}	utils.Response	"Applications cannot be paid"
//	@Failure		409		{object}	utils.Response	"Status changed concurrently"
//	@Router			/api/payments/batch [post]
func (h *PaymentHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBatchRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.paymentService.CreateBatch(r.Context(), auth.ActorFromContext(r.Context()), req.ApplicationIDs)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// ListBatches godoc
//
//	@Summary	Payment batches, newest first
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.PaymentBatch
//	@Router		/api/payments/batches [get]
func (h *PaymentHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	list, err := h.paymentService.ListBatches(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetBatch godoc
//
//	@Summary	Batch with its payment items
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Batch id"
//	@Success	200	{object}	domain.BatchDetail
//	@Failure	404	{object}	utils.Response	"Batch not found"
//	@Router		/api/payments/batches/{id} [get]
func (h *PaymentHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrBatchNotFound)
		return
	}
	detail, err := h.paymentService.GetBatch(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// ConfirmBatch godoc
//
//	@Summary	Mark a batch paid
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Batch id"
//	@Success	200	{object}	dto.ConfirmBatchResponseDTO
//	@Failure	400	{object}	utils.Response	"Batch already confirmed"
//	@Failure	404	{object}	utils.Response	"Batch not found"
//	@Router		/api/payments/batches/{id}/confirm [post]
func (h *PaymentHandler) ConfirmBatch(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrBatchNotFound)
		return
	}
	n, err := h.paymentService.ConfirmBatch(r.Context(), auth.ActorFromContext(r.Context()), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmBatchResponseDTO{
		Message: fmt.Sprintf("Batch confirmed. %d payments marked as Paid.", n),
		Count:   n,
	})
}

func attachment(w http.ResponseWriter, name, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zap.L().Error("can't write attachment", zap.String("file", name), zap.Error(err))
	}
}

// File godoc
//
//	@Summary	Download the settlement file
//	@Tags		Payments
//	@Produce	plain
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Batch id"
//	@Success	200	{string}	string	"Pipe-delimited settlement file"
//	@Failure	404	{object}	utils.Response	"Batch not found"
//	@Router		/api/payments/batches/{id}/file [get]
func (h *PaymentHandler) File(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrBatchNotFound)
		return
	}
	name, content, err := h.paymentService.File(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	attachment(w, name, "text/plain; charset=utf-8", []byte(content))
}

// Workbook godoc
//
//	@Summary	Download the reconciliation workbook
//	@Tags		Payments
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Batch id"
//	@Success	200	{file}		file
//	@Failure	404	{object}	utils.Response	"Batch not found"
//	@Router		/api/payments/batches/{id}/workbook [get]
func (h *PaymentHandler) Workbook(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.URLParamUUID(r, "id")
	if !ok {
		utils.RespondWithServiceError(w, domain.ErrBatchNotFound)
		return
	}
	name, data, err := h.paymentService.Workbook(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	attachment(w, name, xlsxContentType, data)
}

// Duplicates godoc
//
//	@Summary	Bank accounts shared between users
//	@Tags		Payments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.DuplicateAccount
//	@Router		/api/payments/duplicates [get]
func (h *PaymentHandler) Duplicates(w http.ResponseWriter, r *http.Request) {
	list, err := h.paymentService.Duplicates(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
