package dto

import "github.com/google/uuid"

type CreateBatchRequestDTO struct {
	ApplicationIDs []uuid.UUID `json:"application_ids"`
}

type ConfirmBatchResponseDTO struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
