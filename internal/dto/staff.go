package dto

import "github.com/google/uuid"

type NoteRequestDTO struct {
	Notes string `json:"notes"`
}

type AssignRequestDTO struct {
	ReviewerID uuid.UUID `json:"reviewer_id"`
}

type BulkAssignRequestDTO struct {
	ApplicationIDs []uuid.UUID `json:"application_ids"`
	ReviewerID     uuid.UUID   `json:"reviewer_id"`
}
