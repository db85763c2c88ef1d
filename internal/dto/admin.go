package dto

import "github.com/GlebRadaev/aescholar/internal/domain"

type RoleRequestDTO struct {
	Role string `json:"role"`
}

type BlockRequestDTO struct {
	Blocked bool `json:"blocked"`
}

type LegacyImportRequestDTO struct {
	Submissions []domain.LegacySubmission `json:"submissions"`
	FileName    string                    `json:"file_name"`
}
