package dto

import (
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/shopspring/decimal"
)

type ScholarshipPatchRequestDTO struct {
	Name                *string                     `json:"name"`
	Type                *string                     `json:"type"`
	Value               *decimal.Decimal            `json:"value"`
	DeadlineStart       *time.Time                  `json:"deadline_start"`
	DeadlineEnd         *time.Time                  `json:"deadline_end"`
	PaymentDate         *string                     `json:"payment_date"`
	EligibilityCriteria *domain.EligibilityCriteria `json:"eligibility_criteria"`
	RequiredDocuments   *[]string                   `json:"required_documents"`
	SelectionProcess    *string                     `json:"selection_process"`
	MaxAwards           *int                        `json:"max_awards"`
	Category            *string                     `json:"category"`
	SourceURL           *string                     `json:"source_url"`
	Status              *string                     `json:"status"`
	AcademicYear        *string                     `json:"academic_year"`
}

func (d ScholarshipPatchRequestDTO) Patch() domain.ScholarshipPatch {
	return domain.ScholarshipPatch{
		Name:                d.Name,
		Type:                d.Type,
		Value:               d.Value,
		DeadlineStart:       d.DeadlineStart,
		DeadlineEnd:         d.DeadlineEnd,
		PaymentDate:         d.PaymentDate,
		EligibilityCriteria: d.EligibilityCriteria,
		RequiredDocuments:   d.RequiredDocuments,
		SelectionProcess:    d.SelectionProcess,
		MaxAwards:           d.MaxAwards,
		Category:            d.Category,
		SourceURL:           d.SourceURL,
		Status:              d.Status,
		AcademicYear:        d.AcademicYear,
	}
}
