package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BatchGenerated = "Generated"
	BatchPaid      = "Paid"

	ItemPending = "Pending"
	ItemPaid    = "Paid"
)

type PaymentBatch struct {
	ID               uuid.UUID       `json:"id"`
	BatchNumber      string          `json:"batch_number"`
	GeneratedBy      uuid.UUID       `json:"generated_by"`
	GeneratedByName  string          `json:"generated_by_name,omitempty"`
	ApplicationCount int             `json:"application_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	FileName         string          `json:"file_name"`
	Status           string          `json:"status"`
	ConfirmedBy      *uuid.UUID      `json:"confirmed_by,omitempty"`
	ConfirmedAt      *time.Time      `json:"confirmed_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PaymentItem snapshots the payee and banking numbers at batch time.
type PaymentItem struct {
	ID                uuid.UUID       `json:"id"`
	BatchID           uuid.UUID       `json:"batch_id"`
	ApplicationID     uuid.UUID       `json:"application_id"`
	ApplicantID       uuid.UUID       `json:"applicant_id"`
	ReferenceNumber   string          `json:"reference_number"`
	PayeeName         string          `json:"payee_name"`
	ScholarshipName   string          `json:"scholarship_name"`
	Amount            decimal.Decimal `json:"amount"`
	InstitutionNumber string          `json:"institution_number"`
	TransitNumber     string          `json:"transit_number"`
	AccountNumber     string          `json:"-"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

type BatchDetail struct {
	PaymentBatch
	Items []PaymentItem `json:"items"`
}

// PaymentCandidate is an application joined with the data a batch needs.
type PaymentCandidate struct {
	ApplicationID       uuid.UUID       `json:"id"`
	ReferenceNumber     string          `json:"reference_number"`
	Status              Status          `json:"status"`
	ApplicantID         uuid.UUID       `json:"applicant_id"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Email               string          `json:"email"`
	ScholarshipName     string          `json:"scholarship_name"`
	Amount              decimal.Decimal `json:"amount"`
	HasBankingRow       bool            `json:"-"`
	InstitutionNumber   string          `json:"institution_number"`
	TransitNumber       string          `json:"transit_number"`
	AccountNumber       string          `json:"-"`
	AuthorizationSigned bool            `json:"authorization_signed"`
}

func (c PaymentCandidate) HasBanking() bool {
	return c.HasBankingRow && c.AuthorizationSigned
}

// EligiblePayment is the finance-facing view of a payment candidate.
type EligiblePayment struct {
	PaymentCandidate
	AccountMasked string `json:"account_masked"`
	HasBanking    bool   `json:"has_banking"`
}

type BatchResult struct {
	BatchID          uuid.UUID       `json:"batch_id"`
	BatchNumber      string          `json:"batch_number"`
	FileName         string          `json:"file_name"`
	ApplicationCount int             `json:"application_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	FileContent      string          `json:"file_content"`
}
