package domain

import (
	"time"

	"github.com/google/uuid"
)

type BankingInfo struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	InstitutionNumber   string    `json:"institution_number"`
	TransitNumber       string    `json:"transit_number"`
	AccountNumber       string    `json:"account_number"`
	AuthorizationSigned bool      `json:"authorization_signed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// MaskAccount keeps only the last four digits.
func MaskAccount(account string) string {
	if len(account) <= 4 {
		return "****" + account
	}
	return "****" + account[len(account)-4:]
}

// Masked returns a copy safe to hand back to the applicant.
func (b BankingInfo) Masked() BankingInfo {
	b.AccountNumber = MaskAccount(b.AccountNumber)
	return b
}

type DuplicateAccount struct {
	User1ID           uuid.UUID `json:"user1_id"`
	User1Name         string    `json:"user1_name"`
	User1Email        string    `json:"user1_email"`
	User2ID           uuid.UUID `json:"user2_id"`
	User2Name         string    `json:"user2_name"`
	User2Email        string    `json:"user2_email"`
	InstitutionNumber string    `json:"institution_number"`
	TransitNumber     string    `json:"transit_number"`
	AccountMasked     string    `json:"account_masked"`
	User1Created      time.Time `json:"user1_created"`
	User2Created      time.Time `json:"user2_created"`
}

type BankingInput struct {
	InstitutionNumber   string `json:"institution_number"`
	TransitNumber       string `json:"transit_number"`
	AccountNumber       string `json:"account_number"`
	AuthorizationSigned bool   `json:"authorization_signed"`
}

type BankingResult struct {
	BankingInfo
	DuplicateFlag bool `json:"duplicate_flag"`
}
