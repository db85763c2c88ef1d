package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	CORRequestSent             = "Sent"
	CORResponseConfirmed       = "Confirmed"
	CORResponseNotConfirmed    = "Not Confirmed"
	CORResponseUnableToConfirm = "Unable to Confirm"
)

type CORRequest struct {
	ID               uuid.UUID  `json:"id"`
	ApplicationID    uuid.UUID  `json:"application_id"`
	ReferenceNumber  string     `json:"reference_number,omitempty"`
	ApplicantID      uuid.UUID  `json:"-"`
	InstitutionName  string     `json:"institution_name"`
	InstitutionEmail string     `json:"institution_email"`
	RequestedBy      *uuid.UUID `json:"requested_by,omitempty"`
	RequestedByName  string     `json:"requested_by_name,omitempty"`
	ResponseToken    string     `json:"-"`
	Status           string     `json:"status"`
	ApplicantName    string     `json:"applicant_name"`
	Program          string     `json:"program"`
	EnrollmentStatus string     `json:"enrollment_status"`
	YearOfStudy      string     `json:"year_of_study"`
	CustomMessage    string     `json:"custom_message,omitempty"`
	ConfirmedBy      string     `json:"confirmed_by,omitempty"`
	ResponseNotes    string     `json:"response_notes,omitempty"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	DaysOpen         int        `json:"days_open"`
}

type CORRequestInput struct {
	InstitutionEmail string
	CustomMessage    string
}

type CORResponse struct {
	Status      string
	ConfirmedBy string
	Notes       string
}

// ApplicationCORStatus maps an institution answer to the application's cor_status.
func (r CORResponse) ApplicationCORStatus() (CORStatus, error) {
	switch r.Status {
	case CORResponseConfirmed:
		return CORConfirmed, nil
	case CORResponseNotConfirmed, CORResponseUnableToConfirm:
		return CORFailed, nil
	}
	return CORNone, BadRequest("Invalid status. Must be: Confirmed, Not Confirmed, or Unable to Confirm")
}

type CORFilter struct {
	Status      string
	Institution string
	Page
}

type CORCheckResult struct {
	Status  CORStatus `json:"status"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}

type CORStatusView struct {
	ApplicationID    uuid.UUID    `json:"application_id"`
	ReferenceNumber  string       `json:"reference_number"`
	CORStatus        CORStatus    `json:"cor_status"`
	CORConfirmedDate *time.Time   `json:"cor_confirmed_date,omitempty"`
	InstitutionName  string       `json:"institution_name"`
	Requests         []CORRequest `json:"requests"`
}

type SFSSyncResult struct {
	StartedAt           time.Time `json:"started_at"`
	CompletedAt         time.Time `json:"completed_at"`
	EnrollmentChecks    int       `json:"enrollment_checks"`
	EnrollmentConfirmed int       `json:"enrollment_confirmed"`
	EnrollmentPending   int       `json:"enrollment_pending"`
	Errors              []string  `json:"errors"`
}

// CORSent is returned to staff after a request went out. The token is
// handed over so it can be forwarded to the institution.
type CORSent struct {
	Message         string    `json:"message"`
	RequestID       uuid.UUID `json:"request_id"`
	Institution     string    `json:"institution"`
	InstitutionMail string    `json:"institution_email"`
	ResponseToken   string    `json:"response_token"`
	Status          CORStatus `json:"status"`
}

type CORResponseResult struct {
	Message           string    `json:"message"`
	ApplicationStatus CORStatus `json:"application_status"`
	ApplicationID     uuid.UUID `json:"application_id"`
	ReferenceNumber   string    `json:"reference_number"`
}
