package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CORStatus string

const (
	CORNone      CORStatus = ""
	CORPending   CORStatus = "Pending"
	CORRequested CORStatus = "Requested"
	CORConfirmed CORStatus = "Confirmed"
	CORFailed    CORStatus = "Failed"
)

const (
	DecisionApproved = "Approved"
	DecisionRejected = "Rejected"
)

type Application struct {
	ID                uuid.UUID         `json:"id"`
	ReferenceNumber   string            `json:"reference_number"`
	ScholarshipID     uuid.UUID         `json:"scholarship_id"`
	ApplicantID       uuid.UUID         `json:"applicant_id"`
	Status            Status            `json:"status"`
	SubmittedAt       *time.Time        `json:"submitted_at,omitempty"`
	PersonalInfo      PersonalInfo      `json:"personal_info"`
	PostsecondaryInfo PostsecondaryInfo `json:"postsecondary_info"`
	HighSchoolInfo    HighSchoolInfo    `json:"high_school_info"`
	AdditionalInfo    AdditionalInfo    `json:"additional_info"`
	AcademicMarks     AcademicMarks     `json:"academic_marks"`
	CitizenshipStatus string            `json:"citizenship_status"`
	ResidencyStatus   bool              `json:"residency_status"`
	IndigenousStatus  string            `json:"indigenous_status"`
	Gender            string            `json:"gender"`
	Essay             string            `json:"essay"`
	DeclarationSigned bool              `json:"declaration_signed"`
	PrivacyConsent    bool              `json:"privacy_consent"`
	CORStatus         CORStatus         `json:"cor_status"`
	CORConfirmedDate  *time.Time        `json:"cor_confirmed_date,omitempty"`
	ReviewerID        *uuid.UUID        `json:"reviewer_id,omitempty"`
	ReviewNotes       string            `json:"review_notes"`
	Decision          string            `json:"decision"`
	DecisionDate      *time.Time        `json:"decision_date,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// MissingForSubmit lists every requirement that blocks submission.
func (a *Application) MissingForSubmit() []string {
	var errs []string
	blank := func(v string) bool { return strings.TrimSpace(v) == "" }
	if blank(a.PersonalInfo.FirstName) || blank(a.PersonalInfo.LastName) {
		errs = append(errs, "Personal information is incomplete")
	}
	if blank(a.CitizenshipStatus) {
		errs = append(errs, "Citizenship status is required")
	}
	if blank(a.PostsecondaryInfo.InstitutionName) {
		errs = append(errs, "Post-secondary institution is required")
	}
	if !a.DeclarationSigned {
		errs = append(errs, "Declaration must be signed")
	}
	if !a.PrivacyConsent {
		errs = append(errs, "Privacy consent is required")
	}
	return errs
}

// DraftPatch is a partial draft update; nil fields keep their stored value.
type DraftPatch struct {
	PersonalInfo      *PersonalInfo
	PostsecondaryInfo *PostsecondaryInfo
	HighSchoolInfo    *HighSchoolInfo
	AdditionalInfo    *AdditionalInfo
	AcademicMarks     *AcademicMarks
	Essay             *string
	CitizenshipStatus *string
	IndigenousStatus  *string
	Gender            *string
	ResidencyStatus   *bool
	DeclarationSigned *bool
	PrivacyConsent    *bool
}

// Apply merges the patch into a, stamping every JSON document it touches.
func (p DraftPatch) Apply(a *Application) error {
	if p.PersonalInfo != nil {
		if err := p.PersonalInfo.Stamp(); err != nil {
			return err
		}
		if err := p.PersonalInfo.CheckNames(); err != nil {
			return err
		}
		a.PersonalInfo = *p.PersonalInfo
	}
	if p.PostsecondaryInfo != nil {
		if err := p.PostsecondaryInfo.Stamp(); err != nil {
			return err
		}
		a.PostsecondaryInfo = *p.PostsecondaryInfo
	}
	if p.HighSchoolInfo != nil {
		if err := p.HighSchoolInfo.Stamp(); err != nil {
			return err
		}
		a.HighSchoolInfo = *p.HighSchoolInfo
	}
	if p.AdditionalInfo != nil {
		if err := p.AdditionalInfo.Stamp(); err != nil {
			return err
		}
		a.AdditionalInfo = *p.AdditionalInfo
	}
	if p.AcademicMarks != nil {
		if err := p.AcademicMarks.Stamp(); err != nil {
			return err
		}
		a.AcademicMarks = *p.AcademicMarks
	}
	if p.Essay != nil {
		a.Essay = *p.Essay
	}
	if p.CitizenshipStatus != nil {
		a.CitizenshipStatus = *p.CitizenshipStatus
	}
	if p.IndigenousStatus != nil {
		a.IndigenousStatus = *p.IndigenousStatus
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.ResidencyStatus != nil {
		a.ResidencyStatus = *p.ResidencyStatus
	}
	if p.DeclarationSigned != nil {
		a.DeclarationSigned = *p.DeclarationSigned
	}
	if p.PrivacyConsent != nil {
		a.PrivacyConsent = *p.PrivacyConsent
	}
	return nil
}

// StatusChange is a compare-and-set update of an application's status.
// Optional fields are written only when non-nil.
type StatusChange struct {
	ID           uuid.UUID
	From         Status
	To           Status
	SubmittedAt  *time.Time
	Decision     *string
	DecisionDate *time.Time
	ReviewerID   *uuid.UUID
	NoteEntry    *string
}

// ApplicationSummary is the list view joined with scholarship and people.
type ApplicationSummary struct {
	ID               uuid.UUID       `json:"id"`
	ReferenceNumber  string          `json:"reference_number"`
	Status           Status          `json:"status"`
	ScholarshipID    uuid.UUID       `json:"scholarship_id"`
	ScholarshipName  string          `json:"scholarship_name"`
	ScholarshipType  string          `json:"scholarship_type"`
	ScholarshipValue decimal.Decimal `json:"scholarship_value"`
	DeadlineEnd      time.Time       `json:"deadline_end"`
	ApplicantID      uuid.UUID       `json:"applicant_id"`
	ApplicantName    string          `json:"applicant_name"`
	ApplicantEmail   string          `json:"applicant_email"`
	ReviewerID       *uuid.UUID      `json:"reviewer_id,omitempty"`
	ReviewerName     string          `json:"reviewer_name"`
	CORStatus        CORStatus       `json:"cor_status"`
	Decision         string          `json:"decision"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DaysInQueue      int             `json:"days_in_queue"`
}

type QueueFilter struct {
	Status        string
	ScholarshipID *uuid.UUID
	ReviewerID    *uuid.UUID
	Search        string
	SortBy        string
	SortDesc      bool
	Page
}

var queueSorts = map[string]string{
	"submitted_at":     "a.submitted_at",
	"status":           "a.status",
	"scholarship_name": "s.name",
	"reference_number": "a.reference_number",
	"days_in_queue":    "days_in_queue",
	"updated_at":       "a.updated_at",
}

// SortColumn maps the requested sort key onto a whitelisted SQL expression.
func (f QueueFilter) SortColumn() string {
	if col, ok := queueSorts[f.SortBy]; ok {
		return col
	}
	return queueSorts["submitted_at"]
}

type Eligibility struct {
	Citizenship bool `json:"citizenship"`
	Residency   bool `json:"residency"`
	Enrollment  bool `json:"enrollment"`
	Declaration bool `json:"declaration"`
	Privacy     bool `json:"privacy"`
}

func (a *Application) Eligibility() Eligibility {
	return Eligibility{
		Citizenship: a.CitizenshipStatus != "",
		Residency:   a.ResidencyStatus,
		Enrollment:  a.PostsecondaryInfo.InstitutionName != "",
		Declaration: a.DeclarationSigned,
		Privacy:     a.PrivacyConsent,
	}
}

type ApplicationDetail struct {
	Application
	Scholarship *Scholarship `json:"scholarship,omitempty"`
	Documents   []Document   `json:"documents"`
	History     []AuditEntry `json:"history,omitempty"`
	Eligibility *Eligibility `json:"eligibility,omitempty"`
}

type Ranking struct {
	ID              uuid.UUID     `json:"id"`
	ReferenceNumber string        `json:"reference_number"`
	Status          Status        `json:"status"`
	SubmittedAt     *time.Time    `json:"submitted_at,omitempty"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	AcademicMarks   AcademicMarks `json:"academic_marks"`
	Institution     string        `json:"institution"`
	Program         string        `json:"program"`
	YearOfStudy     string        `json:"year_of_study"`
}

type DashboardStats struct {
	Total             int            `json:"total_applications"`
	ByStatus          map[Status]int `json:"by_status"`
	PendingReview     int            `json:"pending_review"`
	AvgTurnaroundDays float64        `json:"avg_turnaround_days"`
	ByScholarship     []NamedCount   `json:"by_scholarship"`
	StaffWorkload     []NamedCount   `json:"staff_workload"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MIRequest is the content of a missing-information letter.
type MIRequest struct {
	Reasons       []string `json:"reasons"`
	CustomMessage string   `json:"custom_message"`
}

type Decision struct {
	Notes   string   `json:"notes"`
	Reasons []string `json:"reasons"`
}

// AssignOutcome reports one application of a bulk assignment.
type AssignOutcome struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Status          Status    `json:"status,omitempty"`
	Error           string    `json:"error,omitempty"`
}
