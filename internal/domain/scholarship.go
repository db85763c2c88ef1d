package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ScholarshipTypeOnline = "online application"

	ScholarshipActive = "Active"
	ScholarshipClosed = "Closed"
)

type Scholarship struct {
	ID                  uuid.UUID           `json:"id"`
	Code                string              `json:"code"`
	Name                string              `json:"name"`
	Type                string              `json:"type"`
	Value               decimal.Decimal     `json:"value"`
	DeadlineStart       *time.Time          `json:"deadline_start,omitempty"`
	DeadlineEnd         time.Time           `json:"deadline_end"`
	PaymentDate         string              `json:"payment_date"`
	EligibilityCriteria EligibilityCriteria `json:"eligibility_criteria"`
	RequiredDocuments   []string            `json:"required_documents"`
	SelectionProcess    string              `json:"selection_process"`
	MaxAwards           int                 `json:"max_awards"`
	Category            string              `json:"category"`
	SourceURL           string              `json:"source_url"`
	Status              string              `json:"status"`
	AcademicYear        string              `json:"academic_year"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// DeadlinePassed treats deadline_end as inclusive of the whole day.
func (s *Scholarship) DeadlinePassed(now time.Time) bool {
	end := time.Date(s.DeadlineEnd.Year(), s.DeadlineEnd.Month(), s.DeadlineEnd.Day(), 23, 59, 59, 0, now.Location())
	return now.After(end)
}

type ScholarshipFilter struct {
	Type         string
	Category     string
	Status       string
	Search       string
	AcademicYear string
}

// ScholarshipPatch carries a partial admin update; nil fields are left as is.
type ScholarshipPatch struct {
	Name                *string
	Type                *string
	Value               *decimal.Decimal
	DeadlineStart       *time.Time
	DeadlineEnd         *time.Time
	PaymentDate         *string
	EligibilityCriteria *EligibilityCriteria
	RequiredDocuments   *[]string
	SelectionProcess    *string
	MaxAwards           *int
	Category            *string
	SourceURL           *string
	Status              *string
	AcademicYear        *string
}

type Lookup struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Apply merges the patch into s and returns the names of the fields it set.
func (p ScholarshipPatch) Apply(s *Scholarship) []string {
	var changed []string
	str := func(name string, dst *string, v *string) {
		if v != nil {
			*dst = *v
			changed = append(changed, name)
		}
	}
	str("name", &s.Name, p.Name)
	str("type", &s.Type, p.Type)
	str("payment_date", &s.PaymentDate, p.PaymentDate)
	str("selection_process", &s.SelectionProcess, p.SelectionProcess)
	str("category", &s.Category, p.Category)
	str("source_url", &s.SourceURL, p.SourceURL)
	str("status", &s.Status, p.Status)
	str("academic_year", &s.AcademicYear, p.AcademicYear)
	if p.Value != nil {
		s.Value = *p.Value
		changed = append(changed, "value")
	}
	if p.DeadlineStart != nil {
		s.DeadlineStart = p.DeadlineStart
		changed = append(changed, "deadline_start")
	}
	if p.DeadlineEnd != nil {
		s.DeadlineEnd = *p.DeadlineEnd
		changed = append(changed, "deadline_end")
	}
	if p.EligibilityCriteria != nil {
		s.EligibilityCriteria = *p.EligibilityCriteria
		changed = append(changed, "eligibility_criteria")
	}
	if p.RequiredDocuments != nil {
		s.RequiredDocuments = *p.RequiredDocuments
		changed = append(changed, "required_documents")
	}
	if p.MaxAwards != nil {
		s.MaxAwards = *p.MaxAwards
		changed = append(changed, "max_awards")
	}
	return changed
}

// Validate lists what a scholarship needs before it can be stored.
func (s *Scholarship) Validate() []string {
	var errs []string
	if s.Code == "" {
		errs = append(errs, "Code is required")
	}
	if s.Name == "" {
		errs = append(errs, "Name is required")
	}
	if s.DeadlineEnd.IsZero() {
		errs = append(errs, "Deadline end is required")
	}
	if s.AcademicYear == "" {
		errs = append(errs, "Academic year is required")
	}
	if s.Value.IsNegative() {
		errs = append(errs, "Value cannot be negative")
	}
	if s.Status != ScholarshipActive && s.Status != ScholarshipClosed {
		errs = append(errs, "Status must be Active or Closed")
	}
	if s.DeadlineStart != nil && !s.DeadlineEnd.IsZero() && s.DeadlineStart.After(s.DeadlineEnd) {
		errs = append(errs, "Deadline start must be before deadline end")
	}
	return errs
}
