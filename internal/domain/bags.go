package domain

import (
	"fmt"

	"github.com/GlebRadaev/aescholar/pkg/validate"
)

// BagSchemaVersion is stamped into every JSON document stored on an application.
const BagSchemaVersion = 1

type PersonalInfo struct {
	SchemaVersion int    `json:"schema_version"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	MiddleName    string `json:"middle_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	AddressLine1  string `json:"address_line1,omitempty"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city,omitempty"`
	Province      string `json:"province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	ASN           string `json:"asn,omitempty"`
	Legacy        bool   `json:"legacy,omitempty"`
}

// CheckNames rejects names that would break a delimited export line.
func (p PersonalInfo) CheckNames() error {
	var errs []string
	errs = append(errs, validate.Name("First name", p.FirstName)...)
	errs = append(errs, validate.Name("Middle name", p.MiddleName)...)
	errs = append(errs, validate.Name("Last name", p.LastName)...)
	if len(errs) > 0 {
		return Invalid("Validation failed", errs)
	}
	return nil
}

func (p PersonalInfo) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PostsecondaryInfo struct {
	SchemaVersion      int    `json:"schema_version"`
	InstitutionName    string `json:"institution_name,omitempty"`
	Program            string `json:"program,omitempty"`
	EnrollmentStatus   string `json:"enrollment_status,omitempty"`
	YearOfStudy        string `json:"year_of_study,omitempty"`
	StartDate          string `json:"start_date,omitempty"`
	ExpectedCompletion string `json:"expected_completion,omitempty"`
}

type HighSchoolInfo struct {
	SchemaVersion  int    `json:"schema_version"`
	SchoolName     string `json:"school_name,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	City           string `json:"city,omitempty"`
	Province       string `json:"province,omitempty"`
}

type AdditionalInfo struct {
	SchemaVersion int               `json:"schema_version"`
	Volunteer     string            `json:"volunteer,omitempty"`
	Leadership    string            `json:"leadership,omitempty"`
	Awards        string            `json:"awards,omitempty"`
	Employment    string            `json:"employment,omitempty"`
	Other         map[string]string `json:"other,omitempty"`
}

type CourseMark struct {
	Course string `json:"course"`
	Mark   string `json:"mark"`
}

type AcademicMarks struct {
	SchemaVersion int          `json:"schema_version"`
	Average       string       `json:"average,omitempty"`
	Courses       []CourseMark `json:"courses,omitempty"`
}

type EligibilityCriteria struct {
	SchemaVersion     int      `json:"schema_version"`
	MinAverage        string   `json:"min_average,omitempty"`
	RequiresResidency bool     `json:"requires_residency,omitempty"`
	CitizenshipTypes  []string `json:"citizenship_types,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// stamp accepts an unversioned document as the current version and
// rejects versions this build does not understand.
func stamp(name string, v *int) error {
	switch *v {
	case 0:
		*v = BagSchemaVersion
		return nil
	case BagSchemaVersion:
		return nil
	}
	return fmt.Errorf("%s: unsupported schema_version %d", name, *v)
}

func (p *PersonalInfo) Stamp() error      { return stamp("personal_info", &p.SchemaVersion) }
func (p *PostsecondaryInfo) Stamp() error { return stamp("postsecondary_info", &p.SchemaVersion) }
func (h *HighSchoolInfo) Stamp() error    { return stamp("high_school_info", &h.SchemaVersion) }
func (a *AdditionalInfo) Stamp() error    { return stamp("additional_info", &a.SchemaVersion) }
func (m *AcademicMarks) Stamp() error     { return stamp("academic_marks", &m.SchemaVersion) }
func (e *EligibilityCriteria) Stamp() error {
	return stamp("eligibility_criteria", &e.SchemaVersion)
}
