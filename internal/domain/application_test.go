package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMissingForSubmit(t *testing.T) {
	app := &Application{}
	assert.Equal(t, []string{
		"Personal information is incomplete",
		"Citizenship status is required",
		"Post-secondary institution is required",
		"Declaration must be signed",
		"Privacy consent is required",
	}, app.MissingForSubmit())

	app = &Application{
		PersonalInfo:      PersonalInfo{FirstName: "Ada", LastName: "Lovelace"},
		PostsecondaryInfo: PostsecondaryInfo{InstitutionName: "University of Alberta"},
		CitizenshipStatus: "Canadian Citizen",
		DeclarationSigned: true,
		PrivacyConsent:    true,
	}
	assert.Empty(t, app.MissingForSubmit())
	assert.Equal(t, Eligibility{Citizenship: true, Enrollment: true, Declaration: true, Privacy: true}, app.Eligibility())
}

func TestDraftPatchApply(t *testing.T) {
	app := &Application{Essay: "old", Gender: "F", PersonalInfo: PersonalInfo{FirstName: "Old"}}

	err := DraftPatch{
		PersonalInfo:   &PersonalInfo{FirstName: "Ada"},
		Essay:          ptr("new essay"),
		PrivacyConsent: ptr(true),
	}.Apply(app)

	require.NoError(t, err)
	assert.Equal(t, "Ada", app.PersonalInfo.FirstName)
	assert.Equal(t, BagSchemaVersion, app.PersonalInfo.SchemaVersion)
	assert.Equal(t, "new essay", app.Essay)
	assert.Equal(t, "F", app.Gender)
	assert.True(t, app.PrivacyConsent)
}

func TestDraftPatchApply_FutureSchema(t *testing.T) {
	app := &Application{}
	err := DraftPatch{AcademicMarks: &AcademicMarks{SchemaVersion: 99}}.Apply(app)

	assert.EqualError(t, err, "academic_marks: unsupported schema_version 99")
}

func TestQueueFilterSortColumn(t *testing.T) {
	assert.Equal(t, "s.name", QueueFilter{SortBy: "scholarship_name"}.SortColumn())
	assert.Equal(t, "a.submitted_at", QueueFilter{SortBy: "1; DROP TABLE users"}.SortColumn())
}

func TestScholarshipValidate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := &Scholarship{
		Code: "MERIT-01", Name: "Merit", AcademicYear: "2025-2026", Status: ScholarshipActive,
		Value: decimal.NewFromInt(1000), DeadlineStart: &start, DeadlineEnd: start.AddDate(0, 1, 0),
	}
	assert.Empty(t, s.Validate())

	s.Value = decimal.NewFromInt(-1)
	s.Status = "Open"
	s.DeadlineEnd = start.AddDate(0, -1, 0)
	assert.Equal(t, []string{
		"Value cannot be negative",
		"Status must be Active or Closed",
		"Deadline start must be before deadline end",
	}, s.Validate())
}

func TestScholarshipDeadlinePassed(t *testing.T) {
	s := &Scholarship{DeadlineEnd: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)}

	assert.False(t, s.DeadlinePassed(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)))
	assert.True(t, s.DeadlinePassed(time.Date(2025, 4, 1, 0, 0, 1, 0, time.UTC)))
}

func TestScholarshipPatchApply(t *testing.T) {
	s := &Scholarship{Name: "Old", MaxAwards: 1}

	changed := ScholarshipPatch{Name: ptr("New"), MaxAwards: ptr(5)}.Apply(s)

	assert.Equal(t, []string{"name", "max_awards"}, changed)
	assert.Equal(t, "New", s.Name)
	assert.Equal(t, 5, s.MaxAwards)
}

func TestCORResponseStatus(t *testing.T) {
	st, err := CORResponse{Status: CORResponseConfirmed}.ApplicationCORStatus()
	require.NoError(t, err)
	assert.Equal(t, CORConfirmed, st)

	st, err = CORResponse{Status: CORResponseUnableToConfirm}.ApplicationCORStatus()
	require.NoError(t, err)
	assert.Equal(t, CORFailed, st)

	_, err = CORResponse{Status: "Maybe"}.ApplicationCORStatus()
	assert.Error(t, err)
}

func TestIdentifiers(t *testing.T) {
	ref, err := NewReferenceNumber(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Regexp(t, ReferenceNumberPattern, ref)
	assert.Contains(t, ref, "AES-2025-")

	leg, err := NewLegacyReferenceNumber()
	require.NoError(t, err)
	assert.Regexp(t, `^AES-LEG-[0-9A-F]{6}$`, leg)

	a, err := NewCORToken()
	require.NoError(t, err)
	b, err := NewCORToken()
	require.NoError(t, err)
	assert.Len(t, a, CORTokenLength)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, a)
	assert.NotEqual(t, a, b)
}

func TestMissingForSubmit_BlankValues(t *testing.T) {
	app := &Application{
		PersonalInfo:      PersonalInfo{FirstName: "   ", LastName: "Lovelace"},
		PostsecondaryInfo: PostsecondaryInfo{InstitutionName: "\t"},
		CitizenshipStatus: " ",
		DeclarationSigned: true,
		PrivacyConsent:    true,
	}
	assert.Equal(t, []string{
		"Personal information is incomplete",
		"Citizenship status is required",
		"Post-secondary institution is required",
	}, app.MissingForSubmit())
}

func TestDraftPatchApply_RejectsSplittingNames(t *testing.T) {
	app := &Application{PersonalInfo: PersonalInfo{FirstName: "Ada"}}

	err := DraftPatch{PersonalInfo: &PersonalInfo{FirstName: "Eve", LastName: "X\r\nD|AES-2025-FFFFFF"}}.Apply(app)

	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, []string{"Last name contains invalid characters"}, derr.Errors)
	assert.Equal(t, "Ada", app.PersonalInfo.FirstName)
}
