package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSIN(t *testing.T) {
	tests := []struct {
		name  string
		sin   string
		valid bool
	}{
		{"Dashed", "046-454-286", true},
		{"Spaced", "046 454 286", true},
		{"Plain", "046454286", true},
		{"Too short", "04645428", false},
		{"Letters", "04645428A", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := SIN(tt.sin)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{"SIN must be 9 digits (format: NNN-NNN-NNN)"}, errs)
			}
		})
	}
}

func TestSINChecksum(t *testing.T) {
	assert.True(t, SINChecksum("046-454-286"))
	assert.False(t, SINChecksum("123-456-789"))
}

func TestPhone(t *testing.T) {
	assert.Empty(t, Phone("(780) 555-1234"))
	assert.Empty(t, Phone("7805551234"))
	assert.Equal(t, []string{"Phone must be 10 digits"}, Phone("555-1234"))
	assert.Equal(t, []string{"Phone must be 10 digits"}, Phone("+1 780 555 1234"))
}

func TestPostalCode(t *testing.T) {
	for _, ok := range []string{"T5J 2N9", "T5J2N9", "t5j 2n9"} {
		assert.Empty(t, PostalCode(ok), ok)
	}
	for _, bad := range []string{"12345", "T5J  2N9", "TTJ 2N9", ""} {
		assert.NotEmpty(t, PostalCode(bad), bad)
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Empty(t, Age(time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC), now), "16th birthday today")
	assert.Equal(t, []string{"Applicant must be at least 16 years old"},
		Age(time.Date(2010, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Empty(t, Age(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestBanking_Validate(t *testing.T) {
	tests := []struct {
		name     string
		banking  Banking
		expected []string
	}{
		{
			name:    "Valid",
			banking: Banking{InstitutionNumber: "001", TransitNumber: "12345", AccountNumber: "1234567", AuthorizationSigned: true},
		},
		{
			name:    "Everything wrong",
			banking: Banking{InstitutionNumber: "01", TransitNumber: "123456", AccountNumber: "1234567890123"},
			expected: []string{
				"Institution number must be exactly 3 digits",
				"Transit number must be exactly 5 digits",
				"Account number must be 1-12 digits",
				"Direct deposit authorization must be signed",
			},
		},
		{
			name:     "Empty account",
			banking:  Banking{InstitutionNumber: "001", TransitNumber: "12345", AuthorizationSigned: true},
			expected: []string{"Account number must be 1-12 digits"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.banking.Validate())
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dob := time.Date(2000, 5, 5, 0, 0, 0, 0, time.UTC)
	yes := true
	valid := Profile{
		FirstName: "Ada", LastName: "Lovelace", DateOfBirth: &dob, SIN: "046-454-286",
		Phone: "780-555-1234", AddressLine1: "1 Main St", City: "Edmonton", Province: "AB",
		PostalCode: "T5J 2N9", CitizenshipStatus: "Canadian Citizen", ResidencyStatus: &yes,
	}
	assert.Empty(t, valid.Validate(now))

	missing := Profile{}
	errs := missing.Validate(now)
	assert.Contains(t, errs, "First name is required")
	assert.Contains(t, errs, "Date of birth is required")
	assert.Contains(t, errs, "Alberta residency status is required")
	assert.NotContains(t, errs, "Phone must be 10 digits")

	hostile := valid
	hostile.FirstName = "Eve\nD|AES-2026-FFFFFF|Mallory X|999|99999|999999999999|50000.00|20260101|SCHOLARSHIP"
	hostile.LastName = "Doe|Smith"
	assert.Equal(t, []string{"First name contains invalid characters", "Last name contains invalid characters"}, hostile.Validate(now))

	bad := valid
	bad.Phone = "123"
	bad.PostalCode = "ABC"
	assert.Equal(t, []string{"Phone must be 10 digits", "Invalid postal code format (e.g., T5J 2N9)"}, bad.Validate(now))
}

func TestName(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"Ada", true},
		{"Marie-Claire O'Neil", true},
		{"Zoë", true},
		{"", true},
		{"Jane|Doe", false},
		{"Jane\nDoe", false},
		{"Jane\rDoe", false},
		{"Jane\tDoe", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			errs := Name("First name", tt.value)
			if tt.ok {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, []string{"First name contains invalid characters"}, errs)
		})
	}
}
