// Package validate holds the pure field rules shared by profile, banking
// and application writes. Every check returns human-readable messages and
// callers fail the whole write when any are produced.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/ShiraazMoollatjie/goluhn"
)

const MinApplicantAge = 16

var (
	nineDigits  = regexp.MustCompile(`^\d{9}$`)
	tenDigits   = regexp.MustCompile(`^\d{10}$`)
	postalCode  = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d$`)
	institution = regexp.MustCompile(`^\d{3}$`)
	transit     = regexp.MustCompile(`^\d{5}$`)
	account     = regexp.MustCompile(`^\d{1,12}$`)

	sinSeparators   = strings.NewReplacer("-", "", " ", "")
	phoneSeparators = strings.NewReplacer("-", "", " ", "", "(", "", ")", "")
)

func NormalizeSIN(sin string) string {
	return sinSeparators.Replace(sin)
}

func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(phone)
}

func SIN(sin string) []string {
	if !nineDigits.MatchString(NormalizeSIN(sin)) {
		return []string{"SIN must be 9 digits (format: NNN-NNN-NNN)"}
	}
	return nil
}

// SINChecksum reports whether a 9-digit SIN passes the Luhn check. A
// failure is a fraud signal, not a reason to reject the write.
func SINChecksum(sin string) bool {
	return goluhn.Validate(NormalizeSIN(sin)) == nil
}

// Name rejects values that cannot sit on one line of a delimited export:
// the pipe separator and any control character.
func Name(label, v string) []string {
	if strings.IndexFunc(v, func(r rune) bool { return r == '|' || unicode.IsControl(r) }) >= 0 {
		return []string{label + " contains invalid characters"}
	}
	return nil
}

func Phone(phone string) []string {
	if !tenDigits.MatchString(NormalizePhone(phone)) {
		return []string{"Phone must be 10 digits"}
	}
	return nil
}

func PostalCode(code string) []string {
	if !postalCode.MatchString(code) {
		return []string{"Invalid postal code format (e.g., T5J 2N9)"}
	}
	return nil
}

// Age uses calendar years, so the 16th birthday itself qualifies.
func Age(dob, now time.Time) []string {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < MinApplicantAge {
		return []string{"Applicant must be at least 16 years old"}
	}
	return nil
}

type Banking struct {
	InstitutionNumber   string
	TransitNumber       string
	AccountNumber       string
	AuthorizationSigned bool
}

func (b Banking) Validate() []string {
	var errs []string
	if !institution.MatchString(b.InstitutionNumber) {
		errs = append(errs, "Institution number must be exactly 3 digits")
	}
	if !transit.MatchString(b.TransitNumber) {
		errs = append(errs, "Transit number must be exactly 5 digits")
	}
	if !account.MatchString(b.AccountNumber) {
		errs = append(errs, "Account number must be 1-12 digits")
	}
	if !b.AuthorizationSigned {
		errs = append(errs, "Direct deposit authorization must be signed")
	}
	return errs
}

type Profile struct {
	FirstName         string
	LastName          string
	DateOfBirth       *time.Time
	SIN               string
	Phone             string
	AddressLine1      string
	City              string
	Province          string
	PostalCode        string
	CitizenshipStatus string
	ResidencyStatus   *bool
}

// Validate runs the required-field list and every format rule.
func (p Profile) Validate(now time.Time) []string {
	var errs []string
	required := []struct {
		value string
		msg   string
	}{
		{p.FirstName, "First name is required"},
		{p.LastName, "Last name is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.msg)
		}
	}
	if p.DateOfBirth == nil {
		errs = append(errs, "Date of birth is required")
	}
	for _, r := range []struct {
		value string
		msg   string
	}{
		{p.SIN, "SIN is required"},
		{p.Phone, "Phone number is required"},
		{p.AddressLine1, "Street address is required"},
		{p.City, "City is required"},
		{p.Province, "Province is required"},
		{p.PostalCode, "Postal code is required"},
		{p.CitizenshipStatus, "Citizenship status is required"},
	} {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.msg)
		}
	}
	if p.ResidencyStatus == nil {
		errs = append(errs, "Alberta residency status is required")
	}

	errs = append(errs, Name("First name", p.FirstName)...)
	errs = append(errs, Name("Last name", p.LastName)...)
	if p.SIN != "" {
		errs = append(errs, SIN(p.SIN)...)
	}
	if p.Phone != "" {
		errs = append(errs, Phone(p.Phone)...)
	}
	if p.PostalCode != "" {
		errs = append(errs, PostalCode(p.PostalCode)...)
	}
	if p.DateOfBirth != nil {
		errs = append(errs, Age(*p.DateOfBirth, now)...)
	}
	return errs
}
