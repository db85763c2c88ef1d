package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	DisplayName       string     `json:"display_name"`
	Role              Role       `json:"role"`
	OAuthProvider     string     `json:"oauth_provider"`
	ACAID             string     `json:"aca_id,omitempty"`
	ASN               string     `json:"asn,omitempty"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Phone             string     `json:"phone"`
	AddressLine1      string     `json:"address_line1"`
	AddressLine2      string     `json:"address_line2"`
	City              string     `json:"city"`
	Province          string     `json:"province"`
	PostalCode        string     `json:"postal_code"`
	CitizenshipStatus string     `json:"citizenship_status"`
	ResidencyStatus   bool       `json:"residency_status"`
	IndigenousStatus  string     `json:"indigenous_status"`
	Gender            string     `json:"gender"`
	SINEncrypted      string     `json:"-"`
	ProfileComplete   bool       `json:"profile_complete"`
	IsBlocked         bool       `json:"is_blocked"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Search string
	Role   string
	Page
}

type UserSummary struct {
	User
	ApplicationCount int `json:"application_count"`
}

// ProfileView is the applicant's own profile with the SIN masked.
type ProfileView struct {
	User
	SINMasked string `json:"sin_masked,omitempty"`
}

// ProfileInput is a full profile submission.
type ProfileInput struct {
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	SIN               string     `json:"sin"`
	ASN               string     `json:"asn"`
	Phone             string     `json:"phone"`
	AddressLine1      string     `json:"address_line1"`
	AddressLine2      string     `json:"address_line2"`
	City              string     `json:"city"`
	Province          string     `json:"province"`
	PostalCode        string     `json:"postal_code"`
	CitizenshipStatus string     `json:"citizenship_status"`
	ResidencyStatus   *bool      `json:"residency_status"`
	IndigenousStatus  string     `json:"indigenous_status"`
	Gender            string     `json:"gender"`
}

// ProfilePatch changes only the non-nil fields. Date of birth and SIN are
// fixed once the profile exists.
type ProfilePatch struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	Phone             *string `json:"phone"`
	AddressLine1      *string `json:"address_line1"`
	AddressLine2      *string `json:"address_line2"`
	City              *string `json:"city"`
	Province          *string `json:"province"`
	PostalCode        *string `json:"postal_code"`
	CitizenshipStatus *string `json:"citizenship_status"`
	ResidencyStatus   *bool   `json:"residency_status"`
	IndigenousStatus  *string `json:"indigenous_status"`
	Gender            *string `json:"gender"`
	ASN               *string `json:"asn"`
}

// Apply merges the patch and recomputes the display name.
func (p ProfilePatch) Apply(u *User) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.Phone, p.Phone)
	set(&u.AddressLine1, p.AddressLine1)
	set(&u.AddressLine2, p.AddressLine2)
	set(&u.City, p.City)
	set(&u.Province, p.Province)
	set(&u.PostalCode, p.PostalCode)
	set(&u.CitizenshipStatus, p.CitizenshipStatus)
	set(&u.IndigenousStatus, p.IndigenousStatus)
	set(&u.Gender, p.Gender)
	set(&u.ASN, p.ASN)
	if p.ResidencyStatus != nil {
		u.ResidencyStatus = *p.ResidencyStatus
	}
	if p.FirstName != nil || p.LastName != nil {
		u.DisplayName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
}
