package domain

import "github.com/google/uuid"

type Role string

const (
	RoleApplicant          Role = "applicant"
	RoleScholarshipStaff   Role = "scholarship_staff"
	RoleScholarshipManager Role = "scholarship_manager"
	RoleAdmin              Role = "admin"
	RoleSuperadmin         Role = "superadmin"
	RoleFinance            Role = "finance"
)

var Roles = []Role{
	RoleApplicant, RoleScholarshipStaff, RoleScholarshipManager, RoleAdmin, RoleSuperadmin, RoleFinance,
}

func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type Capability string

const (
	CapApply     Capability = "apply"
	CapReview    Capability = "review"
	CapPayments  Capability = "payments"
	CapAdmin     Capability = "admin"
	CapAnalytics Capability = "analytics"
)

var capabilities = map[Role][]Capability{
	RoleApplicant:          {CapApply},
	RoleScholarshipStaff:   {CapReview, CapPayments, CapAnalytics},
	RoleScholarshipManager: {CapReview, CapPayments, CapAnalytics},
	RoleAdmin:              {CapReview, CapPayments, CapAdmin, CapAnalytics},
	RoleSuperadmin:         {CapReview, CapPayments, CapAdmin, CapAnalytics},
	RoleFinance:            {CapPayments, CapAnalytics},
}

// Authorize is the single place role membership is checked.
func Authorize(role Role, c Capability) bool {
	for _, have := range capabilities[role] {
		if have == c {
			return true
		}
	}
	return false
}

// IsStaff reports whether role may sign in through the staff SSO.
func (r Role) IsStaff() bool {
	return Authorize(r, CapReview) || Authorize(r, CapPayments)
}

func (r Role) Label() string {
	switch r {
	case RoleApplicant:
		return "Applicant"
	case RoleScholarshipStaff:
		return "Scholarship Staff"
	case RoleScholarshipManager:
		return "Scholarship Manager"
	case RoleAdmin:
		return "Administrator"
	case RoleSuperadmin:
		return "Super Administrator"
	case RoleFinance:
		return "Finance"
	}
	return string(r)
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// StaffRoles are alerted about suspected banking fraud.
var StaffRoles = []Role{
	RoleScholarshipStaff, RoleScholarshipManager, RoleAdmin, RoleSuperadmin, RoleFinance,
}

type RoleInfo struct {
	Code         Role         `json:"code"`
	Label        string       `json:"label"`
	Capabilities []Capability `json:"permissions"`
}

func RoleInfos() []RoleInfo {
	list := make([]RoleInfo, 0, len(Roles))
	for _, r := range Roles {
		list = append(list, RoleInfo{Code: r, Label: r.Label(), Capabilities: capabilities[r]})
	}
	return list
}

// RoleChange is reported back after an admin reassigns a role.
type RoleChange struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
	OldRole Role      `json:"old_role"`
	NewRole Role      `json:"new_role"`
}
