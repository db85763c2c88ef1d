package dto

import (
	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
)

type StartApplicationRequestDTO struct {
	ScholarshipID uuid.UUID `json:"scholarship_id"`
}

// DraftRequestDTO carries a partial draft; absent sections are left untouched.
type DraftRequestDTO struct {
	PersonalInfo      *domain.PersonalInfo      `json:"personal_info"`
	PostsecondaryInfo *domain.PostsecondaryInfo `json:"postsecondary_info"`
	HighSchoolInfo    *domain.HighSchoolInfo    `json:"high_school_info"`
	AdditionalInfo    *domain.AdditionalInfo    `json:"additional_info"`
	AcademicMarks     *domain.AcademicMarks     `json:"academic_marks"`
	Essay             *string                   `json:"essay"`
	CitizenshipStatus *string                   `json:"citizenship_status"`
	IndigenousStatus  *string                   `json:"indigenous_status"`
	Gender            *string                   `json:"gender"`
	ResidencyStatus   *bool                     `json:"residency_status"`
	DeclarationSigned *bool                     `json:"declaration_signed"`
	PrivacyConsent    *bool                     `json:"privacy_consent"`
}

func (d DraftRequestDTO) Patch() domain.DraftPatch {
	return domain.DraftPatch{
		PersonalInfo:      d.PersonalInfo,
		PostsecondaryInfo: d.PostsecondaryInfo,
		HighSchoolInfo:    d.HighSchoolInfo,
		AdditionalInfo:    d.AdditionalInfo,
		AcademicMarks:     d.AcademicMarks,
		Essay:             d.Essay,
		CitizenshipStatus: d.CitizenshipStatus,
		IndigenousStatus:  d.IndigenousStatus,
		Gender:            d.Gender,
		ResidencyStatus:   d.ResidencyStatus,
		DeclarationSigned: d.DeclarationSigned,
		PrivacyConsent:    d.PrivacyConsent,
	}
}

type StartApplicationResponseDTO struct {
	Application *domain.Application `json:"application"`
	Existing    bool                `json:"existing"`
}
