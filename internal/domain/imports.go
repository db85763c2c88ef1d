package domain

import (
	"time"

	"github.com/google/uuid"
)

// LegacySubmission is one row of a paper or legacy-system export.
type LegacySubmission struct {
	Email             string     `json:"email"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	ScholarshipCode   string     `json:"scholarship_code"`
	ScholarshipName   string     `json:"scholarship_name"`
	Status            Status     `json:"status"`
	CitizenshipStatus string     `json:"citizenship_status"`
	SubmittedAt       *time.Time `json:"submitted_at"`
}

type ImportRowError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

type ImportResult struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Total    int              `json:"total"`
	Errors   []ImportRowError `json:"errors"`
}

type ImportHistory struct {
	ID              int        `json:"id"`
	ImportDate      time.Time  `json:"import_date"`
	FileName        string     `json:"file_name"`
	TableName       string     `json:"table_name"`
	RecordsImported int        `json:"records_imported"`
	RecordsFailed   int        `json:"records_failed"`
	Status          string     `json:"status"`
	ImportedBy      *uuid.UUID `json:"imported_by,omitempty"`
}
