package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotifySubmitted         = "submitted"
	NotifyMIRequest         = "mi_request"
	NotifyDecisionAvailable = "decision_available"
	NotifyPaymentProcessed  = "payment_processed"
	NotifyCORRequest        = "cor_request"
	NotifyActionRequired    = "action_required"
)

const (
	AuditLogin                  = "login"
	AuditLogout                 = "logout"
	AuditApplicationStarted     = "APPLICATION_STARTED"
	AuditApplicationSubmitted   = "APPLICATION_SUBMITTED"
	AuditApplicationWithdrawn   = "APPLICATION_WITHDRAWN"
	AuditApplicationResubmitted = "APPLICATION_RESUBMITTED"
	AuditDocumentUploaded       = "DOCUMENT_UPLOADED"
	AuditDocumentRemoved        = "DOCUMENT_REMOVED"
	AuditReviewNoteAdded        = "REVIEW_NOTE_ADDED"
	AuditMISent                 = "MI_SENT"
	AuditApplicationApproved    = "APPLICATION_APPROVED"
	AuditApplicationRejected    = "APPLICATION_REJECTED"
	AuditApplicationAssigned    = "APPLICATION_ASSIGNED"
	AuditCORAutoConfirmed       = "COR_AUTO_CONFIRMED"
	AuditCORCheckPending        = "COR_CHECK_PENDING"
	AuditCORRequestSent         = "COR_REQUEST_SENT"
	AuditCORResponseReceived    = "COR_RESPONSE_RECEIVED"
	AuditPaymentBatchGenerated  = "PAYMENT_BATCH_GENERATED"
	AuditPaymentBatchConfirmed  = "PAYMENT_BATCH_CONFIRMED"
	AuditProfileCreated         = "PROFILE_CREATED"
	AuditProfileUpdated         = "PROFILE_UPDATED"
	AuditBankingUpdated         = "BANKING_INFO_UPDATED"
	AuditDuplicateBankAccount   = "DUPLICATE_BANK_ACCOUNT_DETECTED"
	AuditSINChecksumFailed      = "SIN_CHECKSUM_FAILED"
	AuditScholarshipCreated     = "SCHOLARSHIP_CREATED"
	AuditScholarshipUpdated     = "SCHOLARSHIP_UPDATED"
	AuditUserRoleChanged        = "USER_ROLE_CHANGED"
	AuditUserBlocked            = "USER_BLOCKED"
	AuditUserUnblocked          = "USER_UNBLOCKED"
	AuditLegacyImport           = "LEGACY_IMPORT"
	AuditSFSSync                = "SFS_SYNC"
)

type Notification struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	Read          bool       `json:"read"`
	SentAt        time.Time  `json:"sent_at"`
}

type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// AuditEntry is an append-only record. Details, OldValues and NewValues
// are stored as JSON documents.
type AuditEntry struct {
	ID            uuid.UUID      `json:"id"`
	UserID        *uuid.UUID     `json:"user_id,omitempty"`
	ApplicationID *uuid.UUID     `json:"application_id,omitempty"`
	Action        string         `json:"action"`
	EntityType    string         `json:"entity_type,omitempty"`
	EntityID      string         `json:"entity_id,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
	OldValues     map[string]any `json:"old_values,omitempty"`
	NewValues     map[string]any `json:"new_values,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UserName      string         `json:"user_name,omitempty"`
	UserEmail     string         `json:"user_email,omitempty"`
	UserRole      string         `json:"user_role,omitempty"`
}

type AuditFilter struct {
	Search string
	Action string
	UserID *uuid.UUID
	Page
}

type CorrespondenceTemplate struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Subject      string    `json:"subject"`
	BodyTemplate string    `json:"body_template"`
}
