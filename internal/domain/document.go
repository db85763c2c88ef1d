package domain

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxDocumentSize     = 10 << 20
	MaxDocumentsPerApp  = 10
	DefaultDocumentType = "other"
)

var allowedExtensions = map[string]bool{
	".pdf": true, ".docx": true, ".doc": true, ".jpg": true, ".jpeg": true, ".png": true,
}

type Document struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	FileName      string    `json:"file_name"`
	FileType      string    `json:"file_type"`
	FileSize      int64     `json:"file_size"`
	StoragePath   string    `json:"-"`
	DocumentType  string    `json:"document_type"`
	Verified      bool      `json:"verified"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// DocumentUpload is an incoming file before it is stored.
type DocumentUpload struct {
	FileName     string
	ContentType  string
	Size         int64
	DocumentType string
	Body         io.Reader
}

// Validate checks size and extension limits for an upload.
func (u DocumentUpload) Validate() error {
	if u.Size > MaxDocumentSize {
		return BadRequest("File exceeds the 10MB limit")
	}
	ext := strings.ToLower(filepath.Ext(u.FileName))
	if !allowedExtensions[ext] {
		return BadRequest("Invalid file type. Allowed: PDF, DOCX, DOC, JPG, PNG")
	}
	return nil
}
