package domain

import (
	"errors"
	"net/http"
)

// Error is a business failure that carries the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
	Errors  []string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Invalid is a 400 with an itemized list of problems.
func Invalid(msg string, errs []string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg, Errors: errs}
}

var (
	ErrApplicationNotFound = NotFound("Application not found")
	ErrScholarshipNotFound = NotFound("Scholarship not found")
	ErrUserNotFound        = NotFound("User not found")
	ErrBatchNotFound       = NotFound("Batch not found")
	ErrDocumentNotFound    = NotFound("Document not found or cannot be deleted")
	ErrCORTokenNotFound    = NotFound("COR request not found or already processed")
	ErrForbidden           = Forbidden("Unauthorized")
	ErrStatusChanged       = Conflict("Application status changed concurrently, reload and retry")
)

// StatusOf returns the HTTP status carried by err, or 500 for anything else.
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Status
	}
	return http.StatusInternalServerError
}
