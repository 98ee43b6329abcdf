// Package errors defines the structured application error type used across
// the Home4Paws backend. Every error that can reach a client carries a
// stable code and an HTTP status; internal causes are chained and never
// serialized.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes surfaced in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeRateLimited        = "rate_limit_exceeded"
	CodeInternal           = "internal_error"

	// Token verification codes. These never reach a client directly: the
	// authentication gate degrades every token failure to an anonymous
	// request. They exist so the codec's callers and tests can tell the
	// failure modes apart.
	CodeTokenMalformed = "token_malformed"
	CodeTokenBadSig    = "token_bad_signature"
	CodeTokenExpired   = "token_expired"
)

// AppError is a structured application error.
type AppError struct {
	Code    string
	Status  int
	Message string
	cause   error
}

// New creates an AppError with the given code, HTTP status and message.
func New(code string, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is makes sentinel comparison work through WithError copies: two AppErrors
// match when their codes match.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithError returns a copy of the error with a cause attached. The receiver
// is not mutated, so package-level sentinels stay shareable.
func (e *AppError) WithError(cause error) *AppError {
	clone := *e
	clone.cause = cause
	return &clone
}

// WithMessage returns a copy of the error with a different client-facing
// message.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// Predefined sentinels.
var (
	ErrInvalidRequest     = New(CodeInvalidRequest, http.StatusBadRequest, "invalid request")
	ErrInvalidCredentials = New(CodeInvalidCredentials, http.StatusUnauthorized, "Invalid credentials")
	ErrUnauthorized       = New(CodeUnauthorized, http.StatusUnauthorized, "Authentication required")
	ErrAdminRequired      = New(CodeUnauthorized, http.StatusUnauthorized, "Access denied. Admin privileges required.")
	ErrNotFound           = New(CodeNotFound, http.StatusNotFound, "resource not found")
	ErrConflict           = New(CodeConflict, http.StatusConflict, "resource conflict")
	ErrRateLimited        = New(CodeRateLimited, http.StatusTooManyRequests, "Too many requests, please try again later")
	ErrInternalServer     = New(CodeInternal, http.StatusInternalServerError, "internal server error")
	ErrDatabaseOperation  = New(CodeInternal, http.StatusInternalServerError, "database operation failed")

	ErrTokenMalformed        = New(CodeTokenMalformed, http.StatusUnauthorized, "token is malformed")
	ErrTokenSignatureInvalid = New(CodeTokenBadSig, http.StatusUnauthorized, "token signature verification failed")
	ErrTokenExpired          = New(CodeTokenExpired, http.StatusUnauthorized, "token has expired")
)

// Domain-specific constructors.

// ErrValidation creates a 400 with a field-level message.
func ErrValidation(message string) *AppError {
	return New(CodeInvalidRequest, http.StatusBadRequest, message)
}

// ErrResourceNotFound creates a 404 naming the missing resource.
func ErrResourceNotFound(resource string, id interface{}) *AppError {
	return New(CodeNotFound, http.StatusNotFound, fmt.Sprintf("%s not found with ID: %v", resource, id))
}

// ErrDuplicate creates a 409 for uniqueness violations.
func ErrDuplicate(what, value string) *AppError {
	return New(CodeConflict, http.StatusConflict, fmt.Sprintf("%s already exists: %s", what, value))
}

// AsAppError attempts to extract an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
