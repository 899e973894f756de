package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeAuthentication ErrorType = "authentication"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeInternal       ErrorType = "internal"
)

// Error represents a structured error in the HospitalCare system
type Error struct {
	Type    ErrorType         `json:"type"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Cause   error             `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error type to an HTTP status code
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeAuthentication:
		return http.StatusUnauthorized
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a new validation error with per-field details
func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeValidationFailed,
		Message: message,
		Fields:  fields,
	}
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(message string) *Error {
	return &Error{
		Type:    ErrorTypeAuthentication,
		Code:    ErrCodeAuthenticationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(code, message string) *Error {
	return &Error{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(code, message string, fields map[string]string) *Error {
	return &Error{
		Type:    ErrorTypeConflict,
		Code:    code,
		Message: message,
		Fields:  fields,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeInternal,
		Code:    ErrCodeInternalError,
		Message: message,
		Cause:   cause,
	}
}

// AsError extracts a structured *Error from an error chain, wrapping
// unknown failures as internal errors so every error carries an HTTP status
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewInternalError("An unexpected error occurred", err)
}

// Common error codes
const (
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeConflict             = "CONFLICT"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeScheduleConflict     = "SCHEDULE_CONFLICT"
	ErrCodeDuplicateKey         = "DUPLICATE_KEY"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodeIllegalTransition    = "ILLEGAL_STATUS_TRANSITION"
	ErrCodeDoctorInUse          = "DOCTOR_HAS_APPOINTMENTS"
)
