// Package errors defines the application error hierarchy surfaced to clients.
package errors

import (
	"net/http"
	"strings"

	"cityportal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message while keeping code and status.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// NewValidationError builds a 400 error naming the violated constraint.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// NewMissingFieldsError builds a 400 error enumerating every missing
// required field of a request body.
func NewMissingFieldsError(fields []string) *BaseError {
	var message string
	if len(fields) == 1 {
		message = fields[0] + " is required"
	} else {
		message = "missing required fields: " + strings.Join(fields, ", ")
	}

	return NewBaseError(http.StatusBadRequest, "MISSING_REQUIRED_FIELDS", message, "")
}

// NewDatabaseExecuteError wraps an unexpected database failure. The driver
// error stays server-side; clients only see the generic message.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(
		NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", "internal server error", ""),
		message+": "+err.Error(),
	)
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	// Authentication-related errors. The token messages intentionally do not
	// distinguish the failing sub-cause beyond what the gate's state machine
	// exposes, to avoid credential-probing oracles.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrTokenNotProvided = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_NOT_PROVIDED",
		"token not provided",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"malformed token",
		"",
	)

	ErrTokenWrongScheme = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_WRONG_SCHEME",
		"invalid token format",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid token",
		"",
	)

	// Content-related errors
	ErrTwinCityNotFound = NewBaseError(
		http.StatusNotFound,
		"TWIN_CITY_NOT_FOUND",
		"twin city not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"location not found",
		"",
	)

	ErrIndicatorNotFound = NewBaseError(
		http.StatusNotFound,
		"INDICATOR_NOT_FOUND",
		"indicator not found",
		"",
	)

	ErrGalleryNotFound = NewBaseError(
		http.StatusNotFound,
		"GALLERY_NOT_FOUND",
		"gallery not found",
		"",
	)

	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"document not found",
		"",
	)

	ErrCollaborationNotFound = NewBaseError(
		http.StatusNotFound,
		"COLLABORATION_NOT_FOUND",
		"collaboration not found",
		"",
	)
)
