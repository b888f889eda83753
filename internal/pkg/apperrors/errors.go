package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = NewCustomError(ErrResourceNotFound, "user not found")
	ErrEmailAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "email already exists")
)

// Reference data errors
var (
	ErrUniversityNotFound      = NewCustomError(ErrResourceNotFound, "university not found")
	ErrUniversityAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "university with this name already exists")
	ErrScholarshipNotFound     = NewCustomError(ErrResourceNotFound, "scholarship not found")
	ErrScholarshipExists       = NewCustomError(ErrResourceAlreadyExists, "scholarship with this name already exists")
)

// Ledger errors
var (
	ErrApplicationNotFound = NewCustomError(ErrResourceNotFound, "application not found")
	ErrDocumentNotFound    = NewCustomError(ErrResourceNotFound, "document not found")

	// ErrInvalidTransition is returned when a decided record is asked to change status again.
	ErrInvalidTransition = NewCustomError(ErrConflict, "status can only change from pending")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
