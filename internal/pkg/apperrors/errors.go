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

// Faculty errors
var (
	ErrFacultyNotFound = errors.New("faculty not found")
	ErrEmailTaken      = errors.New("email already registered to another faculty")
	ErrPhoneTaken      = errors.New("phone number already registered to another faculty")
	ErrFacultyInUse    = errors.New("faculty still owns subjects or activities and cannot be deleted")
)

// Academic year errors
var (
	ErrAcademicYearNotFound = errors.New("academic year not found")
)

// Activity type errors
var (
	ErrActivityTypeNotFound = errors.New("activity type not found")
	ErrActivityTypeExists   = errors.New("activity type with this name already exists")
)

// Activity errors
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrNotActivityOwner = errors.New("activity belongs to another faculty")
)

// Subject errors
var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSubjectExists   = errors.New("subject with this course code already exists")
)

// Appraisal errors
var (
	ErrAppraisalNotFound = errors.New("appraisal not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a permission denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}
