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
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

// Course and class errors
var (
	ErrFacultyNotFound  = errors.New("faculty not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course with this code already exists")
	ErrClassNotFound    = errors.New("class not found")
	ErrLecturerNotFound = errors.New("lecturer not found")
	ErrNotALecturer     = errors.New("user does not hold the lecturer role")
	ErrFacultyMismatch  = errors.New("lecturer belongs to a different faculty than the course")
)

// Report and feedback errors
var (
	ErrReportNotFound        = errors.New("report not found")
	ErrReportDateInFuture    = errors.New("report date cannot be in the future")
	ErrFeedbackAlreadyExists = errors.New("feedback already submitted for this report")
	ErrReportOutsideFaculty  = errors.New("report belongs to a course outside your faculty")
)

// Enrolment, attendance and rating errors
var (
	ErrAlreadyEnrolled  = errors.New("already enrolled in this class")
	ErrNotEnrolled      = errors.New("student is not enrolled in this class")
	ErrInvalidStatus    = errors.New("attendance status must be present or absent")
	ErrClassNotReported = errors.New("class has no lecture reports yet")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError carries an underlying sentinel error plus request-specific context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
