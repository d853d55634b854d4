package apperrors

import "errors"

// Error classes. Concrete sentinels below wrap one of these so callers can
// match either the exact condition or the whole class with errors.Is.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrAlreadyExists    = errors.New("resource already exists")
	ErrValidationFailed = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
)

// Record errors
var (
	ErrStudentNotFound    = &CustomError{Err: ErrNotFound, Message: "student not found"}
	ErrCourseNotFound     = &CustomError{Err: ErrNotFound, Message: "course not found"}
	ErrEnrollmentNotFound = &CustomError{Err: ErrNotFound, Message: "enrollment not found"}
	ErrGradeNotFound      = &CustomError{Err: ErrNotFound, Message: "grade not found"}
	ErrUserNotFound       = &CustomError{Err: ErrNotFound, Message: "user not found"}

	ErrDuplicateEnrollment = &CustomError{Err: ErrAlreadyExists, Message: "student is already enrolled in this course for this semester"}
	ErrCourseCodeExists    = &CustomError{Err: ErrAlreadyExists, Message: "course with this code already exists"}
	ErrEmailAlreadyExists  = &CustomError{Err: ErrAlreadyExists, Message: "email already exists"}

	ErrInvalidScore       = &CustomError{Err: ErrValidationFailed, Message: "marks must be between 0 and 100"}
	ErrAllocationConflict = errors.New("student identifier allocation conflict")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// CustomError carries an error class plus human context. It satisfies
// errors.Is for its wrapped class via Unwrap.
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// NewCustomError creates a CustomError with an underlying error class
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails returns a copy of the error with context details attached
// (offending keys etc.) so the caller can decide between retry and a
// user-facing message. The shared sentinel is never mutated.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	return &CustomError{
		Err:     e.Err,
		Message: e.Message,
		Code:    e.Code,
		Details: details,
	}
}

// WithCode returns a copy of the error with a stable error code attached
func (e *CustomError) WithCode(code string) *CustomError {
	return &CustomError{
		Err:     e.Err,
		Message: e.Message,
		Code:    code,
		Details: e.Details,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
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
