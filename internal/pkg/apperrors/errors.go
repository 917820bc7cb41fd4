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
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidRole      = errors.New("invalid role")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPasswordAlreadySet = errors.New("password already set")
	ErrProfileNotFound    = errors.New("role profile not found")
)

// Course errors
var (
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseCodeAlreadyExists = errors.New("course with this code already exists")
	ErrCourseInactive          = errors.New("course is not active")
)

// Approval errors
var (
	ErrApprovalNotFound       = errors.New("approval request not found")
	ErrApprovalAlreadyDecided = errors.New("approval request has already been decided")
	ErrInvalidApprovalAction  = errors.New("invalid approval action")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrCourseFull          = errors.New("course has reached its capacity")
	ErrMissingPrerequisite = errors.New("missing prerequisite course")
)

// Teaching errors
var (
	ErrFacultyCourseNotFound      = errors.New("faculty course assignment not found")
	ErrFacultyCourseAlreadyExists = errors.New("course is already assigned to this faculty for the semester")
	ErrNotAssignedToCourse        = errors.New("faculty is not assigned to this course")
	ErrAttendanceAlreadyRecorded  = errors.New("attendance already recorded for this student and date")
	ErrAttendanceNotFound         = errors.New("attendance record not found")
	ErrMaterialNotFound           = errors.New("course material not found")
)

// Assignment errors
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
)

// Record errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrInvalidReportContent = errors.New("report content must be valid JSON")
)

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

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}
