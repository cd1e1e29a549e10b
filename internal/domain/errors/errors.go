package errors

import (
	"net/http"

	"github.com/46h1/buzzer/internal/errors"
)

// Kind classifies an error for callers that need to decide what to tell the user.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"     // malformed input, rejected before any write
	KindNotFound      Kind = "NOT_FOUND"      // missing user, invite or chat
	KindPermission    Kind = "PERMISSION"     // location or storage access denied
	KindTransientIO   Kind = "TRANSIENT_IO"   // storage or network hiccup, safe to retry
	KindStateConflict Kind = "STATE_CONFLICT" // the resource moved on (e.g. invite already resolved)
	KindInternal      Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Taxonomy tag
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches by business code so that copies made by WithDetails still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the taxonomy tag
func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf returns the taxonomy tag of err, looking through wrapping.
// Errors that are not AppErrors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err carries the given taxonomy tag.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The request contains invalid data",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	ErrInvalidTimestamp = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_TIMESTAMP",
		"The location timestamp is too far in the future",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Radius must be one of small, medium or large",
		"",
	)

	ErrSelfBuzz = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"SELF_BUZZ",
		"You cannot buzz yourself",
		"",
	)

	ErrInvalidMedia = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_MEDIA",
		"Profile pictures must be images within the upload size limit",
		"",
	)

	// Not found
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrBuzzNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"BUZZ_NOT_FOUND",
		"Buzz not found",
		"",
	)

	ErrChatNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"CHAT_NOT_FOUND",
		"Chat not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Permission
	ErrLocationPermissionDenied = NewBaseError(
		KindPermission,
		http.StatusForbidden,
		"LOCATION_PERMISSION_DENIED",
		"Location access is disabled, enable it in your device settings and start sharing again",
		"",
	)

	ErrStoragePermissionDenied = NewBaseError(
		KindPermission,
		http.StatusForbidden,
		"STORAGE_PERMISSION_DENIED",
		"The media bucket refused the upload, check the storage access settings",
		"",
	)

	ErrForbidden = NewBaseError(
		KindPermission,
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not allowed to act on this resource",
		"",
	)

	// State conflicts
	ErrBuzzNotPending = NewBaseError(
		KindStateConflict,
		http.StatusConflict,
		"BUZZ_NOT_PENDING",
		"This buzz has already been answered",
		"",
	)

	ErrBuzzAlreadyPending = NewBaseError(
		KindStateConflict,
		http.StatusConflict,
		"BUZZ_ALREADY_PENDING",
		"You already have a pending buzz for this user",
		"",
	)

	ErrLocationSessionNotStarted = NewBaseError(
		KindStateConflict,
		http.StatusConflict,
		"LOCATION_SESSION_NOT_STARTED",
		"Start location sharing before sending positions",
		"",
	)

	// Transient
	ErrStorageUnavailable = NewBaseError(
		KindTransientIO,
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"Something went wrong on our side, please try again",
		"",
	)

	ErrTooManyReports = NewBaseError(
		KindTransientIO,
		http.StatusTooManyRequests,
		"TOO_MANY_REPORTS",
		"Location updates are arriving too fast, please try again shortly",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a storage execution failure, implementing the AppError interface.
// It is transient: the caller may retry.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the taxonomy tag
func (e *DatabaseExecuteError) Kind() Kind {
	return KindTransientIO
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Something went wrong on our side, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
