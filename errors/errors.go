package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is the stable kind of an application error.
type ErrorCode string

const (
	ErrCodeInvalidRange     ErrorCode = "INVALID_RANGE"
	ErrCodeInvalidSort      ErrorCode = "INVALID_SORT"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeConflict         ErrorCode = "CONFLICT"
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeInternal         ErrorCode = "INTERNAL"
)

// Resources named by NotFound errors.
const (
	ResourceUser    = "user"
	ResourceGroup   = "group"
	ResourceRole    = "role"
	ResourceSale    = "sale"
	ResourceRevenue = "revenue"
)

// AppError is the error type returned by services. Message is safe to show
// to the caller; Err carries the underlying cause for logs only.
type AppError struct {
	Code     ErrorCode
	Message  string
	Resource string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code and resource, so sentinel-style
// comparisons like errors.Is(err, &AppError{Code: ErrCodeConflict}) work.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Resource == "" || t.Resource == e.Resource
}

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidRange(message string) *AppError {
	return NewAppError(ErrCodeInvalidRange, message, nil)
}

func InvalidSort(message string) *AppError {
	return NewAppError(ErrCodeInvalidSort, message, nil)
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

// NotFound reports a missing resource. An empty message gets a default one.
func NotFound(resource, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("Could not find a %s for the provided id.", resource)
	}
	return &AppError{Code: ErrCodeNotFound, Message: message, Resource: resource}
}

// StoreUnavailable hides the driver error behind a generic message.
func StoreUnavailable(err error) *AppError {
	return NewAppError(ErrCodeStoreUnavailable, "Failed to access database, please try again at a later time", err)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeInternal, message, err)
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError returns the first AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CodeOf returns the error code of err, or ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// ErrInconsistentBreakdown is returned when a per-user row has no month bucket.
	ErrInconsistentBreakdown = errors.New("user breakdown row has no matching month bucket")
)
