// Package errors provides coded errors for organizer.
//
// Codes are stable strings so tests and callers can branch on the kind of
// failure without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Run errors
	ErrInputDir ErrorCode = "INPUT_DIR"
	ErrEditor   ErrorCode = "EDITOR"

	// Relocation errors
	ErrInvalidSource     ErrorCode = "INVALID_SOURCE"
	ErrInvalidName       ErrorCode = "INVALID_NAME"
	ErrDirCreate         ErrorCode = "DIR_CREATE"
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
	ErrMove              ErrorCode = "MOVE"
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"
)

// OrganizerError represents a structured error with code and details
type OrganizerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OrganizerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OrganizerError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an OrganizerError with the same code.
func (e *OrganizerError) Is(target error) bool {
	var targetErr *OrganizerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OrganizerError with the given code and message
func New(code ErrorCode, message string) *OrganizerError {
	return &OrganizerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OrganizerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OrganizerError {
	return &OrganizerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OrganizerError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *OrganizerError {
	if err == nil {
		return nil
	}
	return &OrganizerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OrganizerError {
	if err == nil {
		return nil
	}
	return &OrganizerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OrganizerError) WithDetail(key string, value interface{}) *OrganizerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *OrganizerError) WithDetails(details map[string]interface{}) *OrganizerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var orgErr *OrganizerError
	if errors.As(err, &orgErr) {
		return orgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OrganizerError
func GetErrorCode(err error) ErrorCode {
	var orgErr *OrganizerError
	if errors.As(err, &orgErr) {
		return orgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OrganizerError
func GetErrorDetails(err error) map[string]interface{} {
	var orgErr *OrganizerError
	if errors.As(err, &orgErr) {
		return orgErr.Details
	}
	return nil
}
