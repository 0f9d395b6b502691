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

	// Configuration errors
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// Injection errors
	ErrIOFailure        ErrorCode = "IO_FAILURE"
	ErrNetworkFailure   ErrorCode = "NETWORK_FAILURE"
	ErrNoInsertionPoint ErrorCode = "NO_INSERTION_POINT"
)

// SuperflowError represents a structured error with code and details
type SuperflowError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SuperflowError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SuperflowError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SuperflowError carrying the same code
func (e *SuperflowError) Is(target error) bool {
	var targetErr *SuperflowError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SuperflowError with the given code and message
func New(code ErrorCode, message string) *SuperflowError {
	return &SuperflowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SuperflowError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SuperflowError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SuperflowError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SuperflowError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SuperflowError) WithDetail(key string, value interface{}) *SuperflowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SuperflowError) WithDetails(details map[string]interface{}) *SuperflowError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sfErr *SuperflowError
	if errors.As(err, &sfErr) {
		return sfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SuperflowError
func GetErrorCode(err error) ErrorCode {
	var sfErr *SuperflowError
	if errors.As(err, &sfErr) {
		return sfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SuperflowError
func GetErrorDetails(err error) map[string]interface{} {
	var sfErr *SuperflowError
	if errors.As(err, &sfErr) {
		return sfErr.Details
	}
	return nil
}
