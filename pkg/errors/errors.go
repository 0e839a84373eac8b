package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Style resolution errors
	ErrUnknownColor     ErrorCode = "UNKNOWN_COLOR"
	ErrUnknownAttribute ErrorCode = "UNKNOWN_ATTRIBUTE"

	// Output errors
	ErrWrite ErrorCode = "WRITE"
)

// RcolorsError represents a structured error with code and details
type RcolorsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RcolorsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RcolorsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RcolorsError) Is(target error) bool {
	var targetErr *RcolorsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RcolorsError with the given code and message
func New(code ErrorCode, message string) *RcolorsError {
	return &RcolorsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RcolorsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RcolorsError {
	return &RcolorsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RcolorsError
func Wrap(err error, code ErrorCode, message string) *RcolorsError {
	if err == nil {
		return nil
	}
	return &RcolorsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RcolorsError {
	if err == nil {
		return nil
	}
	return &RcolorsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RcolorsError) WithDetail(key string, value interface{}) *RcolorsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rcErr *RcolorsError
	if errors.As(err, &rcErr) {
		return rcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RcolorsError
func GetErrorCode(err error) ErrorCode {
	var rcErr *RcolorsError
	if errors.As(err, &rcErr) {
		return rcErr.Code
	}
	return ErrUnknown
}
