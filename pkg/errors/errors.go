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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rule key errors
	ErrInvalidKey ErrorCode = "INVALID_KEY"

	// Document errors
	ErrDocParse  ErrorCode = "DOC_PARSE"
	ErrDocFormat ErrorCode = "DOC_FORMAT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// StyledotError represents a structured error with code and details
type StyledotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StyledotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StyledotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StyledotError) Is(target error) bool {
	var targetErr *StyledotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StyledotError with the given code and message
func New(code ErrorCode, message string) *StyledotError {
	return &StyledotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StyledotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StyledotError {
	return &StyledotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StyledotError
func Wrap(err error, code ErrorCode, message string) *StyledotError {
	if err == nil {
		return nil
	}
	return &StyledotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StyledotError {
	if err == nil {
		return nil
	}
	return &StyledotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StyledotError) WithDetail(key string, value interface{}) *StyledotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *StyledotError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StyledotError
func GetErrorCode(err error) ErrorCode {
	var serr *StyledotError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StyledotError
func GetErrorDetails(err error) map[string]interface{} {
	var serr *StyledotError
	if errors.As(err, &serr) {
		return serr.Details
	}
	return nil
}
