// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, invalid input data, bad configuration
//   - Strategy errors (400-499): Unknown strategy types and registry conflicts
//   - Run errors (600-699): Cancelled runs and failed path evaluations
//   - Result store errors (700-799): Persistence and schema version failures
//
// Usage:
//
//	// Reject a constructor argument
//	err := errors.InvalidParameterf("short_window (%d) must be < long_window (%d)", short, long)
//
//	// Reject malformed data handed to an evaluator
//	err := errors.InvalidInputf("price path needs at least 2 points, got %d", len(path))
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeStoreFailed, "failed to insert summary", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeInvalidParameter) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Sentinel values for use with errors.Is. Matching is done on the error code only.
var (
	ErrInvalidParameter = New(ErrCodeInvalidParameter, "invalid parameter")
	ErrInvalidInput     = New(ErrCodeInvalidInput, "invalid input")
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// InvalidParameterf reports a constructor-time contract violation.
func InvalidParameterf(format string, args ...any) *Error {
	return Newf(ErrCodeInvalidParameter, format, args...)
}

// InvalidInputf reports a shape or length violation on data handed to an evaluator.
func InvalidInputf(format string, args ...any) *Error {
	return Newf(ErrCodeInvalidInput, format, args...)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.Code == t.Code
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsInvalidParameter checks if an error carries ErrCodeInvalidParameter anywhere in its chain.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsInvalidInput checks if an error carries ErrCodeInvalidInput anywhere in its chain.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
