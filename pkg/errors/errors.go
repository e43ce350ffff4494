// Package errors provides structured error types for HyprGrid.
//
// Every failure the program can report carries a machine-readable Code so
// callers can tell a rejected grid apart from a missing config file or a
// failed monitor query without matching on message text.
//
// # Error Codes
//
// Codes are grouped by the component that raises them:
//   - INVALID_*, GRID_*: grid construction preconditions
//   - CONFIG_*: configuration file loading and validation
//   - MONITOR_*: active monitor detection
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeGridTooLarge, "grid too large: %d cells", n)
//	if errors.Is(err, errors.ErrCodeGridTooLarge) {
//	    // pick smaller dimensions
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConfigRead, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Grid construction errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeGridTooLarge Code = "GRID_TOO_LARGE"

	// Configuration errors
	ErrCodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	ErrCodeConfigRead     Code = "CONFIG_READ"
	ErrCodeConfigParse    Code = "CONFIG_PARSE"
	ErrCodeConfigInvalid  Code = "CONFIG_INVALID"

	// Monitor detection errors
	ErrCodeMonitorQuery    Code = "MONITOR_QUERY"
	ErrCodeMonitorParse    Code = "MONITOR_PARSE"
	ErrCodeMonitorNotFound Code = "MONITOR_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause when one is present.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s\n%v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
