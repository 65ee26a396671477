// Package errors provides structured error types for dotkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the graph model, the render engines and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the failure classes of the graph builder and its render collaborator:
//   - INVALID_VALUE: an attribute value is outside its documented domain
//   - CAPABILITY: an attribute was attached to an element kind it is not defined for
//   - INVALID_STATE: an operation was called in the wrong construction order
//   - PROCESS_FAILED / TIMEOUT: the external layout engine failed or ran too long
//   - INVALID_*: malformed engine, format, document or configuration input
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidValue, "invalid 'fontsize' attribute: %v", size)
//	if errors.Is(err, errors.ErrCodeInvalidValue) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph model errors
	ErrCodeInvalidValue Code = "INVALID_VALUE"
	ErrCodeCapability   Code = "CAPABILITY"
	ErrCodeInvalidState Code = "INVALID_STATE"

	// Input errors
	ErrCodeInvalidEngine   Code = "INVALID_ENGINE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeEngineNotFound Code = "ENGINE_NOT_FOUND"

	// Render collaborator errors
	ErrCodeProcess Code = "PROCESS_FAILED"
	ErrCodeTimeout Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// It walks the error chain and matches the first coded error it finds,
// including *ProcessError values.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	var pe *ProcessError
	var e *Error
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &pe):
		return ErrCodeProcess
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ProcessError is returned when the external layout engine exits with a
// non-zero status. It carries the captured diagnostic stream.
type ProcessError struct {
	Command  string // Engine binary that was executed
	ExitCode int    // Process exit status
	Stderr   string // Captured diagnostic output
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, msg)
}

// Code returns the error code for this error type.
func (e *ProcessError) Code() Code {
	return ErrCodeProcess
}
