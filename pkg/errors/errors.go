// Package errors provides structured error types for the mobius tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - *_NOT_FOUND: Missing files
//   - UNSUPPORTED: An external tool (rsvg-convert, ffmpeg) is not installed
//   - RENDER_FAILED: A renderer or encoder failed while producing output
//   - INTERNAL_*: Unexpected internal errors
//
// The geometry core never returns errors; numeric edge cases are resolved by
// policy there. Everything in this taxonomy belongs to configuration, file
// output and the external rendering collaborators.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "depth must be >= 0, got %d", depth)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "encode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPreset Code = "INVALID_PRESET"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Rendering collaborator errors
	ErrCodeUnsupported  Code = "UNSUPPORTED"
	ErrCodeRenderFailed Code = "RENDER_FAILED"

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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ToolMissingError reports that an external program needed by a renderer
// is not on PATH. It carries install hints for the user.
type ToolMissingError struct {
	Tool  string // Executable name, e.g. "ffmpeg"
	Hints string // Multi-line install instructions
}

// Error implements the error interface.
func (e *ToolMissingError) Error() string {
	if e.Hints != "" {
		return fmt.Sprintf("%s not found. Install with:\n%s", e.Tool, e.Hints)
	}
	return fmt.Sprintf("%s not found", e.Tool)
}

// Code returns the error code for this error type.
func (e *ToolMissingError) Code() Code {
	return ErrCodeUnsupported
}

// IsToolMissing reports whether err (or anything it wraps) is a
// *ToolMissingError.
func IsToolMissing(err error) bool {
	var e *ToolMissingError
	return errors.As(err, &e)
}
