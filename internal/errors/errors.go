// Package errors provides sentinel errors for the expressforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates the project name failed path-safety validation.
	ErrInvalidName = errors.New("invalid project name")

	// ErrTargetExists indicates the target directory already has content.
	ErrTargetExists = errors.New("target directory not empty")

	// ErrWrite indicates a directory-creation or file-write step failed.
	ErrWrite = errors.New("write failed")

	// ErrExternalAction indicates a git or package-manager invocation failed.
	// Errors in this category are reported as warnings, never fatal.
	ErrExternalAction = errors.New("external action failed")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the filesystem path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidNameError creates an invalid project name error with details.
func NewInvalidNameError(message, hint string) error {
	return &DetailError{
		Type:    "invalid project name",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidName,
	}
}

// NewTargetExistsError creates a target-exists error with details.
func NewTargetExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "target directory not empty",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrTargetExists,
	}
}

// NewWriteError creates a write failure error with details. The message must
// tell the caller that partial output was left in place.
func NewWriteError(message, location string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  message,
		Location: location,
		Hint:     "Partially generated files were left in place; remove the directory before retrying.",
		Cause:    fmt.Errorf("%w: %w", ErrWrite, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with an explicit process exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
