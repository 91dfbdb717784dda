// Package cmd provides command implementations for the expressforge CLI.
package cmd

import (
	"errors"

	ferrors "github.com/expressforge/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully. External
	// action failures alone (git, package manager) keep this code.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a rejected project name or a non-empty
	// target directory.
	ExitValidationError = 2

	// ExitWriteError indicates a directory-creation or file-write failure.
	ExitWriteError = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitWriteError:
		return "Write Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for an explicit ExitError first
	var exitErr *ferrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ferrors.ErrInvalidName), errors.Is(err, ferrors.ErrTargetExists):
		return ExitValidationError
	case errors.Is(err, ferrors.ErrWrite):
		return ExitWriteError
	default:
		return ExitGeneralError
	}
}
