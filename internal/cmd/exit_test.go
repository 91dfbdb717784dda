package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ferrors "github.com/expressforge/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "invalid name",
			err:      ferrors.ErrInvalidName,
			wantCode: ExitValidationError,
		},
		{
			name:     "wrapped invalid name",
			err:      ferrors.Wrap(ferrors.ErrInvalidName, "name check failed"),
			wantCode: ExitValidationError,
		},
		{
			name:     "target exists",
			err:      ferrors.NewTargetExistsError("not empty", "/tmp/x", ""),
			wantCode: ExitValidationError,
		},
		{
			name:     "write failure",
			err:      ferrors.NewWriteError("mkdir failed", "/tmp/x", errors.New("disk full")),
			wantCode: ExitWriteError,
		},
		{
			name:     "explicit exit error wins",
			err:      ferrors.NewExitError(errors.New("cancelled"), ExitGeneralError),
			wantCode: ExitGeneralError,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Write Error", ExitCodeName(ExitWriteError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
