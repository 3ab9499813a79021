package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"validation", NewValidationError("bad", "", "packages", ""), ExitValidationError},
		{"not found", NewNotFoundError("missing", "/x", ""), ExitNotFound},
		{"permission", Wrap(ErrPermission, "cannot write"), ExitPermissionDenied},
		{"transform", fmt.Errorf("run: %w", ErrTransform), ExitTransformError},
		{"explicit exit error", &ExitError{Code: 42, Err: ErrNotFound}, 42},
		{"wrapped exit error", fmt.Errorf("outer: %w", &ExitError{Code: ExitTransformError}), ExitTransformError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	cause := Wrap(ErrValidation, "bad scope")
	e := NewExitError(cause)

	assert.Equal(t, ExitValidationError, e.Code)
	assert.Equal(t, "bad scope: validation error", e.Error())
	assert.ErrorIs(t, e, ErrValidation)
	assert.False(t, e.Printed)

	assert.Equal(t, "Transform Error", (&ExitError{Code: ExitTransformError}).Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Transform Error", ExitCodeName(ExitTransformError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
