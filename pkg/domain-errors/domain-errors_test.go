package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeNotFound, "constellation not found")
	assert.Equal(t, "constellation not found", err.Error())

	bare := &Error{Code: CodeInternal}
	assert.Equal(t, "internal_error", bare.Error())
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeUnauthorized, "bad credentials")
	assert.True(t, errors.Is(err, &Error{Code: CodeUnauthorized}))
	assert.False(t, errors.Is(err, &Error{Code: CodeNotFound}))
}

func TestWrapPreservesOriginalCode(t *testing.T) {
	inner := NewWithTarget(CodeConfigurationNotFound, "tenant T9 not configured", "T9")
	wrapped := Wrap(inner, CodeInternal, "projection failed")

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, CodeConfigurationNotFound, e.Code)
	assert.Equal(t, "T9", e.Target)
	assert.True(t, errors.Is(wrapped, inner))
}

func TestWrapForeignError(t *testing.T) {
	inner := fmt.Errorf("boom")
	wrapped := Wrap(inner, CodeInternal, "unexpected failure")

	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.ErrorIs(t, wrapped, inner)
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(New(CodeValidation, "bad id"), CodeValidation))
	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
	assert.False(t, HasCode(nil, CodeValidation))
}
