package errors

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New("NOT_FOUND", "student not found")
	assert.Equal(t, "student not found", err.Error())

	wrapped := Wrap(io.ErrUnexpectedEOF, "INTERNAL_ERROR", "read failed")
	assert.Equal(t, "read failed: unexpected EOF", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	wrapped := Wrap(io.ErrUnexpectedEOF, "INTERNAL_ERROR", "read failed")
	assert.True(t, stderrors.Is(wrapped, io.ErrUnexpectedEOF))

	plain := New("CONFLICT", "duplicate")
	assert.Nil(t, plain.Unwrap())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	domain := Clone(ErrNotFound, "course not found")
	got := FromError(domain)
	require.NotNil(t, got)
	assert.Equal(t, ErrNotFound.Code, got.Code)
	assert.Equal(t, "course not found", got.Message)

	plain := FromError(io.ErrUnexpectedEOF)
	require.NotNil(t, plain)
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.True(t, stderrors.Is(plain, io.ErrUnexpectedEOF))
}

func TestIs(t *testing.T) {
	err := Clone(ErrCapacityExceeded, "maximum student limit reached")
	assert.True(t, Is(err, ErrCapacityExceeded))
	assert.False(t, Is(err, ErrNotFound))
	assert.False(t, Is(nil, ErrNotFound))
}

func TestClone(t *testing.T) {
	clone := Clone(ErrValidation, "name is required")
	assert.Equal(t, ErrValidation.Code, clone.Code)
	assert.Equal(t, "name is required", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)

	same := Clone(ErrValidation, "")
	assert.Equal(t, ErrValidation.Message, same.Message)
	assert.Nil(t, Clone(nil, "ignored"))
}
