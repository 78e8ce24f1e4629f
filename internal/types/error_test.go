package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorDefaults(t *testing.T) {
	cause := errors.New("boom")

	err := NewError(UninitializedStatusCode, "", cause)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, InternalServiceError, err.ErrorCode)

	err = NewError(UninitializedStatusCode, Conflict, cause)
	assert.Equal(t, http.StatusConflict, err.StatusCode)

	err = NewError(http.StatusTeapot, TransferFailed, cause)
	assert.Equal(t, http.StatusTeapot, err.StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, TransferFailed.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, ErrorCode("UNKNOWN").StatusCode())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("deposit already executed")
	wrapped := fmt.Errorf("relay: %w", NewError(http.StatusConflict, Conflict, cause))

	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, HasErrorCode(wrapped, Conflict))
	assert.False(t, HasErrorCode(wrapped, NotFound))
	assert.False(t, HasErrorCode(cause, Conflict))
	assert.Equal(t, "deposit already executed", NewInternalServiceError(cause).Error())
}
