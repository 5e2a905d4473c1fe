package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := &AppError{Code: CodeStoreError, Message: "store operation failed"}
	assert.Equal(t, "store operation failed", err.Error())

	wrapped := err.WithError(errors.New("connection reset"))
	assert.Equal(t, "store operation failed: connection reset", wrapped.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("no reachable servers")
	err := Wrap(cause, ErrStore)

	assert.Equal(t, CodeStoreError, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestIs_MatchesByCode(t *testing.T) {
	err := Wrap(errors.New("aud mismatch"), ErrInvalidToken)

	assert.True(t, Is(err, ErrInvalidToken))
	assert.False(t, Is(err, ErrUnauthenticated))
	assert.False(t, Is(errors.New("plain"), ErrInvalidToken))
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid token", ErrInvalidToken, http.StatusBadRequest},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"store", ErrStore, http.StatusInternalServerError},
		{"method not allowed", ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"wrapped", Wrap(errors.New("x"), ErrUnauthenticated), http.StatusUnauthorized},
		{"unknown", errors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, GetStatus(tt.err))
		})
	}
}

func TestWithMessage(t *testing.T) {
	err := ErrValidation.WithMessage("mission id is required")
	assert.Equal(t, "mission id is required", err.Message)
	assert.Equal(t, CodeValidationError, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}
