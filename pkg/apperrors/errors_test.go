package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeDatabaseError, "storage", "Query failed", http.StatusInternalServerError)

	assert.True(t, Is(appErr, cause))
	assert.Equal(t, cause, appErr.Unwrap())
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAsFindsAppErrorThroughWrapping(t *testing.T) {
	appErr := New(CodeNotFound, "internship", "Internship not found.", http.StatusNotFound)
	wrapped := fmt.Errorf("while loading listing: %w", appErr)

	var target *AppError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, CodeNotFound, target.Code)
	assert.Equal(t, http.StatusNotFound, target.HTTPCode)
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret cause"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
	appErr.WithDetails(map[string]string{"field": "value"})

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, string(raw), "secret cause")
	assert.NotContains(t, decoded, "HTTPCode")
	assert.Equal(t, "Internal server error", decoded["message"])
	assert.Equal(t, "system", decoded["domain"])
}

func TestDomainErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err      *AppError
		httpCode int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrEmailTaken, http.StatusConflict},
		{ErrWeakPassword, http.StatusBadRequest},
		{ErrInternshipNotFound, http.StatusNotFound},
		{ErrAlreadyApplied, http.StatusConflict},
		{ErrNotInternshipOwner, http.StatusForbidden},
		{ErrInvalidApplicationStatus, http.StatusBadRequest},
		{ErrNoUpdateFields, http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.httpCode, tc.err.HTTPCode, tc.err.Message)
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.NotNil(t, appErr.Details)
}
