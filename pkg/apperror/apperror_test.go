package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("profile", "active"), http.StatusNotFound},
		{"validation", NewValidation("bad body", map[string]string{"message": "cannot be blank"}, nil), http.StatusUnprocessableEntity},
		{"invalid input", NewInvalidInput("bad query", nil), http.StatusBadRequest},
		{"conflict", NewConflict("profile", "email", "a@b.c"), http.StatusConflict},
		{"feature disabled", NewFeatureDisabled("AI features are currently disabled"), http.StatusServiceUnavailable},
		{"unavailable", NewUnavailable("db down", errors.New("dial")), http.StatusServiceUnavailable},
		{"internal", NewInternal("boom", errors.New("x")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("get profile failed: %w", NewNotFound("profile", "active")), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := NewInternal("failed to query profile", cause)

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
}

func TestIsExposed(t *testing.T) {
	assert.True(t, IsExposed(NewNotFound("profile", "active")))
	assert.True(t, IsExposed(NewFeatureDisabled("off")))
	assert.False(t, IsExposed(NewInternal("boom", nil)))
	assert.False(t, IsExposed(errors.New("raw")))
}

func TestToJSON_IncludesFieldDetails(t *testing.T) {
	body := NewValidation("bad", map[string]string{"query": "cannot be blank"}, nil).ToJSON()

	assert.Equal(t, "validation error", body["error"])
	assert.Equal(t, map[string]string{"query": "cannot be blank"}, body["details"])

	plain := NewNotFound("profile", "active").ToJSON()
	_, ok := plain["details"]
	assert.False(t, ok)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFound("profile", "active"))
	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "profile not found", appErr.Message)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
