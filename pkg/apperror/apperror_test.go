package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  *Error
		code int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Internal("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.code, tt.err.StatusCode)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("signature invalid")
	err := Wrap(401, "Invalid refresh token", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "Invalid refresh token: signature invalid", err.Error())
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, 409, StatusCode(Conflict("User already exists")))
	require.Equal(t, 401, StatusCode(fmt.Errorf("wrapped: %w", Unauthorized("Invalid password"))))
	require.Equal(t, 500, StatusCode(errors.New("connection reset")))
}

func TestMessageFor(t *testing.T) {
	require.Equal(t, "Invalid password", MessageFor(Unauthorized("Invalid password")))
	// Unexpected failures never leak internals to the client.
	require.Equal(t, "Internal server error", MessageFor(errors.New("pq: relation missing")))
}
