package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{Payment("declined"), http.StatusPaymentRequired},
		{Forbidden("not yours"), http.StatusForbidden},
		{NotFound("session"), http.StatusNotFound},
		{Conflict("overlap"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.err.HTTPStatus())
	}
}

func TestAsWrapsUnknownErrors(t *testing.T) {
	appErr := As(errors.New("boom"))
	require.Equal(t, KindInternal, appErr.Kind)

	conflict := Conflict("overlap")
	require.Same(t, conflict, As(conflict))
	require.Same(t, conflict, As(fmt.Errorf("wrapped: %w", conflict)))
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("booking"))
	require.True(t, IsKind(err, KindNotFound))
	require.False(t, IsKind(err, KindConflict))
	require.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestWithDetails(t *testing.T) {
	err := Conflict("overlap").WithDetails(map[string]any{"session_id": "s1"})
	require.Equal(t, "s1", err.Details["session_id"])
	require.Equal(t, "overlap", err.Message)
}
