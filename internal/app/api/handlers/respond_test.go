package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kassem10h/Gym-Poject/pkg/apperr"
)

func serveErr(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) { writeErr(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestWriteErrMapsKinds(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{apperr.Validation("bad input"), http.StatusBadRequest, "bad input"},
		{apperr.Unauthorized("who are you"), http.StatusUnauthorized, "who are you"},
		{apperr.Payment("declined"), http.StatusPaymentRequired, "declined"},
		{apperr.Forbidden("not yours"), http.StatusForbidden, "not yours"},
		{apperr.NotFound("session"), http.StatusNotFound, "session not found"},
		{apperr.Conflict("overlap"), http.StatusConflict, "overlap"},
	}
	for _, tc := range cases {
		w := serveErr(t, tc.err)
		require.Equal(t, tc.wantStatus, w.Code)
		require.Contains(t, w.Body.String(), tc.wantBody)
	}
}

func TestWriteErrHidesInternalDetails(t *testing.T) {
	w := serveErr(t, errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "connection refused")
	require.Contains(t, w.Body.String(), "unexpected error")
}

func TestWriteErrIncludesConflictDetails(t *testing.T) {
	err := apperr.Conflict("overlap").WithDetails(map[string]any{"session_id": "s1"})
	w := serveErr(t, err)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "session_id")
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHealthRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}
