package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kassem10h/Gym-Poject/pkg/authtoken"
	"github.com/kassem10h/Gym-Poject/pkg/config"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

func testRouter(cfg *config.Config, roles ...types.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", RequireAuth(cfg))
	if len(roles) > 0 {
		grp.Use(RequireRole(roles...))
	}
	grp.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "role": UserRole(c)})
	})
	return r
}

func authCfg() *config.Config {
	return &config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}}
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	cfg := authCfg()
	token, err := authtoken.Sign(cfg.Auth.JWTSecret, "user-1", types.RoleMember, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	testRouter(cfg).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	testRouter(authCfg()).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	testRouter(authCfg()).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	cfg := authCfg()
	token, err := authtoken.Sign("other-secret", "user-1", types.RoleMember, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	testRouter(cfg).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	cfg := authCfg()

	memberToken, err := authtoken.Sign(cfg.Auth.JWTSecret, "member-1", types.RoleMember, time.Hour)
	require.NoError(t, err)
	adminToken, err := authtoken.Sign(cfg.Auth.JWTSecret, "admin-1", types.RoleAdmin, time.Hour)
	require.NoError(t, err)

	adminOnly := testRouter(cfg, types.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	w := httptest.NewRecorder()
	adminOnly.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	adminOnly.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
