package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/pkg/authtoken"
	"github.com/kassem10h/Gym-Poject/pkg/config"
	"github.com/kassem10h/Gym-Poject/pkg/response"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

const (
	ctxKeyUserID = "user_id"
	ctxKeyRole   = "role"
)

// RequireAuth validates the Bearer token and stores user_id and role in the
// gin context and the request context (so request-scoped loggers pick up the
// user id).
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorMsg[any](response.APIResponseCodeUnauthorized, "missing bearer token", nil))
			return
		}

		claims, err := authtoken.Parse(cfg.Auth.JWTSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorMsg[any](response.APIResponseCodeUnauthorized, "invalid or expired token", nil))
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyRole, claims.Role)
		ctx := context.WithValue(c.Request.Context(), ctxKeyUserID, claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole gates a route group to one or more roles. Must run after
// RequireAuth.
func RequireRole(roles ...types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(ctxKeyRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorMsg[any](response.APIResponseCodeUnauthorized, "missing bearer token", nil))
			return
		}
		role, _ := v.(types.Role)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			response.ErrorMsg[any](response.APIResponseCodeForbidden, "insufficient role", nil))
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}

// UserRole returns the authenticated role set by RequireAuth.
func UserRole(c *gin.Context) types.Role {
	if v, ok := c.Get(ctxKeyRole); ok {
		if role, ok := v.(types.Role); ok {
			return role
		}
	}
	return ""
}
