package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/auth"
	"recruitment-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userRoleKey  = "userRole"
)

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "session_id"

// TokenVerifier verifies a bearer token into identity claims.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// SessionResolver resolves a server-side session ID into identity claims.
type SessionResolver interface {
	Resolve(sessionID string) (auth.Claims, bool)
}

// Auth resolves the caller identity from a bearer token or session cookie and
// stores it in the gin context. Requests with no identity are rejected unless
// the path is public; a present-but-invalid bearer token is always rejected.
func Auth(tokens TokenVerifier, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Error(c, http.StatusUnauthorized, "Missing or invalid token")
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
			claims, err := tokens.Verify(token)
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "Missing or invalid token")
				return
			}
			setIdentity(c, claims)
			c.Next()
			return
		}

		if sessions != nil {
			if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
				if claims, ok := sessions.Resolve(cookie); ok {
					setIdentity(c, claims)
					c.Next()
					return
				}
			}
		}

		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		respond.Error(c, http.StatusUnauthorized, "Not authenticated")
	}
}

func setIdentity(c *gin.Context, claims auth.Claims) {
	c.Set(userIDKey, claims.UserID)
	c.Set(userEmailKey, claims.Email)
	c.Set(userRoleKey, claims.Role)
}

// isPublicPath reports whether the path is reachable without identity. The auth
// endpoints handle missing identity themselves, matching the portal's behavior.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/api/auth/") {
		return true
	}
	return path == "/health" || path == "/metrics"
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(int64); ok {
		return id
	}
	return 0
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// UserRoleFromContext fetches the user role set by the auth middleware.
func UserRoleFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userRoleKey)
	if role, ok := val.(string); ok {
		return role
	}
	return ""
}
