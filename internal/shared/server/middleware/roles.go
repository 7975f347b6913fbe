package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/server/respond"
)

// RouteRule maps a route shape to the roles allowed through it. Prefix is
// required; Suffix and Methods narrow the match when set. An empty Roles
// slice means any authenticated caller.
type RouteRule struct {
	Prefix  string
	Suffix  string
	Methods []string
	Roles   []string
}

func (r RouteRule) matches(method, path string) bool {
	if !strings.HasPrefix(path, r.Prefix) {
		return false
	}
	if r.Suffix != "" && !strings.HasSuffix(path, r.Suffix) {
		return false
	}
	if len(r.Methods) == 0 {
		return true
	}
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// DefaultRouteRules is the central authorization table for the API surface.
// Rules are evaluated in order; the first match wins.
var DefaultRouteRules = []RouteRule{
	{Prefix: "/api/admin/", Roles: []string{"ADMIN"}},
	{Prefix: "/api/applications/", Suffix: "/interview", Roles: []string{"ADMIN", "RECRUITER"}},
	{Prefix: "/api/applications", Roles: nil},
	{Prefix: "/api/jobs", Roles: nil},
	{Prefix: "/api/files/", Roles: nil},
}

// RequireRoles enforces the route authorization table. Paths with no matching
// rule pass through.
func RequireRoles(rules []RouteRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		path := c.Request.URL.Path
		for _, rule := range rules {
			if !rule.matches(method, path) {
				continue
			}
			role := UserRoleFromContext(c)
			if role == "" {
				respond.Error(c, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if len(rule.Roles) == 0 {
				break
			}
			allowed := false
			for _, r := range rule.Roles {
				if r == role {
					allowed = true
					break
				}
			}
			if !allowed {
				respond.Error(c, http.StatusForbidden, "Access denied")
				return
			}
			break
		}
		c.Next()
	}
}
