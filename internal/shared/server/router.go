package server

import (
	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/applications"
	"recruitment-backend/internal/auth"
	"recruitment-backend/internal/files"
	"recruitment-backend/internal/jobs"
	"recruitment-backend/internal/shared/config"
	"recruitment-backend/internal/shared/metrics"
	"recruitment-backend/internal/shared/server/middleware"
	"recruitment-backend/internal/shared/server/respond"
	"recruitment-backend/internal/users"
)

// Deps carries the wired handlers and identity plumbing for the router.
type Deps struct {
	Tokens   middleware.TokenVerifier
	Sessions middleware.SessionResolver

	Auth         *auth.Handler
	Users        *users.Handler
	Jobs         *jobs.Handler
	Applications *applications.Handler
	Files        *files.Handler
}

const loginRateGroup = "LOGIN"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(deps.Tokens, deps.Sessions),
		middleware.RequireRoles(middleware.DefaultRouteRules),
		middleware.RateLimit(loginRateLimit()),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, "ok", nil)
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	deps.Auth.RegisterRoutes(api)
	deps.Users.RegisterRoutes(api)
	deps.Jobs.RegisterRoutes(api)
	deps.Applications.RegisterRoutes(api)
	deps.Files.RegisterRoutes(api)

	return r
}

// loginRateLimit throttles credential guessing on the login endpoint; the
// rest of the API is not rate limited.
func loginRateLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			loginRateGroup: {Rate: 1, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/api/auth/login" {
				return loginRateGroup
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
