package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/server/middleware"
	"recruitment-backend/internal/shared/server/respond"
	"recruitment-backend/internal/users"
)

// Handler serves the login, logout and current-user endpoints.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)
	rg.GET("/auth/me", h.me)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  users.UserDTO `json:"user"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, sessionID, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadCredentials):
			respond.Error(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, ErrAccountLocked):
			respond.Error(c, http.StatusUnauthorized, "Account is locked")
		default:
			respond.Error(c, http.StatusInternalServerError, "Login failed: "+err.Error())
		}
		return
	}

	maxAge := int(h.Svc.Sessions.TTL().Seconds())
	c.SetCookie(middleware.SessionCookie, sessionID, maxAge, "/", "", false, true)

	respond.OK(c, "Login successful", loginResponse{Token: token, User: users.ToDTO(user)})
}

func (h *Handler) logout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie != "" {
		h.Svc.Sessions.Delete(cookie)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	respond.OK(c, "Logged out", nil)
}

func (h *Handler) me(c *gin.Context) {
	id := middleware.UserIDFromContext(c)
	if id == 0 {
		respond.Error(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Svc.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error loading profile: "+err.Error())
		return
	}
	respond.OK(c, "Current user", users.ToDTO(user))
}
