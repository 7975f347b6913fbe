package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/server/respond"
)

// Handler exposes the admin user-management surface.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches admin routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/users", h.list)
	rg.GET("/admin/users/:id", h.get)
	rg.POST("/admin/users", h.create)
	rg.POST("/admin/recruiters", h.createRecruiter)
	rg.PATCH("/admin/users/:id/toggle", h.toggle)
	rg.POST("/admin/users/:id/reset-password", h.resetPassword)
	rg.GET("/admin/dashboard/stats", h.stats)
}

func (h *Handler) list(c *gin.Context) {
	role := c.Query("role")
	list, err := h.Svc.List(c.Request.Context(), role)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error retrieving users: "+err.Error())
		return
	}
	dtos := make([]UserDTO, 0, len(list))
	for _, user := range list {
		dtos = append(dtos, ToDTO(user))
	}
	respond.OK(c, "Users retrieved successfully", dtos)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error retrieving user: "+err.Error())
		return
	}
	respond.OK(c, "User retrieved successfully", ToDTO(user))
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *Handler) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.createWithRole(c, req.Username, req.Email, req.Role, "User created successfully")
}

func (h *Handler) createRecruiter(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.createWithRole(c, req.Username, req.Email, RoleRecruiter, "Recruiter created successfully")
}

func (h *Handler) createWithRole(c *gin.Context, username, email, role, message string) {
	user, err := h.Svc.Create(c.Request.Context(), username, email, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Username and email are required")
		case errors.Is(err, ErrDuplicateEmail):
			// 400 rather than 409, matching the portal's observed behavior.
			respond.Error(c, http.StatusBadRequest, "User with this email already exists")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error creating user: "+err.Error())
		}
		return
	}
	respond.OK(c, message, ToDTO(user))
}

func (h *Handler) toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Svc.ToggleLock(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error toggling user status: "+err.Error())
		return
	}
	respond.OK(c, "User status updated successfully", ToDTO(user))
}

func (h *Handler) resetPassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.ResetPassword(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error resetting password: "+err.Error())
		return
	}
	respond.OK(c, "Password reset successfully", nil)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.DashboardStats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error retrieving stats: "+err.Error())
		return
	}
	respond.OK(c, "Dashboard stats retrieved successfully", stats)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
