package jobs

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/server/middleware"
	"recruitment-backend/internal/shared/server/respond"
	"recruitment-backend/internal/users"
)

// PosterResolver looks up the account that posted a job.
type PosterResolver interface {
	GetByID(ctx context.Context, id int64) (users.User, error)
}

// ApplicationCounter reports how many applications a job has received.
type ApplicationCounter interface {
	CountByJob(ctx context.Context, jobID int64) (int, error)
}

// Handler wires HTTP handlers to the job catalog.
type Handler struct {
	Svc     *Service
	Posters PosterResolver
	Counter ApplicationCounter
}

func NewHandler(svc *Service, posters PosterResolver, counter ApplicationCounter) *Handler {
	return &Handler{Svc: svc, Posters: posters, Counter: counter}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.listActive)
	rg.GET("/jobs/all", h.listAll)
	rg.GET("/jobs/:id", h.get)
	rg.POST("/jobs", h.create)
	rg.PUT("/jobs/:id", h.update)
	rg.PATCH("/jobs/:id/toggle", h.toggle)
}

func (h *Handler) listActive(c *gin.Context) {
	list, err := h.Svc.GetActive(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error retrieving jobs: "+err.Error())
		return
	}
	respond.OK(c, "Jobs retrieved successfully", h.toDTOs(c, list))
}

func (h *Handler) listAll(c *gin.Context) {
	list, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error retrieving jobs: "+err.Error())
		return
	}
	respond.OK(c, "Jobs retrieved successfully", h.toDTOs(c, list))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error retrieving job: "+err.Error())
		return
	}
	respond.OK(c, "Job retrieved successfully", h.toDTO(c, job))
}

func (h *Handler) create(c *gin.Context) {
	var in JobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	posterID := middleware.UserIDFromContext(c)
	if posterID == 0 {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), posterID, in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "Missing required job fields")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error creating job: "+err.Error())
		return
	}
	respond.OK(c, "Job created successfully", h.toDTO(c, job))
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in JobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	job, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Missing required job fields")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error updating job: "+err.Error())
		}
		return
	}
	respond.OK(c, "Job updated successfully", h.toDTO(c, job))
}

func (h *Handler) toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.Svc.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error toggling job status: "+err.Error())
		return
	}
	respond.OK(c, "Job status updated successfully", h.toDTO(c, job))
}

func (h *Handler) toDTO(c *gin.Context, job Job) JobDTO {
	ctx := c.Request.Context()
	var username, email string
	if h.Posters != nil {
		if poster, err := h.Posters.GetByID(ctx, job.PostedBy); err == nil {
			username = poster.Username
			email = poster.Email
		}
	}
	count := 0
	if h.Counter != nil {
		if n, err := h.Counter.CountByJob(ctx, job.ID); err == nil {
			count = n
		}
	}
	return ToDTO(job, username, email, count)
}

func (h *Handler) toDTOs(c *gin.Context, list []Job) []JobDTO {
	out := make([]JobDTO, 0, len(list))
	for _, job := range list {
		out = append(out, h.toDTO(c, job))
	}
	return out
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
