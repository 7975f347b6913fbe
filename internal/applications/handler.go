package applications

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

// CandidateResolver looks up the account behind an application.
type CandidateResolver interface {
	GetByID(ctx context.Context, id int64) (users.User, error)
}

// Handler wires HTTP handlers to the application workflow.
type Handler struct {
	Svc        *Service
	Candidates CandidateResolver
}

func NewHandler(svc *Service, candidates CandidateResolver) *Handler {
	return &Handler{Svc: svc, Candidates: candidates}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.submit)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.get)
	rg.PATCH("/applications/:id/status", h.updateStatus)
	rg.POST("/applications/:id/interview", h.scheduleInterview)
	rg.PUT("/applications/:id/interview", h.updateInterview)
	rg.DELETE("/applications/:id/interview", h.cancelInterview)
}

func (h *Handler) submit(c *gin.Context) {
	candidateID := middleware.UserIDFromContext(c)
	if candidateID == 0 {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}

	jobID, err := strconv.ParseInt(c.PostForm("jobId"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid jobId")
		return
	}
	notes := c.PostForm("notes")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Resume file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Resume file is required")
		return
	}
	defer file.Close()

	owner := middleware.UserEmailFromContext(c)
	app, err := h.Svc.Submit(c.Request.Context(), candidateID, jobID, notes, fileHeader.Filename, owner, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, ErrResumeRequired):
			respond.Error(c, http.StatusBadRequest, "Resume file is required")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error submitting application: "+err.Error())
		}
		return
	}
	respond.Created(c, "Application submitted successfully", h.toDTO(c, app))
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		CandidateID: middleware.UserIDFromContext(c),
		SeeAll:      canSeeAll(middleware.UserRoleFromContext(c)),
	}
	if raw := c.Query("jobId"); raw != "" {
		jobID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "Invalid jobId")
			return
		}
		q.JobID = &jobID
	}
	q.Status = c.Query("status")

	list, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusBadRequest, "Invalid status")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error retrieving applications: "+err.Error())
		}
		return
	}
	respond.OK(c, "Applications retrieved successfully", h.toDTOs(c, list))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Application not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error retrieving application: "+err.Error())
		return
	}
	respond.OK(c, "Application retrieved successfully", h.toDTO(c, app))
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.Svc.UpdateStatus(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Application not found")
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusBadRequest, "Invalid status")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error updating status: "+err.Error())
		}
		return
	}
	respond.OK(c, "Application status updated successfully", h.toDTO(c, app))
}

func (h *Handler) scheduleInterview(c *gin.Context) {
	h.applyInterview(c, h.Svc.ScheduleInterview, "Interview scheduled successfully")
}

func (h *Handler) updateInterview(c *gin.Context) {
	h.applyInterview(c, h.Svc.UpdateInterview, "Interview updated successfully")
}

func (h *Handler) applyInterview(c *gin.Context, apply func(context.Context, int64, InterviewInput) (Application, error), message string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in InterviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	app, err := apply(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Application not found")
		case errors.Is(err, ErrInvalidDateFormat):
			respond.Error(c, http.StatusBadRequest, "Invalid interview date or time format")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error saving interview: "+err.Error())
		}
		return
	}
	respond.OK(c, message, h.toDTO(c, app))
}

func (h *Handler) cancelInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.Svc.CancelInterview(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Application not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error cancelling interview: "+err.Error())
		return
	}
	respond.OK(c, "Interview cancelled successfully", h.toDTO(c, app))
}

func (h *Handler) toDTO(c *gin.Context, app Application) ApplicationDTO {
	ctx := c.Request.Context()
	var sum Summary
	if job, err := h.Svc.Jobs.GetByID(ctx, app.JobID); err == nil {
		sum.JobTitle = job.Title
	}
	if h.Candidates != nil {
		if candidate, err := h.Candidates.GetByID(ctx, app.CandidateID); err == nil {
			sum.CandidateUsername = candidate.Username
			sum.CandidateEmail = candidate.Email
		}
	}
	if stored, err := h.Svc.Files.Repo.GetByID(ctx, app.ResumeFileID); err == nil {
		sum.ResumeFileName = stored.OriginalName
	}
	return ToDTO(app, sum)
}

func (h *Handler) toDTOs(c *gin.Context, list []Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(list))
	for _, app := range list {
		out = append(out, h.toDTO(c, app))
	}
	return out
}

func canSeeAll(role string) bool {
	return role == users.RoleAdmin || role == users.RoleRecruiter
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
