package files

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/server/respond"
)

// Handler serves file download and inline view endpoints.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches file routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/:id/download", h.download)
	rg.GET("/files/:id/view", h.view)
}

func (h *Handler) download(c *gin.Context) {
	h.serve(c, true)
}

func (h *Handler) view(c *gin.Context) {
	h.serve(c, false)
}

func (h *Handler) serve(c *gin.Context, attachment bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	file, body, err := h.Svc.Open(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "File not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error retrieving file: "+err.Error())
		return
	}
	defer body.Close()

	contentType := "application/octet-stream"
	disposition := "attachment"
	if !attachment {
		contentType = ViewContentType(file.OriginalName)
		disposition = "inline"
	}

	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, file.OriginalName))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}
