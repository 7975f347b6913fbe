package files

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/shared/storage/object/local"
)

func newTestHandler(t *testing.T) (*Handler, *Service) {
	t.Helper()
	store := local.New(t.TempDir())
	svc := NewService(store, NewMemoryRepo())
	return NewHandler(svc), svc
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func TestDownloadSetsAttachmentHeaders(t *testing.T) {
	h, svc := newTestHandler(t)
	if _, err := svc.Save(context.Background(), strings.NewReader("pdf bytes"), "resume.pdf", "cand@example.com"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/files/1/download", nil)
	newTestRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/octet-stream" {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="resume.pdf"` {
		t.Fatalf("disposition = %q", got)
	}
	if rec.Body.String() != "pdf bytes" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestViewUsesExtensionContentType(t *testing.T) {
	h, svc := newTestHandler(t)
	if _, err := svc.Save(context.Background(), strings.NewReader("%PDF-1.4"), "resume.pdf", "cand@example.com"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/files/1/view", nil)
	newTestRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `inline; filename="resume.pdf"` {
		t.Fatalf("disposition = %q", got)
	}
}

func TestDownloadMissingFile(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/files/99/download", nil)
	newTestRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDownloadBadID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/files/abc/download", nil)
	newTestRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
