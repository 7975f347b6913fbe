package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	sharedauth "recruitment-backend/internal/shared/auth"
	"recruitment-backend/internal/shared/server/middleware"
	"recruitment-backend/internal/users"
)

type staticCounter map[int64]int

func (c staticCounter) CountByJob(_ context.Context, jobID int64) (int, error) {
	return c[jobID], nil
}

type jobsFixture struct {
	router *gin.Engine
	svc    *Service
	token  string
	poster users.User
	counts staticCounter
}

func newJobsFixture(t *testing.T) *jobsFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	usersSvc := users.NewService(users.NewMemoryRepo(), "Welcome@123")
	poster, err := usersSvc.Create(context.Background(), "rec", "rec@example.com", users.RoleRecruiter)
	if err != nil {
		t.Fatalf("create poster: %v", err)
	}

	signer := sharedauth.NewSigner("test-secret", time.Hour)
	token, err := signer.Sign(poster.ID, poster.Email, poster.Role)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewService(NewMemoryRepo())
	counts := staticCounter{}
	r := gin.New()
	r.Use(middleware.Auth(signer, nil))
	NewHandler(svc, usersSvc, counts).RegisterRoutes(r.Group("/api"))

	return &jobsFixture{router: r, svc: svc, token: token, poster: poster, counts: counts}
}

func (f *jobsFixture) doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeJob(t *testing.T, body []byte) JobDTO {
	t.Helper()
	var envelope struct {
		Data JobDTO `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return envelope.Data
}

func TestCreateJobEndpoint(t *testing.T) {
	f := newJobsFixture(t)

	rec := f.doJSON(t, http.MethodPost, "/api/jobs", validInput())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	dto := decodeJob(t, rec.Body.Bytes())
	if dto.JobTitle != "Backend Engineer" || !dto.IsActive {
		t.Fatalf("dto = %+v", dto)
	}
	if dto.PostedByUsername != "rec" || dto.PostedByEmail != "rec@example.com" {
		t.Fatalf("poster fields = %q %q", dto.PostedByUsername, dto.PostedByEmail)
	}
}

func TestCreateJobMissingFields(t *testing.T) {
	f := newJobsFixture(t)
	in := validInput()
	in.Description = ""

	rec := f.doJSON(t, http.MethodPost, "/api/jobs", in)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListJobsShowsActiveOnly(t *testing.T) {
	f := newJobsFixture(t)
	first, err := f.svc.Create(context.Background(), f.poster.ID, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), f.poster.ID, validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.svc.ToggleActive(context.Background(), first.ID); err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}

	rec := f.doJSON(t, http.MethodGet, "/api/jobs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var active struct {
		Data []JobDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &active); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(active.Data) != 1 {
		t.Fatalf("active len = %d", len(active.Data))
	}

	rec = f.doJSON(t, http.MethodGet, "/api/jobs/all", nil)
	var all struct {
		Data []JobDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(all.Data) != 2 {
		t.Fatalf("all len = %d", len(all.Data))
	}
}

func TestGetJobIncludesApplicationCount(t *testing.T) {
	f := newJobsFixture(t)
	job, err := f.svc.Create(context.Background(), f.poster.ID, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	f.counts[job.ID] = 3

	rec := f.doJSON(t, http.MethodGet, "/api/jobs/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	dto := decodeJob(t, rec.Body.Bytes())
	if dto.ApplicationCount != 3 {
		t.Fatalf("application count = %d", dto.ApplicationCount)
	}
}

func TestGetJobNotFound(t *testing.T) {
	f := newJobsFixture(t)

	rec := f.doJSON(t, http.MethodGet, "/api/jobs/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUpdateJobEndpoint(t *testing.T) {
	f := newJobsFixture(t)
	if _, err := f.svc.Create(context.Background(), f.poster.ID, validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := validInput()
	in.Location = "Berlin"
	rec := f.doJSON(t, http.MethodPut, "/api/jobs/1", in)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	dto := decodeJob(t, rec.Body.Bytes())
	if dto.Location != "Berlin" {
		t.Fatalf("location = %q", dto.Location)
	}
}

func TestToggleJobEndpoint(t *testing.T) {
	f := newJobsFixture(t)
	if _, err := f.svc.Create(context.Background(), f.poster.ID, validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := f.doJSON(t, http.MethodPatch, "/api/jobs/1/toggle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	dto := decodeJob(t, rec.Body.Bytes())
	if dto.IsActive {
		t.Fatal("expected inactive after toggle")
	}
}
