package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryRepo(), "Welcome@123")
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
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
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/api/admin/users", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"role":     RoleCandidate,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool    `json:"success"`
		Data    UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !envelope.Success || envelope.Data.Username != "alice" || envelope.Data.Role != RoleCandidate {
		t.Fatalf("envelope = %+v", envelope)
	}
	if envelope.Data.UserUUID == "" {
		t.Fatal("expected generated uuid")
	}
}

func TestCreateUserDuplicateEmailIs400(t *testing.T) {
	r, _ := newTestRouter()

	payload := map[string]string{"username": "alice", "email": "alice@example.com", "role": RoleCandidate}
	if rec := doJSON(t, r, http.MethodPost, "/api/admin/users", payload); rec.Code != http.StatusOK {
		t.Fatalf("first create status = %d", rec.Code)
	}
	rec := doJSON(t, r, http.MethodPost, "/api/admin/users", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d", rec.Code)
	}
}

func TestCreateRecruiterEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/api/admin/recruiters", map[string]string{
		"username": "rec",
		"email":    "rec@example.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.Role != RoleRecruiter {
		t.Fatalf("role = %q", envelope.Data.Role)
	}
}

func TestListUsersByRole(t *testing.T) {
	r, _ := newTestRouter()
	for _, u := range []map[string]string{
		{"username": "a", "email": "a@example.com", "role": RoleAdmin},
		{"username": "c", "email": "c@example.com", "role": RoleCandidate},
	} {
		if rec := doJSON(t, r, http.MethodPost, "/api/admin/users", u); rec.Code != http.StatusOK {
			t.Fatalf("seed status = %d", rec.Code)
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/api/admin/users?role=CANDIDATE", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var envelope struct {
		Data []UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Role != RoleCandidate {
		t.Fatalf("data = %+v", envelope.Data)
	}
}

func TestToggleEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	if rec := doJSON(t, r, http.MethodPost, "/api/admin/users", map[string]string{
		"username": "alice", "email": "alice@example.com", "role": RoleCandidate,
	}); rec.Code != http.StatusOK {
		t.Fatalf("seed status = %d", rec.Code)
	}

	rec := doJSON(t, r, http.MethodPatch, "/api/admin/users/1/toggle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !envelope.Data.IsLocked {
		t.Fatal("expected account locked")
	}
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodGet, "/api/admin/users/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	if rec := doJSON(t, r, http.MethodPost, "/api/admin/recruiters", map[string]string{
		"username": "rec", "email": "rec@example.com",
	}); rec.Code != http.StatusOK {
		t.Fatalf("seed status = %d", rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/admin/dashboard/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var envelope struct {
		Data Stats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Data.TotalUsers != 1 || envelope.Data.Recruiters != 1 {
		t.Fatalf("stats = %+v", envelope.Data)
	}
}
