package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns tabs so the handler returns 200
	svc := &mockDashboardService{tabs: []string{"sales", "supply", "customer", "descriptive"}}
	h := NewHandler(svc)
	r := NewRouter(h)

	// Hit the tabs route through the router created by NewRouter
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard-tabs?dashboard_id=auto_mobile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out struct {
		DashboardID string   `json:"dashboard_id"`
		Tabs        []string `json:"tabs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.DashboardID != "auto_mobile" || len(out.Tabs) != 4 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_NotFoundPair(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockDashboardService{}
	r := NewRouter(NewHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics-dashboard?suppression=bogus", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
