package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/handlers"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/metrics"
	httpmw "github.com/Sumukwo12/recruitment-portal-sub000/internal/http/middleware"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/security"
)

func testRouter(jwt *security.JWTProvider) http.Handler {
	collector := metrics.NewCollector()
	return NewRouter(RouterDependencies{
		QuestionHandler: handlers.NewQuestionHandler(nil),
		AuthMiddleware:  httpmw.NewAuthMiddleware(jwt),
		MetricsHandler:  metrics.NewHandler(collector),
		Metrics:         collector,
		Logger:          slog.Default(),
		RequestTimeout:  time.Second,
	})
}

func TestRouterHealth(t *testing.T) {
	router := testRouter(security.NewJWTProvider("secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected ok body, got %q", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestRouterMetrics(t *testing.T) {
	router := testRouter(security.NewJWTProvider("secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "recruitment_requests_total") {
		t.Fatalf("expected request counter in exposition, got %q", rec.Body.String())
	}
}

func TestRouterUnknownPath(t *testing.T) {
	router := testRouter(security.NewJWTProvider("secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouterAdminRoutesRequireAuth(t *testing.T) {
	router := testRouter(security.NewJWTProvider("secret"))
	for _, path := range []string{"/admin/jobs", "/admin/applications", "/admin/questions/templates"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("path %s: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestRouterAdminRouteWithToken(t *testing.T) {
	jwt := security.NewJWTProvider("secret")
	router := testRouter(jwt)
	token, _, err := jwt.Generate(common.NewUUID(), "admin", time.Hour)
	if err != nil {
		t.Fatalf("expected token, got %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/questions/templates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "experience") {
		t.Fatalf("expected templates payload, got %q", rec.Body.String())
	}
}
