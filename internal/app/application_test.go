package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sitebuilder-backend/internal/config"
	"sitebuilder-backend/internal/handlers"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidationRules()

	cfg := &config.Config{
		DBDriver:          "sqlite",
		SQLitePath:        filepath.Join(t.TempDir(), "site.db"),
		EnableCache:       false,
		JWTSecret:         "secret",
		Port:              "0",
		Environment:       "test",
		RateLimitRequests: 1000,
		RateLimitWindow:   60,
		PageFetchTimeout:  time.Second,
		DraftTTL:          time.Hour,
		SiteName:          "Test Site",
	}

	application, err := New(cfg)
	if err != nil {
		t.Fatalf("new application: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = application.Shutdown(ctx)
	})
	return application
}

func serve(application *Application, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	application.Router().ServeHTTP(recorder, req)
	return recorder
}

func TestApplicationServesSeededPages(t *testing.T) {
	application := newTestApplication(t)

	health := serve(application, httptest.NewRequest(http.MethodGet, "/health", nil))
	if health.Code != http.StatusOK {
		t.Fatalf("health: %d", health.Code)
	}

	home := serve(application, httptest.NewRequest(http.MethodGet, "/", nil))
	if home.Code != http.StatusOK || !strings.Contains(home.Body.String(), "Pages built from sections") {
		t.Fatalf("expected the seeded home page, got %d %s", home.Code, home.Body.String())
	}
	if home.Header().Get("X-Request-ID") == "" || home.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("expected request id and security headers")
	}

	missing := serve(application, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown routes, got %d", missing.Code)
	}

	api := serve(application, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	if api.Code != http.StatusNotFound || !strings.Contains(api.Body.String(), "Route not found") {
		t.Fatalf("expected JSON 404, got %d %s", api.Code, api.Body.String())
	}

	metrics := serve(application, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if metrics.Code != http.StatusOK || !strings.Contains(metrics.Body.String(), "sitebuilder_http_requests_total") {
		t.Fatalf("expected request metrics to be exported")
	}
}

func signedToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "editor-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestAdminRoutesRequireToken(t *testing.T) {
	application := newTestApplication(t)

	anonymous := serve(application, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sections/catalog", nil))
	if anonymous.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", anonymous.Code)
	}

	token := signedToken(t, "admin")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pages/home/draft", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	draft := serve(application, req)
	if draft.Code != http.StatusOK || !strings.Contains(draft.Body.String(), `"baseVersion":1`) {
		t.Fatalf("expected a draft of the seeded home page, got %d %s", draft.Code, draft.Body.String())
	}
}

func TestEditorsCannotManageSiteWideState(t *testing.T) {
	application := newTestApplication(t)
	token := signedToken(t, "editor")

	for _, target := range []struct{ method, path string }{
		{http.MethodDelete, "/api/v1/admin/cache"},
		{http.MethodDelete, "/api/v1/admin/pages/home"},
		{http.MethodPut, "/api/v1/admin/settings/site"},
	} {
		req := httptest.NewRequest(target.method, target.path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		if res := serve(application, req); res.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 for editors, got %d", target.method, target.path, res.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sections/catalog", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if res := serve(application, req); res.Code != http.StatusOK {
		t.Fatalf("editors should reach the catalog, got %d", res.Code)
	}
}
