package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/config"
)

func TestRateLimitMiddlewareRejectsBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := NewRateLimitManager(context.Background())
	t.Cleanup(func() { _ = manager.Shutdown() })

	router := gin.New()
	router.Use(RateLimitMiddleware(manager, &config.Config{RateLimitRequests: 2, RateLimitWindow: 3600}))
	router.POST("/api", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/avatars/a.png", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api", nil))
		statuses = append(statuses, recorder.Code)
	}
	if statuses[0] != http.StatusNoContent || statuses[1] != http.StatusNoContent || statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected statuses %v", statuses)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/avatars/a.png", nil))
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("avatars should bypass the limiter, got %d", recorder.Code)
	}
}

func TestRateLimitManagerForgetsIdleVisitors(t *testing.T) {
	manager := NewRateLimitManager(context.Background())
	t.Cleanup(func() { _ = manager.Shutdown() })

	if manager.GetVisitor("1.2.3.4", 0, 60) != nil {
		t.Fatalf("expected no limiter when limiting is disabled")
	}
	first := manager.GetVisitor("1.2.3.4", 10, 60)
	manager.cleanup(time.Now().Add(visitorIdleTimeout + time.Second))
	if manager.GetVisitor("1.2.3.4", 10, 60) == first {
		t.Fatalf("expected idle visitor to be dropped")
	}
}
