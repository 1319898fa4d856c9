package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/metrics"
)

// MetricsMiddleware records request counts and latency by route template, so
// /blog/:slug is one series no matter how many posts exist.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
