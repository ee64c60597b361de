package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"readiness-api/internal/shared/metrics"
	"readiness-api/internal/shared/telemetry"
)

// Logging emits a structured log per request and records request metrics.
// Preflight requests are counted but not logged.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		metrics.ObserveRequest(c.Request.Method, route, status, latency)

		if c.Request.Method == http.MethodOptions {
			return
		}
		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
