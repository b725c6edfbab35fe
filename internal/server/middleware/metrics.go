package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/looplj/objecthub/internal/metrics"
)

// WithMetrics records request counts and latency per route.
func WithMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordHTTPRequest(c.Request.Context(), c.Request.Method+" "+route, c.Writer.Status(), time.Since(start).Seconds())
	}
}
