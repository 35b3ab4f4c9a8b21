package middleware

import (
	"time"

	"salestracker/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
