package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one structured line per request once it has completed.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", RequestIDFrom(c.Request.Context()),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			log.ErrorContext(c.Request.Context(), "HTTP request completed", attrs...)
		case status >= 400:
			log.WarnContext(c.Request.Context(), "HTTP request completed", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "HTTP request completed", attrs...)
		}
	}
}
