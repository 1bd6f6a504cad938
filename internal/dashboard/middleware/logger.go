package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ferreteria-cash-recon/internal/domain/identity"
)

// Logger middleware logs HTTP request details including method, path, status,
// latency, client IP, acting user, and correlation ID if present
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		correlationID := GetCorrelationID(c)

		requestLogger := logger
		if correlationID != "" {
			requestLogger = logger.With("correlation_id", correlationID)
		}

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		attrs := []any{
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
			"user_agent", c.Request.UserAgent(),
		}
		if caller, ok := identity.FromContext(c.Request.Context()); ok {
			attrs = append(attrs, "user_id", caller.ID)
		}

		requestLogger.Info("HTTP request", attrs...)
	}
}
