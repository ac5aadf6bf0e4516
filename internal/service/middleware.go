package service

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StructuredLogger logs every request with a fresh request id, which is also returned to the client in
// the X-Request-ID header.
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()

		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", c.ClientIP()),
		}

		ctx := c.Request.Context()
		if len(c.Errors) > 0 {
			logAttrs = append(logAttrs, slog.String("error", c.Errors.String()))
			logger.LogAttrs(ctx, slog.LevelError, "request error", logAttrs...)
		} else if status >= 500 {
			logger.LogAttrs(ctx, slog.LevelError, "server error", logAttrs...)
		} else if status >= 400 {
			logger.LogAttrs(ctx, slog.LevelWarn, "client error", logAttrs...)
		} else {
			logger.LogAttrs(ctx, slog.LevelInfo, "request completed", logAttrs...)
		}
	}
}
