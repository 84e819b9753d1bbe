package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/logger"
)

// RequestLogger returns a middleware that logs each request in JSON format and,
// when audit is non-nil, enqueues an audit entry for it.
func RequestLogger(audit *AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)
		subject := GetSubject(c)
		annotations := auditAnnotationsFrom(c)

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Logger()

		event := log.Info()
		switch model.LevelForStatus(statusCode) {
		case "error":
			event = log.Error()
		case "warn":
			event = log.Warn()
		}
		if subject != "" {
			event = event.Str("subject", subject)
		}
		if annotations.action != "" {
			event = event.Str("action", annotations.action)
		}
		if annotations.errorKind != "" {
			event = event.Str("error_kind", annotations.errorKind)
		}
		event.Msg("HTTP request")

		if audit == nil || annotations.action == "" {
			return
		}

		audit.Log(&model.AuditEntry{
			Timestamp:  start.UTC(),
			Level:      model.LevelForStatus(statusCode),
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Subject:    subject,
			Action:     annotations.action,
			Names:      annotations.names,
			Error:      annotations.err,
			ErrorKind:  annotations.errorKind,
		})
	}
}
