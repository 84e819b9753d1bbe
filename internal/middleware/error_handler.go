package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/domain/dto"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and writes a 500
// envelope when the handler did not respond.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log := logger.Logger()
		event := log.Error()
		if status := c.Writer.Status(); c.Writer.Written() && status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			AbortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}
	}
}

// AbortWithError writes a localized error envelope and aborts the chain.
func AbortWithError(c *gin.Context, status int, messageKey string) {
	resp := dto.NewError(dto.ErrCodeFromStatus(status), i18n.Message(c, messageKey)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, resp)
}
