package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/i18n"
)

// Timeout bounds request processing by attaching a deadline to the request
// context. Handlers observe the deadline through the context; if one returns
// without writing after the deadline passed, a 504 envelope is written.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !c.Writer.Written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			AbortWithError(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
		}
	}
}
