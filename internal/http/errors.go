package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/guttosm/mvr-resolver/internal/resolver"
)

// statusForError maps a resolution error to an HTTP status and message key.
func statusForError(err error) (int, string) {
	switch resolver.KindOf(err) {
	case resolver.KindInvalidPackageName:
		return http.StatusBadRequest, i18n.ErrKeyInvalidPackageName
	case resolver.KindInvalidTypeName:
		return http.StatusBadRequest, i18n.ErrKeyInvalidTypeName
	case resolver.KindPackageNotFound:
		return http.StatusNotFound, i18n.ErrKeyPackageNotFound
	case resolver.KindTypeNotFound:
		return http.StatusNotFound, i18n.ErrKeyTypeNotFound
	case resolver.KindRateLimitExceeded:
		return http.StatusTooManyRequests, i18n.ErrKeyRegistryRateLimited
	case resolver.KindTimeout:
		return http.StatusGatewayTimeout, i18n.ErrKeyRegistryTimeout
	case resolver.KindTooManyConcurrentRequests:
		return http.StatusServiceUnavailable, i18n.ErrKeyTooManyConcurrentRequests
	case resolver.KindServerError, resolver.KindTransport, resolver.KindDecode:
		return http.StatusBadGateway, i18n.ErrKeyRegistryError
	case resolver.KindCacheError:
		return http.StatusInternalServerError, i18n.ErrKeyCacheError
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

// writeResolverError writes the error envelope for a failed resolution and
// records the error for the audit log.
func writeResolverError(c *gin.Context, err error) {
	middleware.SetAuditError(c, err)

	status, key := statusForError(err)
	builder := NewResponseBuilder(c)

	if re, ok := resolver.AsError(err); ok {
		builder.Detail("kind", re.Kind.String()).Detail("name", re.Name)
	}
	if status == http.StatusTooManyRequests {
		if delay, ok := resolver.RetryDelay(err); ok {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(delay)))
		}
	}

	builder.Error(status, key, err)
}

func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
