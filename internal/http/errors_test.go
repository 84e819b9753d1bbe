//go:build !integration

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/resolver"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKey    string
	}{
		{"invalid package name", resolver.InvalidPackageName("x"), http.StatusBadRequest, i18n.ErrKeyInvalidPackageName},
		{"invalid type name", resolver.InvalidTypeName("x"), http.StatusBadRequest, i18n.ErrKeyInvalidTypeName},
		{"package not found", resolver.PackageNotFound("@a/b"), http.StatusNotFound, i18n.ErrKeyPackageNotFound},
		{"type not found", resolver.TypeNotFound("@a/b::m::T"), http.StatusNotFound, i18n.ErrKeyTypeNotFound},
		{"rate limited", resolver.RateLimitExceeded(time.Second), http.StatusTooManyRequests, i18n.ErrKeyRegistryRateLimited},
		{"timeout", resolver.Timeout(time.Second), http.StatusGatewayTimeout, i18n.ErrKeyRegistryTimeout},
		{"too many concurrent", resolver.TooManyConcurrentRequests(1), http.StatusServiceUnavailable, i18n.ErrKeyTooManyConcurrentRequests},
		{"server error", resolver.ServerError(500, "x"), http.StatusBadGateway, i18n.ErrKeyRegistryError},
		{"client error from registry", resolver.ServerError(400, "x"), http.StatusBadGateway, i18n.ErrKeyRegistryError},
		{"transport", resolver.TransportError(errors.New("refused")), http.StatusBadGateway, i18n.ErrKeyRegistryError},
		{"decode", resolver.DecodeError("bad body", nil), http.StatusBadGateway, i18n.ErrKeyRegistryError},
		{"cache", resolver.CacheError(errors.New("x")), http.StatusInternalServerError, i18n.ErrKeyCacheError},
		{"wrapped resolver error", fmt.Errorf("outer: %w", resolver.PackageNotFound("@a/b")), http.StatusNotFound, i18n.ErrKeyPackageNotFound},
		{"bare deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
		{"unknown", errors.New("x"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := statusForError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedKey, key)
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(time.Millisecond))
	assert.Equal(t, 3, retryAfterSeconds(2500*time.Millisecond))
}
