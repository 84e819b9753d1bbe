package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to the api_key query parameter.
// If validKeys is empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}
		if authenticateAPIKey(c, validKeys) {
			c.Next()
		}
	}
}

// Authenticate accepts either a bearer token or an API key. A request carrying
// an Authorization header is judged on the token alone.
// With no keys and no token service, authentication is disabled.
func Authenticate(validKeys map[string]bool, tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 && tokens == nil {
			c.Next()
			return
		}

		var ok bool
		if tokens != nil && c.GetHeader(AuthorizationHeader) != "" {
			ok = authenticateBearer(c, tokens)
		} else {
			ok = authenticateAPIKey(c, validKeys)
		}
		if ok {
			c.Next()
		}
	}
}

// authenticateAPIKey validates the presented key and records the caller.
// It aborts the request and returns false on failure.
func authenticateAPIKey(c *gin.Context, validKeys map[string]bool) bool {
	key := c.GetHeader(APIKeyHeader)
	if key == "" {
		key = c.Query(APIKeyQuery)
	}

	if key == "" {
		AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
		return false
	}
	if !validKeys[key] {
		AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
		return false
	}

	c.Set(string(APIKeyKey), key)
	c.Set(string(SubjectKey), service.KeyFingerprint(key))
	return true
}

// GetAPIKey returns the API key accepted by APIKeyAuth.
func GetAPIKey(c *gin.Context) string {
	return c.GetString(string(APIKeyKey))
}
