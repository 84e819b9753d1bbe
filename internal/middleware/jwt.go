package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/service"
)

const (
	// AuthorizationHeader carries the bearer token.
	AuthorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	// ClaimsKey is the context key for validated token claims.
	ClaimsKey ContextKey = "claims"
)

// JWTAuth returns a middleware that requires a valid bearer token.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticateBearer(c, tokens) {
			c.Next()
		}
	}
}

// authenticateBearer validates the bearer token and records its subject.
// It aborts the request and returns false on failure.
func authenticateBearer(c *gin.Context, tokens service.TokenService) bool {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
		return false
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
		return false
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
		return false
	}

	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		AbortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
		return false
	}

	c.Set(string(SubjectKey), claims.Subject)
	c.Set(string(ClaimsKey), claims)
	return true
}
