// Package middleware provides HTTP middleware components for the resolver API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength bounds client supplied request IDs.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// SubjectKey is the context key for the authenticated caller.
	SubjectKey ContextKey = "subject"
	// APIKeyKey is the context key for the raw API key presented by the caller.
	APIKeyKey ContextKey = "api_key"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is reused when it is short and printable,
// otherwise a new UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// GetSubject returns the authenticated caller, or "" for anonymous requests.
func GetSubject(c *gin.Context) string {
	return c.GetString(string(SubjectKey))
}
