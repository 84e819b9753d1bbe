package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUpstream indicates the registry failed or returned garbage.
	ErrCodeUpstream = "upstream_error"
	// ErrCodeUnavailable indicates the service is overloaded or a dependency is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"Package not found"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds a single detail entry to the error response.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeUpstream
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// ResolutionResponse is the answer for a single name.
// @Description Resolved name
type ResolutionResponse struct {
	Name  string `json:"name" example:"@suifrens/core"`
	Value string `json:"value" example:"0x00000000000000000000000000000000000000000000000000000000000000c0"`
	Kind  string `json:"kind" example:"package"`
} // @name ResolutionResponse

// BatchResolutionResponse maps every requested name to its value.
// @Description Resolved names
type BatchResolutionResponse struct {
	Kind    string            `json:"kind" example:"package"`
	Results map[string]string `json:"results"`
} // @name BatchResolutionResponse

// TargetResponse is the answer for a move-call target.
// @Description Resolved move-call target
type TargetResponse struct {
	Target   string `json:"target" example:"@suifrens/core::suifren::mint"`
	Resolved string `json:"resolved" example:"0x00000000000000000000000000000000000000000000000000000000000000c0::suifren::mint"`
} // @name TargetResponse

// CacheStatsResponse reports cache occupancy and hit accounting.
// @Description Resolution cache statistics
type CacheStatsResponse struct {
	TotalEntries   int     `json:"total_entries" example:"42"`
	ValidEntries   int     `json:"valid_entries" example:"40"`
	ExpiredEntries int     `json:"expired_entries" example:"2"`
	TotalHits      uint64  `json:"total_hits" example:"1000"`
	MaxSize        int     `json:"max_size" example:"1000"`
	Utilization    float64 `json:"utilization" example:"0.042"`
	HitRate        float64 `json:"hit_rate" example:"0.96"`
	InFlight       int64   `json:"in_flight" example:"1"`
} // @name CacheStatsResponse

// CleanupResponse reports how many expired entries were removed.
// @Description Cache cleanup result
type CleanupResponse struct {
	Removed int `json:"removed" example:"3"`
} // @name CleanupResponse

// ConfigResponse is the active resolver configuration.
// @Description Active resolver configuration
type ConfigResponse struct {
	EndpointURL           string            `json:"endpoint_url" example:"https://testnet.mvr.mystenlabs.com"`
	CacheTTLSeconds       float64           `json:"cache_ttl_seconds" example:"3600"`
	CacheSize             int               `json:"cache_size" example:"1000"`
	TimeoutSeconds        float64           `json:"timeout_seconds" example:"30"`
	MaxConcurrentRequests int               `json:"max_concurrent_requests" example:"10"`
	PackageOverrides      map[string]string `json:"package_overrides,omitempty"`
	TypeOverrides         map[string]string `json:"type_overrides,omitempty"`
} // @name ConfigResponse

// AuditListResponse is one page of audit entries.
// @Description Audit log page
type AuditListResponse struct {
	Entries interface{} `json:"entries" swaggertype:"array,object"`
	Total   int64       `json:"total" example:"120"`
	Limit   int         `json:"limit" example:"50"`
	Skip    int         `json:"skip" example:"0"`
} // @name AuditListResponse
