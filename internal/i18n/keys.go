package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates the API rate limit was exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Resolver error translation keys.
const (
	ErrKeyInvalidPackageName        = "error.invalid_package_name"
	ErrKeyInvalidTypeName           = "error.invalid_type_name"
	ErrKeyPackageNotFound           = "error.package_not_found"
	ErrKeyTypeNotFound              = "error.type_not_found"
	ErrKeyRegistryRateLimited       = "error.registry_rate_limited"
	ErrKeyRegistryTimeout           = "error.registry_timeout"
	ErrKeyRegistryError             = "error.registry_error"
	ErrKeyTooManyConcurrentRequests = "error.too_many_concurrent_requests"
	ErrKeyCacheError                = "error.cache_error"
	ErrKeyAuditUnavailable          = "error.audit_unavailable"
)
