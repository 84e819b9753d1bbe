package resolver

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies resolver failures.
type ErrorKind int

const (
	KindInvalidPackageName ErrorKind = iota + 1
	KindInvalidTypeName
	KindPackageNotFound
	KindTypeNotFound
	KindRateLimitExceeded
	KindTimeout
	KindServerError
	KindTooManyConcurrentRequests
	KindCacheError
	KindTransport
	KindDecode
	KindConfig
)

// String returns a stable snake_case label, used in metrics and API error codes.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidPackageName:
		return "invalid_package_name"
	case KindInvalidTypeName:
		return "invalid_type_name"
	case KindPackageNotFound:
		return "package_not_found"
	case KindTypeNotFound:
		return "type_not_found"
	case KindRateLimitExceeded:
		return "rate_limit_exceeded"
	case KindTimeout:
		return "timeout"
	case KindServerError:
		return "server_error"
	case KindTooManyConcurrentRequests:
		return "too_many_concurrent_requests"
	case KindCacheError:
		return "cache_error"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrInvalidPackageName        = errors.New("invalid package name")
	ErrInvalidTypeName           = errors.New("invalid type name")
	ErrPackageNotFound           = errors.New("package not found")
	ErrTypeNotFound              = errors.New("type not found")
	ErrRateLimitExceeded         = errors.New("rate limit exceeded")
	ErrTimeout                   = errors.New("request timeout")
	ErrServerError               = errors.New("server error")
	ErrTooManyConcurrentRequests = errors.New("too many concurrent requests")
	ErrCache                     = errors.New("cache error")
	ErrTransport                 = errors.New("transport error")
	ErrDecode                    = errors.New("decode error")
	ErrConfig                    = errors.New("configuration error")
)

var sentinels = map[ErrorKind]error{
	KindInvalidPackageName:        ErrInvalidPackageName,
	KindInvalidTypeName:           ErrInvalidTypeName,
	KindPackageNotFound:           ErrPackageNotFound,
	KindTypeNotFound:              ErrTypeNotFound,
	KindRateLimitExceeded:         ErrRateLimitExceeded,
	KindTimeout:                   ErrTimeout,
	KindServerError:               ErrServerError,
	KindTooManyConcurrentRequests: ErrTooManyConcurrentRequests,
	KindCacheError:                ErrCache,
	KindTransport:                 ErrTransport,
	KindDecode:                    ErrDecode,
	KindConfig:                    ErrConfig,
}

// Error is the single error type returned by resolver operations.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind ErrorKind
	// Name is the package or type name involved, when there is one.
	Name string
	// RetryAfter is the registry-advised wait for KindRateLimitExceeded.
	RetryAfter time.Duration
	// TimeoutSecs is the configured timeout for KindTimeout.
	TimeoutSecs int
	// StatusCode is the registry status for KindServerError.
	StatusCode int
	// Message carries the registry body, cache failure or decode detail.
	Message string
	// MaxConcurrent is the admission limit for KindTooManyConcurrentRequests.
	MaxConcurrent int
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidPackageName:
		return fmt.Sprintf("invalid package name: %s", e.Name)
	case KindInvalidTypeName:
		return fmt.Sprintf("invalid type name: %s", e.Name)
	case KindPackageNotFound:
		return fmt.Sprintf("package not found: %s", e.Name)
	case KindTypeNotFound:
		return fmt.Sprintf("type not found: %s", e.Name)
	case KindRateLimitExceeded:
		return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
	case KindTimeout:
		return fmt.Sprintf("request timeout after %d seconds", e.TimeoutSecs)
	case KindServerError:
		return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
	case KindTooManyConcurrentRequests:
		return fmt.Sprintf("too many concurrent requests (max: %d)", e.MaxConcurrent)
	case KindCacheError:
		return fmt.Sprintf("cache error: %s", e.causeText())
	case KindTransport:
		return fmt.Sprintf("transport error: %s", e.causeText())
	case KindDecode:
		return fmt.Sprintf("decode error: %s", e.causeText())
	case KindConfig:
		return fmt.Sprintf("configuration error: %s", e.causeText())
	default:
		return "unknown resolver error"
	}
}

func (e *Error) causeText() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// IsRetryable reports whether the same call may succeed later.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindTransport, KindTimeout, KindTooManyConcurrentRequests, KindRateLimitExceeded:
		return true
	case KindServerError:
		return e.StatusCode >= 500
	default:
		return false
	}
}

// IsRateLimited reports whether the registry asked the caller to back off.
func (e *Error) IsRateLimited() bool {
	return e.Kind == KindRateLimitExceeded
}

// IsClientError reports whether the failure was caused by the request itself.
func (e *Error) IsClientError() bool {
	switch e.Kind {
	case KindInvalidPackageName, KindInvalidTypeName, KindPackageNotFound, KindTypeNotFound:
		return true
	case KindServerError:
		return e.StatusCode >= 400 && e.StatusCode < 500
	default:
		return false
	}
}

// RetryDelay returns the suggested wait before retrying, and false when no
// delay is suggested.
func (e *Error) RetryDelay() (time.Duration, bool) {
	switch e.Kind {
	case KindRateLimitExceeded:
		return e.RetryAfter, true
	case KindTransport, KindTimeout:
		return time.Second, true
	case KindServerError:
		if e.StatusCode >= 500 {
			return 2 * time.Second, true
		}
	case KindTooManyConcurrentRequests:
		return 100 * time.Millisecond, true
	}
	return 0, false
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// KindOf returns the kind of a resolver error, or zero when err is not one.
func KindOf(err error) ErrorKind {
	if re, ok := AsError(err); ok {
		return re.Kind
	}
	return 0
}

// IsRetryable reports whether err is a retryable resolver error.
func IsRetryable(err error) bool {
	re, ok := AsError(err)
	return ok && re.IsRetryable()
}

// IsRateLimited reports whether err is a rate-limit resolver error.
func IsRateLimited(err error) bool {
	re, ok := AsError(err)
	return ok && re.IsRateLimited()
}

// IsClientError reports whether err is a client-side resolver error.
func IsClientError(err error) bool {
	re, ok := AsError(err)
	return ok && re.IsClientError()
}

// RetryDelay returns the suggested wait for err, if any.
func RetryDelay(err error) (time.Duration, bool) {
	if re, ok := AsError(err); ok {
		return re.RetryDelay()
	}
	return 0, false
}

// InvalidPackageName reports a package name that fails validation.
func InvalidPackageName(name string) *Error {
	return &Error{Kind: KindInvalidPackageName, Name: name}
}

// InvalidTypeName reports a type name that fails validation.
func InvalidTypeName(name string) *Error {
	return &Error{Kind: KindInvalidTypeName, Name: name}
}

// PackageNotFound reports a package name the registry does not know.
func PackageNotFound(name string) *Error {
	return &Error{Kind: KindPackageNotFound, Name: name}
}

// TypeNotFound reports a type name the registry does not know.
func TypeNotFound(name string) *Error {
	return &Error{Kind: KindTypeNotFound, Name: name}
}

// RateLimitExceeded reports a 429 from the registry with its suggested delay.
func RateLimitExceeded(retryAfter time.Duration) *Error {
	return &Error{Kind: KindRateLimitExceeded, RetryAfter: retryAfter}
}

// Timeout reports a fetch that did not finish within timeout.
func Timeout(timeout time.Duration) *Error {
	return &Error{Kind: KindTimeout, TimeoutSecs: int(timeout / time.Second)}
}

// ServerError reports an unexpected registry status.
func ServerError(status int, message string) *Error {
	return &Error{Kind: KindServerError, StatusCode: status, Message: message}
}

// TooManyConcurrentRequests reports a rejected admission.
func TooManyConcurrentRequests(maxConcurrent int) *Error {
	return &Error{Kind: KindTooManyConcurrentRequests, MaxConcurrent: maxConcurrent}
}

// CacheError wraps a cache failure.
func CacheError(err error) *Error {
	return &Error{Kind: KindCacheError, Err: err}
}

// TransportError wraps a network failure talking to the registry.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// DecodeError reports a registry body that could not be parsed.
func DecodeError(message string, err error) *Error {
	return &Error{Kind: KindDecode, Message: message, Err: err}
}

// ConfigError wraps an invalid resolver configuration.
func ConfigError(err error) *Error {
	return &Error{Kind: KindConfig, Err: err}
}
