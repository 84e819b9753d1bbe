// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the resolver and domain model.
package dto

import (
	"strings"
	"time"
)

// MaxBatchNames bounds the number of names accepted in one batch request.
const MaxBatchNames = 100

// MaxAuditLimit bounds the page size of audit queries.
const MaxAuditLimit = 500

// ResolveNamesRequest is the body of the batch resolution endpoints.
//
// @Description Names to resolve in one request
// @Example {"names": ["@suifrens/core", "@suifrens/accessories"]}
type ResolveNamesRequest struct {
	// Names to resolve. Duplicates are allowed and resolved once. May be empty.
	Names []string `json:"names" binding:"required" example:"@suifrens/core,@suifrens/accessories"`
} // @name ResolveNamesRequest

// ResolveTargetRequest is the body of the move-call target endpoint.
//
// @Description Move-call target to resolve
// @Example {"target": "@suifrens/core::suifren::mint"}
type ResolveTargetRequest struct {
	// Target is either "@ns/pkg::module::function" or an already resolved address target.
	Target string `json:"target" binding:"required" example:"@suifrens/core::suifren::mint"`
} // @name ResolveTargetRequest

// AuditQueryRequest holds the query parameters of the audit endpoint.
type AuditQueryRequest struct {
	RequestID string     `form:"request_id"`
	Action    string     `form:"action"`
	Subject   string     `form:"subject"`
	Name      string     `form:"name"`
	Level     string     `form:"level"`
	Start     *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End       *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit"`
	Skip      int        `form:"skip"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrTooManyNames is returned when a batch exceeds MaxBatchNames.
	ErrTooManyNames = &ValidationError{Field: "names", Message: "too many names in one request"}
	// ErrTargetRequired is returned for a blank target.
	ErrTargetRequired = &ValidationError{Field: "target", Message: "must not be empty"}
	// ErrInvalidPagination is returned for negative limit or skip.
	ErrInvalidPagination = &ValidationError{Field: "limit", Message: "limit and skip must not be negative"}
	// ErrInvalidWindow is returned when start is after end.
	ErrInvalidWindow = &ValidationError{Field: "start", Message: "start must not be after end"}
)

// Validate checks the batch size. An empty list is valid and resolves to no results.
func (r *ResolveNamesRequest) Validate() error {
	if len(r.Names) > MaxBatchNames {
		return ErrTooManyNames
	}
	return nil
}

// Validate rejects a blank target.
func (r *ResolveTargetRequest) Validate() error {
	r.Target = strings.TrimSpace(r.Target)
	if r.Target == "" {
		return ErrTargetRequired
	}
	return nil
}

// Validate checks pagination and the time window, and applies the default page size.
func (r *AuditQueryRequest) Validate() error {
	if r.Limit < 0 || r.Skip < 0 {
		return ErrInvalidPagination
	}
	if r.Limit == 0 {
		r.Limit = 50
	}
	if r.Limit > MaxAuditLimit {
		r.Limit = MaxAuditLimit
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return ErrInvalidWindow
	}
	return nil
}
