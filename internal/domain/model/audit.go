package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions recorded by the HTTP API.
const (
	ActionResolvePackage  = "resolve_package"
	ActionResolveType     = "resolve_type"
	ActionResolvePackages = "resolve_packages"
	ActionResolveTypes    = "resolve_types"
	ActionResolveTarget   = "resolve_target"
	ActionCacheCleanup    = "cache_cleanup"
	ActionCacheClear      = "cache_clear"
	ActionIssueToken      = "issue_token"
)

// AuditEntry records one API request together with the names it asked for.
type AuditEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	// Subject identifies the caller: an API key fingerprint or a token subject.
	Subject   string   `bson:"subject,omitempty" json:"subject,omitempty"`
	Action    string   `bson:"action,omitempty" json:"action,omitempty"`
	Names     []string `bson:"names,omitempty" json:"names,omitempty"`
	Error     string   `bson:"error,omitempty" json:"error,omitempty"`
	ErrorKind string   `bson:"error_kind,omitempty" json:"error_kind,omitempty"`
}

// AuditQueryOptions filters audit entries. Zero values are ignored.
type AuditQueryOptions struct {
	RequestID string
	Action    string
	Subject   string
	Name      string
	Level     string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// LevelForStatus maps an HTTP status code to an audit level.
func LevelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
