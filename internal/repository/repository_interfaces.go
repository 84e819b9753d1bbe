package repository

import "context"

// AuditRepositoryInterface defines the audit repository operations.
type AuditRepositoryInterface interface {
	Create(ctx context.Context, doc *AuditDocument) error
	CreateMany(ctx context.Context, docs []*AuditDocument) error
	Query(ctx context.Context, q AuditQuery) ([]*AuditDocument, error)
	Count(ctx context.Context, q AuditQuery) (int64, error)
}

var (
	_ AuditRepositoryInterface = (*AuditRepository)(nil)
	_ AuditRepositoryInterface = (*AuditRepositoryWithCircuitBreaker)(nil)
)
