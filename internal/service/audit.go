package service

import (
	"context"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditService records and queries the resolution audit log.
type AuditService interface {
	// Record stores a single audit entry.
	Record(ctx context.Context, entry *model.AuditEntry) error
	// RecordMany stores audit entries in bulk.
	RecordMany(ctx context.Context, entries []*model.AuditEntry) error
	// Query retrieves entries matching the options, newest first.
	Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error)
	// Count returns the number of entries matching the options.
	Count(ctx context.Context, opts model.AuditQueryOptions) (int64, error)
}

var _ AuditService = (*AuditServiceImpl)(nil)

// AuditServiceImpl implements AuditService on top of an audit repository.
type AuditServiceImpl struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditService creates a new audit service.
func NewAuditService(repo repository.AuditRepositoryInterface) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo}
}

// Record stores a single audit entry.
func (s *AuditServiceImpl) Record(ctx context.Context, entry *model.AuditEntry) error {
	return s.repo.Create(ctx, toDocument(entry))
}

// RecordMany stores audit entries in bulk.
func (s *AuditServiceImpl) RecordMany(ctx context.Context, entries []*model.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.AuditDocument, len(entries))
	for i, entry := range entries {
		docs[i] = toDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// Query retrieves entries matching the options, newest first.
func (s *AuditServiceImpl) Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error) {
	docs, err := s.repo.Query(ctx, toQuery(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = toModel(doc)
	}
	return entries, nil
}

// Count returns the number of entries matching the options.
func (s *AuditServiceImpl) Count(ctx context.Context, opts model.AuditQueryOptions) (int64, error) {
	return s.repo.Count(ctx, toQuery(opts))
}

func toQuery(opts model.AuditQueryOptions) repository.AuditQuery {
	return repository.AuditQuery{
		RequestID: opts.RequestID,
		Action:    opts.Action,
		Subject:   opts.Subject,
		Name:      opts.Name,
		Level:     opts.Level,
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
		Limit:     opts.Limit,
		Skip:      opts.Skip,
	}
}

// toDocument assigns an ID and timestamp to the entry when missing.
func toDocument(entry *model.AuditEntry) *repository.AuditDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.AuditDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Subject:    entry.Subject,
		Action:     entry.Action,
		Names:      entry.Names,
		Error:      entry.Error,
		ErrorKind:  entry.ErrorKind,
	}
}

func toModel(doc *repository.AuditDocument) model.AuditEntry {
	return model.AuditEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Subject:    doc.Subject,
		Action:     doc.Action,
		Names:      doc.Names,
		Error:      doc.Error,
		ErrorKind:  doc.ErrorKind,
	}
}
