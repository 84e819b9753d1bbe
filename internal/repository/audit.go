package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditDocument is the stored form of an audit entry.
type AuditDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp"`
	Level      string             `bson:"level"`
	RequestID  string             `bson:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty"`
	Path       string             `bson:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty"`
	Subject    string             `bson:"subject,omitempty"`
	Action     string             `bson:"action,omitempty"`
	Names      []string           `bson:"names,omitempty"`
	Error      string             `bson:"error,omitempty"`
	ErrorKind  string             `bson:"error_kind,omitempty"`
}

// AuditQuery filters audit documents. Zero values are ignored.
type AuditQuery struct {
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

// AuditRepository stores and queries audit documents.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{collection: db.Audit}
}

// Create inserts a single audit document.
func (r *AuditRepository) Create(ctx context.Context, doc *AuditDocument) error {
	prepare(doc)
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// CreateMany inserts audit documents in one unordered bulk write.
func (r *AuditRepository) CreateMany(ctx context.Context, docs []*AuditDocument) error {
	if len(docs) == 0 {
		return nil
	}

	items := make([]interface{}, len(docs))
	for i, doc := range docs {
		prepare(doc)
		items[i] = doc
	}

	_, err := r.collection.InsertMany(ctx, items, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns matching documents, newest first.
func (r *AuditRepository) Query(ctx context.Context, q AuditQuery) ([]*AuditDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if q.Limit > 0 {
		findOptions.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		findOptions.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, q.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]*AuditDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of documents matching the query. Limit and Skip are ignored.
func (r *AuditRepository) Count(ctx context.Context, q AuditQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, q.filter())
}

func (q AuditQuery) filter() bson.M {
	filter := bson.M{}

	if q.RequestID != "" {
		filter["request_id"] = q.RequestID
	}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Subject != "" {
		filter["subject"] = q.Subject
	}
	if q.Name != "" {
		filter["names"] = q.Name
	}
	if q.Level != "" {
		filter["level"] = q.Level
	}
	if q.StartTime != nil || q.EndTime != nil {
		window := bson.M{}
		if q.StartTime != nil {
			window["$gte"] = *q.StartTime
		}
		if q.EndTime != nil {
			window["$lte"] = *q.EndTime
		}
		filter["timestamp"] = window
	}

	return filter
}

func prepare(doc *AuditDocument) {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now().UTC()
	}
}
