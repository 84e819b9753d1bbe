//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/mocks"
	"github.com/guttosm/mvr-resolver/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuditService_Record(t *testing.T) {
	repo := new(mocks.MockAuditRepositoryInterface)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.AuditDocument) bool {
		return doc.Action == model.ActionResolvePackage &&
			doc.Subject == "key:abc" &&
			assert.ObjectsAreEqual([]string{"@a/b"}, doc.Names) &&
			!doc.ID.IsZero() &&
			!doc.Timestamp.IsZero()
	})).Return(nil)

	svc := NewAuditService(repo)
	entry := &model.AuditEntry{Action: model.ActionResolvePackage, Subject: "key:abc", Names: []string{"@a/b"}}

	require.NoError(t, svc.Record(context.Background(), entry))
	assert.False(t, entry.ID.IsZero())
	repo.AssertExpectations(t)
}

func TestAuditService_RecordMany(t *testing.T) {
	t.Run("empty is a no-op", func(t *testing.T) {
		repo := new(mocks.MockAuditRepositoryInterface)
		require.NoError(t, NewAuditService(repo).RecordMany(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("converts every entry", func(t *testing.T) {
		repo := new(mocks.MockAuditRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.AuditDocument) bool {
			return len(docs) == 2 && docs[0].RequestID == "r1" && docs[1].RequestID == "r2"
		})).Return(nil)

		err := NewAuditService(repo).RecordMany(context.Background(), []*model.AuditEntry{
			{RequestID: "r1"}, {RequestID: "r2"},
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(mocks.MockAuditRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		err := NewAuditService(repo).RecordMany(context.Background(), []*model.AuditEntry{{}})
		assert.EqualError(t, err, "write failed")
	})
}

func TestAuditService_Query(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	id := primitive.NewObjectID()
	opts := model.AuditQueryOptions{Action: model.ActionResolveType, Name: "@a/b::m::T", StartTime: &start, Limit: 10}
	expectedQuery := repository.AuditQuery{Action: model.ActionResolveType, Name: "@a/b::m::T", StartTime: &start, Limit: 10}

	tests := []struct {
		name     string
		docs     []*repository.AuditDocument
		err      error
		validate func(*testing.T, []model.AuditEntry, error)
	}{
		{
			name: "maps documents to entries",
			docs: []*repository.AuditDocument{{ID: id, Action: model.ActionResolveType, StatusCode: 200, ErrorKind: ""}},
			validate: func(t *testing.T, entries []model.AuditEntry, err error) {
				require.NoError(t, err)
				require.Len(t, entries, 1)
				assert.Equal(t, id, entries[0].ID)
				assert.Equal(t, 200, entries[0].StatusCode)
			},
		},
		{
			name: "repository error",
			err:  errors.New("boom"),
			validate: func(t *testing.T, entries []model.AuditEntry, err error) {
				assert.Error(t, err)
				assert.Nil(t, entries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockAuditRepositoryInterface)
			if tt.err != nil {
				repo.On("Query", mock.Anything, expectedQuery).Return(nil, tt.err)
			} else {
				repo.On("Query", mock.Anything, expectedQuery).Return(tt.docs, nil)
			}

			entries, err := NewAuditService(repo).Query(context.Background(), opts)
			tt.validate(t, entries, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestAuditService_Count(t *testing.T) {
	repo := new(mocks.MockAuditRepositoryInterface)
	repo.On("Count", mock.Anything, repository.AuditQuery{Subject: "key:abc"}).Return(int64(7), nil)

	n, err := NewAuditService(repo).Count(context.Background(), model.AuditQueryOptions{Subject: "key:abc"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
