// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditService) RecordMany(ctx context.Context, entries []*model.AuditEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditService) Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEntry), args.Error(1)
}

func (m *MockAuditService) Count(ctx context.Context, opts model.AuditQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
