// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mvr-resolver/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockAuditRepositoryInterface struct {
	mock.Mock
}

func (m *MockAuditRepositoryInterface) Create(ctx context.Context, doc *repository.AuditDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockAuditRepositoryInterface) CreateMany(ctx context.Context, docs []*repository.AuditDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockAuditRepositoryInterface) Query(ctx context.Context, q repository.AuditQuery) ([]*repository.AuditDocument, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.AuditDocument), args.Error(1)
}

func (m *MockAuditRepositoryInterface) Count(ctx context.Context, q repository.AuditQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}
