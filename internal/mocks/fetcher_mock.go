// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchPackage(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockFetcher) FetchType(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockFetcher) FetchBatch(ctx context.Context, req model.BatchRequest) (*model.BatchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BatchResponse), args.Error(1)
}
