// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockNameResolver struct {
	mock.Mock
}

func (m *MockNameResolver) ResolvePackage(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockNameResolver) ResolveType(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockNameResolver) ResolvePackages(ctx context.Context, names []string) (map[string]string, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockNameResolver) ResolveTypes(ctx context.Context, names []string) (map[string]string, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockNameResolver) ResolveTarget(ctx context.Context, target string) (string, error) {
	args := m.Called(ctx, target)
	return args.String(0), args.Error(1)
}

func (m *MockNameResolver) CleanupExpiredCache() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockNameResolver) ClearCache() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockNameResolver) CacheStats() (model.CacheStats, error) {
	args := m.Called()
	return args.Get(0).(model.CacheStats), args.Error(1)
}

func (m *MockNameResolver) Config() model.ResolverConfig {
	args := m.Called()
	return args.Get(0).(model.ResolverConfig)
}

func (m *MockNameResolver) InFlight() int {
	args := m.Called()
	return args.Int(0)
}
