// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"standmatch/internal/domain/entity"
	"standmatch/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockBuilderRepository mocks repository.BuilderRepository.
type MockBuilderRepository struct {
	mock.Mock
}

// NewMockBuilderRepository creates the mock and asserts expectations on cleanup.
func NewMockBuilderRepository(t *testing.T) *MockBuilderRepository {
	m := &MockBuilderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBuilderRepository) FindByID(ctx context.Context, id string) (*entity.BuilderProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BuilderProfile), args.Error(1)
}

func (m *MockBuilderRepository) FindBySlug(ctx context.Context, slug string) (*entity.BuilderProfile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BuilderProfile), args.Error(1)
}

func (m *MockBuilderRepository) FindByEmail(ctx context.Context, email string) (*entity.BuilderProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BuilderProfile), args.Error(1)
}

func (m *MockBuilderRepository) Create(ctx context.Context, builder *entity.BuilderProfile) error {
	args := m.Called(ctx, builder)

	return args.Error(0)
}

func (m *MockBuilderRepository) Update(ctx context.Context, builder *entity.BuilderProfile) error {
	args := m.Called(ctx, builder)

	return args.Error(0)
}

func (m *MockBuilderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockBuilderRepository) List(ctx context.Context, filter repository.BuilderFilter) ([]*entity.BuilderProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.BuilderProfile), args.Error(1)
}
