// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"testing"

	"standmatch/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates the mock and asserts expectations on cleanup.
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishBuilderImported(ctx context.Context, event *service.BuilderImportedEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
