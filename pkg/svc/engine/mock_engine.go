package engine

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEngine is a mock implementation of the ContainerEngine interface for testing.
type MockEngine struct {
	mock.Mock
}

// NewMockEngine creates a new MockEngine instance.
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

// ListContainers mocks listing the container inventory.
func (m *MockEngine) ListContainers(ctx context.Context) ([]ContainerRecord, error) {
	args := m.Called(ctx)

	records, ok := args.Get(0).([]ContainerRecord)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return records, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// StartContainer mocks starting a container.
func (m *MockEngine) StartContainer(ctx context.Context, engineID, containerID string) error {
	args := m.Called(ctx, engineID, containerID)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// StopContainer mocks stopping a container.
func (m *MockEngine) StopContainer(ctx context.Context, engineID, containerID string) error {
	args := m.Called(ctx, engineID, containerID)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Events mocks subscribing to engine events.
func (m *MockEngine) Events(ctx context.Context) (<-chan Event, <-chan error) {
	args := m.Called(ctx)

	events, _ := args.Get(0).(<-chan Event)
	errs, _ := args.Get(1).(<-chan error)

	return events, errs
}
