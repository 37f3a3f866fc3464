package host

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProviderRegistry is a mock implementation of the ProviderRegistry
// interface for testing.
type MockProviderRegistry struct {
	mock.Mock
}

// NewMockProviderRegistry creates a new MockProviderRegistry instance.
func NewMockProviderRegistry() *MockProviderRegistry {
	return &MockProviderRegistry{}
}

// RegisterConnection mocks registering a connection.
func (m *MockProviderRegistry) RegisterConnection(conn *KubernetesConnection) (Disposer, error) {
	args := m.Called(conn)

	disposer, ok := args.Get(0).(Disposer)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return disposer, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// SubscribeChanges mocks subscribing to host-side connection changes.
func (m *MockProviderRegistry) SubscribeChanges(notify NotifyFunc) Disposer {
	args := m.Called(notify)

	disposer, ok := args.Get(0).(Disposer)
	if !ok {
		return nil
	}

	return disposer
}

// MockToolRegistry is a mock implementation of the ToolRegistry interface for testing.
type MockToolRegistry struct {
	mock.Mock
}

// NewMockToolRegistry creates a new MockToolRegistry instance.
func NewMockToolRegistry() *MockToolRegistry {
	return &MockToolRegistry{}
}

// RegisterTool mocks registering a tool.
func (m *MockToolRegistry) RegisterTool(tool CLITool) (ToolHandle, error) {
	args := m.Called(tool)

	handle, ok := args.Get(0).(ToolHandle)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return handle, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockToolHandle is a mock implementation of the ToolHandle interface for testing.
type MockToolHandle struct {
	mock.Mock
}

// NewMockToolHandle creates a new MockToolHandle instance.
func NewMockToolHandle() *MockToolHandle {
	return &MockToolHandle{}
}

// UpdateVersion mocks updating the registered tool.
func (m *MockToolHandle) UpdateVersion(version, path string) {
	m.Called(version, path)
}

// MockPrompt is a mock implementation of the Prompt interface for testing.
type MockPrompt struct {
	mock.Mock
}

// NewMockPrompt creates a new MockPrompt instance.
func NewMockPrompt() *MockPrompt {
	return &MockPrompt{}
}

// SelectRelease mocks a release selection.
func (m *MockPrompt) SelectRelease(
	ctx context.Context,
	title string,
	labels []string,
) (string, error) {
	args := m.Called(ctx, title, labels)

	return args.String(0), args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockTelemetry is a mock implementation of the Telemetry interface for testing.
type MockTelemetry struct {
	mock.Mock
}

// NewMockTelemetry creates a new MockTelemetry instance.
func NewMockTelemetry() *MockTelemetry {
	return &MockTelemetry{}
}

// LogUsage mocks recording a usage event.
func (m *MockTelemetry) LogUsage(event string, properties map[string]any) {
	m.Called(event, properties)
}
