package runner

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of the Runner interface for testing.
type MockRunner struct {
	mock.Mock
}

// NewMockRunner creates a new MockRunner instance.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Exec mocks a process invocation.
func (m *MockRunner) Exec(
	ctx context.Context,
	name string,
	args []string,
	opts Options,
) (Result, error) {
	callArgs := m.Called(ctx, name, args, opts)

	result, ok := callArgs.Get(0).(Result)
	if !ok {
		return Result{}, callArgs.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, callArgs.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}
