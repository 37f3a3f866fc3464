package engine

import "errors"

// Common errors for container engine operations.
var (
	// ErrEngineUnavailable is returned when no engine client is available.
	ErrEngineUnavailable = errors.New("container engine is not available")

	// ErrUnknownEngine is returned when an operation targets an engine instance
	// this client does not own.
	ErrUnknownEngine = errors.New("unknown container engine instance")
)
