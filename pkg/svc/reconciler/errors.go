package reconciler

import "errors"

// Common errors for reconciler operations.
var (
	// ErrCLINotInstalled is returned when a lifecycle operation needs the minc
	// CLI but no binary is installed.
	ErrCLINotInstalled = errors.New("minc cli is not installed")

	// ErrNotRunning is returned when a trigger is issued against a reconciler
	// whose actor loop has stopped.
	ErrNotRunning = errors.New("reconciler is not running")
)
