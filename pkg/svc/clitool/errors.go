package clitool

import "errors"

// Common errors for CLI tool lifecycle operations.
var (
	// ErrNotInstalled is returned when an operation requires an installed
	// binary and none is recorded.
	ErrNotInstalled = errors.New("no cli tool installed")

	// ErrNoReleaseSelected is returned when an update or install is attempted
	// with no chosen release and no fallback.
	ErrNoReleaseSelected = errors.New("no release selected")

	// ErrAlreadyInstalled is returned when an install is attempted while a
	// binary is already recorded.
	ErrAlreadyInstalled = errors.New("cli tool already installed")

	// ErrNoVersionDetected is returned when an uninstall is attempted with no
	// recorded version.
	ErrNoVersionDetected = errors.New("no version detected")

	// ErrExternallyManaged is returned when an install or update would
	// overwrite a user-managed binary.
	ErrExternallyManaged = errors.New("cli tool is managed externally")

	// ErrVersionOutput is returned when the binary's version output cannot be parsed.
	ErrVersionOutput = errors.New("unexpected version output")

	// ErrReleaseNotFound is returned when a selected release label matches no
	// known release.
	ErrReleaseNotFound = errors.New("release not found")
)
