package ghrelease

import "errors"

// Common errors for release index operations.
var (
	// ErrNoAsset is returned when a release carries no asset for the current
	// platform and architecture.
	ErrNoAsset = errors.New("no matching release asset")

	// ErrUnexpectedStatus is returned when the release index responds with a
	// non-OK status.
	ErrUnexpectedStatus = errors.New("unexpected release index status")
)
