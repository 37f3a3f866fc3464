package clitool

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
)

// ReleaseSource provides access to the CLI's release index.
// *ghrelease.Client satisfies it.
type ReleaseSource interface {
	// ListReleases returns all known releases, newest first.
	ListReleases(ctx context.Context) ([]ghrelease.Release, error)

	// Latest returns the latest release.
	Latest(ctx context.Context) (*ghrelease.Release, error)

	// Download fetches the release's platform asset to destPath and returns
	// the resolved asset name.
	Download(ctx context.Context, release *ghrelease.Release, destPath string) (string, error)
}

// MockReleaseSource is a mock implementation of the ReleaseSource interface for testing.
type MockReleaseSource struct {
	mock.Mock
}

// NewMockReleaseSource creates a new MockReleaseSource instance.
func NewMockReleaseSource() *MockReleaseSource {
	return &MockReleaseSource{}
}

// ListReleases mocks listing releases.
func (m *MockReleaseSource) ListReleases(ctx context.Context) ([]ghrelease.Release, error) {
	args := m.Called(ctx)

	releases, ok := args.Get(0).([]ghrelease.Release)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return releases, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Latest mocks fetching the latest release.
func (m *MockReleaseSource) Latest(ctx context.Context) (*ghrelease.Release, error) {
	args := m.Called(ctx)

	release, ok := args.Get(0).(*ghrelease.Release)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return release, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Download mocks downloading a release asset.
func (m *MockReleaseSource) Download(
	ctx context.Context,
	release *ghrelease.Release,
	destPath string,
) (string, error) {
	args := m.Called(ctx, release, destPath)

	return args.String(0), args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}
