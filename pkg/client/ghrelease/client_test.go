package ghrelease_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
)

// platformAssetName builds an asset name that ResolveAsset matches on the
// platform the tests run on.
func platformAssetName() string {
	return fmt.Sprintf("minc-%s-%s", runtime.GOOS, runtime.GOARCH)
}

func TestListReleases(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/minc-org/minc/releases", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		_, _ = fmt.Fprint(w, `[
			{"tag_name": "v0.0.3", "name": "minc v0.0.3"},
			{"tag_name": "v0.0.2", "name": "minc v0.0.2"}
		]`)
	}))
	t.Cleanup(server.Close)

	client := ghrelease.New("minc-org", "minc", ghrelease.WithBaseURL(server.URL))

	releases, err := client.ListReleases(context.Background())
	require.NoError(t, err)

	require.Len(t, releases, 2)
	assert.Equal(t, "v0.0.3", releases[0].Tag)
	assert.Equal(t, "minc v0.0.2", releases[1].Name)
}

func TestLatest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/minc-org/minc/releases/latest", r.URL.Path)

		_, _ = fmt.Fprint(w, `{"tag_name": "v0.0.3", "name": "minc v0.0.3"}`)
	}))
	t.Cleanup(server.Close)

	client := ghrelease.New("minc-org", "minc", ghrelease.WithBaseURL(server.URL))

	release, err := client.Latest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "v0.0.3", release.Tag)
}

func TestListReleasesSurfacesHTTPFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := ghrelease.New("minc-org", "minc", ghrelease.WithBaseURL(server.URL))

	_, err := client.ListReleases(context.Background())
	require.ErrorIs(t, err, ghrelease.ErrUnexpectedStatus)
}

func TestDownloadWritesExecutableAsset(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/asset", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, "binary payload")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	release := &ghrelease.Release{
		Tag: "v0.0.3",
		Assets: []ghrelease.Asset{
			{Name: "minc-other-platform", DownloadURL: server.URL + "/other"},
			{Name: platformAssetName(), DownloadURL: server.URL + "/asset"},
		},
	}

	destPath := filepath.Join(t.TempDir(), "cache", "minc")

	client := ghrelease.New("minc-org", "minc", ghrelease.WithBaseURL(server.URL))

	assetName, err := client.Download(context.Background(), release, destPath)
	require.NoError(t, err)

	assert.Equal(t, platformAssetName(), assetName)

	content, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, "binary payload", string(content))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(destPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestDownloadFailsWithoutPlatformAsset(t *testing.T) {
	t.Parallel()

	release := &ghrelease.Release{
		Tag:    "v0.0.3",
		Assets: []ghrelease.Asset{{Name: "minc-unknown-platform", DownloadURL: "http://unused"}},
	}

	client := ghrelease.New("minc-org", "minc")

	_, err := client.Download(context.Background(), release, filepath.Join(t.TempDir(), "minc"))
	require.ErrorIs(t, err, ghrelease.ErrNoAsset)
}

func TestDownloadSurfacesHTTPFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	release := &ghrelease.Release{
		Tag:    "v0.0.3",
		Assets: []ghrelease.Asset{{Name: platformAssetName(), DownloadURL: server.URL + "/asset"}},
	}

	client := ghrelease.New("minc-org", "minc", ghrelease.WithBaseURL(server.URL))

	_, err := client.Download(context.Background(), release, filepath.Join(t.TempDir(), "minc"))
	require.ErrorIs(t, err, ghrelease.ErrUnexpectedStatus)
}

func TestResolveAssetMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()

	release := &ghrelease.Release{
		Tag: "v0.0.3",
		Assets: []ghrelease.Asset{
			{Name: fmt.Sprintf("MINC-%s-%s", runtime.GOOS, runtime.GOARCH)},
		},
	}

	asset, err := ghrelease.ResolveAsset(release)
	require.NoError(t, err)
	assert.NotNil(t, asset)
}
