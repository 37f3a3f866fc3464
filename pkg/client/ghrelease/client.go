// Package ghrelease queries a GitHub-style release index for available CLI
// releases and downloads platform assets to a local cache.
package ghrelease

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

const requestTimeout = 30 * time.Second

// Release is one tagged release in the index.
type Release struct {
	// Tag is the release tag (e.g. "v0.0.3").
	Tag string `json:"tag_name"`

	// Name is the release display name.
	Name string `json:"name"`

	// Assets are the downloadable artifacts attached to the release.
	Assets []Asset `json:"assets"`
}

// Asset is a platform-specific downloadable binary attached to a release.
type Asset struct {
	// Name is the artifact file name.
	Name string `json:"name"`

	// DownloadURL is the direct download location.
	DownloadURL string `json:"browser_download_url"`
}

// Client talks to the release index of one repository.
type Client struct {
	baseURL    string
	owner      string
	repo       string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the release index endpoint (used in tests and for
// GitHub Enterprise style mirrors).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client for the given repository.
func New(owner, repo string, opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		owner:      owner,
		repo:       repo,
		httpClient: &http.Client{Timeout: requestTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ListReleases returns all releases, newest first (index order).
func (c *Client) ListReleases(ctx context.Context) ([]Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases", c.baseURL, c.owner, c.repo)

	var releases []Release

	err := c.getJSON(ctx, url, &releases)
	if err != nil {
		return nil, err
	}

	return releases, nil
}

// Latest returns the latest release.
func (c *Client) Latest(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)

	var release Release

	err := c.getJSON(ctx, url, &release)
	if err != nil {
		return nil, err
	}

	return &release, nil
}

// Download fetches the release's asset for the current platform and writes it
// to destPath with executable permissions. It returns the resolved asset name.
func (c *Client) Download(ctx context.Context, release *Release, destPath string) (string, error) {
	asset, err := ResolveAsset(release)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.DownloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", asset.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", ErrUnexpectedStatus, asset.Name, resp.Status)
	}

	err = os.MkdirAll(filepath.Dir(destPath), 0o755)
	if err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	file, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer func() { _ = file.Close() }()

	_, err = io.Copy(file, resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	return asset.Name, nil
}

// ResolveAsset picks the release asset matching the current platform and
// architecture (e.g. "minc-linux-amd64", "minc-windows-amd64.exe").
func ResolveAsset(release *Release) (*Asset, error) {
	platform := runtime.GOOS
	arch := runtime.GOARCH

	for i := range release.Assets {
		name := strings.ToLower(release.Assets[i].Name)
		if strings.Contains(name, platform) && strings.Contains(name, arch) {
			return &release.Assets[i], nil
		}
	}

	return nil, fmt.Errorf("%w: release %s has no asset for %s/%s",
		ErrNoAsset, release.Tag, platform, arch)
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query release index: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %s", ErrUnexpectedStatus, url, resp.Status)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode release index response: %w", err)
	}

	return nil
}
