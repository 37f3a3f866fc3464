// Package buildmeta exposes the version metadata stamped into release
// binaries through -ldflags:
//
//	go build -ldflags="-X github.com/minc-org/minc-desktop/internal/buildmeta.Version=v0.1.0"
//
//nolint:gochecknoglobals
package buildmeta

// Version is the release version, or "dev" for local builds.
var Version = "dev"

// Commit is the git revision the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
