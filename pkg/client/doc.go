// Package client provides embedded clients for external systems.
//
// Subpackages:
//   - docker: Docker API client construction from the environment
//   - ghrelease: GitHub-style release index queries and asset downloads
//
// By embedding these clients as Go libraries, minc-desktop only requires a
// container engine as an external dependency.
package client
