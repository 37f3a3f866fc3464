// Package host defines the interfaces through which the desktop host consumes
// cluster connections, CLI tool registrations, prompts and telemetry.
// Implementations live on the host side; this package only fixes the contract.
package host

import (
	"context"
	"errors"
)

// ErrNoSelection is returned by Prompt implementations when the user dismisses
// the selection without choosing a release.
var ErrNoSelection = errors.New("no release selected")

// Disposer tears down a previously registered connection.
type Disposer func()

// ConnectionLifecycle carries the lifecycle operations exposed on a registered
// cluster connection.
type ConnectionLifecycle struct {
	// Start brings the cluster's container up.
	Start func(ctx context.Context) error

	// Stop shuts the cluster's container down.
	Stop func(ctx context.Context) error

	// Delete removes the cluster entirely.
	Delete func(ctx context.Context) error
}

// Endpoint is the externally reachable API endpoint of a cluster connection.
// The URL is refreshed in place across reconciliation passes.
type Endpoint struct {
	URL string
}

// KubernetesConnection is a cluster connection as seen by the host. The struct
// identity is stable across refreshes; only Status results and Endpoint
// contents change.
type KubernetesConnection struct {
	// Name is the cluster name.
	Name string

	// Status returns the current lifecycle status ("started" or "stopped").
	Status func() string

	// Endpoint is the API endpoint, mutated in place on refresh.
	Endpoint *Endpoint

	// Lifecycle carries the start/stop/delete operations.
	Lifecycle ConnectionLifecycle
}

// NotifyFunc is invoked when the host reports a connection change.
type NotifyFunc func()

// ProviderRegistry registers cluster connections with the host.
type ProviderRegistry interface {
	// RegisterConnection makes a connection visible to the host and returns a
	// disposer that removes it again.
	RegisterConnection(conn *KubernetesConnection) (Disposer, error)

	// SubscribeChanges registers a callback invoked whenever the host reports
	// a connection update, registration or unregistration. The returned
	// disposer cancels the subscription.
	SubscribeChanges(notify NotifyFunc) Disposer
}

// CLITool describes a CLI binary registration.
type CLITool struct {
	Name        string
	DisplayName string
	Version     string
	Path        string
}

// ToolHandle lets the owner update a registered tool after install or update
// operations.
type ToolHandle interface {
	// UpdateVersion records a new version and path for the registered tool.
	UpdateVersion(version, path string)
}

// ToolRegistry registers CLI tools with the host.
type ToolRegistry interface {
	// RegisterTool makes a tool visible to the host. The version and path may
	// be empty when the binary is absent.
	RegisterTool(tool CLITool) (ToolHandle, error)
}

// Prompt asks the user to pick one of the given release labels.
type Prompt interface {
	// SelectRelease returns the chosen label, or ErrNoSelection if the user
	// declined to choose.
	SelectRelease(ctx context.Context, title string, labels []string) (string, error)
}

// Telemetry records usage events.
type Telemetry interface {
	// LogUsage records an event with its properties. Implementations must not fail.
	LogUsage(event string, properties map[string]any)
}
