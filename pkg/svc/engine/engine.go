// Package engine abstracts the container engine that hosts cluster node
// containers. It exposes inventory, lifecycle and event subscription
// operations independent of the concrete engine (Docker or Podman).
package engine

import "context"

// PortMapping describes one published container port.
type PortMapping struct {
	// PrivatePort is the port inside the container.
	PrivatePort uint16

	// PublicPort is the externally mapped port, or 0 if unmapped.
	PublicPort uint16

	// Type is the protocol ("tcp" or "udp").
	Type string
}

// ContainerRecord is a raw container inventory entry.
type ContainerRecord struct {
	// ID is the container identifier.
	ID string

	// Names are the container names, without the leading "/".
	Names []string

	// Labels are the container labels.
	Labels map[string]string

	// State is the engine run-state ("running", "exited", ...).
	State string

	// Ports are the published port mappings.
	Ports []PortMapping

	// EngineID identifies the engine instance that owns the container.
	EngineID string

	// EngineType is the engine flavor ("docker" or "podman").
	EngineType string
}

// Event is a container engine lifecycle event.
type Event struct {
	// Kind is the event subject kind (e.g. "container", "image").
	Kind string

	// ID identifies the subject.
	ID string

	// Action is the lifecycle action ("start", "die", "remove", ...).
	Action string
}

// ContainerEngine is the container engine collaborator.
type ContainerEngine interface {
	// ListContainers returns the full container inventory, running or not.
	ListContainers(ctx context.Context) ([]ContainerRecord, error)

	// StartContainer starts a container on the identified engine.
	StartContainer(ctx context.Context, engineID, containerID string) error

	// StopContainer stops a container on the identified engine.
	StopContainer(ctx context.Context, engineID, containerID string) error

	// Events subscribes to engine lifecycle events. Both channels are closed
	// when the context is cancelled; the error channel carries at most one
	// terminal error.
	Events(ctx context.Context) (<-chan Event, <-chan error)
}
