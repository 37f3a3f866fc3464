// Package cluster derives the tracked cluster set from the container engine's
// raw inventory. The derivation is pure: it never talks to the engine and is
// recomputed from scratch on every scan.
package cluster

import (
	"fmt"

	"github.com/minc-org/minc-desktop/pkg/svc/engine"
)

// LabelCluster marks a container as a cluster node. Its value is the cluster name.
const LabelCluster = "minc.cluster"

// APIPort is the fixed internal API server port of a cluster node.
const APIPort uint16 = 6443

// Status is the derived lifecycle status of a cluster.
type Status string

const (
	// StatusStarted means the cluster's container is running.
	StatusStarted Status = "started"

	// StatusStopped means the cluster's container is in any non-running state.
	StatusStopped Status = "stopped"
)

// Cluster is one discovered cluster node. It is entirely derived from a
// container record and never persisted.
type Cluster struct {
	// Name is the cluster name from the container label.
	Name string

	// Status is the derived lifecycle status.
	Status Status

	// APIPort is the externally mapped API port, or 0 if unmapped.
	APIPort uint16

	// EngineID identifies the owning engine instance.
	EngineID string

	// EngineType is the owning engine flavor.
	EngineType string

	// ContainerID is the underlying container.
	ContainerID string
}

// Endpoint returns the externally reachable API endpoint URL.
func (c Cluster) Endpoint() string {
	return fmt.Sprintf("https://localhost:%d", c.APIPort)
}

// FromContainers computes the target cluster set from a container inventory.
// Containers without the cluster label are ignored. Names are unique within
// the result; if two containers carry the same cluster name, the first wins.
func FromContainers(records []engine.ContainerRecord) []Cluster {
	clusters := make([]Cluster, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		name, ok := record.Labels[LabelCluster]
		if !ok || name == "" {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		clusters = append(clusters, Cluster{
			Name:        name,
			Status:      statusOf(record.State),
			APIPort:     apiPortOf(record.Ports),
			EngineID:    record.EngineID,
			EngineType:  record.EngineType,
			ContainerID: record.ID,
		})
	}

	return clusters
}

// statusOf maps an engine run-state onto a cluster status. The mapping is
// total: anything but "running" is stopped.
func statusOf(state string) Status {
	if state == "running" {
		return StatusStarted
	}

	return StatusStopped
}

// apiPortOf finds the externally mapped port for the internal API port.
func apiPortOf(ports []engine.PortMapping) uint16 {
	for _, port := range ports {
		if port.PrivatePort == APIPort && port.Type == "tcp" {
			return port.PublicPort
		}
	}

	return 0
}
