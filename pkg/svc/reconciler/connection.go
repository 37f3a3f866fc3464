package reconciler

import (
	"sync"

	"github.com/minc-org/minc-desktop/pkg/host"
	"github.com/minc-org/minc-desktop/pkg/svc/cluster"
)

// trackedConnection pairs a registered host connection with its disposer and
// the mutable derived fields the host reads through the connection.
//
// The reconciler actor is the only writer; the mutex exists because the host
// may call the status accessor from its own goroutine.
type trackedConnection struct {
	conn     *host.KubernetesConnection
	disposer host.Disposer

	mu       sync.RWMutex
	status   cluster.Status
	endpoint string
}

// currentStatus is installed as the connection's status accessor.
func (t *trackedConnection) currentStatus() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return string(t.status)
}

// refresh updates the mutable derived fields in place. The connection's
// identity and disposer are never recreated, so the host keeps seeing the
// same connection object across passes.
func (t *trackedConnection) refresh(c cluster.Cluster) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = c.Status
	t.endpoint = c.Endpoint()
	t.conn.Endpoint.URL = t.endpoint
}

// ConnectionSummary is a read-only snapshot of a registered connection.
type ConnectionSummary struct {
	Name     string
	Status   string
	Endpoint string
}

func (t *trackedConnection) summary() ConnectionSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return ConnectionSummary{
		Name:     t.conn.Name,
		Status:   string(t.status),
		Endpoint: t.endpoint,
	}
}
