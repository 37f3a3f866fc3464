// Package reconciler keeps the host's registered cluster connections in
// lock-step with the container engine's inventory of cluster-labeled
// containers.
//
// The reconciler is an actor: it owns the connection registry exclusively and
// processes scan requests one at a time from a request channel. Triggers are
// never coalesced; every trigger yields a full scan-and-reconcile pass, but
// two passes can never interleave their diffs.
package reconciler

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/minc-org/minc-desktop/pkg/host"
	"github.com/minc-org/minc-desktop/pkg/runner"
	"github.com/minc-org/minc-desktop/pkg/svc/cluster"
	"github.com/minc-org/minc-desktop/pkg/svc/engine"
)

// CLIPathFunc returns the resolved minc CLI path, or "" when no binary is
// installed. It is evaluated at call time so lifecycle operations observe
// installs and uninstalls that happen after the connection was registered.
type CLIPathFunc func() string

// request is one unit of work for the actor loop. Exactly one of the two
// channels is set.
type request struct {
	done     chan<- error
	snapshot chan<- []ConnectionSummary
}

// Reconciler derives registered connections from the container inventory.
type Reconciler struct {
	engine   engine.ContainerEngine
	registry host.ProviderRegistry
	run      runner.Runner
	cliPath  CLIPathFunc
	log      *logrus.Logger

	requests chan request

	// connections is touched only from the actor loop.
	connections map[string]*trackedConnection
}

// New creates a Reconciler. Run must be started before Subscribe or Trigger
// are used.
func New(
	containerEngine engine.ContainerEngine,
	registry host.ProviderRegistry,
	run runner.Runner,
	cliPath CLIPathFunc,
	log *logrus.Logger,
) *Reconciler {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Reconciler{
		engine:      containerEngine,
		registry:    registry,
		run:         run,
		cliPath:     cliPath,
		log:         log,
		requests:    make(chan request),
		connections: make(map[string]*trackedConnection),
	}
}

// Run processes requests until the context is cancelled. It owns the
// connection registry for its entire lifetime.
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck // Context cancellation needs no context.
		case req := <-r.requests:
			if req.snapshot != nil {
				req.snapshot <- r.snapshot()

				continue
			}

			err := r.pass(ctx)
			if err != nil {
				r.log.WithError(err).Error("reconciliation pass failed")
			}

			req.done <- err
		}
	}
}

// Trigger enqueues one reconciliation pass and waits for its outcome.
// Scan failures propagate to the caller; the existing connection set is left
// untouched on failure.
func (r *Reconciler) Trigger(ctx context.Context) error {
	done := make(chan error, 1)

	select {
	case r.requests <- request{done: done}:
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrNotRunning, ctx.Err())
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // Context cancellation needs no context.
	}
}

// Subscribe performs the initial reconciliation pass, then triggers a pass
// for every container event from the engine and for every host-side
// connection notification (update, register, unregister) from the registry.
func (r *Reconciler) Subscribe(ctx context.Context) error {
	err := r.Trigger(ctx)
	if err != nil {
		return err
	}

	unsubscribe := r.registry.SubscribeChanges(func() {
		err := r.Trigger(ctx)
		if err != nil {
			r.log.WithError(err).Warn("notification-triggered reconciliation failed")
		}
	})

	events, errs := r.engine.Events(ctx)

	go r.pump(ctx, events, errs, unsubscribe)

	return nil
}

// pump translates container events into reconciliation triggers. The
// registry subscription is cancelled when the pump winds down.
func (r *Reconciler) pump(
	ctx context.Context,
	events <-chan engine.Event,
	errs <-chan error,
	unsubscribe host.Disposer,
) {
	if unsubscribe != nil {
		defer unsubscribe()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			if event.Kind != "container" {
				continue
			}

			err := r.Trigger(ctx)
			if err != nil {
				r.log.WithError(err).WithField("action", event.Action).
					Warn("event-triggered reconciliation failed")
			}
		case err, ok := <-errs:
			if !ok {
				return
			}

			if err != nil {
				r.log.WithError(err).Error("engine event stream failed")

				return
			}
		}
	}
}

// Connections returns a snapshot of the registered connections, served by the
// actor so it never observes a half-applied diff.
func (r *Reconciler) Connections(ctx context.Context) ([]ConnectionSummary, error) {
	snapshot := make(chan []ConnectionSummary, 1)

	select {
	case r.requests <- request{snapshot: snapshot}:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrNotRunning, ctx.Err())
	}

	select {
	case summaries := <-snapshot:
		return summaries, nil
	case <-ctx.Done():
		return nil, ctx.Err() //nolint:wrapcheck // Context cancellation needs no context.
	}
}

// pass runs one full scan-and-reconcile cycle. The diff is only applied after
// a successful scan.
func (r *Reconciler) pass(ctx context.Context) error {
	records, err := r.engine.ListContainers(ctx)
	if err != nil {
		return fmt.Errorf("inventory scan failed: %w", err)
	}

	r.apply(cluster.FromContainers(records))

	return nil
}

// apply diffs the target cluster set against the registry: refresh existing
// connections in place, register new ones, dispose vanished ones immediately.
func (r *Reconciler) apply(clusters []cluster.Cluster) {
	target := make(map[string]struct{}, len(clusters))

	for _, c := range clusters {
		target[c.Name] = struct{}{}

		tracked, ok := r.connections[c.Name]
		if ok {
			tracked.refresh(c)

			continue
		}

		tracked, err := r.register(c)
		if err != nil {
			r.log.WithError(err).WithField("cluster", c.Name).
				Error("failed to register cluster connection")

			continue
		}

		r.connections[c.Name] = tracked
		r.log.WithField("cluster", c.Name).Info("registered cluster connection")
	}

	for name, tracked := range r.connections {
		if _, ok := target[name]; ok {
			continue
		}

		tracked.disposer()
		delete(r.connections, name)
		r.log.WithField("cluster", name).Info("disposed cluster connection")
	}
}

// register creates and registers a new connection for a cluster, deriving its
// lifecycle operations.
func (r *Reconciler) register(c cluster.Cluster) (*trackedConnection, error) {
	tracked := &trackedConnection{
		status:   c.Status,
		endpoint: c.Endpoint(),
	}

	engineID, containerID, name := c.EngineID, c.ContainerID, c.Name

	tracked.conn = &host.KubernetesConnection{
		Name:     name,
		Status:   tracked.currentStatus,
		Endpoint: &host.Endpoint{URL: tracked.endpoint},
		Lifecycle: host.ConnectionLifecycle{
			Start: func(ctx context.Context) error {
				return r.engine.StartContainer(ctx, engineID, containerID)
			},
			Stop: func(ctx context.Context) error {
				return r.engine.StopContainer(ctx, engineID, containerID)
			},
			Delete: func(ctx context.Context) error {
				return r.deleteCluster(ctx, name)
			},
		},
	}

	disposer, err := r.registry.RegisterConnection(tracked.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to register connection %q: %w", name, err)
	}

	tracked.disposer = disposer

	return tracked, nil
}

// deleteCluster shells out to the minc CLI as a detached process.
func (r *Reconciler) deleteCluster(ctx context.Context, name string) error {
	path := r.cliPath()
	if path == "" {
		return fmt.Errorf("%w: cannot delete cluster %q", ErrCLINotInstalled, name)
	}

	_, err := r.run.Exec(ctx, path, []string{"delete"}, runner.Options{
		Detached: true,
		Logger:   r.log.Writer(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cluster %q: %w", name, err)
	}

	return nil
}

// snapshot copies the current connection set for read-only consumers.
func (r *Reconciler) snapshot() []ConnectionSummary {
	summaries := make([]ConnectionSummary, 0, len(r.connections))
	for _, tracked := range r.connections {
		summaries = append(summaries, tracked.summary())
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

	return summaries
}
