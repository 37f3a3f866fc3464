package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
)

// dockerAPI is the subset of the Docker API client used by DockerEngine.
// client.APIClient satisfies it.
type dockerAPI interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	Events(ctx context.Context, options events.ListOptions) (<-chan events.Message, <-chan error)
}

// DockerEngine implements ContainerEngine on top of the Docker API.
type DockerEngine struct {
	client     dockerAPI
	engineID   string
	engineType string
}

// NewDockerEngine creates a DockerEngine for one engine instance.
func NewDockerEngine(client dockerAPI, engineID, engineType string) (*DockerEngine, error) {
	if client == nil {
		return nil, ErrEngineUnavailable
	}

	return &DockerEngine{
		client:     client,
		engineID:   engineID,
		engineType: engineType,
	}, nil
}

// ListContainers returns all containers known to the engine, running or not.
func (e *DockerEngine) ListContainers(ctx context.Context) ([]ContainerRecord, error) {
	summaries, err := e.client.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	records := make([]ContainerRecord, 0, len(summaries))
	for _, summary := range summaries {
		records = append(records, e.summaryToRecord(summary))
	}

	return records, nil
}

// StartContainer starts a container.
func (e *DockerEngine) StartContainer(ctx context.Context, engineID, containerID string) error {
	if engineID != e.engineID {
		return fmt.Errorf("%w: %s", ErrUnknownEngine, engineID)
	}

	err := e.client.ContainerStart(ctx, containerID, container.StartOptions{})
	if err != nil {
		return fmt.Errorf("failed to start container %s: %w", containerID, err)
	}

	return nil
}

// StopContainer stops a container.
func (e *DockerEngine) StopContainer(ctx context.Context, engineID, containerID string) error {
	if engineID != e.engineID {
		return fmt.Errorf("%w: %s", ErrUnknownEngine, engineID)
	}

	err := e.client.ContainerStop(ctx, containerID, container.StopOptions{})
	if err != nil {
		return fmt.Errorf("failed to stop container %s: %w", containerID, err)
	}

	return nil
}

// Events subscribes to engine events and maps them onto the neutral Event type.
func (e *DockerEngine) Events(ctx context.Context) (<-chan Event, <-chan error) {
	messages, errs := e.client.Events(ctx, events.ListOptions{})

	out := make(chan Event)
	outErrs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(outErrs)

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				select {
				case out <- Event{
					Kind:   string(msg.Type),
					ID:     msg.Actor.ID,
					Action: string(msg.Action),
				}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-errs:
				if !ok {
					return
				}

				if err != nil {
					outErrs <- fmt.Errorf("engine event stream failed: %w", err)

					return
				}
			}
		}
	}()

	return out, outErrs
}

// summaryToRecord converts a Docker container summary to a ContainerRecord.
func (e *DockerEngine) summaryToRecord(summary container.Summary) ContainerRecord {
	names := make([]string, 0, len(summary.Names))
	for _, name := range summary.Names {
		names = append(names, strings.TrimPrefix(name, "/"))
	}

	ports := make([]PortMapping, 0, len(summary.Ports))
	for _, port := range summary.Ports {
		ports = append(ports, PortMapping{
			PrivatePort: port.PrivatePort,
			PublicPort:  port.PublicPort,
			Type:        port.Type,
		})
	}

	return ContainerRecord{
		ID:         summary.ID,
		Names:      names,
		Labels:     summary.Labels,
		State:      summary.State,
		Ports:      ports,
		EngineID:   e.engineID,
		EngineType: e.engineType,
	}
}
