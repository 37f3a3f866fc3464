package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minc-org/minc-desktop/pkg/svc/engine"
)

var errDaemonDown = errors.New("cannot connect to the docker daemon")

// fakeDockerAPI is a hand-rolled stand-in for the Docker API client subset the
// engine consumes.
type fakeDockerAPI struct {
	summaries []container.Summary
	listErr   error

	started []string
	stopped []string

	messages chan events.Message
	errs     chan error
}

func newFakeDockerAPI() *fakeDockerAPI {
	return &fakeDockerAPI{
		messages: make(chan events.Message, 4),
		errs:     make(chan error, 1),
	}
}

func (f *fakeDockerAPI) ContainerList(
	_ context.Context,
	_ container.ListOptions,
) ([]container.Summary, error) {
	return f.summaries, f.listErr
}

func (f *fakeDockerAPI) ContainerStart(
	_ context.Context,
	containerID string,
	_ container.StartOptions,
) error {
	f.started = append(f.started, containerID)

	return nil
}

func (f *fakeDockerAPI) ContainerStop(
	_ context.Context,
	containerID string,
	_ container.StopOptions,
) error {
	f.stopped = append(f.stopped, containerID)

	return nil
}

func (f *fakeDockerAPI) Events(
	_ context.Context,
	_ events.ListOptions,
) (<-chan events.Message, <-chan error) {
	return f.messages, f.errs
}

func TestNewDockerEngineRequiresClient(t *testing.T) {
	t.Parallel()

	_, err := engine.NewDockerEngine(nil, "default", "docker")
	require.ErrorIs(t, err, engine.ErrEngineUnavailable)
}

func TestListContainersMapsSummaries(t *testing.T) {
	t.Parallel()

	api := newFakeDockerAPI()
	api.summaries = []container.Summary{
		{
			ID:     "abc123",
			Names:  []string{"/microshift"},
			Labels: map[string]string{"minc.cluster": "microshift"},
			State:  "running",
			Ports: []container.Port{
				{PrivatePort: 6443, PublicPort: 12345, Type: "tcp"},
			},
		},
	}

	dockerEngine, err := engine.NewDockerEngine(api, "default", "docker")
	require.NoError(t, err)

	records, err := dockerEngine.ListContainers(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "abc123", records[0].ID)
	assert.Equal(t, []string{"microshift"}, records[0].Names)
	assert.Equal(t, "running", records[0].State)
	assert.Equal(t, "default", records[0].EngineID)
	assert.Equal(t, "docker", records[0].EngineType)
	require.Len(t, records[0].Ports, 1)
	assert.Equal(t, uint16(6443), records[0].Ports[0].PrivatePort)
	assert.Equal(t, uint16(12345), records[0].Ports[0].PublicPort)
}

func TestListContainersPropagatesDaemonFailure(t *testing.T) {
	t.Parallel()

	api := newFakeDockerAPI()
	api.listErr = errDaemonDown

	dockerEngine, err := engine.NewDockerEngine(api, "default", "docker")
	require.NoError(t, err)

	_, err = dockerEngine.ListContainers(context.Background())
	require.ErrorIs(t, err, errDaemonDown)
}

func TestStartAndStopGuardEngineID(t *testing.T) {
	t.Parallel()

	api := newFakeDockerAPI()

	dockerEngine, err := engine.NewDockerEngine(api, "default", "docker")
	require.NoError(t, err)

	ctx := context.Background()

	require.ErrorIs(t, dockerEngine.StartContainer(ctx, "other", "abc123"), engine.ErrUnknownEngine)
	require.ErrorIs(t, dockerEngine.StopContainer(ctx, "other", "abc123"), engine.ErrUnknownEngine)
	assert.Empty(t, api.started)
	assert.Empty(t, api.stopped)

	require.NoError(t, dockerEngine.StartContainer(ctx, "default", "abc123"))
	require.NoError(t, dockerEngine.StopContainer(ctx, "default", "abc123"))
	assert.Equal(t, []string{"abc123"}, api.started)
	assert.Equal(t, []string{"abc123"}, api.stopped)
}

func TestEventsMapsMessages(t *testing.T) {
	t.Parallel()

	api := newFakeDockerAPI()

	dockerEngine, err := engine.NewDockerEngine(api, "default", "docker")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	eventCh, _ := dockerEngine.Events(ctx)

	api.messages <- events.Message{
		Type:   events.ContainerEventType,
		Action: "start",
		Actor:  events.Actor{ID: "abc123"},
	}

	event := <-eventCh
	assert.Equal(t, "container", event.Kind)
	assert.Equal(t, "start", event.Action)
	assert.Equal(t, "abc123", event.ID)
}

func TestEventsForwardsStreamFailure(t *testing.T) {
	t.Parallel()

	api := newFakeDockerAPI()

	dockerEngine, err := engine.NewDockerEngine(api, "default", "docker")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	_, errCh := dockerEngine.Events(ctx)

	api.errs <- errDaemonDown

	streamErr := <-errCh
	require.ErrorIs(t, streamErr, errDaemonDown)
}
