package cluster_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minc-org/minc-desktop/pkg/svc/cluster"
	"github.com/minc-org/minc-desktop/pkg/svc/engine"
)

// newClusterContainer creates a labeled cluster node container record.
func newClusterContainer(name, state string, publicPort uint16) engine.ContainerRecord {
	ports := []engine.PortMapping{}
	if publicPort != 0 {
		ports = append(ports, engine.PortMapping{
			PrivatePort: cluster.APIPort,
			PublicPort:  publicPort,
			Type:        "tcp",
		})
	}

	return engine.ContainerRecord{
		ID:         "container-" + name,
		Names:      []string{name},
		Labels:     map[string]string{cluster.LabelCluster: name},
		State:      state,
		Ports:      ports,
		EngineID:   "engine-1",
		EngineType: "podman",
	}
}

func TestFromContainersOnlyTracksLabeledContainers(t *testing.T) {
	t.Parallel()

	records := []engine.ContainerRecord{
		newClusterContainer("a", "running", 12345),
		{
			ID:     "unrelated",
			Labels: map[string]string{"some.other": "label"},
			State:  "running",
		},
		{ID: "unlabeled", State: "exited"},
		newClusterContainer("b", "exited", 0),
	}

	clusters := cluster.FromContainers(records)

	require.Len(t, clusters, 2)
	assert.Equal(t, "a", clusters[0].Name)
	assert.Equal(t, "b", clusters[1].Name)
}

func TestFromContainersStatusDerivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state string
		want  cluster.Status
	}{
		{"running", cluster.StatusStarted},
		{"exited", cluster.StatusStopped},
		{"created", cluster.StatusStopped},
		{"paused", cluster.StatusStopped},
		{"dead", cluster.StatusStopped},
		{"", cluster.StatusStopped},
	}

	for _, tc := range tests {
		t.Run("state "+tc.state, func(t *testing.T) {
			t.Parallel()

			clusters := cluster.FromContainers([]engine.ContainerRecord{
				newClusterContainer("a", tc.state, 0),
			})

			require.Len(t, clusters, 1)
			assert.Equal(t, tc.want, clusters[0].Status)
		})
	}
}

func TestFromContainersPortDerivation(t *testing.T) {
	t.Parallel()

	t.Run("mapped api port", func(t *testing.T) {
		t.Parallel()

		clusters := cluster.FromContainers([]engine.ContainerRecord{
			newClusterContainer("a", "running", 12345),
		})

		require.Len(t, clusters, 1)
		assert.Equal(t, uint16(12345), clusters[0].APIPort)
		assert.Equal(t, "https://localhost:12345", clusters[0].Endpoint())
	})

	t.Run("unmapped api port", func(t *testing.T) {
		t.Parallel()

		clusters := cluster.FromContainers([]engine.ContainerRecord{
			newClusterContainer("a", "running", 0),
		})

		require.Len(t, clusters, 1)
		assert.Equal(t, uint16(0), clusters[0].APIPort)
		assert.Equal(t, "https://localhost:0", clusters[0].Endpoint())
	})

	t.Run("udp mapping on api port is ignored", func(t *testing.T) {
		t.Parallel()

		record := newClusterContainer("a", "running", 0)
		record.Ports = []engine.PortMapping{
			{PrivatePort: cluster.APIPort, PublicPort: 999, Type: "udp"},
			{PrivatePort: 8080, PublicPort: 8081, Type: "tcp"},
		}

		clusters := cluster.FromContainers([]engine.ContainerRecord{record})

		require.Len(t, clusters, 1)
		assert.Equal(t, uint16(0), clusters[0].APIPort)
	})
}

func TestFromContainersDuplicateNamesFirstWins(t *testing.T) {
	t.Parallel()

	first := newClusterContainer("a", "running", 1111)
	second := newClusterContainer("a", "exited", 2222)
	second.ID = "container-a-duplicate"

	clusters := cluster.FromContainers([]engine.ContainerRecord{first, second})

	require.Len(t, clusters, 1)
	assert.Equal(t, "container-a", clusters[0].ContainerID)
	assert.Equal(t, cluster.StatusStarted, clusters[0].Status)
}

func TestFromContainersCountMatchesLabeledContainers(t *testing.T) {
	t.Parallel()

	var records []engine.ContainerRecord

	for i := range 5 {
		records = append(records, newClusterContainer(fmt.Sprintf("cluster-%d", i), "running", 0))
	}

	records = append(records,
		engine.ContainerRecord{ID: "x", Labels: map[string]string{"unrelated": "yes"}},
		engine.ContainerRecord{ID: "y"},
	)

	assert.Len(t, cluster.FromContainers(records), 5)
}

func TestFromContainersSnapshot(t *testing.T) {
	t.Parallel()

	clusters := cluster.FromContainers([]engine.ContainerRecord{
		newClusterContainer("a", "running", 12345),
		newClusterContainer("b", "exited", 0),
	})

	snaps.MatchSnapshot(t, fmt.Sprintf("%+v", clusters))
}
