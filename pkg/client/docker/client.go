// Package docker constructs Docker API clients from environment configuration.
package docker

import (
	"fmt"

	"github.com/docker/docker/client"
)

// GetDockerClient creates a Docker client using environment configuration.
// The same socket conventions cover both Docker and Podman engines.
func GetDockerClient() (client.APIClient, error) {
	dockerClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return dockerClient, nil
}
