package clitool

import (
	"context"
	"fmt"
	"strings"

	"github.com/minc-org/minc-desktop/pkg/runner"
)

// versionPrefix introduces the version line in `minc version` output.
const versionPrefix = "version: "

// BinaryInfo is a resolved binary's path and version.
type BinaryInfo struct {
	// Version is the version string reported by the binary.
	Version string

	// Path is the executable that was invoked.
	Path string
}

// GetMincBinaryInfo resolves a binary's version by invoking it and parsing its
// `version` output. The executable must print a line of the form
// "version: 0.0.3".
func GetMincBinaryInfo(
	ctx context.Context,
	run runner.Runner,
	executable string,
) (*BinaryInfo, error) {
	result, err := run.Exec(ctx, executable, []string{"version"}, runner.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", executable, err)
	}

	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, versionPrefix) {
			continue
		}

		version := strings.TrimSpace(strings.TrimPrefix(line, versionPrefix))
		if version != "" {
			return &BinaryInfo{Version: version, Path: executable}, nil
		}
	}

	return nil, fmt.Errorf("%w from %s: %q", ErrVersionOutput, executable, result.Stdout)
}
