// Package create translates a user-supplied parameter set into a single
// cluster-creation invocation of the minc CLI.
package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/minc-org/minc-desktop/pkg/host"
	"github.com/minc-org/minc-desktop/pkg/runner"
	"github.com/minc-org/minc-desktop/pkg/utils/timer"
)

// Recognized creation parameters and their defaults.
const (
	// ParamHTTPPort is the cluster's ingress HTTP port parameter key.
	ParamHTTPPort = "http-port"

	// ParamHTTPSPort is the cluster's ingress HTTPS port parameter key.
	ParamHTTPSPort = "https-port"

	defaultHTTPPort  = 80
	defaultHTTPSPort = 443
)

// telemetryEvent is the usage event name recorded per creation attempt.
const telemetryEvent = "createCluster"

// CLIPathFunc returns the resolved minc CLI path, or "" when absent.
type CLIPathFunc func() string

// Orchestrator provisions new clusters through the minc CLI.
type Orchestrator struct {
	run       runner.Runner
	cliPath   CLIPathFunc
	telemetry host.Telemetry
	log       *logrus.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	run runner.Runner,
	cliPath CLIPathFunc,
	telemetry host.Telemetry,
	log *logrus.Logger,
) *Orchestrator {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Orchestrator{run: run, cliPath: cliPath, telemetry: telemetry, log: log}
}

// Create provisions a new cluster from a free-form parameter set. The HTTP
// and HTTPS ports are accepted as numbers or numeric strings and default to
// 80/443. Usage telemetry (with elapsed duration and, on failure, the error)
// is recorded regardless of outcome.
func (o *Orchestrator) Create(
	ctx context.Context,
	params map[string]any,
	logger io.Writer,
) (err error) {
	tmr := timer.New()

	defer func() {
		total, _ := tmr.GetTiming()
		properties := map[string]any{"duration": total.Seconds()}

		if err != nil {
			properties["error"] = err.Error()
		}

		o.telemetry.LogUsage(telemetryEvent, properties)
	}()

	path := o.cliPath()
	if path == "" {
		return ErrCLINotInstalled
	}

	httpPort := intParam(params, ParamHTTPPort, defaultHTTPPort)
	httpsPort := intParam(params, ParamHTTPSPort, defaultHTTPSPort)

	o.log.WithFields(logrus.Fields{"http-port": httpPort, "https-port": httpsPort}).
		Info("creating cluster")

	args := []string{
		"create",
		"--http-port", strconv.Itoa(httpPort),
		"--https-port", strconv.Itoa(httpsPort),
	}

	_, err = o.run.Exec(ctx, path, args, runner.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to create cluster: %s: %w", messageOf(err), err)
	}

	return nil
}

// intParam extracts an integer parameter, accepting numeric and
// numeric-string values. Absent or unrecognized values fall back to the
// default.
func intParam(params map[string]any, key string, fallback int) int {
	value, ok := params[key]
	if !ok {
		return fallback
	}

	switch typed := value.(type) {
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case float64:
		return int(typed)
	case string:
		parsed, err := strconv.Atoi(typed)
		if err != nil {
			return fallback
		}

		return parsed
	default:
		return fallback
	}
}

// messageOf extracts the most specific failure message from a process error.
func messageOf(err error) string {
	var execErr *runner.ExecError
	if errors.As(err, &execErr) && execErr.Stderr != "" {
		return strings.TrimSpace(execErr.Stderr)
	}

	return err.Error()
}
