package cmd

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
	"github.com/minc-org/minc-desktop/pkg/runner"
	"github.com/minc-org/minc-desktop/pkg/svc/clitool"
	"github.com/minc-org/minc-desktop/pkg/ui/prompt"
)

// newLogger creates the process logger.
func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// buildManager constructs the CLI lifecycle manager with its collaborators.
func buildManager(
	config *Config,
	log *logrus.Logger,
	tools *notifyRegistry,
) (*clitool.Manager, runner.Runner) {
	releases := ghrelease.New(
		config.ReleaseOwner,
		config.ReleaseRepo,
		ghrelease.WithBaseURL(config.ReleaseURL),
	)

	run := runner.NewCommandRunner()
	manager := clitool.NewManager(run, releases, tools, prompt.New(), config.StorageDir, log)

	return manager, run
}
