// Command minc-desktop is the desktop-integration backend for MicroShift
// clusters running as containers.
package main

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/minc-org/minc-desktop/cmd"
	"github.com/minc-org/minc-desktop/internal/buildmeta"
	"github.com/minc-org/minc-desktop/pkg/utils/notify"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the root command and converts panics into a non-zero exit
// instead of a crash, so the host always observes a clean process outcome.
//
//nolint:nonamedreturns // The named return lets the recover path set the exit code.
func run(args []string, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "unexpected failure: %v\n%s", r, debug.Stack())

			exitCode = 1
		}
	}()

	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	err := cmd.Execute(rootCmd)
	if err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)

		return 1
	}

	return 0
}
