// Package cmd wires the desktop-integration services into a command-line
// surface. All collaborators are constructed explicitly and passed by hand;
// there is no injection framework.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minc-desktop",
		Short: "Manage MicroShift clusters running as containers",
		Long: `minc-desktop discovers MicroShift clusters running as containers on the
local container engine, keeps their connections registered with the desktop
host, and manages the lifecycle of the minc CLI binary that drives them.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("storage-dir", "",
		"Extension storage directory for cached binaries (defaults to ~/.minc-desktop)")
	cmd.PersistentFlags().String("release-url", "",
		"Release index base URL (defaults to the public GitHub API)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		NewServeCmd(),
		NewCreateCmd(),
		NewStatusCmd(),
		NewInstallCmd(),
		NewUpdateCmd(),
		NewUninstallCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
