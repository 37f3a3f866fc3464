package cmd

import (
	"github.com/spf13/cobra"

	dockerclient "github.com/minc-org/minc-desktop/pkg/client/docker"
	"github.com/minc-org/minc-desktop/pkg/svc/cluster"
	"github.com/minc-org/minc-desktop/pkg/svc/engine"
	"github.com/minc-org/minc-desktop/pkg/utils/notify"
)

// NewStatusCmd creates and returns the status command.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the detected minc binary and discovered clusters",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), config.Verbose)
	registry := newNotifyRegistry(cmd.OutOrStdout())
	manager, _ := buildManager(config, log, registry)

	err = manager.Register(cmd.Context())
	if err != nil {
		return err
	}

	if binary, ok := manager.Binary(); ok {
		notify.Infof(cmd.OutOrStdout(), "minc %s (%s) at %s",
			binary.Version, binary.Provenance, binary.Path)
	}

	if available := manager.AvailableVersion(); available != "" {
		notify.Infof(cmd.OutOrStdout(), "version %s is available", available)
	}

	apiClient, err := dockerclient.GetDockerClient()
	if err != nil {
		return err
	}

	containerEngine, err := engine.NewDockerEngine(apiClient, "default", "docker")
	if err != nil {
		return err
	}

	records, err := containerEngine.ListContainers(cmd.Context())
	if err != nil {
		return err
	}

	clusters := cluster.FromContainers(records)
	if len(clusters) == 0 {
		notify.Activityf(cmd.OutOrStdout(), "no clusters found")

		return nil
	}

	for _, c := range clusters {
		notify.Infof(cmd.OutOrStdout(), "cluster %q is %s (%s)", c.Name, c.Status, c.Endpoint())
	}

	return nil
}

// NewInstallCmd creates and returns the install command.
func NewInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the minc CLI",
		RunE:  runInstall,
	}
}

func runInstall(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), config.Verbose)
	registry := newNotifyRegistry(cmd.OutOrStdout())
	manager, _ := buildManager(config, log, registry)

	err = manager.Register(cmd.Context())
	if err != nil {
		return err
	}

	version, err := manager.SelectInstallVersion(cmd.Context())
	if err != nil {
		return err
	}

	notify.Activityf(cmd.OutOrStdout(), "installing minc %s", version)

	err = manager.DoInstall(cmd.Context())
	if err != nil {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "minc %s installed at %s", version, manager.Path())

	return nil
}

// NewUpdateCmd creates and returns the update command.
func NewUpdateCmd() *cobra.Command {
	var selectVersion bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the minc CLI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd, selectVersion)
		},
	}

	cmd.Flags().BoolVar(&selectVersion, "select", false,
		"Pick a specific version instead of the latest release")

	return cmd
}

func runUpdate(cmd *cobra.Command, selectVersion bool) error {
	config, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), config.Verbose)
	registry := newNotifyRegistry(cmd.OutOrStdout())
	manager, _ := buildManager(config, log, registry)

	err = manager.Register(cmd.Context())
	if err != nil {
		return err
	}

	if selectVersion {
		version, err := manager.SelectUpdateVersion(cmd.Context())
		if err != nil {
			return err
		}

		notify.Activityf(cmd.OutOrStdout(), "updating minc to %s", version)
	}

	err = manager.DoUpdate(cmd.Context())
	if err != nil {
		return err
	}

	binary, _ := manager.Binary()
	notify.Successf(cmd.OutOrStdout(), "minc updated to %s at %s", binary.Version, binary.Path)

	return nil
}

// NewUninstallCmd creates and returns the uninstall command.
func NewUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall the minc CLI",
		RunE:  runUninstall,
	}
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), config.Verbose)
	registry := newNotifyRegistry(cmd.OutOrStdout())
	manager, _ := buildManager(config, log, registry)

	err = manager.Register(cmd.Context())
	if err != nil {
		return err
	}

	err = manager.DoUninstall(cmd.Context())
	if err != nil {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "minc uninstalled")

	return nil
}
