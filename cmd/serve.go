package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	dockerclient "github.com/minc-org/minc-desktop/pkg/client/docker"
	"github.com/minc-org/minc-desktop/pkg/svc/engine"
	"github.com/minc-org/minc-desktop/pkg/svc/reconciler"
	"github.com/minc-org/minc-desktop/pkg/utils/notify"
)

// NewServeCmd creates and returns the serve command.
// Serve registers the minc CLI tool, then keeps the registered cluster
// connections in lock-step with the container engine until interrupted.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Watch the container engine and keep cluster connections registered",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), config.Verbose)
	registry := newNotifyRegistry(cmd.OutOrStdout())

	apiClient, err := dockerclient.GetDockerClient()
	if err != nil {
		return err
	}

	containerEngine, err := engine.NewDockerEngine(apiClient, "default", "docker")
	if err != nil {
		return err
	}

	manager, run := buildManager(config, log, registry)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = manager.Register(ctx)
	if err != nil {
		return err
	}

	rec := reconciler.New(containerEngine, registry, run, manager.Path, log)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return rec.Run(ctx)
	})

	group.Go(func() error {
		err := rec.Subscribe(ctx)
		if err != nil {
			return err
		}

		notify.Activityf(cmd.OutOrStdout(), "watching container engine for cluster changes")
		<-ctx.Done()

		return ctx.Err() //nolint:wrapcheck // Context cancellation needs no context.
	})

	err = group.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "shut down cleanly")

	return nil
}
