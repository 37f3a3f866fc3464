package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/minc-org/minc-desktop/pkg/svc/create"
	"github.com/minc-org/minc-desktop/pkg/svc/telemetry"
	"github.com/minc-org/minc-desktop/pkg/utils/notify"
	"github.com/minc-org/minc-desktop/pkg/utils/timer"
)

// NewCreateCmd creates and returns the create command.
func NewCreateCmd() *cobra.Command {
	var (
		httpPort  int
		httpsPort int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new MicroShift cluster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, httpPort, httpsPort)
		},
	}

	cmd.Flags().IntVar(&httpPort, "http-port", 80, "Ingress HTTP port")
	cmd.Flags().IntVar(&httpsPort, "https-port", 443, "Ingress HTTPS port")

	return cmd
}

func runCreate(cmd *cobra.Command, httpPort, httpsPort int) error {
	config, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), config.Verbose)
	registry := newNotifyRegistry(cmd.OutOrStdout())
	manager, run := buildManager(config, log, registry)

	err = manager.Register(cmd.Context())
	if err != nil {
		return err
	}

	sink := telemetry.NewSink(prometheus.NewRegistry(), log)
	orchestrator := create.NewOrchestrator(run, manager.Path, sink, log)

	notify.Titlef(cmd.OutOrStdout(), "🚀", "Create cluster...")

	tmr := timer.New()

	params := map[string]any{
		create.ParamHTTPPort:  httpPort,
		create.ParamHTTPSPort: httpsPort,
	}

	err = orchestrator.Create(cmd.Context(), params, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	notify.SuccessWithTimerf(cmd.OutOrStdout(), tmr, "cluster created")

	return nil
}
