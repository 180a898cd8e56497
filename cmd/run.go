package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/blockhint/internal/pipeline"
	"github.com/abhisek/blockhint/internal/server"
	"github.com/abhisek/blockhint/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hint HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config and BLOCKHINT_ADDR)")
}

// runServe loads configuration, builds dependencies, and serves until
// interrupted.
func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := telemetry.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.TraceExporter, cfg.Telemetry.ServiceName, version, os.Stdout)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: flush traces: %v\n", err)
		}
	}()

	var metrics *telemetry.Metrics
	if cfg.Telemetry.MetricsEnabled {
		metrics = telemetry.NewMetrics()
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	srv, err := server.New(cfg, p, metrics, logger)
	if err != nil {
		return err
	}

	logger.Info("starting blockhint", "version", version, "addr", cfg.Server.Addr,
		"trace_exporter", cfg.Telemetry.TraceExporter, "metrics", cfg.Telemetry.MetricsEnabled)
	return srv.Run(ctx)
}
