package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/sitepulse/visit-notifier/internal/api"
	"github.com/sitepulse/visit-notifier/internal/config"
	"github.com/sitepulse/visit-notifier/internal/logger"
	"github.com/sitepulse/visit-notifier/internal/notification"
	"github.com/sitepulse/visit-notifier/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP endpoint that relays website events as email notifications.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides PORT env var)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Local SMTP credentials live in .env during development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	log := logger.New(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// An incomplete SMTP configuration is not fatal: the handler fails closed
	// per request until the settings are supplied.
	var provider notification.Provider
	if err := cfg.SMTP.Validate(); err != nil {
		log.Warn("SMTP configuration incomplete, notifications will be rejected",
			slog.Any("error", err),
		)
	} else {
		smtp, err := notification.NewSMTPProvider(cfg.SMTP)
		if err != nil {
			return fmt.Errorf("creating SMTP provider: %w", err)
		}
		provider = smtp
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := api.NewMetrics(registry)

	apiSrv := api.New(cfg.SMTP, provider, log, metrics)
	srv := server.New(apiSrv, registry, cfg.Port, log)

	fmt.Fprintf(os.Stderr, "visit-notifier listening on http://localhost:%d\n", cfg.Port)
	fmt.Fprintf(os.Stderr, "  POST /notify   → relay a website event\n")
	fmt.Fprintf(os.Stderr, "  GET  /healthz  → health check\n")
	fmt.Fprintf(os.Stderr, "  GET  /metrics  → prometheus metrics\n")

	return srv.Run(ctx)
}
