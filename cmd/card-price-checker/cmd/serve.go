package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-checker/internal/api"
	"github.com/donaldgifford/card-price-checker/internal/api/handlers"
	"github.com/donaldgifford/card-price-checker/internal/present"
	"github.com/donaldgifford/card-price-checker/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Serves the lookup API, the popup page, Prometheus metrics, and health probes.",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, tracing.WithVersion(Version))
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	srv := api.NewServer(api.Services{
		Lookup: p.engine,
		Stats:  p.aggregator,
		Quota:  p.limiter,
		Board:  present.NewBoard(),
	}, api.Options{
		Version:     Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      logger,
		PopupOpts:   []handlers.PopupOption{handlers.WithPopupTimeout(cfg.Server.PopupTimeout)},
	})
	srv.Echo.Server.ReadTimeout = cfg.Server.ReadTimeout
	srv.Echo.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("flushing traces", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
