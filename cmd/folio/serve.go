package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/handlers"
	"folio.dev/internal/mailer"
	"folio.dev/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()

		site, err := loadSite()
		if err != nil {
			return err
		}

		if !cfg.Email.Configured() {
			logger.Warn("email relay not configured, contact messages will fail")
		}

		router, err := handlers.SetupRoutes(handlers.Deps{
			Config: cfg,
			Site:   site,
			Sender: mailer.NewEmailJS(cfg.Email),
			Logger: logger,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server starting",
				zap.String("addr", cfg.Server.Addr),
				zap.String("content", cfg.Content.Path),
				zap.Int("projects", len(site.Projects)))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
