package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	appHTTP "driver-buddy/internal/delivery/http"
)

func newServeCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API for the web client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(ctx, func(a *app) error {
				return runServer(ctx, a)
			})
		},
	}
}

func runServer(ctx context.Context, a *app) error {
	logger := appHTTP.NewLogger(a.cfg.App.Env, a.cfg.App.LogLevel)
	slog.SetDefault(logger)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            a.cfg.App.Env,
			LogLevel:       a.cfg.App.LogLevel,
			AllowedOrigins: a.cfg.App.CORSOrigins,
		},
		logger,
		appHTTP.NewSettingsHandler(a.drivers, a.settings),
		appHTTP.NewTimeHandler(a.time),
		appHTTP.NewPayHandler(a.pay, a.export),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
