package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"driver-buddy/config"
)

// newRootCommand builds the CLI. Every subcommand loads the config itself so
// tests can point DB_PATH somewhere else before running it.
func newRootCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "driver-buddy",
		Short:         "Shift, pay and driving-hours tracker for delivery drivers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newBotCommand(ctx),
		newServeCommand(ctx),
		newMigrateCommand(ctx),
		newExportCommand(ctx),
	)
	return cmd
}

// withApp loads config, wires the app and closes it after fn.
func withApp(ctx context.Context, fn func(a *app) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(ctx).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
