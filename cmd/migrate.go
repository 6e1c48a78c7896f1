package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the local and cloud schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening the stores runs their migrations.
			return withApp(ctx, func(a *app) error {
				fmt.Fprintf(cmd.OutOrStdout(), "local store ready: %s\n", a.cfg.DBPath)
				if a.cloud != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "cloud store ready")
				}
				return nil
			})
		},
	}
}
