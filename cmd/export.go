package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"driver-buddy/pkg/period"
)

func newExportCommand(ctx context.Context) *cobra.Command {
	var (
		userID   int64
		kindFlag string
		dateFlag string
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a driver's pay records as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user is required")
			}
			ref := time.Now()
			if dateFlag != "" {
				d, err := period.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				ref = d
			}

			return withApp(ctx, func(a *app) error {
				write := func(w io.Writer) error {
					return a.export.WriteCSV(ctx, w, userID, period.ParseKind(kindFlag), ref)
				}
				if outPath == "" {
					return write(cmd.OutOrStdout())
				}
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				return exportTo(f, write)
			})
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "Telegram user id of the driver")
	cmd.Flags().StringVar(&kindFlag, "period", "all", "Period: week, month or all")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

// exportTo runs write against w and closes it, returning the close error.
func exportTo(w io.WriteCloser, write func(io.Writer) error) error {
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	return nil
}
