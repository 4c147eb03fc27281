package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/export"
	"github.com/cleared-dev/budget/internal/store"
)

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [filename]",
		Short: "Write all transactions to a CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.ExportFile
			if len(args) > 0 {
				path = args[0]
			}

			n, err := a.svc.Export(path)

			var corrupt *store.CorruptStoreError
			switch {
			case errors.As(err, &corrupt):
				return err
			case errors.Is(err, export.ErrNothingToExport):
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions to export.")
				return nil
			case err != nil:
				// Export failures are reported but do not fail the command.
				fmt.Fprintf(cmd.ErrOrStderr(), "Error exporting transactions: %v\n", err)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", n, path)
			return nil
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <filename>",
		Short: "Append transactions from a CSV file in export format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			res, err := a.svc.Import(args[0])
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}
			if len(res.Transactions) == 0 {
				fmt.Fprintln(out, "No transactions to import.")
				return nil
			}
			fmt.Fprintf(out, "Imported %d transactions from %s\n", len(res.Transactions), args[0])
			printAlerts(out, a, res.Alerts)
			return nil
		},
	}
}
