package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/display"
)

func newHistoryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the activity log of changes to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !a.svc.HistoryEnabled() {
				fmt.Fprintln(out, "Activity log is disabled. Set activity_log in the config file to enable it.")
				return nil
			}

			entries, err := a.svc.History()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No activity recorded.")
				return nil
			}

			tbl := display.NewTable(
				display.Column{Title: "Time", Width: 20},
				display.Column{Title: "Command", Width: 8},
				display.Column{Title: "ID", Width: 15},
				display.Column{Title: "Details"},
			)
			for _, e := range entries {
				tbl.Append(e.Timestamp.Local().Format(time.DateTime), e.Command, e.TransactionID, e.Details)
			}
			return tbl.Render(out)
		},
	}
}
