package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/display"
	"github.com/cleared-dev/budget/internal/id"
	"github.com/cleared-dev/budget/internal/ledger"
)

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount> <category> [description]",
		Short: "Record an income or expense",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := ledger.CreateParams{
				Type:     args[0],
				Amount:   args[1],
				Category: args[2],
			}
			if len(args) == 4 {
				params.Description = args[3]
			}
			return runAdd(cmd.OutOrStdout(), a, params)
		},
	}
	// Let "-5" reach the amount validation instead of the flag parser.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runAdd(out io.Writer, a *app, params ledger.CreateParams) error {
	res, err := a.svc.Add(params)
	if err != nil {
		return err
	}

	tx := res.Transactions[0]
	fmt.Fprintf(out, "Added %s of %s in %s (ID %s)\n", tx.Type, a.money(tx.Amount), tx.Category, id.Format(tx.ID))
	printAlerts(out, a, res.Alerts)
	return nil
}

func printAlerts(out io.Writer, a *app, alerts []ledger.Alert) {
	for _, al := range alerts {
		if al.IsTotal() {
			fmt.Fprintf(out, "ALERT: total spending %s exceeds the goal of %s\n", a.money(al.Spent), a.money(al.Goal))
			continue
		}
		fmt.Fprintf(out, "ALERT: spending in %s %s exceeds the goal of %s\n", al.Key, a.money(al.Spent), a.money(al.Goal))
	}
}

func newBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show income minus expenses and any exceeded goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(cmd.OutOrStdout(), a)
		},
	}
}

func runBalance(out io.Writer, a *app) error {
	balance, err := a.svc.Balance()
	if err != nil {
		return err
	}
	alerts, err := a.svc.Alerts()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Current balance: %s\n", a.money(balance))
	printAlerts(out, a, alerts)
	return nil
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), a)
		},
	}
}

func runList(out io.Writer, a *app) error {
	txs, err := a.svc.Transactions()
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions found.")
		return nil
	}

	tbl := display.NewTable(
		display.Column{Title: "ID", Width: 15},
		display.Column{Title: "Date", Width: 10},
		display.Column{Title: "Type", Width: 8},
		display.Column{Title: "Amount", Width: 12, Right: true},
		display.Column{Title: "Category", Width: 15},
		display.Column{Title: "Description"},
	)
	for _, t := range txs {
		tbl.Append(id.Format(t.ID), t.Date.String(), string(t.Type), a.money(t.Amount), t.Category, t.Description)
	}
	return tbl.Render(out)
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := a.svc.Delete(args[0])

			var nf ledger.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintf(out, "Transaction with ID %s not found.\n", nf.ID)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted transaction %s.\n", args[0])
			return nil
		},
	}
}
