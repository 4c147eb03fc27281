package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/display"
	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/model"
)

func newSetGoalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setgoal <category|total> <amount>",
		Short: "Set a spending goal for a category or for total spending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			goal, err := a.svc.SetGoal(key, args[1])

			// Bad input is reported without failing the command.
			var verr ledger.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", verr)
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if key == model.TotalGoalKey {
				fmt.Fprintf(out, "Total spending goal set to %s\n", a.money(goal))
				return nil
			}
			fmt.Fprintf(out, "Spending goal for %s set to %s\n", key, a.money(goal))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newGoalsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "List spending goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			goals, err := a.svc.Goals()
			if err != nil {
				return err
			}
			if goals.Len() == 0 {
				fmt.Fprintln(out, "No goals set.")
				return nil
			}

			tbl := display.NewTable(
				display.Column{Title: "Category", Width: 20},
				display.Column{Title: "Goal", Width: 12, Right: true},
			)
			for key, amount := range goals.All() {
				tbl.Append(key, a.money(amount))
			}
			return tbl.Render(out)
		},
	}
}
