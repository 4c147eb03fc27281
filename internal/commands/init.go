package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/config"
	"github.com/cleared-dev/budget/internal/ledger"
)

func newInitCommand(a *app) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file and an empty ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a, currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code for displayed amounts")

	return cmd
}

func runInit(cmd *cobra.Command, a *app, currency string) error {
	out := cmd.OutOrStdout()

	// Write budget.yaml unless one is already there.
	if _, err := os.Stat(a.configPath); errors.Is(err, fs.ErrNotExist) {
		cfg := config.Default()
		cfg.Currency = currency
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(a.configPath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote config %s\n", a.configPath)
	} else {
		fmt.Fprintf(out, "Config %s already exists, leaving it unchanged\n", a.configPath)
	}

	// Write the empty ledger document.
	err := a.svc.Init()
	if errors.Is(err, ledger.ErrAlreadyInitialized) {
		fmt.Fprintf(out, "Ledger %s already exists, leaving it unchanged\n", a.cfg.DataFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}

	fmt.Fprintf(out, "Initialized empty ledger at %s\n", a.cfg.DataFile)
	return nil
}
