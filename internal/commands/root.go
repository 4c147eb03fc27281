package commands

import (
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/buildinfo"
	"github.com/cleared-dev/budget/internal/config"
	"github.com/cleared-dev/budget/internal/display"
	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/log"
	"github.com/cleared-dev/budget/internal/store"
)

// app is the state shared by every subcommand, built once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	getenv     func(string) string

	cfg *config.Config
	log *log.Logger
	svc *ledger.Service
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{getenv: os.Getenv}

	rootCmd := &cobra.Command{
		Use:     "budget",
		Short:   "Personal income and expense ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newBalanceCommand(a),
		newListCommand(a),
		newDeleteCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newSetGoalCommand(a),
		newGoalsCommand(a),
		newHistoryCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.getenv)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := log.DefaultConfig()
	logCfg.Output = cmd.ErrOrStderr()
	if a.verbose {
		logCfg.Level = slog.LevelDebug
	}
	a.log = log.New(logCfg)
	a.log.Debug("config loaded", "path", a.configPath, "data_file", cfg.DataFile)

	st := store.New(cfg.DataFile, store.WithAtomicWrite(cfg.AtomicWrite))
	a.svc = ledger.NewService(st,
		ledger.WithLogger(a.log),
		ledger.WithActivityLog(activity.New(cfg.ActivityLog)),
	)
	return nil
}

func (a *app) money(amount decimal.Decimal) string {
	return display.Money(amount, a.cfg.Currency)
}
