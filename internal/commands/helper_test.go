package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budget/internal/commands"
	"github.com/cleared-dev/budget/internal/config"
)

// workspace is a temp directory holding the config and ledger for one test.
type workspace struct {
	dir string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvCurrency, "")

	cfg := config.Default()
	cfg.DataFile = filepath.Join(dir, "budget_data.json")
	cfg.ExportFile = filepath.Join(dir, "budget_export.csv")
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))
	return &workspace{dir: dir}
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.dir, name)
}

func (w *workspace) configure(t *testing.T, mutate func(*config.Config)) {
	t.Helper()
	cfgPath := w.path(config.FileName)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	mutate(cfg)
	require.NoError(t, config.Save(cfgPath, cfg))
}

// run executes the CLI in-process and returns combined stdout and stderr.
func (w *workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", w.path(config.FileName)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (w *workspace) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := w.run(t, args...)
	require.NoError(t, err, "budget %v: %s", args, out)
	return out
}
