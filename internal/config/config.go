package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "budget.yaml"

const (
	DefaultDataFile   = "budget_data.json"
	DefaultExportFile = "budget_export.csv"
)

// Environment overrides, applied after the config file.
const (
	EnvDataFile = "BUDGET_DATA_FILE"
	EnvCurrency = "BUDGET_CURRENCY"
)

// Config represents budget.yaml.
type Config struct {
	DataFile    string `yaml:"data_file"`
	ExportFile  string `yaml:"export_file"`
	Currency    string `yaml:"currency,omitempty"` // ISO 4217; empty prints plain numbers
	AtomicWrite bool   `yaml:"atomic_write"`
	ActivityLog string `yaml:"activity_log,omitempty"` // empty disables the activity log
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataFile:    DefaultDataFile,
		ExportFile:  DefaultExportFile,
		AtomicWrite: true,
	}
}

// Load reads a config file from disk. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvDataFile)); v != "" {
		c.DataFile = v
	}
	if v := strings.TrimSpace(getenv(EnvCurrency)); v != "" {
		c.Currency = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.DataFile) == "" {
		problems = append(problems, "data_file must not be empty")
	}
	if c.Currency != "" && money.GetCurrency(strings.ToUpper(c.Currency)) == nil {
		problems = append(problems, fmt.Sprintf("unknown currency %q", c.Currency))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
