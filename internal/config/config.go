// Package config holds the aoc22 CLI configuration, loaded from an optional
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc22 configuration.
type Config struct {
	// Directory containing the dayN.dat puzzle inputs.
	InputDir string `yaml:"input_dir"`

	// Result history persistence.
	History HistoryConfig `yaml:"history"`

	// Output rendering.
	Output OutputConfig `yaml:"output"`
}

// HistoryConfig configures the SQLite result history store.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	// Plain disables lipgloss styling.
	Plain bool `yaml:"plain"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir: "input",
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: filepath.Join("data", "aoc22.db"),
		},
		Output: OutputConfig{
			Plain: false,
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error: defaults (plus env overrides) are returned instead.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC22_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if db := os.Getenv("AOC22_DB"); db != "" {
		c.History.DatabasePath = db
	}
	if os.Getenv("AOC22_PLAIN") != "" {
		c.Output.Plain = true
	}
}
