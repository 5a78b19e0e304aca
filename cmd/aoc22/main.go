package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcoradocchia/aoc22/cmd/aoc22/ui"
	"github.com/marcoradocchia/aoc22/internal/config"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

var (
	// Global flags
	configPath string
	inputDir   string
	dbPath     string
	verbose    bool
	plain      bool

	// Shared state built in PersistentPreRunE
	logger   *zap.Logger
	cfg      *config.Config
	styles   ui.Styles
	registry *solver.Registry
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc22",
	Short: "Advent of Code 2022 puzzle solvers",
	Long: `aoc22 solves the Advent of Code 2022 puzzles from local input files.

Each day reads its puzzle input from <input-dir>/dayN.dat and prints the
answers to both parts. Results can be persisted to a local SQLite history
database for comparison across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags win over file and environment.
		if cmd.Flags().Changed("input") {
			cfg.InputDir = inputDir
		}
		if cmd.Flags().Changed("db") {
			if dbPath == "" {
				cfg.History.Enabled = false
			} else {
				cfg.History.DatabasePath = dbPath
			}
		}
		if plain {
			cfg.Output.Plain = true
		}

		if cfg.Output.Plain {
			styles = ui.PlainStyles()
		} else {
			styles = ui.NewStyles()
		}

		registry = newRegistry()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc22.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "input", "Directory containing dayN.dat puzzle inputs")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the history database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
