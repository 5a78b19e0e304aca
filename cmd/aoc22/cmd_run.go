package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcoradocchia/aoc22/cmd/aoc22/ui"
	"github.com/marcoradocchia/aoc22/internal/solver"
	"github.com/marcoradocchia/aoc22/internal/store"
)

// runCmd solves a single day
var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve one puzzle day",
	Long: `Reads the day's puzzle input from <input-dir>/dayN.dat, solves both
parts and prints the answers.

Example:
  aoc22 run 9`,
	Args: cobra.ExactArgs(1),
	RunE: runDay,
}

// allCmd solves every registered day
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every implemented day in order",
	RunE:  runAll,
}

// listCmd lists the implemented days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the implemented puzzle days",
	RunE:  listDays,
}

func parseDayArg(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q: expected a number between 1 and 25", arg)
	}
	return day, nil
}

func runDay(cmd *cobra.Command, args []string) error {
	day, err := parseDayArg(args[0])
	if err != nil {
		return err
	}

	runner := solver.NewRunner(registry, cfg.InputDir, logger)
	run, err := runner.RunDay(day)
	if err != nil {
		return err
	}

	printRun(run)
	recordRuns(uuid.NewString(), run)
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	runner := solver.NewRunner(registry, cfg.InputDir, logger)
	runs, err := runner.RunAll()

	// Completed days are printed and recorded even when a later one fails.
	for i, run := range runs {
		if i > 0 {
			fmt.Println(styles.RenderDivider(40))
		}
		printRun(run)
	}
	if len(runs) > 0 {
		recordRuns(uuid.NewString(), runs...)
	}
	return err
}

func listDays(cmd *cobra.Command, args []string) error {
	runner := solver.NewRunner(registry, cfg.InputDir, logger)

	table := ui.NewTable("Advent of Code 2022", "Day", "Title", "Input")
	for _, day := range registry.Days() {
		s, err := registry.Get(day)
		if err != nil {
			return err
		}
		table.AddRow(strconv.Itoa(day), s.Title(), runner.InputPath(day))
	}

	fmt.Print(table.View(styles))
	return nil
}

// printRun renders one solved day. Multi-line answers (the CRT frame) are
// printed as an indented block.
func printRun(run *solver.Run) {
	header := fmt.Sprintf("Day %d: %s", run.Day, run.Title)
	fmt.Printf("%s %s\n",
		styles.Title.Render(header),
		styles.Muted.Render(fmt.Sprintf("(%s)", run.Duration.Round(10*time.Microsecond))),
	)
	printPart("Part one", run.Result.PartOne)
	printPart("Part two", run.Result.PartTwo)
}

func printPart(label, answer string) {
	if strings.Contains(answer, "\n") {
		fmt.Printf("  %s:\n", styles.Bold.Render(label))
		for _, line := range strings.Split(answer, "\n") {
			fmt.Printf("    %s\n", styles.Answer.Render(line))
		}
		return
	}
	fmt.Printf("  %s: %s\n", styles.Bold.Render(label), styles.Answer.Render(answer))
}

// recordRuns persists solve results under a shared run ID. History is best
// effort: failures are logged, never fatal.
func recordRuns(runID string, runs ...*solver.Run) {
	if !cfg.History.Enabled {
		return
	}

	hs, err := store.NewHistoryStore(cfg.History.DatabasePath)
	if err != nil {
		logger.Warn("history store unavailable", zap.Error(err))
		return
	}
	defer hs.Close()

	for _, run := range runs {
		err := hs.Record(runID, run.Day, run.Title, run.Result.PartOne, run.Result.PartTwo, run.Duration)
		if err != nil {
			logger.Warn("failed to record result", zap.Int("day", run.Day), zap.Error(err))
		}
	}
}
