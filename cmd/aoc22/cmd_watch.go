package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marcoradocchia/aoc22/internal/solver"
	"github.com/marcoradocchia/aoc22/internal/watch"
)

// watchCmd re-solves a day whenever its input file changes
var watchCmd = &cobra.Command{
	Use:   "watch [day]",
	Short: "Watch a day's input file and re-solve on change",
	Long: `Solves the day once, then watches <input-dir>/dayN.dat and re-solves
every time the file is written. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: watchDay,
}

func watchDay(cmd *cobra.Command, args []string) error {
	day, err := parseDayArg(args[0])
	if err != nil {
		return err
	}
	if _, err := registry.Get(day); err != nil {
		return err
	}

	runner := solver.NewRunner(registry, cfg.InputDir, logger)

	solve := func() {
		run, err := runner.RunDay(day)
		if err != nil {
			fmt.Println(styles.Error.Render(err.Error()))
			return
		}
		printRun(run)
		recordRuns(uuid.NewString(), run)
	}

	// The input may not exist yet; the watcher picks it up on creation.
	solve()

	watcher, err := watch.NewInputWatcher(runner.InputPath(day), solve, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	fmt.Println(styles.Muted.Render(fmt.Sprintf("watching %s, Ctrl-C to stop", runner.InputPath(day))))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	return nil
}
