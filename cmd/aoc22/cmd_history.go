package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcoradocchia/aoc22/cmd/aoc22/ui"
	"github.com/marcoradocchia/aoc22/internal/store"
)

var historyLimit int

// historyCmd shows previously recorded results
var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recorded solve results",
	Long: `Shows results recorded in the history database, newest first.
With a day argument only that day's results are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: showHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to show")
}

func showHistory(cmd *cobra.Command, args []string) error {
	day := 0
	if len(args) == 1 {
		var err error
		if day, err = parseDayArg(args[0]); err != nil {
			return err
		}
	}

	hs, err := store.NewHistoryStore(cfg.History.DatabasePath)
	if err != nil {
		return err
	}
	defer hs.Close()

	entries, err := hs.History(day, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(styles.Muted.Render("no recorded results"))
		return nil
	}

	table := ui.NewTable("Solve history", "When", "Day", "Title", "Part one", "Part two", "Time")
	for _, e := range entries {
		table.AddRow(
			e.CreatedAt.Local().Format(time.DateTime),
			strconv.Itoa(e.Day),
			e.Title,
			firstLine(e.PartOne),
			firstLine(e.PartTwo),
			fmt.Sprintf("%dms", e.DurationMs),
		)
	}

	fmt.Print(table.View(styles))
	return nil
}

// firstLine truncates multi-line answers for the table.
func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i] + "…"
		}
	}
	return s
}
