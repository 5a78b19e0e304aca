package solver

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/marcoradocchia/aoc22/internal/input"
)

// Run records one completed solve: which day ran, what it answered and how
// long it took. This is what gets printed and persisted.
type Run struct {
	Day      int
	Title    string
	Result   Result
	Duration time.Duration
}

// Runner executes registered solvers against input files under InputDir.
type Runner struct {
	registry *Registry
	inputDir string
	logger   *zap.Logger
}

// NewRunner creates a Runner. A nil logger is replaced with a no-op logger.
func NewRunner(registry *Registry, inputDir string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		registry: registry,
		inputDir: inputDir,
		logger:   logger,
	}
}

// InputPath returns the input file path for a day, e.g. input/day9.dat.
func (r *Runner) InputPath(day int) string {
	return filepath.Join(r.inputDir, fmt.Sprintf("day%d.dat", day))
}

// RunDay loads the day's input file and solves both parts.
func (r *Runner) RunDay(day int) (*Run, error) {
	s, err := r.registry.Get(day)
	if err != nil {
		return nil, err
	}

	path := r.InputPath(day)
	text, err := input.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}
	r.logger.Debug("input loaded",
		zap.Int("day", day),
		zap.String("path", path),
		zap.Int("bytes", len(text)),
	)

	start := time.Now()
	result, err := s.Solve(text)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}
	elapsed := time.Since(start)

	r.logger.Info("day solved",
		zap.Int("day", day),
		zap.String("title", s.Title()),
		zap.Duration("elapsed", elapsed),
	)

	return &Run{
		Day:      day,
		Title:    s.Title(),
		Result:   *result,
		Duration: elapsed,
	}, nil
}

// RunAll solves every registered day in ascending order, stopping at the
// first failure.
func (r *Runner) RunAll() ([]*Run, error) {
	runs := make([]*Run, 0, r.registry.Len())
	for _, day := range r.registry.Days() {
		run, err := r.RunDay(day)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}
