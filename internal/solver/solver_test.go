package solver

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSolver counts the lines of its input.
type stubSolver struct {
	day  int
	fail error
}

func (s stubSolver) Day() int      { return s.day }
func (s stubSolver) Title() string { return "Stub Day " + strconv.Itoa(s.day) }

func (s stubSolver) Solve(text string) (*Result, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	n := len(strings.Split(strings.TrimSpace(text), "\n"))
	return &Result{PartOne: strconv.Itoa(n), PartTwo: strconv.Itoa(n * 2)}, nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubSolver{day: 3})
	reg.Register(stubSolver{day: 1})
	reg.Register(stubSolver{day: 2})

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []int{1, 2, 3}, reg.Days())

	s, err := reg.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Day())

	_, err = reg.Get(4)
	assert.Error(t, err)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubSolver{day: 1})
	assert.Panics(t, func() {
		reg.Register(stubSolver{day: 1})
	})
}

func TestRunnerInputPath(t *testing.T) {
	r := NewRunner(NewRegistry(), "puzzles", nil)
	assert.Equal(t, filepath.Join("puzzles", "day9.dat"), r.InputPath(9))
}

func TestRunnerRunDay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day5.dat"), []byte("a\nb\nc\n"), 0644))

	reg := NewRegistry()
	reg.Register(stubSolver{day: 5})

	run, err := NewRunner(reg, dir, nil).RunDay(5)
	require.NoError(t, err)
	assert.Equal(t, 5, run.Day)
	assert.Equal(t, "Stub Day 5", run.Title)
	assert.Equal(t, "3", run.Result.PartOne)
	assert.Equal(t, "6", run.Result.PartTwo)
	assert.GreaterOrEqual(t, run.Duration.Nanoseconds(), int64(0))
}

func TestRunnerMissingInput(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubSolver{day: 5})

	_, err := NewRunner(reg, t.TempDir(), nil).RunDay(5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day5.dat")
}

func TestRunnerUnknownDay(t *testing.T) {
	_, err := NewRunner(NewRegistry(), t.TempDir(), nil).RunDay(12)
	assert.Error(t, err)
}

func TestRunnerRunAllStopsAtFailure(t *testing.T) {
	dir := t.TempDir()
	for _, day := range []int{1, 2, 3} {
		name := "day" + strconv.Itoa(day) + ".dat"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
	}

	boom := errors.New("boom")
	reg := NewRegistry()
	reg.Register(stubSolver{day: 1})
	reg.Register(stubSolver{day: 2, fail: boom})
	reg.Register(stubSolver{day: 3})

	runs, err := NewRunner(reg, dir, nil).RunAll()
	require.ErrorIs(t, err, boom)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Day)
}

func TestRunnerRunAll(t *testing.T) {
	dir := t.TempDir()
	for _, day := range []int{2, 7} {
		name := "day" + strconv.Itoa(day) + ".dat"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\ny\n"), 0644))
	}

	reg := NewRegistry()
	reg.Register(stubSolver{day: 7})
	reg.Register(stubSolver{day: 2})

	runs, err := NewRunner(reg, dir, nil).RunAll()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 2, runs[0].Day)
	assert.Equal(t, 7, runs[1].Day)
}
