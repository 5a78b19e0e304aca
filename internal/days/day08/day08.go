// Package day08 solves Treetop Tree House: visibility and scenic scores on
// a grid of tree heights.
package day08

import (
	"fmt"
	"strconv"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Forest is a rectangular grid of tree heights stored row-major.
type Forest struct {
	rows, cols int
	heights    []int
}

// ParseForest parses a digit grid.
func ParseForest(text string) (*Forest, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty forest")
	}

	cols := len(lines[0])
	heights := make([]int, 0, len(lines)*cols)
	for _, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("ragged forest row %q", line)
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("invalid tree height %q", c)
			}
			heights = append(heights, int(c-'0'))
		}
	}

	return &Forest{rows: len(lines), cols: cols, heights: heights}, nil
}

// Height returns the tree height at (i, j).
func (f *Forest) Height(i, j int) int {
	return f.heights[i*f.cols+j]
}

// isEdge reports whether (i, j) sits on the forest perimeter.
func (f *Forest) isEdge(i, j int) bool {
	return i == 0 || i == f.rows-1 || j == 0 || j == f.cols-1
}

// IsVisible reports whether the tree at (i, j) can be seen from outside
// the grid along at least one axis direction.
func (f *Forest) IsVisible(i, j int) bool {
	if f.isEdge(i, j) {
		return true
	}

	h := f.Height(i, j)

	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		visible := true
		for r, c := i+d[0], j+d[1]; r >= 0 && r < f.rows && c >= 0 && c < f.cols; r, c = r+d[0], c+d[1] {
			if f.Height(r, c) >= h {
				visible = false
				break
			}
		}
		if visible {
			return true
		}
	}

	return false
}

// CountVisible counts trees visible from outside the grid.
func (f *Forest) CountVisible() int {
	count := 0
	for i := 0; i < f.rows; i++ {
		for j := 0; j < f.cols; j++ {
			if f.IsVisible(i, j) {
				count++
			}
		}
	}
	return count
}

// ScenicScore is the product of viewing distances in the four directions
// from (i, j).
func (f *Forest) ScenicScore(i, j int) int {
	h := f.Height(i, j)
	score := 1

	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		dist := 0
		for r, c := i+d[0], j+d[1]; r >= 0 && r < f.rows && c >= 0 && c < f.cols; r, c = r+d[0], c+d[1] {
			dist++
			if f.Height(r, c) >= h {
				break
			}
		}
		score *= dist
	}

	return score
}

// HighestScenicScore returns the best scenic score of any tree.
func (f *Forest) HighestScenicScore() int {
	best := 0
	for i := 0; i < f.rows; i++ {
		for j := 0; j < f.cols; j++ {
			if s := f.ScenicScore(i, j); s > best {
				best = s
			}
		}
	}
	return best
}

type Day struct{}

// New returns the day 8 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 8 }
func (Day) Title() string { return "Treetop Tree House" }

func (d Day) Solve(text string) (*solver.Result, error) {
	forest, err := ParseForest(text)
	if err != nil {
		return nil, err
	}

	return &solver.Result{
		PartOne: strconv.Itoa(forest.CountVisible()),
		PartTwo: strconv.Itoa(forest.HighestScenicScore()),
	}, nil
}
