// Package day01 solves Calorie Counting: elves carry blank-line separated
// calorie inventories; find the heaviest load and the top-three total.
package day01

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Elf is one inventory: its 1-based position in the input and its total
// calories.
type Elf struct {
	Index    int
	Calories int
}

type Day struct{}

// New returns the day 1 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 1 }
func (Day) Title() string { return "Calorie Counting" }

func (d Day) Solve(text string) (*solver.Result, error) {
	elves, err := ParseElves(text)
	if err != nil {
		return nil, err
	}
	if len(elves) == 0 {
		return nil, fmt.Errorf("no elf inventories in input")
	}

	topThree := 0
	for i := 0; i < len(elves) && i < 3; i++ {
		topThree += elves[i].Calories
	}

	return &solver.Result{
		PartOne: strconv.Itoa(elves[0].Calories),
		PartTwo: strconv.Itoa(topThree),
	}, nil
}

// ParseElves parses inventories and returns them sorted by calories,
// descending. A blank line closes the current inventory.
func ParseElves(text string) ([]Elf, error) {
	var elves []Elf
	index := 1
	calories := 0
	open := false

	for _, line := range input.Lines(text) {
		if line == "" {
			elves = append(elves, Elf{Index: index, Calories: calories})
			index++
			calories = 0
			open = false
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("invalid calorie entry %q", line)
		}
		calories += n
		open = true
	}
	if open {
		elves = append(elves, Elf{Index: index, Calories: calories})
	}

	sort.SliceStable(elves, func(i, j int) bool {
		return elves[i].Calories > elves[j].Calories
	})

	return elves, nil
}
