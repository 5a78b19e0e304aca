// Package day03 solves Rucksack Reorganization: item priorities shared
// between compartments and three-elf group badges.
package day03

import (
	"fmt"
	"strconv"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Priority returns the priority of an item: a..z are 1..26, A..Z are 27..52.
func Priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("rucksack contains unexpected item %q", item)
}

// Rucksack holds one line of items, split into two equal compartments.
type Rucksack struct {
	items string
}

// NewRucksack validates and wraps one input line.
func NewRucksack(line string) (Rucksack, error) {
	if len(line) == 0 || len(line)%2 != 0 {
		return Rucksack{}, fmt.Errorf("number of items in a rucksack must be even and non-zero, got %d", len(line))
	}
	return Rucksack{items: line}, nil
}

// SharedItemPriority finds the item present in both compartments and
// returns its priority.
func (r Rucksack) SharedItemPriority() (int, error) {
	half := len(r.items) / 2
	first, second := r.items[:half], r.items[half:]

	for i := 0; i < len(first); i++ {
		for j := 0; j < len(second); j++ {
			if first[i] == second[j] {
				return Priority(first[i])
			}
		}
	}

	return 0, fmt.Errorf("no shared item between compartments of %q", r.items)
}

// contains reports whether the rucksack holds the item in either
// compartment.
func (r Rucksack) contains(item byte) bool {
	for i := 0; i < len(r.items); i++ {
		if r.items[i] == item {
			return true
		}
	}
	return false
}

// BadgePriority finds the single item common to all three rucksacks of a
// group and returns its priority.
func BadgePriority(group []Rucksack) (int, error) {
	if len(group) != 3 {
		return 0, fmt.Errorf("group is not formed by 3 elves")
	}

	for i := 0; i < len(group[0].items); i++ {
		item := group[0].items[i]
		if group[1].contains(item) && group[2].contains(item) {
			return Priority(item)
		}
	}

	return 0, fmt.Errorf("badge not found")
}

type Day struct{}

// New returns the day 3 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 3 }
func (Day) Title() string { return "Rucksack Reorganization" }

func (d Day) Solve(text string) (*solver.Result, error) {
	var rucksacks []Rucksack
	for _, line := range input.Lines(text) {
		r, err := NewRucksack(line)
		if err != nil {
			return nil, err
		}
		rucksacks = append(rucksacks, r)
	}

	partOne := 0
	for _, r := range rucksacks {
		p, err := r.SharedItemPriority()
		if err != nil {
			return nil, err
		}
		partOne += p
	}

	partTwo := 0
	for i := 0; i < len(rucksacks); i += 3 {
		end := i + 3
		if end > len(rucksacks) {
			end = len(rucksacks)
		}
		p, err := BadgePriority(rucksacks[i:end])
		if err != nil {
			return nil, err
		}
		partTwo += p
	}

	return &solver.Result{
		PartOne: strconv.Itoa(partOne),
		PartTwo: strconv.Itoa(partTwo),
	}, nil
}
