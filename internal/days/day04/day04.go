// Package day04 solves Camp Cleanup: count section-range pairs that fully
// contain or overlap each other.
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Range is an inclusive range of section IDs.
type Range struct {
	Min, Max int
}

// ParseRange parses "a-b" with a <= b.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("invalid range format %q", s)
	}

	min, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range format %q", s)
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range format %q", s)
	}

	if min > max {
		return Range{}, fmt.Errorf("range must be expressed as a-b with a <= b, got %q", s)
	}

	return Range{Min: min, Max: max}, nil
}

// Pair is the two assignment ranges of an elf pair.
type Pair struct {
	First, Second Range
}

// ParsePair parses one "a-b,c-d" line.
func ParsePair(line string) (Pair, error) {
	first, second, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, fmt.Errorf("unable to find two elves in line %q", line)
	}

	a, err := ParseRange(first)
	if err != nil {
		return Pair{}, err
	}
	b, err := ParseRange(second)
	if err != nil {
		return Pair{}, err
	}

	return Pair{First: a, Second: b}, nil
}

// FullyContained reports whether one range fully contains the other.
func (p Pair) FullyContained() bool {
	contained := func(a, b Range) bool {
		return a.Min <= b.Min && b.Max <= a.Max
	}
	return contained(p.First, p.Second) || contained(p.Second, p.First)
}

// Overlap reports whether the two ranges share at least one section.
func (p Pair) Overlap() bool {
	return p.First.Min <= p.Second.Max && p.Second.Min <= p.First.Max
}

type Day struct{}

// New returns the day 4 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 4 }
func (Day) Title() string { return "Camp Cleanup" }

func (d Day) Solve(text string) (*solver.Result, error) {
	contained, overlapping := 0, 0

	for _, line := range input.Lines(text) {
		pair, err := ParsePair(line)
		if err != nil {
			return nil, err
		}
		if pair.FullyContained() {
			contained++
		}
		if pair.Overlap() {
			overlapping++
		}
	}

	return &solver.Result{
		PartOne: strconv.Itoa(contained),
		PartTwo: strconv.Itoa(overlapping),
	}, nil
}
