// Package solver defines the contract every puzzle day implements and the
// registry/runner machinery that executes days against their input files.
package solver

// Result holds the two answers a puzzle day produces. Answers are strings
// because some days answer with text (day5 crate sequence, day10 CRT frame)
// rather than a number.
type Result struct {
	PartOne string
	PartTwo string
}

// Solver is implemented by each day package. Solve receives the raw input
// file contents; every day owns its own parsing.
type Solver interface {
	// Day returns the calendar day this solver answers.
	Day() int

	// Title returns the puzzle title, e.g. "Calorie Counting".
	Title() string

	// Solve computes both parts from the raw input text.
	Solve(input string) (*Result, error)
}
