// Package day05 solves Supply Stacks: rearrange crate stacks according to a
// move procedure and read off the top crate of each stack.
//
// Input is a drawing of the initial stacks followed by a blank line and the
// procedure:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
package day05

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcoradocchia/aoc22/internal/solver"
)

// CraneModel selects the crate moving behavior.
type CraneModel int

const (
	// CrateMover9000 moves crates one at a time, reversing each batch.
	CrateMover9000 CraneModel = iota
	// CrateMover9001 moves whole batches at once, preserving order.
	CrateMover9001
)

// Storage is the set of crate stacks; each stack is ordered bottom to top.
type Storage struct {
	stacks [][]byte
}

// Move is one rearrangement instruction.
type Move struct {
	Amount int
	Origin int
	Dest   int
}

// ParseStorage parses the stack drawing. The footer line of stack numbers
// determines the stack count; crate letters sit at column 1+4*i.
func ParseStorage(drawing string) (*Storage, error) {
	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("storage drawing too short")
	}

	footer := strings.Fields(lines[len(lines)-1])
	if len(footer) == 0 {
		return nil, fmt.Errorf("storage must contain at least one stack")
	}
	size, err := strconv.Atoi(footer[len(footer)-1])
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve storage size: %w", err)
	}

	stacks := make([][]byte, size)
	// Walk the drawing bottom-up so crates append in stack order.
	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for s := 0; s < size; s++ {
			col := 1 + 4*s
			if col >= len(line) {
				break
			}
			if c := line[col]; c != ' ' {
				stacks[s] = append(stacks[s], c)
			}
		}
	}

	return &Storage{stacks: stacks}, nil
}

// ParseMove parses "move N from A to B", validating the keywords.
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return Move{}, fmt.Errorf("badly formatted move instruction %q", line)
	}

	values := make([]int, 3)
	for i, f := range []string{fields[1], fields[3], fields[5]} {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, fmt.Errorf("badly formatted move instruction %q", line)
		}
		values[i] = n
	}

	return Move{Amount: values[0], Origin: values[1], Dest: values[2]}, nil
}

// ParseProcedure parses the move list, skipping blank lines.
func ParseProcedure(text string) ([]Move, error) {
	var moves []Move
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Apply executes the procedure on the storage with the given crane model.
func (s *Storage) Apply(moves []Move, model CraneModel) error {
	for _, m := range moves {
		if m.Origin < 1 || m.Origin > len(s.stacks) {
			return fmt.Errorf("required origin stack %d does not exist", m.Origin)
		}
		if m.Dest < 1 || m.Dest > len(s.stacks) {
			return fmt.Errorf("required destination stack %d does not exist", m.Dest)
		}

		origin := s.stacks[m.Origin-1]
		if m.Amount > len(origin) {
			return fmt.Errorf("cannot move %d crates from stack %d holding %d", m.Amount, m.Origin, len(origin))
		}

		batch := append([]byte(nil), origin[len(origin)-m.Amount:]...)
		s.stacks[m.Origin-1] = origin[:len(origin)-m.Amount]

		if model == CrateMover9000 {
			for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
				batch[i], batch[j] = batch[j], batch[i]
			}
		}
		s.stacks[m.Dest-1] = append(s.stacks[m.Dest-1], batch...)
	}

	return nil
}

// TopCrates returns the letters of the top crate of each stack; an empty
// stack contributes a space.
func (s *Storage) TopCrates() string {
	var b strings.Builder
	for _, stack := range s.stacks {
		if len(stack) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(stack[len(stack)-1])
	}
	return b.String()
}

type Day struct{}

// New returns the day 5 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 5 }
func (Day) Title() string { return "Supply Stacks" }

func (d Day) Solve(text string) (*solver.Result, error) {
	drawing, procedure, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, fmt.Errorf("invalid input format: missing blank line between drawing and procedure")
	}

	moves, err := ParseProcedure(procedure)
	if err != nil {
		return nil, err
	}

	answers := make([]string, 2)
	for i, model := range []CraneModel{CrateMover9000, CrateMover9001} {
		storage, err := ParseStorage(drawing)
		if err != nil {
			return nil, err
		}
		if err := storage.Apply(moves, model); err != nil {
			return nil, err
		}
		answers[i] = storage.TopCrates()
	}

	return &solver.Result{PartOne: answers[0], PartTwo: answers[1]}, nil
}
