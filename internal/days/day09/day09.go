// Package day09 solves Rope Bridge: knots follow the head of a rope across
// a grid; count the unique positions the tail visits.
package day09

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Position is a point on the (unbounded) grid.
type Position struct {
	X, Y int
}

// Direction of a head movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Movement is one input line: a direction and a step count.
type Movement struct {
	Direction Direction
	Amount    int
}

// ParseMovement parses lines like "R 4".
func ParseMovement(line string) (Movement, error) {
	dir, amount, ok := strings.Cut(line, " ")
	if !ok {
		return Movement{}, fmt.Errorf("badly formatted movement %q", line)
	}

	var d Direction
	switch dir {
	case "U":
		d = Up
	case "D":
		d = Down
	case "L":
		d = Left
	case "R":
		d = Right
	default:
		return Movement{}, fmt.Errorf("invalid direction %q", dir)
	}

	n, err := strconv.Atoi(amount)
	if err != nil {
		return Movement{}, fmt.Errorf("invalid amount %q", amount)
	}

	return Movement{Direction: d, Amount: n}, nil
}

// ParseMovements parses the whole movement list.
func ParseMovements(text string) ([]Movement, error) {
	var movements []Movement
	for _, line := range input.Lines(text) {
		m, err := ParseMovement(line)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

// step moves the position one cell in the direction.
func (p Position) step(d Direction) Position {
	switch d {
	case Up:
		p.Y++
	case Down:
		p.Y--
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

// touching reports whether two knots are within one cell of each other,
// diagonals included.
func touching(a, b Position) bool {
	return abs(a.X-b.X) <= 1 && abs(a.Y-b.Y) <= 1
}

// follow moves knot one step toward head per the rope rules: straight
// along a shared row or column, diagonally otherwise.
func follow(knot, head Position) Position {
	knot.X += sign(head.X - knot.X)
	knot.Y += sign(head.Y - knot.Y)
	return knot
}

// Rope is a chain of knots; the first is the head.
type Rope struct {
	knots   []Position
	visited map[Position]struct{}
}

// NewRope creates a rope of n knots, all at the origin. The tail's
// starting position counts as visited.
func NewRope(n int) *Rope {
	r := &Rope{
		knots:   make([]Position, n),
		visited: map[Position]struct{}{{}: {}},
	}
	return r
}

// Apply runs the movements, dragging each knot behind its predecessor.
func (r *Rope) Apply(movements []Movement) {
	last := len(r.knots) - 1
	for _, m := range movements {
		for s := 0; s < m.Amount; s++ {
			r.knots[0] = r.knots[0].step(m.Direction)
			for i := 1; i < len(r.knots); i++ {
				if touching(r.knots[i], r.knots[i-1]) {
					break
				}
				r.knots[i] = follow(r.knots[i], r.knots[i-1])
				if i == last {
					r.visited[r.knots[last]] = struct{}{}
				}
			}
		}
	}
}

// TailVisited returns the number of unique positions the tail has visited.
func (r *Rope) TailVisited() int {
	return len(r.visited)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

type Day struct{}

// New returns the day 9 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 9 }
func (Day) Title() string { return "Rope Bridge" }

func (d Day) Solve(text string) (*solver.Result, error) {
	movements, err := ParseMovements(text)
	if err != nil {
		return nil, err
	}

	short := NewRope(2)
	short.Apply(movements)

	long := NewRope(10)
	long.Apply(movements)

	return &solver.Result{
		PartOne: strconv.Itoa(short.TailVisited()),
		PartTwo: strconv.Itoa(long.TailVisited()),
	}, nil
}
