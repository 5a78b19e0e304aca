// Package day14 solves Regolith Reservoir: sand pours into a cave scanned
// as rock paths and settles grain by grain.
package day14

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Source is where sand enters the cave.
var Source = Point{X: 500, Y: 0}

// Point is a cave coordinate; Y grows downward.
type Point struct {
	X, Y int
}

// ParsePoint decodes "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("point %q must be x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("invalid x coordinate %q", xs)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("invalid y coordinate %q", ys)
	}
	return Point{X: x, Y: y}, nil
}

// Path is a chain of straight rock segments.
type Path []Point

// ParsePath decodes "x,y -> x,y -> x,y". Consecutive points must share an
// axis.
func ParsePath(line string) (Path, error) {
	parts := strings.Split(line, "->")
	if len(parts) < 2 {
		return nil, fmt.Errorf("rock path %q needs at least two points", line)
	}

	path := make(Path, 0, len(parts))
	for _, part := range parts {
		p, err := ParsePoint(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		path = append(path, p)
	}
	for i := 1; i < len(path); i++ {
		if path[i].X != path[i-1].X && path[i].Y != path[i-1].Y {
			return nil, fmt.Errorf("rock segment %v -> %v is not axis-aligned", path[i-1], path[i])
		}
	}
	return path, nil
}

// Cave tracks occupied cells, rock and settled sand alike.
type Cave struct {
	filled map[Point]struct{}
	// maxRockY is the lowest rock scanned; sand below it falls forever.
	maxRockY int
	sand     int
}

// NewCave builds a cave from the scanned rock paths.
func NewCave(text string) (*Cave, error) {
	c := &Cave{filled: make(map[Point]struct{})}
	for _, line := range input.Lines(text) {
		path, err := ParsePath(line)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(path); i++ {
			c.addSegment(path[i-1], path[i])
		}
	}
	return c, nil
}

func (c *Cave) addSegment(a, b Point) {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	for p := a; ; p = (Point{X: p.X + dx, Y: p.Y + dy}) {
		c.filled[p] = struct{}{}
		if p.Y > c.maxRockY {
			c.maxRockY = p.Y
		}
		if p == b {
			break
		}
	}
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

func (c *Cave) blocked(p Point, floor bool) bool {
	if floor && p.Y == c.maxRockY+2 {
		return true
	}
	_, ok := c.filled[p]
	return ok
}

// dropGrain pours one grain from the source. It reports false when the grain
// falls past the lowest rock (no floor) or the source itself is blocked.
func (c *Cave) dropGrain(floor bool) bool {
	if c.blocked(Source, floor) {
		return false
	}

	p := Source
	for {
		if !floor && p.Y > c.maxRockY {
			return false
		}
		moved := false
		for _, next := range []Point{
			{X: p.X, Y: p.Y + 1},
			{X: p.X - 1, Y: p.Y + 1},
			{X: p.X + 1, Y: p.Y + 1},
		} {
			if !c.blocked(next, floor) {
				p = next
				moved = true
				break
			}
		}
		if !moved {
			c.filled[p] = struct{}{}
			c.sand++
			return true
		}
	}
}

// Pour drops grains until one is lost to the void (no floor) or the source
// clogs (with floor), returning how many came to rest.
func (c *Cave) Pour(floor bool) int {
	for c.dropGrain(floor) {
	}
	return c.sand
}

type Day struct{}

// New returns the day 14 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 14 }
func (Day) Title() string { return "Regolith Reservoir" }

func (d Day) Solve(text string) (*solver.Result, error) {
	void, err := NewCave(text)
	if err != nil {
		return nil, err
	}
	floored, err := NewCave(text)
	if err != nil {
		return nil, err
	}

	return &solver.Result{
		PartOne: strconv.Itoa(void.Pour(false)),
		PartTwo: strconv.Itoa(floored.Pour(true)),
	}, nil
}
