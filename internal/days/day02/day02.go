// Package day02 solves Rock Paper Scissors: score a strategy guide under
// two readings of the second column.
package day02

import (
	"fmt"
	"strconv"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// Shape is a hand shape.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Points returns the score contribution of playing the shape.
func (s Shape) Points() int {
	switch s {
	case Rock:
		return 1
	case Paper:
		return 2
	default:
		return 3
	}
}

// beats returns the shape s wins against.
func (s Shape) beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// losesTo returns the shape s loses against.
func (s Shape) losesTo() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Outcome of a single round, from the player's perspective.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

// Points returns the score contribution of the outcome.
func (o Outcome) Points() int {
	switch o {
	case Win:
		return 6
	case Draw:
		return 3
	default:
		return 0
	}
}

// play determines the outcome of player vs opponent.
func play(player, opponent Shape) Outcome {
	switch {
	case player == opponent:
		return Draw
	case player.beats() == opponent:
		return Win
	default:
		return Lose
	}
}

// shapeForOutcome returns the shape to play against opponent to reach the
// desired outcome.
func shapeForOutcome(opponent Shape, outcome Outcome) Shape {
	switch outcome {
	case Draw:
		return opponent
	case Win:
		return opponent.losesTo()
	default:
		return opponent.beats()
	}
}

func opponentShape(c byte) (Shape, error) {
	switch c {
	case 'A':
		return Rock, nil
	case 'B':
		return Paper, nil
	case 'C':
		return Scissors, nil
	}
	return 0, fmt.Errorf("%q is not a valid sign for opponent", c)
}

func playerShape(c byte) (Shape, error) {
	switch c {
	case 'X':
		return Rock, nil
	case 'Y':
		return Paper, nil
	case 'Z':
		return Scissors, nil
	}
	return 0, fmt.Errorf("%q is not a valid sign for player", c)
}

func desiredOutcome(c byte) (Outcome, error) {
	switch c {
	case 'X':
		return Lose, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	}
	return 0, fmt.Errorf("%q is not a valid sign for outcome", c)
}

type Day struct{}

// New returns the day 2 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 2 }
func (Day) Title() string { return "Rock Paper Scissors" }

func (d Day) Solve(text string) (*solver.Result, error) {
	lines := input.Lines(text)

	partOne, err := Score(lines, false)
	if err != nil {
		return nil, err
	}
	partTwo, err := Score(lines, true)
	if err != nil {
		return nil, err
	}

	return &solver.Result{
		PartOne: strconv.Itoa(partOne),
		PartTwo: strconv.Itoa(partTwo),
	}, nil
}

// Score totals the strategy guide. When hinted is false the second column
// is the player's shape; when true it is the required outcome.
func Score(lines []string, hinted bool) (int, error) {
	total := 0
	for _, line := range lines {
		if len(line) != 3 || line[1] != ' ' {
			return 0, fmt.Errorf("invalid turn format %q", line)
		}

		opponent, err := opponentShape(line[0])
		if err != nil {
			return 0, err
		}

		var player Shape
		if hinted {
			outcome, err := desiredOutcome(line[2])
			if err != nil {
				return 0, err
			}
			player = shapeForOutcome(opponent, outcome)
		} else {
			if player, err = playerShape(line[2]); err != nil {
				return 0, err
			}
		}

		total += player.Points() + play(player, opponent).Points()
	}

	return total, nil
}
