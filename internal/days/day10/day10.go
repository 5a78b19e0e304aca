// Package day10 solves Cathode-Ray Tube: a single-register CPU drives a
// 40x6 CRT; sample signal strengths and render the frame.
package day10

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcoradocchia/aoc22/internal/input"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// CRT geometry.
const (
	crtWidth  = 40
	crtHeight = 6
)

// Instruction is one CPU instruction: a noop or an addx.
type Instruction struct {
	// Addx is false for noop.
	Addx bool
	// Arg is the addx operand; unused for noop.
	Arg int
}

// Cycles returns how many cycles the instruction takes.
func (in Instruction) Cycles() int {
	if in.Addx {
		return 2
	}
	return 1
}

// ParseInstruction decodes "noop" or "addx n".
func ParseInstruction(line string) (Instruction, error) {
	op, rest, _ := strings.Cut(line, " ")
	switch op {
	case "noop":
		if rest != "" {
			return Instruction{}, fmt.Errorf("noop takes no argument, got %q", line)
		}
		return Instruction{}, nil
	case "addx":
		if rest == "" {
			return Instruction{}, fmt.Errorf("addx instruction must be followed by an integer argument")
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Instruction{}, fmt.Errorf("invalid addx argument %q", rest)
		}
		return Instruction{Addx: true, Arg: n}, nil
	case "":
		return Instruction{}, fmt.Errorf("empty CPU instruction")
	}
	return Instruction{}, fmt.Errorf("%q is not a valid CPU instruction", op)
}

// ParseProgram decodes the whole instruction listing.
func ParseProgram(text string) ([]Instruction, error) {
	var program []Instruction
	for _, line := range input.Lines(text) {
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, err
		}
		program = append(program, in)
	}
	return program, nil
}

// CPU executes a program, reporting the register value during each cycle
// through the tick callback. The register starts at 1; addx lands after its
// second cycle.
type CPU struct {
	X int
}

// NewCPU returns a CPU in its initial state.
func NewCPU() *CPU { return &CPU{X: 1} }

// Run executes the program, calling tick(cycle, X) during every cycle.
func (c *CPU) Run(program []Instruction, tick func(cycle, x int)) {
	cycle := 0
	for _, in := range program {
		for i := 0; i < in.Cycles(); i++ {
			cycle++
			tick(cycle, c.X)
		}
		if in.Addx {
			c.X += in.Arg
		}
	}
}

// SignalStrengthSum sums cycle*X during cycles 20, 60, 100, 140, 180, 220.
func SignalStrengthSum(program []Instruction) int {
	sum := 0
	NewCPU().Run(program, func(cycle, x int) {
		if cycle <= 220 && (cycle-20)%40 == 0 && cycle >= 20 {
			sum += cycle * x
		}
	})
	return sum
}

// RenderCRT draws the 40x6 frame: a pixel is lit when the 3-wide sprite
// centered on X covers the column being drawn.
func RenderCRT(program []Instruction) string {
	pixels := make([]byte, 0, crtWidth*crtHeight)
	NewCPU().Run(program, func(cycle, x int) {
		col := (cycle - 1) % crtWidth
		if col-x >= -1 && col-x <= 1 {
			pixels = append(pixels, '#')
		} else {
			pixels = append(pixels, '.')
		}
	})

	var b strings.Builder
	for row := 0; row < crtHeight && row*crtWidth < len(pixels); row++ {
		end := (row + 1) * crtWidth
		if end > len(pixels) {
			end = len(pixels)
		}
		if row > 0 {
			b.WriteByte('\n')
		}
		b.Write(pixels[row*crtWidth : end])
	}
	return b.String()
}

type Day struct{}

// New returns the day 10 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 10 }
func (Day) Title() string { return "Cathode-Ray Tube" }

func (d Day) Solve(text string) (*solver.Result, error) {
	program, err := ParseProgram(text)
	if err != nil {
		return nil, err
	}

	return &solver.Result{
		PartOne: strconv.Itoa(SignalStrengthSum(program)),
		PartTwo: RenderCRT(program),
	}, nil
}
