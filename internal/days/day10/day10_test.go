package day10

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProgram = `addx 15
addx -11
addx 6
addx -3
addx 5
addx -1
addx -8
addx 13
addx 4
noop
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx -35
addx 1
addx 24
addx -19
addx 1
addx 16
addx -11
noop
noop
addx 21
addx -15
noop
noop
addx -3
addx 9
addx 1
addx -3
addx 8
addx 1
addx 5
noop
noop
noop
noop
noop
addx -36
noop
addx 1
addx 7
noop
noop
noop
addx 2
addx 6
noop
noop
noop
noop
noop
addx 1
noop
noop
addx 7
addx 1
noop
addx -13
addx 13
addx 7
noop
addx 1
addx -33
noop
noop
noop
addx 2
noop
noop
noop
addx 8
noop
addx -1
addx 2
addx 1
noop
addx 17
addx -9
addx 1
addx 1
addx -3
addx 11
noop
noop
addx 1
noop
addx 1
noop
noop
addx -13
addx -19
addx 1
addx 3
addx 26
addx -30
addx 12
addx -1
addx 3
addx 1
noop
noop
noop
addx -9
addx 18
addx 1
addx 2
noop
noop
addx 9
noop
noop
noop
addx -1
addx 2
addx -37
addx 1
addx 3
noop
addx 15
addx -21
addx 22
addx -6
addx 1
noop
addx 2
addx 1
noop
addx -10
noop
noop
addx 20
addx 1
addx 2
addx 2
addx -6
addx -11
noop
noop
noop
`

const sampleFrame = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....`

func TestParseInstruction(t *testing.T) {
	for _, tc := range []struct {
		line string
		want Instruction
	}{
		{"noop", Instruction{}},
		{"addx 3", Instruction{Addx: true, Arg: 3}},
		{"addx -5", Instruction{Addx: true, Arg: -5}},
	} {
		got, err := ParseInstruction(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}

	for _, line := range []string{"", "jmp 4", "addx", "addx five", "noop 1"} {
		_, err := ParseInstruction(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestCPURun(t *testing.T) {
	program, err := ParseProgram("noop\naddx 3\naddx -5\n")
	require.NoError(t, err)

	var xs []int
	cpu := NewCPU()
	cpu.Run(program, func(cycle, x int) {
		xs = append(xs, x)
	})

	assert.Equal(t, []int{1, 1, 1, 4, 4}, xs)
	assert.Equal(t, -1, cpu.X)
}

func TestSignalStrengthSum(t *testing.T) {
	program, err := ParseProgram(sampleProgram)
	require.NoError(t, err)
	assert.Equal(t, 13140, SignalStrengthSum(program))
}

func TestRenderCRT(t *testing.T) {
	program, err := ParseProgram(sampleProgram)
	require.NoError(t, err)
	assert.Equal(t, sampleFrame, RenderCRT(program))
}

func TestSolve(t *testing.T) {
	res, err := New().Solve(sampleProgram)
	require.NoError(t, err)
	assert.Equal(t, "13140", res.PartOne)
	assert.Equal(t, sampleFrame, res.PartTwo)
	assert.Len(t, strings.Split(res.PartTwo, "\n"), 6)
}

func TestSolveBadProgram(t *testing.T) {
	_, err := New().Solve("addx 1\nhlt\n")
	assert.Error(t, err)
}
