package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	assert.Equal(t, Win, play(Rock, Scissors))
	assert.Equal(t, Lose, play(Rock, Paper))
	assert.Equal(t, Draw, play(Rock, Rock))

	assert.Equal(t, Win, play(Paper, Rock))
	assert.Equal(t, Lose, play(Paper, Scissors))
	assert.Equal(t, Draw, play(Paper, Paper))

	assert.Equal(t, Win, play(Scissors, Paper))
	assert.Equal(t, Lose, play(Scissors, Rock))
	assert.Equal(t, Draw, play(Scissors, Scissors))
}

func TestSolve_Example(t *testing.T) {
	res, err := New().Solve("A Y\nB X\nC Z\n")
	require.NoError(t, err)

	assert.Equal(t, "15", res.PartOne)
	assert.Equal(t, "12", res.PartTwo)
}

func TestScore_InvalidTurn(t *testing.T) {
	_, err := Score([]string{"A  Y"}, false)
	assert.Error(t, err)

	_, err = Score([]string{"D X"}, false)
	assert.Error(t, err)

	_, err = Score([]string{"A Q"}, true)
	assert.Error(t, err)
}
