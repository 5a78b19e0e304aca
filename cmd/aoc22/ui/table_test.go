package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableViewEmpty(t *testing.T) {
	table := NewTable("Solve history", "Day", "Title")
	assert.Equal(t, "", table.View(PlainStyles()))
}

func TestTableView(t *testing.T) {
	table := NewTable("Advent of Code 2022", "Day", "Title")
	table.AddRow("1", "Calorie Counting")
	table.AddRow("14", "Regolith Reservoir")

	out := table.View(PlainStyles())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "Advent of Code 2022", lines[0])
	assert.Contains(t, lines[1], "Day")
	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, lines[2], "---")
	assert.Contains(t, lines[3], "Calorie Counting")
	assert.Contains(t, lines[4], "Regolith Reservoir")
}

func TestRenderDivider(t *testing.T) {
	s := PlainStyles()
	assert.Len(t, []rune(s.RenderDivider(10)), 10)
	assert.Len(t, []rune(s.RenderDivider(0)), 40)
}
