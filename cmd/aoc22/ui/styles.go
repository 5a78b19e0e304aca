// Package ui provides the terminal styling for the aoc22 CLI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Advent palette.
var (
	Green  = lipgloss.Color("#00cc00")
	Gold   = lipgloss.Color("#ffff66")
	Snow   = lipgloss.Color("#f2f2f2")
	Grey   = lipgloss.Color("#5c5c5c")
	Red    = lipgloss.Color("#e53935")
	Silver = lipgloss.Color("#9999cc")
)

// Styles holds the render styles used by the CLI output.
type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style

	Answer  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style

	// Plain disables styling entirely for pipes and dumb terminals.
	Plain bool
}

// NewStyles builds the default styled palette.
func NewStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Green),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle().Foreground(Snow),
		Muted:   lipgloss.NewStyle().Foreground(Grey),
		Answer:  lipgloss.NewStyle().Bold(true).Foreground(Gold),
		Success: lipgloss.NewStyle().Foreground(Green),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(Red),
	}
}

// PlainStyles returns styles that render text unmodified.
func PlainStyles() Styles {
	s := Styles{Plain: true}
	s.Title = lipgloss.NewStyle()
	s.Bold = s.Title
	s.Body = s.Title
	s.Muted = s.Title
	s.Answer = s.Title
	s.Success = s.Title
	s.Error = s.Title
	return s
}

// RenderDivider draws a horizontal rule of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 40
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
