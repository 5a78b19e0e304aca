// Package day06 solves Tuning Trouble: find the first window of distinct
// characters marking the start of a packet (4) or message (14).
package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcoradocchia/aoc22/internal/solver"
)

const (
	// PacketMarkerLen is the start-of-packet marker width.
	PacketMarkerLen = 4
	// MessageMarkerLen is the start-of-message marker width.
	MessageMarkerLen = 14
)

// allDistinct reports whether the window contains no repeated character.
func allDistinct(window string) bool {
	for i := 0; i < len(window); i++ {
		if strings.IndexByte(window[i+1:], window[i]) >= 0 {
			return false
		}
	}
	return true
}

// MarkerEnd returns the number of characters processed before (and
// including) the first window of markerLen distinct characters.
func MarkerEnd(stream string, markerLen int) (int, error) {
	for i := 0; i+markerLen <= len(stream); i++ {
		if allDistinct(stream[i : i+markerLen]) {
			return i + markerLen, nil
		}
	}
	return 0, fmt.Errorf("no marker of %d distinct characters in stream", markerLen)
}

type Day struct{}

// New returns the day 6 solver.
func New() solver.Solver { return Day{} }

func (Day) Day() int      { return 6 }
func (Day) Title() string { return "Tuning Trouble" }

func (d Day) Solve(text string) (*solver.Result, error) {
	stream := strings.TrimRight(text, "\n")

	packet, err := MarkerEnd(stream, PacketMarkerLen)
	if err != nil {
		return nil, err
	}
	message, err := MarkerEnd(stream, MessageMarkerLen)
	if err != nil {
		return nil, err
	}

	return &solver.Result{
		PartOne: strconv.Itoa(packet),
		PartTwo: strconv.Itoa(message),
	}, nil
}
