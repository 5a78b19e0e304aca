// Package input loads puzzle input files. Every day receives its input as a
// single string and parses it itself; the helpers here only deal with I/O
// and line splitting.
package input

import (
	"fmt"
	"os"
	"strings"
)

// ReadFile returns the contents of an input file as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return string(data), nil
}

// Lines splits raw input into lines, dropping the trailing newline so the
// last line never appears as an empty phantom entry. Interior blank lines
// are preserved (day1 relies on them as group separators).
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
