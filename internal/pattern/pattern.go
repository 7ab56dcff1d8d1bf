// Package pattern reads and writes plain-text Life boards: one line per row,
// one rune per cell, with a marker rune for live cells.
package pattern

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"torus-life/internal/core"
)

// DefaultAlive marks a live cell in pattern files.
const DefaultAlive = '#'

// FormatError reports a row whose width differs from the first row.
type FormatError struct {
	Line int
	Want int
	Got  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pattern line %d: %d cells, want %d", e.Line, e.Got, e.Want)
}

// Unwrap lets callers match the error with errors.Is(err, core.ErrRagged).
func (e *FormatError) Unwrap() error { return core.ErrRagged }

// Parse builds a grid from r. Trailing whitespace of the whole block is
// dropped; every remaining line is a row.
func Parse(r io.Reader, alive rune) (*core.Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	return ParseString(string(raw), alive)
}

// ParseString is Parse for an in-memory block of text.
func ParseString(s string, alive rune) (*core.Grid, error) {
	s = strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), " \t\r\n")
	if s == "" {
		return nil, fmt.Errorf("parse pattern: empty input: %w", core.ErrInvalidSize)
	}

	lines := strings.Split(s, "\n")
	rows := make([][]bool, 0, len(lines))
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, &FormatError{Line: i + 1, Want: width, Got: n}
		}
		row := make([]bool, 0, width)
		for _, ch := range line {
			row = append(row, ch == alive)
		}
		rows = append(rows, row)
	}
	return core.FromRows(rows)
}

// Load reads the pattern file at path.
func Load(path string, alive rune) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load pattern: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, alive)
	if err != nil {
		return nil, fmt.Errorf("load pattern %s: %w", path, err)
	}
	return g, nil
}

// Format writes b back out in the text form Parse accepts.
func Format(b core.Board, alive, dead rune) string {
	size := b.Size()
	var sb strings.Builder
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if b.Alive(r, c) {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
