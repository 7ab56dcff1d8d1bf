package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned when a grid would have zero rows or columns.
	ErrInvalidSize = errors.New("grid needs at least one row and one column")
	// ErrRagged is returned when the rows of a cell matrix differ in length.
	ErrRagged = errors.New("row lengths must match")
)

// Grid stores a toroidal 2D grid of live/dead cells in row-major order.
type Grid struct {
	rows, cols int
	cur        []bool
	nxt        []bool
	gen        int
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	n := rows * cols
	return &Grid{rows: rows, cols: cols, cur: make([]bool, n), nxt: make([]bool, n)}, nil
}

// FromRows builds a grid from a rectangular matrix of cell states.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid from rows: %w", ErrInvalidSize)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("grid from rows: row %d has %d cells, want %d: %w", i, len(row), cols, ErrRagged)
		}
	}
	g, err := NewGrid(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.cur[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Generation reports how many times Step has been called.
func (g *Grid) Generation() int { return g.gen }

// Index returns the linear slice index for (row, col). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Alive reports whether the cell at (row, col) is live.
func (g *Grid) Alive(row, col int) bool { return g.cur[g.Index(row, col)] }

// Set writes the state of a single cell.
func (g *Grid) Set(row, col int, alive bool) { g.cur[g.Index(row, col)] = alive }

// SetAlive turns the cell at (row, col) on.
func (g *Grid) SetAlive(row, col int) { g.Set(row, col, true) }

// SetDead turns the cell at (row, col) off.
func (g *Grid) SetDead(row, col int) { g.Set(row, col, false) }

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell. The generation counter is left alone.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
}

// Clone returns an independent copy of the grid, generation included.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, gen: g.gen, nxt: make([]bool, len(g.nxt))}
	c.cur = append([]bool(nil), g.cur...)
	return c
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cur {
		if g.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}

// String renders the grid with one glyph per cell and a newline after each row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols*3 + 1))
	for r := 0; r < g.rows; r++ {
		for _, c := range g.cur[r*g.cols : (r+1)*g.cols] {
			if c {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteRune(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
