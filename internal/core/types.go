package core

// Glyphs used to print a cell in a text frame.
const (
	AliveGlyph = '◼'
	DeadGlyph  = '◻'
)

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Board is the read-only view renderers need from a grid.
type Board interface {
	Size() Size
	Alive(row, col int) bool
}

// Stepper is a Board that can advance itself by one generation.
type Stepper interface {
	Board
	Step()
	Generation() int
	Population() int
}

var _ Stepper = (*Grid)(nil)
