package render

import (
	"bytes"
	"io"

	"torus-life/internal/core"
)

// ClearScreen moves the cursor home and clears the display.
const ClearScreen = "\x1b[H\x1b[2J"

// Terminal prints boards as rows of glyphs.
type Terminal struct {
	W     io.Writer
	Clear bool

	buf bytes.Buffer
}

// NewTerminal returns a Terminal writing to w. When clear is set every frame
// starts with ClearScreen.
func NewTerminal(w io.Writer, clear bool) *Terminal {
	return &Terminal{W: w, Clear: clear}
}

// Draw writes one frame for b in a single write call.
func (t *Terminal) Draw(b core.Board) error {
	t.buf.Reset()
	if t.Clear {
		t.buf.WriteString(ClearScreen)
	}
	size := b.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if b.Alive(r, c) {
				t.buf.WriteRune(core.AliveGlyph)
			} else {
				t.buf.WriteRune(core.DeadGlyph)
			}
		}
		t.buf.WriteByte('\n')
	}
	_, err := t.W.Write(t.buf.Bytes())
	return err
}
