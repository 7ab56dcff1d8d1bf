//go:build ebiten

package render

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a board and draws it scaled.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.Rows*size.Cols)}
	gp.img = ebiten.NewImage(size.Cols, size.Rows)
	return gp
}

// Blit uploads the board into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, b core.Board, on, off color.Color, scale int) {
	if b.Size() != gp.size {
		return
	}
	FillRGBA(gp.buf, b, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the board dimensions the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }
