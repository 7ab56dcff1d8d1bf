//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 4
	headerBaseline = 11
)

var (
	captionColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	backdrop     = color.RGBA{R: 16, G: 16, B: 20, A: 200}
)

type counter interface {
	Generation() int
	Population() int
}

// HUD draws a generation and population caption in the top-left corner.
type HUD struct {
	panel *ebiten.Image
	last  string
}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw paints the caption for b onto screen. Boards that do not count
// generations get no caption.
func (h *HUD) Draw(screen *ebiten.Image, b core.Board) {
	if h == nil {
		return
	}
	c, ok := b.(counter)
	if !ok {
		return
	}
	caption := Caption(c.Generation(), c.Population())
	face := basicfont.Face7x13
	if h.panel == nil || caption != h.last {
		bounds := text.BoundString(face, caption)
		w := bounds.Dx() + 2*panelPadding
		if h.panel == nil || h.panel.Bounds().Dx() < w {
			h.panel = ebiten.NewImage(w, headerBaseline+2*panelPadding)
		}
		h.panel.Fill(backdrop)
		text.Draw(h.panel, caption, face, panelPadding, panelPadding+headerBaseline, captionColor)
		h.last = caption
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
