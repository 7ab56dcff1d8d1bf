//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a grid to the ebiten.Game interface.
type Game struct {
	grid    core.Stepper
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game that advances grid once per delay.
func New(grid core.Stepper, scale int, delay time.Duration) *Game {
	return &Game{
		grid:     grid,
		painter:  render.NewGridPainter(grid.Size()),
		hud:      ui.NewHUD(),
		step:     core.NewFixedStep(delay),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update advances the grid when a generation is due.
func (g *Game) Update() error {
	if g.step.ShouldStep() {
		g.grid.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid, g.onColor, g.offColor, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.grid)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	return s.Cols * g.scale, s.Rows * g.scale
}
