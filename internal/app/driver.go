package app

import (
	"fmt"
	"io"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
)

// Driver runs the render, advance, sleep loop on a terminal.
type Driver struct {
	Out   *render.Terminal
	Sleep func(time.Duration)
}

// NewDriver returns a Driver printing frames to w.
func NewDriver(w io.Writer, clear bool) *Driver {
	return &Driver{Out: render.NewTerminal(w, clear), Sleep: time.Sleep}
}

// Tick draws the current generation, advances the grid and waits for delay.
func (d *Driver) Tick(g core.Stepper, delay time.Duration) error {
	if err := d.Out.Draw(g); err != nil {
		return fmt.Errorf("draw generation %d: %w", g.Generation(), err)
	}
	g.Step()
	d.Sleep(delay)
	return nil
}

// Run ticks forever. It only returns if a frame cannot be written.
func (d *Driver) Run(g core.Stepper, delay time.Duration) error {
	for {
		if err := d.Tick(g, delay); err != nil {
			return err
		}
	}
}
