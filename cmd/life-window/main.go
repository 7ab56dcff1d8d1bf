//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-window: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	grid, err := cfg.Board()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(grid, cfg.Scale, cfg.Delay())
	size := grid.Size()

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetWindowSize(size.Cols*cfg.Scale, size.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
