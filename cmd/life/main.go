package main

import (
	"flag"
	"log"
	"os"

	"torus-life/internal/app"

	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

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

	// Skip the clear sequence when frames are piped to a file.
	clearScreen := term.IsTerminal(int(os.Stdout.Fd()))
	driver := app.NewDriver(os.Stdout, clearScreen)
	if err := driver.Run(grid, cfg.Delay()); err != nil {
		log.Fatal(err)
	}
}
