package app

import (
	"errors"
	"flag"
	"fmt"
	"time"
	"unicode/utf8"

	"torus-life/internal/core"
	"torus-life/internal/pattern"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	DelayMS int
	Alive   string

	Random  bool
	Rows    int
	Cols    int
	Seed    int64
	Density float64

	Scale int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "board.txt",
		DelayMS: 50,
		Alive:   string(pattern.DefaultAlive),
		Rows:    24,
		Cols:    48,
		Seed:    42,
		Density: 0.3,
		Scale:   8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "path of the initial pattern file")
	fs.IntVar(&c.DelayMS, "delay-ms", c.DelayMS, "milliseconds between generations")
	fs.StringVar(&c.Alive, "alive", c.Alive, "character marking a live cell in the pattern")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board instead of a pattern file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of a random board")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of a random board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for a random board")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells on a random board")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window")
}

// Validate checks values that flag parsing alone cannot.
func (c *Config) Validate() error {
	var errs []error
	if c.DelayMS <= 0 {
		errs = append(errs, fmt.Errorf("delay-ms must be positive, got %d", c.DelayMS))
	}
	if utf8.RuneCountInString(c.Alive) != 1 {
		errs = append(errs, fmt.Errorf("alive must be a single character, got %q", c.Alive))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.Random && (c.Density < 0 || c.Density > 1) {
		errs = append(errs, fmt.Errorf("density must be within [0,1], got %g", c.Density))
	}
	return errors.Join(errs...)
}

// Delay returns the pause between generations.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// AliveRune returns the live-cell marker.
func (c *Config) AliveRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Alive)
	return r
}

// Board builds the starting grid: a random one when Random is set, otherwise
// the pattern file.
func (c *Config) Board() (*core.Grid, error) {
	if c.Random {
		g, err := core.NewGrid(c.Rows, c.Cols)
		if err != nil {
			return nil, err
		}
		core.Randomize(g, c.Seed, c.Density)
		return g, nil
	}
	return pattern.Load(c.Pattern, c.AliveRune())
}
