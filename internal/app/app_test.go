package app

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/pattern"
	"torus-life/internal/render"
)

func blinker(t *testing.T) *core.Grid {
	t.Helper()
	g, err := pattern.ParseString(".....\n.....\n.###.\n.....\n.....", '#')
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestTickRendersThenAdvances(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out, true)
	var slept []time.Duration
	d.Sleep = func(dur time.Duration) { slept = append(slept, dur) }

	g := blinker(t)
	before := g.String()
	if err := d.Tick(g, 50*time.Millisecond); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if got, want := out.String(), render.ClearScreen+before; got != want {
		t.Fatalf("frame = %q, want %q", got, want)
	}
	if g.Generation() != 1 || !g.Alive(1, 2) || g.Alive(2, 1) {
		t.Fatalf("grid not advanced after render:\n%s", g)
	}
	if len(slept) != 1 || slept[0] != 50*time.Millisecond {
		t.Fatalf("slept %v, want one 50ms pause", slept)
	}
}

// closingWriter accepts a fixed number of writes and then fails.
type closingWriter struct {
	bytes.Buffer
	left int
}

var errClosed = errors.New("stdout closed")

func (w *closingWriter) Write(p []byte) (int, error) {
	if w.left == 0 {
		return 0, errClosed
	}
	w.left--
	return w.Buffer.Write(p)
}

func TestRunLoopsUntilOutputFails(t *testing.T) {
	w := &closingWriter{left: 4}
	d := NewDriver(w, false)
	sleeps := 0
	d.Sleep = func(time.Duration) { sleeps++ }

	g := blinker(t)
	start := g.Clone()
	err := d.Run(g, time.Millisecond)
	if !errors.Is(err, errClosed) {
		t.Fatalf("Run err = %v, want errClosed", err)
	}
	if g.Generation() != 4 || sleeps != 4 {
		t.Fatalf("generation=%d sleeps=%d, want 4 and 4", g.Generation(), sleeps)
	}
	if !g.Equal(start) {
		t.Fatal("blinker should be back in phase after four generations")
	}

	frames := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	if len(frames) != 4*5 {
		t.Fatalf("printed %d rows, want %d", len(frames), 4*5)
	}
}

func TestConfigBindAndValidate(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-pattern", "glider.txt", "-delay-ms", "120", "-alive", "O"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Pattern != "glider.txt" || cfg.Delay() != 120*time.Millisecond || cfg.AliveRune() != 'O' {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.DelayMS = 0
	cfg.Alive = "##"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "delay-ms") || !strings.Contains(err.Error(), "alive") {
		t.Fatalf("Validate err = %v, want delay and alive complaints", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Delay() != 50*time.Millisecond {
		t.Fatalf("default delay = %v, want 50ms", cfg.Delay())
	}
	if cfg.AliveRune() != '#' {
		t.Fatalf("default alive = %q", cfg.AliveRune())
	}
}

func TestConfigBoardFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte("##\n.#\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Pattern = path
	g, err := cfg.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, want 3", g.Population())
	}

	cfg.Pattern = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := cfg.Board(); err == nil {
		t.Fatal("expected an error for a missing pattern file")
	}
}

func TestConfigRandomBoard(t *testing.T) {
	cfg := NewConfig()
	cfg.Random = true
	cfg.Rows, cfg.Cols = 10, 20
	a, err := cfg.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	b, _ := cfg.Board()
	if s := a.Size(); s.Rows != 10 || s.Cols != 20 {
		t.Fatalf("size = %+v", s)
	}
	if !a.Equal(b) {
		t.Fatal("random board should be reproducible from its seed")
	}

	cfg.Rows = 0
	if _, err := cfg.Board(); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}
