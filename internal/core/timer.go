package core

import "time"

// FixedStep reports when a generation is due given a frame-driven loop that
// runs faster than the generation delay.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per delay. The first
// call to ShouldStep fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// SetDelay changes the interval between generations. Non-positive values
// fall back to 50ms.
func (f *FixedStep) SetDelay(d time.Duration) {
	if d <= 0 {
		d = 50 * time.Millisecond
	}
	f.step = d
}

// Delay returns the configured interval.
func (f *FixedStep) Delay() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
