package core

import (
	"math"
	"time"
)

// FixedStep helps run scene updates at a steady ticks-per-second rate when
// the host loop runs at a different cadence.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the scene should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// SceneClock accumulates scene time in seconds. Paused clocks ignore Advance.
type SceneClock struct {
	elapsed float64
	paused  bool
}

// Advance moves the clock forward and returns the new scene time.
func (c *SceneClock) Advance(dt time.Duration) float64 {
	if !c.paused && dt > 0 {
		c.elapsed += dt.Seconds()
	}
	return c.elapsed
}

// Seconds returns the elapsed scene time.
func (c *SceneClock) Seconds() float64 { return c.elapsed }

// SetPaused freezes or resumes the clock.
func (c *SceneClock) SetPaused(p bool) { c.paused = p }

// Paused reports whether the clock is frozen.
func (c *SceneClock) Paused() bool { return c.paused }

// Reset rewinds the clock to zero.
func (c *SceneClock) Reset() { c.elapsed = 0 }

// OnInterval reports whether a multiple of interval, shifted by offset, lies
// in the half-open time range (prev, now].
func OnInterval(prev, now, interval, offset float64) bool {
	if interval <= 0 || now <= prev {
		return false
	}
	return math.Floor((prev-offset)/interval) < math.Floor((now-offset)/interval)
}
