package core

import (
	"testing"
	"time"
)

func TestOnInterval(t *testing.T) {
	cases := []struct {
		prev, now, interval, offset float64
		want                        bool
	}{
		{0, 0.04, 0.05, 0, false},
		{0.04, 0.05, 0.05, 0, true},
		{0.05, 0.06, 0.05, 0, false},
		{0.02, 0.04, 0.05, 0.03, true},
		{0.0, 0.02, 0.05, 0.03, false},
		{0, 1, 0.25, 0, true},
		{0.3, 0.3, 0.05, 0, false},
		{0.5, 0.2, 0.05, 0, false},
		{0, 1, 0, 0, false},
	}
	for _, c := range cases {
		if got := OnInterval(c.prev, c.now, c.interval, c.offset); got != c.want {
			t.Fatalf("OnInterval(%v, %v, %v, %v) = %v, expected %v", c.prev, c.now, c.interval, c.offset, got, c.want)
		}
	}
}

func TestSceneClock(t *testing.T) {
	var c SceneClock
	c.Advance(500 * time.Millisecond)
	if got := c.Seconds(); got != 0.5 {
		t.Fatalf("clock at %v, expected 0.5", got)
	}
	c.SetPaused(true)
	if got := c.Advance(time.Second); got != 0.5 || !c.Paused() {
		t.Fatalf("paused clock advanced to %v", got)
	}
	c.SetPaused(false)
	c.Advance(-time.Second)
	if got := c.Seconds(); got != 0.5 {
		t.Fatalf("negative step moved the clock to %v", got)
	}
	c.Reset()
	if c.Seconds() != 0 {
		t.Fatal("reset did not rewind")
	}
}

func TestFixedStep(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step %v", fs.Step())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	now = now.Add(250 * time.Millisecond)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("expected 2 steps after 250ms, got %d", steps)
	}
	fs.SetTPS(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("non-positive TPS should fall back to 60, got %v", fs.Step())
	}
}
