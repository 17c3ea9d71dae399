package contour

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"mad-contour/internal/core"
)

// Tuning controls edge culling cadence and wave motion. Times are in scene
// seconds.
type Tuning struct {
	// FastInterval is how often hidden edges re-test visibility and how
	// often visible edges refresh their wave.
	FastInterval float64
	// SlowInterval is how often visible edges re-test whether they left the
	// view.
	SlowInterval float64
	// PhaseStep offsets both cadences per edge index so re-tests spread over
	// frames.
	PhaseStep float64
	// TimeScale multiplies scene time before it drives the wave.
	TimeScale float64
	// ViewMargin grows the camera rectangle on every side before culling.
	ViewMargin float64
}

// DefaultTuning returns the standard cadence for a grid of the given tile
// size.
func DefaultTuning(tileSize int) Tuning {
	return Tuning{
		FastInterval: 0.05,
		SlowInterval: 0.25,
		PhaseStep:    0.01,
		TimeScale:    3,
		ViewMargin:   float64(tileSize) / 2,
	}
}

// Animator decides edge visibility and keeps visible waves moving.
type Animator struct {
	Tuning Tuning
}

// Reveal sets every edge's visibility from the current view without any
// hysteresis. It is used right after a rebuild.
func (a *Animator) Reveal(edges []*Edge, view rect.Rect) {
	view = a.expand(view)
	for _, e := range edges {
		e.Visible = e.InView(view)
	}
}

// Refresh advances the visibility cadence from prev to now. Hidden edges may
// appear on a fast boundary, visible edges may disappear only on a slow
// boundary. Waves are sampled at scene time wave.
func (a *Animator) Refresh(edges []*Edge, prev, now, wave float64, view rect.Rect) {
	view = a.expand(view)
	t := wave * a.Tuning.TimeScale
	for i, e := range edges {
		offset := float64(i) * a.Tuning.PhaseStep
		fast := core.OnInterval(prev, now, a.Tuning.FastInterval, offset)
		switch {
		case !e.Visible:
			if fast && e.InView(view) {
				e.Visible = true
			}
		case core.OnInterval(prev, now, a.Tuning.SlowInterval, offset) && !e.InView(view):
			e.Visible = false
		}
		if e.Visible && (fast || !e.WaveReady()) {
			e.UpdateWave(t)
		}
	}
}

func (a *Animator) expand(view rect.Rect) rect.Rect {
	m := a.Tuning.ViewMargin
	return rect.Rect{LLx: view.LLx - m, LLy: view.LLy - m, URx: view.URx + m, URy: view.URy + m}
}

// Amplitude returns the outward displacement at arc position s of an edge of
// the given length at animation time t. Both ends taper to zero.
func Amplitude(t, s, length float64) float64 {
	if s <= 1 || s >= length-1 {
		return 0
	}
	phase := t + s*0.25
	swing := math.Sin(phase)*2 + math.Sin(phase*0.25)
	return 1 + swing*easeInOutSine(yoyo(s/length))
}

// yoyo maps [0,1] onto a 0→1→0 triangle.
func yoyo(v float64) float64 {
	if v <= 0.5 {
		return v * 2
	}
	return 1 - (v-0.5)*2
}

func easeInOutSine(v float64) float64 {
	return -math.Cos(math.Pi*v)/2 + 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
