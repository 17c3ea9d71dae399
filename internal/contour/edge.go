package contour

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Edge is one straight run of the contour. Geometry is stored relative to the
// parent region so the edge follows the region's drawn position without a
// rebuild. Edges are replaced wholesale on every rebuild; do not keep them
// across Track or Untrack.
type Edge struct {
	Parent Region

	// A and B are the endpoints in the parent's local space.
	A, B vec.Vec2
	// Min and Max bound the segment in the parent's local space.
	Min, Max vec.Vec2

	// Normal is the unit direction from A to B. Perpendicular is the unit
	// direction the wave displaces, pointing away from the covered tiles.
	Normal        vec.Vec2
	Perpendicular vec.Vec2

	Length float64

	// Wave holds one displacement per unit of length. It is refreshed by the
	// animator while the edge is visible.
	Wave []float64

	Visible bool
}

func newEdge(parent Region, a, b vec.Vec2) *Edge {
	d := b.Sub(a)
	length := d.Length()
	var n vec.Vec2
	if length > 0 {
		n = d.Mul(1 / length)
	}
	return &Edge{
		Parent:        parent,
		A:             a,
		B:             b,
		Min:           vec.Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max:           vec.Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
		Normal:        n,
		Perpendicular: vec.Vec2{X: n.Y, Y: -n.X},
		Length:        length,
		Visible:       true,
	}
}

// Samples returns the number of wave samples drawn along the edge.
func (e *Edge) Samples() int { return int(math.Floor(e.Length)) + 1 }

// WaveReady reports whether the wave buffer covers every sample.
func (e *Edge) WaveReady() bool { return len(e.Wave) >= e.Samples() }

// InView reports whether the edge's world-space box overlaps view.
func (e *Edge) InView(view rect.Rect) bool {
	o := regionOrigin(e.Parent)
	return view.LLx < o.X+e.Max.X && view.URx > o.X+e.Min.X &&
		view.LLy < o.Y+e.Max.Y && view.URy > o.Y+e.Min.Y
}

// UpdateWave recomputes the displacement profile for animation time t. The
// buffer is reallocated when it is too short for the edge.
func (e *Edge) UpdateWave(t float64) {
	n := e.Samples()
	if len(e.Wave) < n+1 {
		e.Wave = make([]float64, n+1)
	}
	scale := 1.0
	if s, ok := e.Parent.(Solidifier); ok {
		scale = 1 - clamp01(s.Solidify())
	}
	for i := 0; i < n; i++ {
		if scale <= 0 {
			e.Wave[i] = 0
			continue
		}
		e.Wave[i] = Amplitude(t, float64(i), e.Length) * scale
	}
	for i := n; i < len(e.Wave); i++ {
		e.Wave[i] = 0
	}
}

// appendPoints appends the displaced sample positions to dst, with origin
// being the parent's world position.
func (e *Edge) appendPoints(dst []vec.Vec2, origin vec.Vec2) []vec.Vec2 {
	start := origin.Add(e.A)
	for i := 0; i < e.Samples(); i++ {
		p := start.Add(e.Normal.Mul(float64(i)))
		dst = append(dst, p.Add(e.Perpendicular.Mul(e.Wave[i])))
	}
	return dst
}
