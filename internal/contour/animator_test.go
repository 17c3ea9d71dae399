package contour

import (
	"image"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestAmplitudeTapersAtEnds(t *testing.T) {
	const length = 32.0
	for _, s := range []float64{0, 0.5, 1, 31, 31.5, 32} {
		if got := Amplitude(1.7, s, length); got != 0 {
			t.Fatalf("Amplitude(s=%v) = %v, expected 0", s, got)
		}
	}
	tm := 0.4
	p := tm + 16*0.25
	want := 1 + math.Sin(p)*2 + math.Sin(p*0.25)
	if got := Amplitude(tm, 16, length); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Amplitude at midpoint = %v, expected %v", got, want)
	}
}

func TestEasing(t *testing.T) {
	cases := []struct{ in, yo, ease float64 }{
		{0, 0, 0},
		{0.25, 0.5, 0.5},
		{0.5, 1, 1},
		{1, 0, 0},
	}
	for _, c := range cases {
		if got := yoyo(c.in); math.Abs(got-c.yo) > 1e-12 {
			t.Fatalf("yoyo(%v) = %v, expected %v", c.in, got, c.yo)
		}
		if got := easeInOutSine(c.yo); math.Abs(got-c.ease) > 1e-12 {
			t.Fatalf("easeInOutSine(%v) = %v, expected %v", c.yo, got, c.ease)
		}
	}
}

func TestUpdateWave(t *testing.T) {
	e := newEdge(tiles(0, 0, 2, 1), vec.Vec2{}, vec.Vec2{X: 16})
	if e.WaveReady() {
		t.Fatalf("fresh edge should not have a wave")
	}
	e.Wave = make([]float64, 3)
	e.UpdateWave(2)
	if len(e.Wave) != e.Samples()+1 || !e.WaveReady() {
		t.Fatalf("wave length %d for %d samples", len(e.Wave), e.Samples())
	}
	if e.Wave[0] != 0 {
		t.Fatalf("wave must start at zero, got %v", e.Wave[0])
	}
	for i := 15; i < len(e.Wave); i++ {
		if e.Wave[i] != 0 {
			t.Fatalf("wave[%d] = %v, expected 0 at the tail", i, e.Wave[i])
		}
	}
	if e.Wave[8] != Amplitude(2, 8, 16) {
		t.Fatalf("wave[8] = %v, expected %v", e.Wave[8], Amplitude(2, 8, 16))
	}

	buf := e.Wave
	e.UpdateWave(3)
	if &buf[0] != &e.Wave[0] {
		t.Fatalf("wave buffer reallocated although it was long enough")
	}
}

func TestSolidifyScalesWave(t *testing.T) {
	r := &solidBox{box: *tiles(0, 0, 2, 1)}
	e := newEdge(r, vec.Vec2{}, vec.Vec2{X: 16})
	plain := newEdge(tiles(0, 0, 2, 1), vec.Vec2{}, vec.Vec2{X: 16})
	plain.UpdateWave(1)

	r.solid = 0.5
	e.UpdateWave(1)
	for i := range plain.Wave {
		if math.Abs(e.Wave[i]-plain.Wave[i]/2) > 1e-12 {
			t.Fatalf("wave[%d] = %v, expected half of %v", i, e.Wave[i], plain.Wave[i])
		}
	}
	r.solid = 1
	e.UpdateWave(1)
	for i, v := range e.Wave {
		if v != 0 {
			t.Fatalf("solid wave[%d] = %v", i, v)
		}
	}
}

func TestRefreshUpdatesWaveOnFastCadence(t *testing.T) {
	grid := NewOccupancyGrid(image.Rect(0, 0, 4, 4))
	r := tiles(0, 0, 1, 1)
	grid.SetFootprint(r, testTile, true)
	edges := Trace(grid, []Region{r}, testTile)
	a := Animator{Tuning: DefaultTuning(testTile)}
	view := rect.Rect{LLx: -10, LLy: -10, URx: 50, URy: 50}

	a.Reveal(edges, view)
	a.Refresh(edges, 0, 0.01, 0.01, view)
	for i, e := range edges {
		if !e.Visible || !e.WaveReady() {
			t.Fatalf("edge %d visible %v ready %v", i, e.Visible, e.WaveReady())
		}
	}
	snap := slices.Clone(edges[0].Wave)
	a.Refresh(edges, 0.01, 0.02, 0.02, view)
	if !slices.Equal(snap, edges[0].Wave) {
		t.Fatalf("wave changed between fast boundaries")
	}
	a.Refresh(edges, 0.02, 0.06, 0.06, view)
	if slices.Equal(snap, edges[0].Wave) {
		t.Fatalf("wave not refreshed on a fast boundary")
	}
}

func TestVisibilityHysteresis(t *testing.T) {
	const dt = 1.0 / 64
	far := rect.Rect{LLx: 1000, LLy: 1000, URx: 1320, URy: 1180}
	near := rect.Rect{LLx: -40, LLy: -40, URx: 280, URy: 140}

	f := newTestField()
	f.Track(tiles(0, 0, 1, 1))
	f.Update(0, far)
	tun := f.Config().Tuning
	edges := f.Edges()
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if e.Visible {
			t.Fatalf("edge %d visible while the camera is away", i)
		}
	}

	prev := 0.0
	for k := 1; k <= 20; k++ {
		now := float64(k) * dt
		was := visibility(edges)
		f.Update(now, near)
		for i, e := range edges {
			off := float64(i) * tun.PhaseStep
			if !was[i] && e.Visible {
				if !onInterval(prev, now, tun.FastInterval, off) {
					t.Fatalf("edge %d appeared at %v off a fast boundary", i, now)
				}
				if now > tun.FastInterval+dt {
					t.Fatalf("edge %d appeared late at %v", i, now)
				}
			}
		}
		prev = now
	}
	for i, e := range edges {
		if !e.Visible {
			t.Fatalf("edge %d still hidden after the camera arrived", i)
		}
	}

	moved := prev
	for k := 21; k <= 60; k++ {
		now := float64(k) * dt
		was := visibility(edges)
		f.Update(now, far)
		for i, e := range edges {
			off := float64(i) * tun.PhaseStep
			switch {
			case was[i] && !e.Visible:
				if !onInterval(prev, now, tun.SlowInterval, off) {
					t.Fatalf("edge %d hid at %v off a slow boundary", i, now)
				}
				if now-moved <= tun.FastInterval || now-moved > tun.SlowInterval+dt {
					t.Fatalf("edge %d hid %v after the camera left", i, now-moved)
				}
			case !was[i] && e.Visible:
				t.Fatalf("edge %d reappeared at %v while out of view", i, now)
			}
		}
		prev = now
	}
	for i, e := range edges {
		if e.Visible {
			t.Fatalf("edge %d still visible long after the camera left", i)
		}
	}
}

func visibility(edges []*Edge) []bool {
	out := make([]bool, len(edges))
	for i, e := range edges {
		out[i] = e.Visible
	}
	return out
}

func onInterval(prev, now, interval, offset float64) bool {
	return math.Floor((prev-offset)/interval) < math.Floor((now-offset)/interval)
}
