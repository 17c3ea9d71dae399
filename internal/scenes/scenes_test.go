package scenes

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"mad-contour/internal/contour"
)

var everything = rect.Rect{LLx: -1000, LLy: -1000, URx: 10000, URy: 10000}

func newScene(t *testing.T, name string, cfg Config) *Scene {
	t.Helper()
	s, err := New(name, contour.NewField(contour.DefaultConfig()), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func blockRects(s *Scene) []image.Rectangle {
	var out []image.Rectangle
	for _, b := range s.Blocks() {
		x, y := b.Position()
		w, h := b.Size()
		out = append(out, image.Rect(x, y, x+w, y+h))
	}
	return out
}

func TestLayoutsRegistered(t *testing.T) {
	want := []string{"abutting", "corridor", "life", "ring", "scatter"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, expected %v", got, want)
	}
	if Register("nil", nil) >= 0 {
		t.Fatal("nil layout registered")
	}
}

func TestUnknownScene(t *testing.T) {
	_, err := New("nope", contour.NewField(contour.DefaultConfig()), DefaultConfig())
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene, got %v", err)
	}
}

func TestNextCyclesThroughEveryScene(t *testing.T) {
	field := contour.NewField(contour.DefaultConfig())
	s, err := New("abutting", field, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	h := s.Handle()
	for range Names() {
		s.Clear()
		if field.State() != contour.Empty {
			t.Fatalf("%s left regions behind after Clear", s.Name())
		}
		seen[s.Name()] = true
		h = Next(h)
		if s, err = FromHandle(h, field, DefaultConfig()); err != nil {
			t.Fatal(err)
		}
		if s.Handle() != h {
			t.Fatalf("scene %s has handle %d, expected %d", s.Name(), s.Handle(), h)
		}
	}
	if len(seen) != len(Names()) || s.Name() != "abutting" {
		t.Fatalf("visited %v, ended on %s", seen, s.Name())
	}
	if _, err := FromHandle(-1, field, DefaultConfig()); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene, got %v", err)
	}
}

func TestAbuttingSceneHasNoSeam(t *testing.T) {
	s := newScene(t, "abutting", DefaultConfig())
	f := s.Field()
	f.Update(0, everything)
	edges := f.Edges()
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	for _, e := range edges {
		x, _ := e.Parent.Position()
		if float64(x)+e.A.X == 16 && float64(x)+e.B.X == 16 {
			t.Fatalf("edge along the seam at x=16")
		}
	}
}

func TestRingScenePerimeter(t *testing.T) {
	s := newScene(t, "ring", DefaultConfig())
	f := s.Field()
	f.Update(0, everything)
	st := f.Stats()
	if st.Edges != 8 {
		t.Fatalf("expected 8 edges, got %d", st.Edges)
	}
	if st.Perimeter != 4*64+4*48 {
		t.Fatalf("perimeter %v, expected %v", st.Perimeter, 4*64+4*48)
	}
}

func TestScatterIsDeterministicAndDisjoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	a := newScene(t, "scatter", cfg)
	b := newScene(t, "scatter", cfg)
	ra, rb := blockRects(a), blockRects(b)
	if !slices.Equal(ra, rb) {
		t.Fatalf("same seed produced different layouts")
	}
	if len(ra) == 0 || len(ra) > cfg.Count {
		t.Fatalf("placed %d blocks, expected 1..%d", len(ra), cfg.Count)
	}
	for i := range ra {
		for j := i + 1; j < len(ra); j++ {
			if ra[i].Overlaps(ra[j]) {
				t.Fatalf("blocks %v and %v overlap", ra[i], ra[j])
			}
		}
	}
	a.Reset(99)
	if !slices.Equal(blockRects(a), ra) {
		t.Fatalf("reset with the same seed changed the layout")
	}
	if got := len(a.Field().Regions()); got != len(ra) {
		t.Fatalf("field tracks %d regions after reset, expected %d", got, len(ra))
	}
}

func TestCorridorFitsLevel(t *testing.T) {
	s := newScene(t, "corridor", DefaultConfig())
	level := image.Rectangle{Max: s.Level().Mul(s.Field().TileSize())}
	for _, r := range blockRects(s) {
		if !r.In(level) {
			t.Fatalf("block %v outside level %v", r, level)
		}
	}
	if len(s.Blocks()) != 15 {
		t.Fatalf("expected 15 corridor strips, got %d", len(s.Blocks()))
	}
}

func TestPlaceSkipsOutsideLevel(t *testing.T) {
	s := newScene(t, "abutting", DefaultConfig())
	if b := s.Place(63, 0, 2, 1); b != nil {
		t.Fatal("block past the level edge was placed")
	}
	if b := s.Place(-1, 0, 1, 1); b != nil {
		t.Fatal("block before the level origin was placed")
	}
	if len(s.Blocks()) != 2 {
		t.Fatalf("skipped blocks were recorded")
	}
}

func TestBlockAddRemove(t *testing.T) {
	s := newScene(t, "abutting", DefaultConfig())
	f := s.Field()
	b := s.Blocks()[1]
	b.Remove()
	b.Remove()
	if b.Tracked() || len(f.Regions()) != 1 {
		t.Fatalf("remove left %d regions", len(f.Regions()))
	}
	b.Add()
	b.Add()
	if !b.Tracked() || len(f.Regions()) != 2 {
		t.Fatalf("add left %d regions", len(f.Regions()))
	}
	for _, b := range s.Blocks() {
		b.Remove()
	}
	if f.State() != contour.Empty {
		t.Fatalf("field should be empty, got %v", f.State())
	}
	if s.Touch() != nil || s.Solidify() != nil {
		t.Fatal("touch on an empty field returned a block")
	}
	if b := s.Toggle(); b == nil || !b.Tracked() {
		t.Fatal("toggle with every block removed should put one back")
	}
}

func TestToggleFlipsTrackedState(t *testing.T) {
	s := newScene(t, "scatter", DefaultConfig())
	for i := 0; i < 20; i++ {
		before := len(s.Field().Regions())
		b := s.Toggle()
		after := len(s.Field().Regions())
		if b.Tracked() && after != before+1 || !b.Tracked() && after != before-1 {
			t.Fatalf("toggle %d: %d regions before, %d after, tracked %v", i, before, after, b.Tracked())
		}
	}
}

func TestBlockFlashShakeSolidify(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShakeAmount = 2
	s := newScene(t, "abutting", cfg)
	b := s.Blocks()[0]

	b.Touch()
	if b.FlashIntensity() != 1 {
		t.Fatalf("touch flash %v", b.FlashIntensity())
	}
	b.Step(0.125)
	if got := b.FlashIntensity(); got != 0.5 {
		t.Fatalf("flash after 0.125s = %v, expected 0.5", got)
	}
	off := b.ShakeOffset()
	for _, v := range []float64{off.X, off.Y} {
		if v != 0 && math.Abs(v) != cfg.ShakeAmount {
			t.Fatalf("shake offset %v not a multiple of %v", off, cfg.ShakeAmount)
		}
	}
	b.Step(1)
	if b.FlashIntensity() != 0 || b.ShakeOffset().X != 0 || b.ShakeOffset().Y != 0 {
		t.Fatalf("flash %v shake %v after settling", b.FlashIntensity(), b.ShakeOffset())
	}

	b.SetSolid(true)
	b.Step(0.25)
	if got := b.Solidify(); got != 0.5 {
		t.Fatalf("solidify after 0.25s = %v, expected 0.5", got)
	}
	b.Step(1)
	if b.Solidify() != 1 {
		t.Fatalf("solidify did not saturate: %v", b.Solidify())
	}
	b.SetSolid(false)
	b.Step(1)
	if b.Solidify() != 0 {
		t.Fatalf("solidify did not return to zero: %v", b.Solidify())
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":        "7",
		"count":       "3",
		"min_size":    "4",
		"max_size":    "2",
		"flash_decay": "x",
	})
	if cfg.Seed != 7 || cfg.Count != 3 || cfg.MinSize != 4 || cfg.MaxSize != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.FlashDecay != DefaultConfig().FlashDecay {
		t.Fatalf("invalid flash_decay applied: %v", cfg.FlashDecay)
	}
}

func TestLifeSceneFollowsBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	s := newScene(t, "life", cfg)
	f := s.Field()
	f.Update(0, everything)
	start := len(f.Regions())
	if start == 0 {
		t.Fatal("life scene started empty")
	}
	now := 0.0
	changed := false
	for gen := 0; gen < 5; gen++ {
		s.Step(cfg.LifePeriod)
		now += cfg.LifePeriod
		f.Update(now, everything)
		if n := len(f.Regions()); n != start {
			changed = true
		}
		if f.State() == contour.Empty {
			break
		}
		if got, want := f.Grid().OccupiedCount(), len(f.Regions()); got != want {
			t.Fatalf("generation %d: %d occupied tiles for %d one-tile blocks", gen, got, want)
		}
		if f.Dirty() {
			t.Fatalf("generation %d: field still dirty after update", gen)
		}
	}
	if !changed {
		t.Fatal("life scene never changed the tracked blocks")
	}
	s.Reset(3)
	if got := len(f.Regions()); got != start {
		t.Fatalf("reset tracked %d blocks, expected %d", got, start)
	}
}
