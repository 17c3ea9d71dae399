// Package scenes builds demo levels out of Blocks tracked on a contour.Field.
package scenes

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/geom/rect"

	"mad-contour/internal/contour"
	"mad-contour/internal/core"
	pcore "mad-contour/pkg/core"
)

// ErrUnknownScene is returned when a scene name is not registered.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// Layout places the blocks of a scene. It runs on every reset.
type Layout func(s *Scene)

var layouts = core.NewRegistry[Layout]()

// Register adds a layout under the provided name and returns its handle.
func Register(name string, l Layout) core.Handle {
	if l == nil {
		return -1
	}
	return layouts.Register(name, l)
}

// Names lists the registered scenes in lexical order.
func Names() []string { return layouts.Names() }

// Next returns the handle registered after h, wrapping around to the first.
func Next(h core.Handle) core.Handle {
	n := layouts.Len()
	if n == 0 {
		return -1
	}
	return core.Handle((int(h) + 1) % n)
}

// Scene owns the blocks of one level and steps them.
type Scene struct {
	name   string
	handle core.Handle
	layout Layout
	cfg    Config
	field  *contour.Field
	rng    *pcore.RNG
	blocks []*Block
	onStep func(dt float64)
}

// New builds the named scene on field and places its blocks.
func New(name string, field *contour.Field, cfg Config) (*Scene, error) {
	h, l, ok := layouts.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	return build(h, name, l, field, cfg), nil
}

// FromHandle builds the scene registered under h on field.
func FromHandle(h core.Handle, field *contour.Field, cfg Config) (*Scene, error) {
	l, ok := layouts.Get(h)
	if !ok {
		return nil, fmt.Errorf("%w: handle %d", ErrUnknownScene, h)
	}
	return build(h, layouts.Name(h), l, field, cfg), nil
}

func build(h core.Handle, name string, l Layout, field *contour.Field, cfg Config) *Scene {
	s := &Scene{name: name, handle: h, layout: l, cfg: cfg, field: field}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the scene's registered name.
func (s *Scene) Name() string { return s.name }

// Handle returns the scene's registry handle.
func (s *Scene) Handle() core.Handle { return s.handle }

// Field returns the field the blocks are tracked on.
func (s *Scene) Field() *contour.Field { return s.field }

// Blocks returns every block of the scene, tracked or not.
func (s *Scene) Blocks() []*Block { return s.blocks }

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.cfg }

// Reset removes every block and lays the scene out again with seed.
func (s *Scene) Reset(seed int64) {
	s.Clear()
	s.cfg.Seed = seed
	s.rng = pcore.NewRNG(seed)
	s.layout(s)
	contour.Logger().Debug("scene reset", "scene", s.name, "seed", seed, "blocks", len(s.blocks))
}

// Clear untracks every block and drops them together with the step hook.
func (s *Scene) Clear() {
	for _, b := range s.blocks {
		b.Remove()
	}
	s.blocks = nil
	s.onStep = nil
}

// Place adds a block over the given tile rectangle, relative to the level's
// top-left tile, and tracks it. Rectangles that do not fit the level are
// skipped and return nil.
func (s *Scene) Place(tx, ty, tw, th int) *Block {
	if !image.Rect(tx, ty, tx+tw, ty+th).In(image.Rectangle{Max: s.Level()}) || tw <= 0 || th <= 0 {
		return nil
	}
	origin := s.field.Config().Bounds.Min
	b := NewBlock(s.field, &s.cfg, s.rng, origin.X+tx, origin.Y+ty, tw, th)
	b.Add()
	s.blocks = append(s.blocks, b)
	return b
}

// Level returns the level size in tiles.
func (s *Scene) Level() image.Point { return s.field.Config().Bounds.Size() }

// RNG returns the scene's seeded random source.
func (s *Scene) RNG() *pcore.RNG { return s.rng }

// OnStep installs a hook run at the start of every Step. Layouts use it to
// add and remove blocks over time; Reset clears it.
func (s *Scene) OnStep(fn func(dt float64)) { s.onStep = fn }

// Adopt records an untracked block created by a layout so Reset removes it.
func (s *Scene) Adopt(b *Block) { s.blocks = append(s.blocks, b) }

// Step advances every block by dt scene seconds.
func (s *Scene) Step(dt float64) {
	if s.onStep != nil {
		s.onStep(dt)
	}
	for _, b := range s.blocks {
		b.Step(dt)
	}
}

// Touch flashes a random tracked block and returns it, or nil when no block
// is tracked.
func (s *Scene) Touch() *Block {
	b := s.pick(true)
	if b != nil {
		b.Touch()
	}
	return b
}

// Toggle either removes a random tracked block or puts back a removed one,
// and returns the block it changed.
func (s *Scene) Toggle() *Block {
	b := s.pick(false)
	if b == nil || s.rng.Bool() {
		if t := s.pick(true); t != nil {
			b = t
		}
	}
	if b == nil {
		return nil
	}
	if b.Tracked() {
		b.Remove()
	} else {
		b.Add()
	}
	return b
}

// Solidify flips a random tracked block between waving and solid.
func (s *Scene) Solidify() *Block {
	b := s.pick(true)
	if b != nil {
		b.SetSolid(b.solidTarget == 0)
	}
	return b
}

// pick returns a random block whose tracked state matches tracked.
func (s *Scene) pick(tracked bool) *Block {
	var cands []*Block
	for _, b := range s.blocks {
		if b.Tracked() == tracked {
			cands = append(cands, b)
		}
	}
	if len(cands) == 0 {
		return nil
	}
	return cands[s.rng.IntN(len(cands))]
}

// Extent returns the world rectangle covered by the tracked blocks. It is
// empty when nothing is tracked.
func (s *Scene) Extent() rect.Rect {
	var r rect.Rect
	first := true
	for _, b := range s.blocks {
		if !b.Tracked() {
			continue
		}
		x, y := b.Position()
		w, h := b.Size()
		br := rect.Rect{LLx: float64(x), LLy: float64(y), URx: float64(x + w), URy: float64(y + h)}
		if first {
			r, first = br, false
			continue
		}
		r.LLx = min(r.LLx, br.LLx)
		r.LLy = min(r.LLy, br.LLy)
		r.URx = max(r.URx, br.URx)
		r.URy = max(r.URy, br.URy)
	}
	return r
}
