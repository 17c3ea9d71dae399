package scenes

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"mad-contour/internal/contour"
	pcore "mad-contour/pkg/core"
)

// Block is a solid rectangle on the tile grid. It registers itself with the
// field it was built for when added and leaves it when removed.
type Block struct {
	field *contour.Field
	cfg   *Config
	rng   *pcore.RNG

	x, y, w, h int

	tracked bool

	flash     float64
	shakeLeft float64
	shake     vec.Vec2

	solid       float64
	solidTarget float64
}

// NewBlock returns an untracked block covering the given tile rectangle.
func NewBlock(field *contour.Field, cfg *Config, rng *pcore.RNG, tx, ty, tw, th int) *Block {
	tile := field.TileSize()
	return &Block{
		field: field,
		cfg:   cfg,
		rng:   rng,
		x:     tx * tile,
		y:     ty * tile,
		w:     tw * tile,
		h:     th * tile,
	}
}

// Position implements contour.Region.
func (b *Block) Position() (int, int) { return b.x, b.y }

// Size implements contour.Region.
func (b *Block) Size() (int, int) { return b.w, b.h }

// FlashIntensity implements contour.Region.
func (b *Block) FlashIntensity() float64 { return b.flash }

// ShakeOffset implements contour.Shaker.
func (b *Block) ShakeOffset() vec.Vec2 { return b.shake }

// Solidify implements contour.Solidifier.
func (b *Block) Solidify() float64 { return b.solid }

// Tracked reports whether the block is currently on its field.
func (b *Block) Tracked() bool { return b.tracked }

// Add tracks the block on its field. Adding a tracked block does nothing.
func (b *Block) Add() {
	if b.tracked {
		return
	}
	b.field.Track(b)
	b.tracked = true
}

// Remove untracks the block. Removing an untracked block does nothing.
func (b *Block) Remove() {
	if !b.tracked {
		return
	}
	b.field.Untrack(b)
	b.tracked = false
	b.flash, b.shakeLeft, b.shake = 0, 0, vec.Vec2{}
}

// Touch flashes the block and starts a short shake.
func (b *Block) Touch() {
	b.flash = 1
	b.shakeLeft = b.cfg.ShakeTime
}

// SetSolid starts fading the block's wave out (true) or back in (false).
func (b *Block) SetSolid(solid bool) {
	if solid {
		b.solidTarget = 1
	} else {
		b.solidTarget = 0
	}
}

// Step advances flash, shake and solidify by dt scene seconds.
func (b *Block) Step(dt float64) {
	if dt <= 0 {
		return
	}
	b.flash = math.Max(0, b.flash-b.cfg.FlashDecay*dt)

	b.shakeLeft -= dt
	if b.shakeLeft > 0 && b.cfg.ShakeAmount > 0 {
		b.shake = vec.Vec2{
			X: float64(b.rng.IntRange(-1, 1)) * b.cfg.ShakeAmount,
			Y: float64(b.rng.IntRange(-1, 1)) * b.cfg.ShakeAmount,
		}
	} else {
		b.shakeLeft = 0
		b.shake = vec.Vec2{}
	}

	step := b.cfg.SolidRate * dt
	switch {
	case b.solid < b.solidTarget:
		b.solid = math.Min(b.solidTarget, b.solid+step)
	case b.solid > b.solidTarget:
		b.solid = math.Max(b.solidTarget, b.solid-step)
	}
}
