package contour

import (
	"fmt"
	"image"
	"slices"

	"mad-contour/internal/core"
)

// OccupancyGrid records which tiles are covered by at least one tracked
// region. Each tile keeps a coverage count so overlapping regions can be
// tracked and untracked in any order.
type OccupancyGrid struct {
	tiles *core.TileGrid
}

// NewOccupancyGrid allocates a grid over the given tile bounds.
func NewOccupancyGrid(bounds image.Rectangle) *OccupancyGrid {
	return &OccupancyGrid{tiles: core.NewTileGrid(bounds)}
}

// Bounds reports the tile rectangle covered by the grid.
func (g *OccupancyGrid) Bounds() image.Rectangle { return g.tiles.Bounds() }

// Occupied reports whether tile (tx, ty) is covered. Tiles outside the grid
// are never occupied.
func (g *OccupancyGrid) Occupied(tx, ty int) bool { return g.tiles.At(tx, ty) > 0 }

// Count returns the number of tracked regions covering tile (tx, ty).
func (g *OccupancyGrid) Count(tx, ty int) int { return int(g.tiles.At(tx, ty)) }

// SetFootprint adds (on) or removes (!on) one layer of coverage under the
// region's rectangle. A footprint reaching outside the grid, or removing
// coverage that was never added, is a caller bug and panics.
func (g *OccupancyGrid) SetFootprint(r Region, tileSize int, on bool) {
	x0, y0, x1, y1 := tileRect(r, tileSize)
	if !image.Rect(x0, y0, x1, y1).In(g.tiles.Bounds()) {
		panic(fmt.Errorf("contour: tiles [%d,%d)-[%d,%d) not within %v: %w", x0, y0, x1, y1, g.tiles.Bounds(), ErrOutOfBounds))
	}
	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			ok := false
			if on {
				ok = g.tiles.Inc(tx, ty)
			} else {
				ok = g.tiles.Dec(tx, ty)
			}
			if !ok {
				panic(fmt.Errorf("contour: tile (%d,%d) coverage out of range: %w", tx, ty, ErrNotTracked))
			}
		}
	}
}

// OccupiedCount returns the number of covered tiles.
func (g *OccupancyGrid) OccupiedCount() int {
	n := 0
	for _, c := range g.tiles.Cells() {
		if c > 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *OccupancyGrid) Clone() *OccupancyGrid {
	c := NewOccupancyGrid(g.Bounds())
	copy(c.tiles.Cells(), g.tiles.Cells())
	return c
}

// Equal reports whether both grids cover the same bounds with identical
// coverage counts.
func (g *OccupancyGrid) Equal(o *OccupancyGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.Bounds() == o.Bounds() && slices.Equal(g.tiles.Cells(), o.tiles.Cells())
}

// Mask writes one byte per tile (1 covered, 0 empty) in row-major order into
// buf, growing it as needed, and returns it.
func (g *OccupancyGrid) Mask(buf []uint8) []uint8 {
	cells := g.tiles.Cells()
	if cap(buf) < len(cells) {
		buf = make([]uint8, len(cells))
	}
	buf = buf[:len(cells)]
	for i, c := range cells {
		if c > 0 {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
	return buf
}

// Coverage writes each tile's coverage count, saturated at 255, in row-major
// order into buf, growing it as needed, and returns it.
func (g *OccupancyGrid) Coverage(buf []uint8) []uint8 {
	cells := g.tiles.Cells()
	if cap(buf) < len(cells) {
		buf = make([]uint8, len(cells))
	}
	buf = buf[:len(cells)]
	for i, c := range cells {
		buf[i] = uint8(min(c, 255))
	}
	return buf
}
