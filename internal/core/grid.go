package core

import "image"

// TileGrid stores per-tile coverage counts in row-major order. Tile
// coordinates are relative to the grid's bounds, so negative coordinates are
// valid as long as the bounds include them.
type TileGrid struct {
	W, H   int
	origin image.Point
	data   []uint16
}

// NewTileGrid allocates a grid covering the given tile rectangle.
func NewTileGrid(bounds image.Rectangle) *TileGrid {
	bounds = bounds.Canon()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &TileGrid{W: w, H: h, origin: bounds.Min, data: make([]uint16, w*h)}
}

// Bounds reports the tile rectangle covered by the grid.
func (g *TileGrid) Bounds() image.Rectangle {
	return image.Rect(g.origin.X, g.origin.Y, g.origin.X+g.W, g.origin.Y+g.H)
}

// Cells exposes the backing slice so callers can snapshot or compare it.
func (g *TileGrid) Cells() []uint16 { return g.data }

// Index returns the linear slice index for tile (tx, ty) and whether the tile
// lies inside the grid.
func (g *TileGrid) Index(tx, ty int) (int, bool) {
	x := tx - g.origin.X
	y := ty - g.origin.Y
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0, false
	}
	return y*g.W + x, true
}

// At returns the count stored for a tile. Tiles outside the grid read as zero.
func (g *TileGrid) At(tx, ty int) uint16 {
	idx, ok := g.Index(tx, ty)
	if !ok {
		return 0
	}
	return g.data[idx]
}

// Inc increments the count for a tile. It reports false when the tile is
// outside the grid or the count would overflow.
func (g *TileGrid) Inc(tx, ty int) bool {
	idx, ok := g.Index(tx, ty)
	if !ok || g.data[idx] == ^uint16(0) {
		return false
	}
	g.data[idx]++
	return true
}

// Dec decrements the count for a tile. It reports false when the tile is
// outside the grid or already zero.
func (g *TileGrid) Dec(tx, ty int) bool {
	idx, ok := g.Index(tx, ty)
	if !ok || g.data[idx] == 0 {
		return false
	}
	g.data[idx]--
	return true
}
