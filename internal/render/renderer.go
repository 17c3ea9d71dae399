//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"seehuhn.de/go/geom/vec"

	"mad-contour/internal/contour"
)

// CoveragePainter uploads occupancy counts into an image with one pixel per
// tile and draws it scaled over the level.
type CoveragePainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []uint8
}

// NewCoveragePainter returns a painter; its image is sized on first use.
func NewCoveragePainter() *CoveragePainter { return &CoveragePainter{} }

// Blit paints grid onto dst. Tiles are tileSize world units wide, and world
// point origin maps to dst's top-left pixel at scale pixels per unit.
func (cp *CoveragePainter) Blit(dst *ebiten.Image, grid *contour.OccupancyGrid, palette []color.RGBA, tileSize int, origin vec.Vec2, scale float64) {
	if grid == nil {
		return
	}
	b := grid.Bounds()
	if cp.img == nil || cp.w != b.Dx() || cp.h != b.Dy() {
		cp.w, cp.h = b.Dx(), b.Dy()
		cp.img = ebiten.NewImage(cp.w, cp.h)
		cp.buf = make([]byte, 4*cp.w*cp.h)
	}
	cp.cells = grid.Coverage(cp.cells)
	fillPaletteRGBA(cp.buf, cp.cells, palette)
	cp.img.WritePixels(cp.buf)

	tile := float64(tileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(tile*scale, tile*scale)
	op.GeoM.Translate((float64(b.Min.X)*tile-origin.X)*scale, (float64(b.Min.Y)*tile-origin.Y)*scale)
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CoveragePainter) Size() (int, int) { return cp.w, cp.h }
