//go:build ebiten

package ui

import (
	"image/color"

	"mad-contour/internal/contour"
	"mad-contour/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"seehuhn.de/go/geom/vec"
)

// Overlay draws optional debugging visuals on top of the field.
type Overlay struct {
	field *contour.Field
	scale float64

	showCoverage bool
	showBoxes    bool
	showNormals  bool
	showGrid     bool

	painter *render.CoveragePainter
	grid    *render.GridPainter
}

// NewOverlay constructs an overlay for field drawn at scale pixels per world
// unit.
func NewOverlay(field *contour.Field, scale float64) *Overlay {
	o := &Overlay{field: field, scale: scale, painter: render.NewCoveragePainter()}
	grid, err := render.NewGridPainter()
	if err != nil {
		contour.Logger().Warn("tile grid overlay unavailable", "err", err)
	}
	o.grid = grid
	return o
}

// Update toggles overlays from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCoverage = !o.showCoverage
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBoxes = !o.showBoxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showNormals = !o.showNormals
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled overlays. World point origin maps to the screen's
// top-left pixel.
func (o *Overlay) Draw(screen *ebiten.Image, origin vec.Vec2) {
	if o.showGrid && o.field != nil {
		o.grid.Draw(screen, o.field.TileSize(), origin, o.scale)
	}
	if o.field == nil || o.field.State() == contour.Empty {
		return
	}
	if o.showCoverage {
		o.painter.Blit(screen, o.field.Grid(), render.CoveragePalette, o.field.TileSize(), origin, o.scale)
	}
	if !o.showBoxes && !o.showNormals {
		return
	}
	for _, e := range o.field.Edges() {
		x, y := e.Parent.Position()
		base := vec.Vec2{X: float64(x), Y: float64(y)}.Sub(origin)
		if o.showBoxes {
			col := color.RGBA{R: 80, G: 200, B: 255, A: 255}
			if !e.Visible {
				col = color.RGBA{R: 120, G: 60, B: 60, A: 255}
			}
			lo := base.Add(e.Min).Mul(o.scale)
			hi := base.Add(e.Max).Mul(o.scale)
			vector.StrokeRect(screen, float32(lo.X), float32(lo.Y), float32(max(hi.X-lo.X, 1)), float32(max(hi.Y-lo.Y, 1)), 1, col, false)
		}
		if o.showNormals {
			mid := base.Add(e.A).Add(e.Normal.Mul(e.Length / 2))
			tip := mid.Add(e.Perpendicular.Mul(4))
			vector.StrokeLine(screen,
				float32(mid.X*o.scale), float32(mid.Y*o.scale),
				float32(tip.X*o.scale), float32(tip.Y*o.scale),
				1, color.RGBA{R: 255, G: 220, B: 80, A: 255}, true)
		}
	}
}
