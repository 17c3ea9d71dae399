//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"seehuhn.de/go/geom/vec"
)

// Screen draws field contributions onto an ebiten image. World point Origin
// maps to the image's top-left pixel.
type Screen struct {
	dst *ebiten.Image

	Origin    vec.Vec2
	Scale     float64
	LineWidth float32
}

// NewScreen returns a canvas drawing at scale pixels per world unit.
func NewScreen(scale float64) *Screen {
	if scale <= 0 {
		scale = 1
	}
	return &Screen{Scale: scale, LineWidth: float32(scale)}
}

// Target points the canvas at dst for the next draw calls.
func (s *Screen) Target(dst *ebiten.Image, origin vec.Vec2) {
	s.dst = dst
	s.Origin = origin
}

func (s *Screen) toPixel(x, y float64) (float32, float32) {
	return float32((x - s.Origin.X) * s.Scale), float32((y - s.Origin.Y) * s.Scale)
}

// FillRect implements contour.Canvas.
func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	if s.dst == nil {
		return
	}
	px, py := s.toPixel(x, y)
	vector.DrawFilledRect(s.dst, px, py, float32(w*s.Scale), float32(h*s.Scale), c, false)
}

// Polyline implements contour.Canvas.
func (s *Screen) Polyline(pts []vec.Vec2, c color.Color) {
	if s.dst == nil {
		return
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := s.toPixel(pts[i-1].X, pts[i-1].Y)
		x1, y1 := s.toPixel(pts[i].X, pts[i].Y)
		vector.StrokeLine(s.dst, x0, y0, x1, y1, s.LineWidth, c, true)
	}
}
