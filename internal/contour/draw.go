package contour

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Canvas receives draw contributions in world units. The points slice passed
// to Polyline is only valid for the duration of the call.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
	Polyline(pts []vec.Vec2, c color.Color)
}

// DrawBloom contributes the additive bloom pass: regions in view as solid
// rectangles and every visible edge as a wave polyline, all in the bloom
// colour.
func (f *Field) DrawBloom(c Canvas) {
	f.draw(c, true)
}

// DrawColor contributes the colour pass: a translucent tint over regions in
// view and edge polylines blended toward the flash colour by their region's
// flash intensity.
func (f *Field) DrawColor(c Canvas) {
	f.draw(c, false)
}

func (f *Field) draw(c Canvas, bloom bool) {
	if len(f.regions) == 0 {
		return
	}
	pal := f.cfg.Palette
	fill := pal.Fill
	if bloom {
		fill = pal.Bloom
	}
	view := f.anim.expand(f.view)
	for _, r := range f.regions {
		w, h := r.Size()
		if w <= 0 || h <= 0 {
			continue
		}
		o := drawOrigin(r)
		if view.LLx >= o.X+float64(w) || view.URx <= o.X || view.LLy >= o.Y+float64(h) || view.URy <= o.Y {
			continue
		}
		c.FillRect(o.X, o.Y, float64(w), float64(h), fill)
	}
	for _, e := range f.edges {
		if !e.Visible || !e.WaveReady() {
			continue
		}
		col := pal.Bloom
		if !bloom {
			col = lerpRGBA(pal.Edge, pal.Flash, e.Parent.FlashIntensity())
		}
		f.scratch = e.appendPoints(f.scratch[:0], drawOrigin(e.Parent))
		c.Polyline(f.scratch, col)
	}
}
