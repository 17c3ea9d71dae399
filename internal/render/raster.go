package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Raster draws field contributions into a gg context. World point View.LL
// maps to the top-left pixel and every world unit covers Scale pixels.
type Raster struct {
	dc        *gg.Context
	view      rect.Rect
	scale     float64
	lineWidth float64
	err       error
}

// NewRaster creates a software canvas sized to show view at scale pixels per
// world unit.
func NewRaster(view rect.Rect, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	w := int((view.URx-view.LLx)*scale + 0.5)
	h := int((view.URy-view.LLy)*scale + 0.5)
	return &Raster{
		dc:        gg.NewContext(max(w, 1), max(h, 1)),
		view:      view,
		scale:     scale,
		lineWidth: scale,
	}
}

// SetLineWidth sets the polyline width in pixels.
func (r *Raster) SetLineWidth(px float64) { r.lineWidth = px }

// Clear resets every pixel to c.
func (r *Raster) Clear(c color.Color) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *Raster) toPixel(x, y float64) (float64, float64) {
	return (x - r.view.LLx) * r.scale, (y - r.view.LLy) * r.scale
}

// FillRect implements contour.Canvas.
func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	px, py := r.toPixel(x, y)
	r.dc.SetColor(c)
	r.dc.DrawRectangle(px, py, w*r.scale, h*r.scale)
	r.keep(r.dc.Fill())
}

// Polyline implements contour.Canvas.
func (r *Raster) Polyline(pts []vec.Vec2, c color.Color) {
	if len(pts) < 2 {
		return
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(r.lineWidth)
	r.dc.MoveTo(r.toPixel(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		r.dc.LineTo(r.toPixel(p.X, p.Y))
	}
	r.keep(r.dc.Stroke())
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first drawing error, if any.
func (r *Raster) Err() error { return r.err }

// Image returns a copy of the current pixels.
func (r *Raster) Image() *image.RGBA {
	return rgbaCopy(r.dc.Image())
}

// Close releases the underlying context.
func (r *Raster) Close() error { return r.dc.Close() }

// SavePNG writes img to path through gg's PNG encoder.
func SavePNG(img image.Image, path string) error {
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return dc.SavePNG(path)
}

func rgbaCopy(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+b.Dx()*4], rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return out
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}
