package render

import (
	"image"
	"image/color"

	"mad-contour/internal/contour"
)

// CoveragePalette colours occupancy counts: clear for empty tiles, a faint
// tint for single coverage and a warmer tint where regions overlap.
var CoveragePalette = []color.RGBA{
	{},
	{R: 0, G: 96, B: 64, A: 128},
	{R: 160, G: 64, B: 0, A: 160},
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// MaskImage renders the grid's occupancy as one pixel per tile.
func MaskImage(g *contour.OccupancyGrid, on, off color.Color) *image.RGBA {
	b := g.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	fillBinaryRGBA(img.Pix, g.Mask(nil), on, off)
	return img
}

// CoverageImage renders per-tile coverage counts through palette, one pixel
// per tile.
func CoverageImage(g *contour.OccupancyGrid, palette []color.RGBA) *image.RGBA {
	b := g.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	fillPaletteRGBA(img.Pix, g.Coverage(nil), palette)
	return img
}

// Composite adds src onto dst, scaled by strength and saturating at 255. Both
// images must be premultiplied and the same size; otherwise dst is left
// untouched.
func Composite(dst, src *image.RGBA, strength float64) {
	if dst.Bounds().Size() != src.Bounds().Size() || strength <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for y := 0; y < h; y++ {
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for i := range d {
			v := float64(d[i]) + float64(s[i])*strength
			if v > 255 {
				v = 255
			}
			d[i] = uint8(v + 0.5)
		}
	}
}
