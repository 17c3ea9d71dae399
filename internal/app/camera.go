package app

import "seehuhn.de/go/geom/rect"

// Camera is the visible world rectangle. X and Y are its top-left corner.
type Camera struct {
	X, Y float64
	W, H float64
}

// Rect returns the camera as a view rectangle.
func (c Camera) Rect() rect.Rect {
	return rect.Rect{LLx: c.X, LLy: c.Y, URx: c.X + c.W, URy: c.Y + c.H}
}

// Pan moves the camera by (dx, dy) world units.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// CenterOn moves the camera so r is centred. Empty rectangles are ignored.
func (c *Camera) CenterOn(r rect.Rect) {
	if r.URx <= r.LLx || r.URy <= r.LLy {
		return
	}
	c.X = (r.LLx+r.URx)/2 - c.W/2
	c.Y = (r.LLy+r.URy)/2 - c.H/2
}
