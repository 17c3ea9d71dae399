package contour

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Region is a grid-aligned rectangle owned outside the package. A Field only
// reads it between Track and Untrack.
type Region interface {
	// Position returns the world-space top-left corner.
	Position() (x, y int)
	// Size returns the width and height in world units.
	Size() (w, h int)
	// FlashIntensity returns the current flash level in [0, 1].
	FlashIntensity() float64
}

// Shaker is implemented by regions whose drawn position jitters. The offset
// is applied at draw time only; it never triggers a rebuild.
type Shaker interface {
	ShakeOffset() vec.Vec2
}

// Solidifier is implemented by regions that can fade their wave out. A value
// of 1 flattens every edge owned by the region.
type Solidifier interface {
	Solidify() float64
}

// CheckRegion verifies that r is aligned to a grid of the given tile size and
// has a non-negative size. It returns an error wrapping ErrMisaligned.
func CheckRegion(r Region, tileSize int) error {
	if tileSize <= 0 {
		return fmt.Errorf("contour: tile size %d: %w", tileSize, ErrInvalidConfig)
	}
	x, y := r.Position()
	w, h := r.Size()
	switch {
	case w < 0 || h < 0:
		return fmt.Errorf("contour: region size %dx%d is negative: %w", w, h, ErrMisaligned)
	case x%tileSize != 0 || y%tileSize != 0:
		return fmt.Errorf("contour: region position (%d,%d) off the %d grid: %w", x, y, tileSize, ErrMisaligned)
	case w%tileSize != 0 || h%tileSize != 0:
		return fmt.Errorf("contour: region size %dx%d not a multiple of %d: %w", w, h, tileSize, ErrMisaligned)
	}
	return nil
}

// tileRect returns the half-open tile range covered by r.
func tileRect(r Region, tileSize int) (x0, y0, x1, y1 int) {
	x, y := r.Position()
	w, h := r.Size()
	x0 = floorDiv(x, tileSize)
	y0 = floorDiv(y, tileSize)
	x1 = floorDiv(x+w, tileSize)
	y1 = floorDiv(y+h, tileSize)
	return x0, y0, x1, y1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func regionOrigin(r Region) vec.Vec2 {
	x, y := r.Position()
	return vec.Vec2{X: float64(x), Y: float64(y)}
}

func drawOrigin(r Region) vec.Vec2 {
	o := regionOrigin(r)
	if s, ok := r.(Shaker); ok {
		o = o.Add(s.ShakeOffset())
	}
	return o
}
