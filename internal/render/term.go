package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/vec"
)

// Term plots field contributions onto a terminal screen. Each cell covers
// CellW x CellH world units and cell (0, 0) starts at world point Origin.
type Term struct {
	screen tcell.Screen

	Origin       vec.Vec2
	CellW, CellH float64
	Glyph        rune
}

// NewTerm returns a terminal canvas. Non-positive cell sizes default to 4x8
// world units, roughly matching a terminal cell's aspect.
func NewTerm(s tcell.Screen, cellW, cellH float64) *Term {
	if cellW <= 0 {
		cellW = 4
	}
	if cellH <= 0 {
		cellH = 8
	}
	return &Term{screen: s, CellW: cellW, CellH: cellH, Glyph: '█'}
}

// Cell maps a world point to the terminal cell containing it.
func (t *Term) Cell(x, y float64) (int, int) {
	return int(math.Floor((x - t.Origin.X) / t.CellW)), int(math.Floor((y - t.Origin.Y) / t.CellH))
}

// FillRect tints the background of every cell whose centre lies inside the
// rectangle, keeping whatever glyph is already there.
func (t *Term) FillRect(x, y, w, h float64, c color.Color) {
	sw, sh := t.screen.Size()
	bg := termColor(c)
	cx0, cy0 := t.Cell(x, y)
	cx1, cy1 := t.Cell(x+w, y+h)
	for cy := max(cy0, 0); cy <= min(cy1, sh-1); cy++ {
		for cx := max(cx0, 0); cx <= min(cx1, sw-1); cx++ {
			mx := t.Origin.X + (float64(cx)+0.5)*t.CellW
			my := t.Origin.Y + (float64(cy)+0.5)*t.CellH
			if mx < x || mx >= x+w || my < y || my >= y+h {
				continue
			}
			mainc, combc, style, _ := t.screen.GetContent(cx, cy)
			t.screen.SetContent(cx, cy, mainc, combc, style.Background(bg))
		}
	}
}

// Polyline plots the glyph in the foreground colour on every cell the line
// passes through.
func (t *Term) Polyline(pts []vec.Vec2, c color.Color) {
	fg := termColor(c)
	step := math.Min(t.CellW, t.CellH) / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		n := int(math.Ceil(d.Length()/step)) + 1
		for k := 0; k <= n; k++ {
			p := a.Add(d.Mul(float64(k) / float64(n)))
			t.plot(p, fg)
		}
	}
	if len(pts) == 1 {
		t.plot(pts[0], fg)
	}
}

func (t *Term) plot(p vec.Vec2, fg tcell.Color) {
	cx, cy := t.Cell(p.X, p.Y)
	sw, sh := t.screen.Size()
	if cx < 0 || cy < 0 || cx >= sw || cy >= sh {
		return
	}
	_, _, style, _ := t.screen.GetContent(cx, cy)
	t.screen.SetContent(cx, cy, t.Glyph, nil, style.Foreground(fg))
}

func termColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
