package contour

import (
	"fmt"
	"image/color"
	"sort"

	"seehuhn.de/go/geom/vec"
)

const testTile = 8

type box struct {
	x, y, w, h int
	flash      float64
	shake      vec.Vec2
	solid      float64
}

func (b *box) Position() (int, int)    { return b.x, b.y }
func (b *box) Size() (int, int)        { return b.w, b.h }
func (b *box) FlashIntensity() float64 { return b.flash }

type shakyBox struct{ box }

func (b *shakyBox) ShakeOffset() vec.Vec2 { return b.shake }

type solidBox struct{ box }

func (b *solidBox) Solidify() float64 { return b.solid }

// tiles builds a region from tile coordinates on an 8 unit grid.
func tiles(tx, ty, tw, th int) *box {
	return &box{x: tx * testTile, y: ty * testTile, w: tw * testTile, h: th * testTile}
}

type segment struct{ a, b vec.Vec2 }

func worldSegments(edges []*Edge) []segment {
	out := make([]segment, 0, len(edges))
	for _, e := range edges {
		o := regionOrigin(e.Parent)
		out = append(out, segment{a: o.Add(e.A), b: o.Add(e.B)})
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})
	return out
}

func perimeter(edges []*Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Length
	}
	return total
}

// loops chains edges end to start in world space and returns the length of
// each closed loop. It returns an error when the edges do not form disjoint
// closed loops.
func loops(edges []*Edge) ([]float64, error) {
	segs := worldSegments(edges)
	byStart := map[vec.Vec2]int{}
	for i, s := range segs {
		if _, dup := byStart[s.a]; dup {
			return nil, fmt.Errorf("two edges start at %v", s.a)
		}
		byStart[s.a] = i
	}
	used := make([]bool, len(segs))
	var lengths []float64
	for i := range segs {
		if used[i] {
			continue
		}
		total := 0.0
		j := i
		for !used[j] {
			used[j] = true
			total += segs[j].b.Sub(segs[j].a).Length()
			next, ok := byStart[segs[j].b]
			if !ok {
				return nil, fmt.Errorf("edge ending at %v has no successor", segs[j].b)
			}
			j = next
		}
		if j != i {
			return nil, fmt.Errorf("chain from edge %d merged into another loop", i)
		}
		lengths = append(lengths, total)
	}
	return lengths, nil
}

type fillCall struct {
	x, y, w, h float64
	c          color.Color
}

type lineCall struct {
	pts []vec.Vec2
	c   color.Color
}

type recordingCanvas struct {
	fills []fillCall
	lines []lineCall
}

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.fills = append(r.fills, fillCall{x, y, w, h, c})
}

func (r *recordingCanvas) Polyline(pts []vec.Vec2, c color.Color) {
	r.lines = append(r.lines, lineCall{pts: append([]vec.Vec2(nil), pts...), c: c})
}

// panicErr runs fn and returns the error it panicked with.
func panicErr(fn func()) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		e, ok := rec.(error)
		if !ok {
			err = fmt.Errorf("panic value %v is not an error", rec)
			return
		}
		err = e
	}()
	fn()
	return fmt.Errorf("no panic")
}
