//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"seehuhn.de/go/geom/vec"
)

// gridShaderSource draws thin tile boundaries. Uniforms are in pixels except
// Origin, which is the world point at the destination's top-left.
var gridShaderSource = []byte(`package main

var TileSize float
var Scale float
var Origin vec2
var LineColor vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := (dst.xy-imageDstOrigin())/Scale + Origin
	m := mod(p, vec2(TileSize))
	w := 1 / Scale
	if m.x < w || m.y < w {
		return LineColor
	}
	return vec4(0)
}
`)

// GridShaderSource returns the Kage source of the tile grid shader.
func GridShaderSource() []byte { return gridShaderSource }

// GridPainter overlays tile boundaries using a compiled shader.
type GridPainter struct {
	shader *ebiten.Shader
	color  [4]float32
}

// NewGridPainter compiles the grid shader.
func NewGridPainter() (*GridPainter, error) {
	s, err := ebiten.NewShader(gridShaderSource)
	if err != nil {
		return nil, err
	}
	return &GridPainter{shader: s, color: [4]float32{0.08, 0.08, 0.1, 0.3}}, nil
}

// Draw covers dst with the grid for tiles of tileSize world units, with
// world point origin at dst's top-left and scale pixels per unit.
func (gp *GridPainter) Draw(dst *ebiten.Image, tileSize int, origin vec.Vec2, scale float64) {
	if gp == nil || tileSize <= 0 || scale <= 0 {
		return
	}
	b := dst.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"TileSize":  float32(tileSize),
		"Scale":     float32(scale),
		"Origin":    []float32{float32(origin.X), float32(origin.Y)},
		"LineColor": gp.color[:],
	}
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	dst.DrawRectShader(b.Dx(), b.Dy(), gp.shader, op)
}
