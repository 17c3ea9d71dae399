package contour

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
)

// Palette holds the colours used by the two draw passes. Colours are alpha
// premultiplied.
type Palette struct {
	Bloom color.RGBA
	Fill  color.RGBA
	Edge  color.RGBA
	Flash color.RGBA
}

// DefaultPalette returns white bloom, a faint region tint and edges that
// brighten toward white while their region flashes.
func DefaultPalette() Palette {
	return Palette{
		Bloom: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Fill:  scaleRGBA(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.15),
		Edge:  scaleRGBA(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.25),
		Flash: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Config controls a Field.
type Config struct {
	TileSize int
	// Bounds is the level extent in tiles. Every tracked region must lie
	// inside it.
	Bounds image.Rectangle

	Tuning  Tuning
	Palette Palette
}

// DefaultConfig returns the standard configuration: 8 unit tiles over a
// 64x64 tile level.
func DefaultConfig() Config {
	return Config{
		TileSize: 8,
		Bounds:   image.Rect(0, 0, 64, 64),
		Tuning:   DefaultTuning(8),
		Palette:  DefaultPalette(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
			c.Tuning.ViewMargin = float64(parsed) / 2
		}
	}
	left, top := c.Bounds.Min.X, c.Bounds.Min.Y
	cols, rows := c.Bounds.Dx(), c.Bounds.Dy()
	if v, ok := cfg["left"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			left = parsed
		}
	}
	if v, ok := cfg["top"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			top = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			rows = parsed
		}
	}
	c.Bounds = image.Rect(left, top, left+cols, top+rows)
	for key, dst := range map[string]*float64{
		"fast_interval": &c.Tuning.FastInterval,
		"slow_interval": &c.Tuning.SlowInterval,
		"phase_step":    &c.Tuning.PhaseStep,
		"time_scale":    &c.Tuning.TimeScale,
		"view_margin":   &c.Tuning.ViewMargin,
	} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
	return c
}

// Validate reports configuration values a Field cannot run with.
func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("contour: tile size %d: %w", c.TileSize, ErrInvalidConfig)
	case c.Bounds.Empty():
		return fmt.Errorf("contour: empty bounds %v: %w", c.Bounds, ErrInvalidConfig)
	case c.Tuning.FastInterval <= 0 || c.Tuning.SlowInterval <= 0:
		return fmt.Errorf("contour: intervals must be positive: %w", ErrInvalidConfig)
	case c.Tuning.PhaseStep < 0 || c.Tuning.TimeScale < 0 || c.Tuning.ViewMargin < 0:
		return fmt.Errorf("contour: negative tuning value: %w", ErrInvalidConfig)
	}
	return nil
}

func scaleRGBA(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: uint8(float64(c.A)*f + 0.5),
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
