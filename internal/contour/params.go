package contour

import (
	"strconv"

	"mad-contour/internal/core"
)

// Parameters reports the field's counters and animator tuning.
func (f *Field) Parameters() core.ParameterSnapshot {
	s := f.Stats()
	t := f.anim.Tuning
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("tile", "Tile size", f.cfg.TileSize),
				intParam("regions", "Regions", s.Regions),
				intParam("edges", "Edges", s.Edges),
				intParam("visible_edges", "Visible edges", s.VisibleEdges),
				intParam("rebuilds", "Rebuilds", s.Rebuilds),
				floatParam("perimeter", "Perimeter", s.Perimeter),
			},
		},
		{
			Name: "Animator",
			Params: []core.Parameter{
				floatParam("fast_interval", "Fast re-test", t.FastInterval),
				floatParam("slow_interval", "Slow re-test", t.SlowInterval),
				floatParam("phase_step", "Phase step", t.PhaseStep),
				floatParam("time_scale", "Wave speed", t.TimeScale),
				floatParam("view_margin", "View margin", t.ViewMargin),
			},
		},
	}}
}

// ParameterControls lists the animator values the HUD may adjust.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fast_interval", Label: "Fast re-test", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
		{Key: "slow_interval", Label: "Slow re-test", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 2, HasMin: true, HasMax: true},
		{Key: "phase_step", Label: "Phase step", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
		{Key: "time_scale", Label: "Wave speed", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 12, HasMin: true, HasMax: true},
		{Key: "view_margin", Label: "View margin", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates one animator value, clamped to its control
// bounds. It reports false for unknown keys.
func (f *Field) SetFloatParameter(key string, value float64) bool {
	var dst *float64
	switch key {
	case "fast_interval":
		dst = &f.anim.Tuning.FastInterval
	case "slow_interval":
		dst = &f.anim.Tuning.SlowInterval
	case "phase_step":
		dst = &f.anim.Tuning.PhaseStep
	case "time_scale":
		dst = &f.anim.Tuning.TimeScale
	case "view_margin":
		dst = &f.anim.Tuning.ViewMargin
	default:
		return false
	}
	for _, ctrl := range f.ParameterControls() {
		if ctrl.Key == key {
			value = ctrl.Clamp(value)
			break
		}
	}
	*dst = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
