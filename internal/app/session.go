package app

import (
	"fmt"
	"time"

	"mad-contour/internal/contour"
	"mad-contour/internal/core"
	"mad-contour/internal/scenes"
)

// Session ties a scene, its field, a camera and the scene clock together.
// Every host drives one session from its frame loop.
type Session struct {
	Scene  *scenes.Scene
	Field  *contour.Field
	Camera Camera

	clock  core.SceneClock
	frames core.SceneClock
	seed   int64
}

// NewSession builds the configured scene on a new field and centres the
// camera on it.
func NewSession(cfg *Config) (*Session, error) {
	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}
	fieldCfg := contour.FromMap(overrides)
	if err := fieldCfg.Validate(); err != nil {
		return nil, err
	}
	field := contour.NewField(fieldCfg)
	sceneCfg := scenes.FromMap(overrides)
	scene, err := scenes.New(cfg.Scene, field, sceneCfg)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, scenes.Names())
	}
	s := &Session{
		Scene:  scene,
		Field:  field,
		Camera: Camera{W: float64(cfg.ViewW), H: float64(cfg.ViewH)},
		seed:   sceneCfg.Seed,
	}
	s.Camera.CenterOn(scene.Extent())
	return s, nil
}

// Tick advances the scene clock by dt and updates the field. The frame
// clock never pauses, so edge culling follows the camera while the scene
// is frozen.
func (s *Session) Tick(dt time.Duration) {
	if !s.clock.Paused() {
		s.Scene.Step(dt.Seconds())
	}
	s.Field.UpdateFrame(s.clock.Advance(dt), s.frames.Advance(dt), s.Camera.Rect())
}

// RunUntil ticks in steps of dt until the clock reaches t seconds. It does
// nothing while paused.
func (s *Session) RunUntil(t float64, dt time.Duration) {
	if dt <= 0 || s.clock.Paused() {
		return
	}
	for s.clock.Seconds() < t {
		s.Tick(dt)
	}
}

// Now returns the scene time.
func (s *Session) Now() float64 { return s.clock.Seconds() }

// Paused reports whether the scene clock is frozen.
func (s *Session) Paused() bool { return s.clock.Paused() }

// TogglePause freezes or resumes the scene clock.
func (s *Session) TogglePause() { s.clock.SetPaused(!s.clock.Paused()) }

// Reset lays the scene out again with its seed. The clock keeps running so
// the field's timing stays monotonic.
func (s *Session) Reset() {
	s.Scene.Reset(s.seed)
}

// NextScene replaces the scene with the next registered one on the same
// field and centres the camera on it.
func (s *Session) NextScene() error {
	s.Scene.Clear()
	next, err := scenes.FromHandle(scenes.Next(s.Scene.Handle()), s.Field, s.Scene.Config())
	if err != nil {
		s.Scene.Reset(s.seed)
		return err
	}
	s.Scene = next
	s.Camera.CenterOn(next.Extent())
	return nil
}

// Title returns a short window title.
func (s *Session) Title() string {
	return "mad-contour: " + s.Scene.Name()
}
