//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-contour/internal/contour"
	"mad-contour/internal/render"
	"mad-contour/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"seehuhn.de/go/geom/vec"
)

const hudWidth = 240

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	screen  *render.Screen
	bloom   *ebiten.Image
	hud     *ui.HUD
	overlay *ui.Overlay

	scale   int
	step    time.Duration
	panStep float64
}

// New constructs a Game for the provided session.
func New(s *Session, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		session: s,
		screen:  render.NewScreen(float64(scale)),
		hud:     ui.NewHUD(s.Field, s.Scene.Name(), hudWidth),
		overlay: ui.NewOverlay(s.Field, float64(scale)),
		scale:   scale,
		step:    time.Second / time.Duration(tps),
		panStep: float64(s.Field.TileSize()) / 2,
	}
}

// Update handles input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.session.Scene.Touch()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.session.Scene.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Scene.Solidify()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.session.NextScene(); err != nil {
			contour.Logger().Warn("scene switch failed", "err", err)
		}
		ebiten.SetWindowTitle(g.session.Title())
	}
	cam := &g.session.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Pan(-g.panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Pan(g.panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Pan(0, -g.panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Pan(0, g.panStep)
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	g.session.Tick(g.step)
	return nil
}

// Draw renders the bloom pass additively under the colour pass, then the
// overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.viewWidth(), g.viewHeight()
	if g.bloom == nil || g.bloom.Bounds().Dx() != w || g.bloom.Bounds().Dy() != h {
		g.bloom = ebiten.NewImage(w, h)
	}
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})
	origin := vec.Vec2{X: g.session.Camera.X, Y: g.session.Camera.Y}

	g.bloom.Clear()
	g.screen.Target(g.bloom, origin)
	g.session.Field.DrawBloom(g.screen)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	op.ColorScale.ScaleAlpha(0.5)
	screen.DrawImage(g.bloom, op)

	g.screen.Target(screen, origin)
	g.session.Field.DrawColor(g.screen)
	g.overlay.Draw(screen, origin)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.viewHeight()
}

func (g *Game) viewWidth() int  { return int(g.session.Camera.W) * g.scale }
func (g *Game) viewHeight() int { return int(g.session.Camera.H) * g.scale }
