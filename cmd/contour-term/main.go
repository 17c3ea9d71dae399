// Command contour-term previews a scene's contour in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/vec"

	"mad-contour/internal/app"
	"mad-contour/internal/contour"
	"mad-contour/internal/core"
	"mad-contour/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cellW := flag.Float64("cell-w", 4, "world units per terminal column")
	cellH := flag.Float64("cell-h", 8, "world units per terminal row")
	sound := flag.Bool("sound", true, "play a tone when a block is touched")
	fps := flag.Int("fps", 30, "terminal redraws per second")
	flag.Parse()
	cfg.SetupLogging()

	session, err := app.NewSession(cfg)
	if err != nil {
		return err
	}

	var tone *chime
	if *sound {
		tone, err = newChime(50*time.Millisecond, -2)
		if err != nil {
			log.Printf("audio disabled: %v", err)
			tone = nil
		}
	}
	defer tone.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	canvas := render.NewTerm(screen, *cellW, *cellH)
	fit := func() {
		w, h := screen.Size()
		session.Camera.W = float64(w) * canvas.CellW
		session.Camera.H = float64(max(h-1, 1)) * canvas.CellH
	}
	fit()
	session.Camera.CenterOn(session.Scene.Extent())

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	steps := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(time.Second / time.Duration(max(*fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				fit()
			case *tcell.EventKey:
				if !handleKey(ev, session, canvas, tone) {
					return nil
				}
			}
		case <-ticker.C:
			for steps.ShouldStep() {
				session.Tick(steps.Step())
			}
			draw(screen, canvas, session)
		}
	}
}

// handleKey applies one key press and reports whether the loop should go on.
func handleKey(ev *tcell.EventKey, s *app.Session, canvas *render.Term, tone *chime) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.Camera.Pan(-canvas.CellW, 0)
	case tcell.KeyRight:
		s.Camera.Pan(canvas.CellW, 0)
	case tcell.KeyUp:
		s.Camera.Pan(0, -canvas.CellH)
	case tcell.KeyDown:
		s.Camera.Pan(0, canvas.CellH)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			s.TogglePause()
		case 'r':
			s.Reset()
		case 't':
			if b := s.Scene.Touch(); b != nil {
				w, h := b.Size()
				tone.Play(440 + float64(w+h)*4)
			}
		case 'x':
			s.Scene.Toggle()
		case 's':
			s.Scene.Solidify()
		case 'n':
			if err := s.NextScene(); err != nil {
				contour.Logger().Warn("scene switch failed", "err", err)
			}
		}
	}
	return true
}

func draw(screen tcell.Screen, canvas *render.Term, s *app.Session) {
	screen.Clear()
	canvas.Origin = vec.Vec2{X: s.Camera.X, Y: s.Camera.Y}
	s.Field.DrawColor(canvas)

	st := s.Field.Stats()
	status := fmt.Sprintf(" %s  t=%.1fs  regions %d  edges %d/%d  [arrows] pan [t]ouch [x] toggle [s]olid [n]ext [r]eset [q]uit",
		s.Scene.Name(), s.Now(), st.Regions, st.VisibleEdges, st.Edges)
	if s.Paused() {
		status += "  (paused)"
	}
	_, h := screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		screen.SetContent(i, h-1, r, nil, style)
	}
	screen.Show()
}
