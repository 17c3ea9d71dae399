//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-contour/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.SetupLogging()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(session.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
