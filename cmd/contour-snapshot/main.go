// Command contour-snapshot renders a scene at a given time to a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"mad-contour/internal/app"
	"mad-contour/internal/render"
)

var bgColor = color.RGBA{R: 8, G: 8, B: 12, A: 255}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	at := flag.Float64("time", 1, "scene time in seconds to render")
	out := flag.String("out", "contour.png", "output PNG path")
	bloom := flag.Float64("bloom", 0.5, "bloom strength when compositing")
	coverage := flag.String("coverage", "", "also write the per-tile coverage map to this PNG path")
	mask := flag.String("mask", "", "also write the binary occupancy mask to this PNG path")
	flag.Parse()
	cfg.SetupLogging()

	session, err := app.NewSession(cfg)
	if err != nil {
		return err
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	session.RunUntil(*at, time.Second/time.Duration(tps))

	view := session.Camera.Rect()
	scale := float64(max(cfg.Scale, 1))

	glow := render.NewRaster(view, scale)
	defer glow.Close()
	session.Field.DrawBloom(glow)

	colour := render.NewRaster(view, scale)
	defer colour.Close()
	colour.Clear(bgColor)
	session.Field.DrawColor(colour)

	for _, r := range []*render.Raster{glow, colour} {
		if err := r.Err(); err != nil {
			return err
		}
	}

	img := colour.Image()
	render.Composite(img, glow.Image(), *bloom)
	if err := render.SavePNG(img, *out); err != nil {
		return err
	}
	log.Printf("wrote %s (%s at t=%.2fs, %d edges)", *out, session.Scene.Name(), session.Now(), session.Field.Stats().Edges)

	if *coverage == "" && *mask == "" {
		return nil
	}
	grid := session.Field.Grid()
	if grid == nil {
		return fmt.Errorf("scene %s has no occupied tiles", session.Scene.Name())
	}
	if *coverage != "" {
		if err := render.SavePNG(render.CoverageImage(grid, render.CoveragePalette), *coverage); err != nil {
			return err
		}
	}
	if *mask != "" {
		if err := render.SavePNG(render.MaskImage(grid, color.White, bgColor), *mask); err != nil {
			return err
		}
	}
	return nil
}
