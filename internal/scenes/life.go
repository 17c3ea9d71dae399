package scenes

import (
	"mad-contour/pkg/sims/life"
)

func init() {
	Register("life", Life)
}

// Life mirrors a Game of Life board with one-tile blocks. Every generation
// untracks the cells that died and tracks the ones that were born, so the
// contour is rebuilt continuously.
func Life(s *Scene) {
	cfg := s.Config()
	level := s.Level()
	const margin = 2
	w, h := min(level.X-2*margin, 40), min(level.Y-2*margin, 24)
	if w <= 0 || h <= 0 {
		return
	}
	board := life.New(w, h, false)
	board.Reset(cfg.Seed, cfg.LifeDensity)

	cells := make([]*Block, w*h)
	cell := func(x, y int) *Block {
		b := cells[y*w+x]
		if b == nil {
			origin := s.field.Config().Bounds.Min
			b = NewBlock(s.field, &s.cfg, s.rng, origin.X+margin+x, origin.Y+margin+y, 1, 1)
			cells[y*w+x] = b
			s.Adopt(b)
		}
		return b
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if board.Alive(x, y) {
				cell(x, y).Add()
			}
		}
	}

	elapsed := 0.0
	s.OnStep(func(dt float64) {
		elapsed += dt
		if elapsed < cfg.LifePeriod {
			return
		}
		elapsed -= cfg.LifePeriod
		if board.Step() == 0 {
			return
		}
		board.Changes(func(x, y int, alive bool) {
			b := cell(x, y)
			if alive {
				b.Add()
				b.Touch()
			} else {
				b.Remove()
			}
		})
	})
}
