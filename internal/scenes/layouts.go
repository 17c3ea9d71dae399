package scenes

import "image"

func init() {
	Register("abutting", Abutting)
	Register("ring", Ring)
	Register("scatter", Scatter)
	Register("corridor", Corridor)
}

// Abutting places two 2x2 blocks side by side so their shared seam vanishes
// from the contour.
func Abutting(s *Scene) {
	s.Place(0, 0, 2, 2)
	s.Place(2, 0, 2, 2)
}

// Ring builds a hollow square out of four blocks. The contour has an outer
// and an inner loop.
func Ring(s *Scene) {
	const o, n = 4, 8
	s.Place(o, o, n, 1)
	s.Place(o, o+n-1, n, 1)
	s.Place(o, o+1, 1, n-2)
	s.Place(o+n-1, o+1, 1, n-2)
}

// Scatter drops randomly sized blocks that never overlap each other. Blocks
// may still touch, in which case their outlines merge.
func Scatter(s *Scene) {
	cfg := s.Config()
	level := s.Level()
	rng := s.RNG()
	var placed []image.Rectangle
	for attempt := 0; attempt < cfg.Count*32 && len(placed) < cfg.Count; attempt++ {
		tw := rng.IntRange(cfg.MinSize, cfg.MaxSize)
		th := rng.IntRange(cfg.MinSize, cfg.MaxSize)
		if tw > level.X || th > level.Y {
			continue
		}
		tx := rng.IntN(level.X - tw + 1)
		ty := rng.IntN(level.Y - th + 1)
		r := image.Rect(tx, ty, tx+tw, ty+th)
		free := true
		for _, p := range placed {
			if p.Overlaps(r) {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		if s.Place(tx, ty, tw, th) != nil {
			placed = append(placed, r)
		}
	}
}

// Corridor lays a ceiling and a floor out of strips with gaps between them,
// offset so the gaps do not line up.
func Corridor(s *Scene) {
	const seg, gap = 6, 2
	level := s.Level()
	for x := 1; x+seg <= level.X; x += seg + gap {
		s.Place(x, 8, seg, 1)
	}
	for x := 1 + seg/2; x+seg <= level.X; x += seg + gap {
		s.Place(x, 16, seg, 2)
	}
}
