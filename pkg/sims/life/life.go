// Package life runs Conway's Game of Life on a small board. The board feeds
// scenes whose blocks appear and vanish with the cells.
package life

import (
	"mad-contour/pkg/core"
)

// Life implements Conway's Game of Life with optional toroidal wrapping.
type Life struct {
	w, h int
	wrap bool
	cur  []uint8
	prev []uint8
}

// New returns an empty board with the provided dimensions.
func New(w, h int, wrap bool) *Life {
	w, h = max(w, 1), max(h, 1)
	return &Life{w: w, h: h, wrap: wrap, cur: make([]uint8, w*h), prev: make([]uint8, w*h)}
}

// Size returns the board dimensions.
func (l *Life) Size() (int, int) { return l.w, l.h }

// Cells exposes the current generation, row-major, 1 for alive.
func (l *Life) Cells() []uint8 { return l.cur }

// Alive reports whether (x, y) is alive. Cells off the board are dead.
func (l *Life) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= l.w || y >= l.h {
		return false
	}
	return l.cur[y*l.w+x] == 1
}

// Set forces a cell alive or dead.
func (l *Life) Set(x, y int, alive bool) {
	if x < 0 || y < 0 || x >= l.w || y >= l.h {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	l.cur[y*l.w+x] = v
}

// Population counts the living cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		n += int(c)
	}
	return n
}

// Reset seeds the board so roughly density of the cells are alive.
func (l *Life) Reset(seed int64, density float64) {
	rng := core.NewRNG(seed)
	for i := range l.cur {
		l.cur[i] = 0
		if rng.Float64() < density {
			l.cur[i] = 1
		}
	}
	clear(l.prev)
}

// Step advances the board by one generation and returns how many cells
// changed.
func (l *Life) Step() int {
	l.cur, l.prev = l.prev, l.cur
	w, h := l.w, l.h
	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if l.wrap {
						nx = (nx + w) % w
						ny = (ny + h) % h
					} else if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					neighbors += int(l.prev[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.prev[idx] == 1
			l.cur[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.cur[idx] = 1
			}
			if l.cur[idx] != l.prev[idx] {
				changed++
			}
		}
	}
	return changed
}

// Changes calls fn for every cell whose state differs from the previous
// generation.
func (l *Life) Changes(fn func(x, y int, alive bool)) {
	for i, c := range l.cur {
		if c != l.prev[i] {
			fn(i%l.w, i/l.w, c == 1)
		}
	}
}
