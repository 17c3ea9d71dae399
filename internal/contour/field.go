// Package contour traces the outline of a changing set of grid-aligned
// rectangles and animates a travelling wave along it.
//
// A Field owns the occupancy grid and the derived edges. Regions register
// with Track and leave with Untrack; once per frame the host calls Update
// with the scene time and camera rectangle, then asks for the bloom and
// colour draw contributions.
package contour

import (
	"fmt"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// State describes whether a Field currently holds any regions.
type State int

const (
	// Empty fields have no grid and no regions; Update does nothing.
	Empty State = iota
	// Populated fields hold a grid and at least one region.
	Populated
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Field tracks regions on a tile grid and maintains their animated contour.
// It is not safe for concurrent use; every method is meant to run on the
// host's frame loop.
type Field struct {
	cfg  Config
	anim Animator

	grid    *OccupancyGrid
	regions []Region
	edges   []*Edge
	dirty   bool

	now      float64
	frame    float64
	started  bool
	view     rect.Rect
	rebuilds int

	scratch []vec.Vec2
}

// NewField returns an empty field. It panics when cfg is invalid.
func NewField(cfg Config) *Field {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Field{cfg: cfg, anim: Animator{Tuning: cfg.Tuning}}
}

// Config returns the field's current configuration.
func (f *Field) Config() Config {
	c := f.cfg
	c.Tuning = f.anim.Tuning
	return c
}

// TileSize returns the grid cell size in world units.
func (f *Field) TileSize() int { return f.cfg.TileSize }

// Track registers a region and covers its tiles. The region must be aligned
// to the tile grid, lie inside the level bounds and not already be tracked.
func (f *Field) Track(r Region) {
	if err := CheckRegion(r, f.cfg.TileSize); err != nil {
		panic(err)
	}
	if f.index(r) >= 0 {
		panic(fmt.Errorf("contour: track: %w", ErrAlreadyTracked))
	}
	x0, y0, x1, y1 := tileRect(r, f.cfg.TileSize)
	if x1 > x0 && y1 > y0 && (x0 < f.cfg.Bounds.Min.X || y0 < f.cfg.Bounds.Min.Y ||
		x1 > f.cfg.Bounds.Max.X || y1 > f.cfg.Bounds.Max.Y) {
		panic(fmt.Errorf("contour: tiles [%d,%d)-[%d,%d) not within %v: %w", x0, y0, x1, y1, f.cfg.Bounds, ErrOutOfBounds))
	}
	if f.grid == nil {
		f.grid = NewOccupancyGrid(f.cfg.Bounds)
		Logger().Debug("contour grid allocated", "bounds", f.cfg.Bounds)
	}
	f.grid.SetFootprint(r, f.cfg.TileSize, true)
	f.regions = append(f.regions, r)
	f.dirty = true
}

// Untrack removes a tracked region. The field never reads r afterwards.
// Removing the last region releases the grid.
func (f *Field) Untrack(r Region) {
	i := f.index(r)
	if i < 0 {
		panic(fmt.Errorf("contour: untrack: %w", ErrNotTracked))
	}
	f.regions = append(f.regions[:i], f.regions[i+1:]...)
	if len(f.regions) == 0 {
		f.regions = nil
		f.grid = nil
		f.edges = nil
		f.dirty = false
		Logger().Debug("contour grid released")
		return
	}
	f.grid.SetFootprint(r, f.cfg.TileSize, false)
	// Drop edges owned by r right away so nothing dereferences it before
	// the next rebuild.
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.Parent != r {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(f.edges); i++ {
		f.edges[i] = nil
	}
	f.edges = kept
	f.dirty = true
}

func (f *Field) index(r Region) int {
	for i, t := range f.regions {
		if t == r {
			return i
		}
	}
	return -1
}

// Update runs once per frame. It rebuilds the edges when regions changed
// since the last update, then refreshes visibility and waves for scene time
// now and camera rectangle view.
func (f *Field) Update(now float64, view rect.Rect) {
	f.UpdateFrame(now, now, view)
}

// UpdateFrame is Update with the visibility cadence driven by frame instead
// of scene time. frame must keep advancing while now is frozen, so a paused
// host can still pan and see edges appear and disappear.
func (f *Field) UpdateFrame(now, frame float64, view rect.Rect) {
	prev := f.frame
	if !f.started {
		prev = frame
	}
	f.now, f.frame, f.started, f.view = now, frame, true, view
	if f.grid == nil {
		return
	}
	if f.dirty {
		f.rebuild()
		f.anim.Reveal(f.edges, view)
	}
	f.anim.Refresh(f.edges, prev, frame, now, view)
}

func (f *Field) rebuild() {
	start := time.Now()
	f.edges = Trace(f.grid, f.regions, f.cfg.TileSize)
	f.dirty = false
	f.rebuilds++
	Logger().Debug("contour rebuilt",
		"regions", len(f.regions),
		"edges", len(f.edges),
		"took", time.Since(start))
}

// State reports whether the field holds any regions.
func (f *Field) State() State {
	if f.grid == nil {
		return Empty
	}
	return Populated
}

// Dirty reports whether the edges are stale with respect to the grid.
func (f *Field) Dirty() bool { return f.dirty }

// Grid returns the occupancy grid, or nil while the field is empty.
func (f *Field) Grid() *OccupancyGrid { return f.grid }

// Regions returns the tracked regions in tracking order. The slice must not
// be modified.
func (f *Field) Regions() []Region { return f.regions }

// Edges returns the current edges. The slice and its edges are only valid
// until the next Track, Untrack or Update.
func (f *Field) Edges() []*Edge { return f.edges }

// Now returns the scene time passed to the last Update.
func (f *Field) Now() float64 { return f.now }

// Stats summarises the field for HUDs and logs.
type Stats struct {
	Regions       int
	Edges         int
	VisibleEdges  int
	OccupiedTiles int
	Rebuilds      int
	Perimeter     float64
}

// Stats returns current counters.
func (f *Field) Stats() Stats {
	s := Stats{Regions: len(f.regions), Edges: len(f.edges), Rebuilds: f.rebuilds}
	for _, e := range f.edges {
		s.Perimeter += e.Length
		if e.Visible {
			s.VisibleEdges++
		}
	}
	if f.grid != nil {
		s.OccupiedTiles = f.grid.OccupiedCount()
	}
	return s
}
