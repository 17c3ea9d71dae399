package contour

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

// sides lists the outward directions probed for every covered tile.
var sides = [4]image.Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Trace walks the covered tiles of grid and returns the edges outlining them.
// Each straight run of exposed tile sides becomes a single edge, attributed to
// the region owning the tile where the run starts. Inner holes are traced the
// same way as outer boundaries.
func Trace(grid *OccupancyGrid, regions []Region, tileSize int) []*Edge {
	if grid == nil || len(regions) == 0 || tileSize <= 0 {
		return nil
	}
	tile := float64(tileSize)
	half := tile / 2

	var (
		edges []*Edge
		seen  map[image.Point]struct{}
	)
	for _, r := range regions {
		x0, y0, x1, y1 := tileRect(r, tileSize)
		origin := regionOrigin(r)
		for ty := y0; ty < y1; ty++ {
			for tx := x0; tx < x1; tx++ {
				if grid.Count(tx, ty) > 1 {
					// Shared by overlapping regions: the first one claims it.
					if seen == nil {
						seen = map[image.Point]struct{}{}
					}
					p := image.Pt(tx, ty)
					if _, dup := seen[p]; dup {
						continue
					}
					seen[p] = struct{}{}
				}
				for _, d := range sides {
					w := image.Pt(-d.Y, d.X)
					if !runStart(grid, tx, ty, d, w) {
						continue
					}
					nx, ny := tx+w.X, ty+w.Y
					for grid.Occupied(nx, ny) && !grid.Occupied(nx+d.X, ny+d.Y) {
						nx += w.X
						ny += w.Y
					}
					corner := vec.Vec2{
						X: half + float64(d.X-w.X)*half,
						Y: half + float64(d.Y-w.Y)*half,
					}
					a := vec.Vec2{X: float64(tx) * tile, Y: float64(ty) * tile}.Add(corner).Sub(origin)
					b := vec.Vec2{X: float64(nx) * tile, Y: float64(ny) * tile}.Add(corner).Sub(origin)
					edges = append(edges, newEdge(r, a, b))
				}
			}
		}
	}
	return edges
}

// runStart reports whether the side of tile (tx, ty) facing d is exposed and
// is the first tile of its run when walking along w. The previous tile along
// the walk either is empty or has its own d side covered.
func runStart(grid *OccupancyGrid, tx, ty int, d, w image.Point) bool {
	if grid.Occupied(tx+d.X, ty+d.Y) {
		return false
	}
	px, py := tx-w.X, ty-w.Y
	return !grid.Occupied(px, py) || grid.Occupied(px+d.X, py+d.Y)
}
