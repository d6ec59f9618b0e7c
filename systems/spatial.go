package systems

import (
	"math"

	"github.com/skitter-sim/skitter/components"
)

// cellKey addresses a grid cell in the unbounded plane.
type cellKey struct {
	cx, cy int32
}

// SpatialGrid buckets positions into fixed-size cells for radius counting.
// Rebuild it every frame before running queries; it holds positions, not
// entity references, so spawns during a pass cannot invalidate it.
type SpatialGrid struct {
	cellSize float32
	cells    map[cellKey][]components.Vec2
}

// NewSpatialGrid creates a grid with the given cell size. Cell size should
// be on the order of the largest query radius.
func NewSpatialGrid(cellSize float32) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]components.Vec2),
	}
}

// Clear removes all positions, keeping cell allocations for reuse.
func (g *SpatialGrid) Clear() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
}

// Insert adds a position to the grid.
func (g *SpatialGrid) Insert(p components.Vec2) {
	k := g.keyFor(p)
	g.cells[k] = append(g.cells[k], p)
}

// CountWithin returns how many inserted positions lie strictly within
// radius of p, by squared-distance comparison. A position coincident with
// p counts, so a particle counting around itself includes itself.
func (g *SpatialGrid) CountWithin(p components.Vec2, radius float32) int {
	reach := int32(radius/g.cellSize) + 1
	center := g.keyFor(p)
	radiusSq := radius * radius

	count := 0
	for cy := center.cy - reach; cy <= center.cy+reach; cy++ {
		for cx := center.cx - reach; cx <= center.cx+reach; cx++ {
			for _, q := range g.cells[cellKey{cx, cy}] {
				if q.Sub(p).LengthSq() < radiusSq {
					count++
				}
			}
		}
	}
	return count
}

func (g *SpatialGrid) keyFor(p components.Vec2) cellKey {
	return cellKey{
		cx: int32(math.Floor(float64(p.X / g.cellSize))),
		cy: int32(math.Floor(float64(p.Y / g.cellSize))),
	}
}
