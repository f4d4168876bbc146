package carve

import (
	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/grid"
)

// Carve converts the blocked cells along each edge's mouth-to-mouth line
// to passable, mutating g in place. A radius > 0 widens every line cell by
// a filled disc; disc cells outside g are clipped. Returns the line cells
// per edge, index-aligned with edges, endpoints included.
//
// Side effects: mutates g. Re-carving an already-carved edge is a no-op.
func Carve(g grid.MutableGrid, edges []edgecost.Edge, radius int) [][]grid.Point {
	var offsets []grid.Point
	if radius > 0 {
		offsets = grid.Disc(radius)
	}

	paths := make([][]grid.Point, len(edges))
	for i, e := range edges {
		line := grid.Line(e.PointA, e.PointB)
		paths[i] = line
		for _, p := range line {
			carveCell(g, p.X, p.Y)
			for _, off := range offsets {
				carveCell(g, p.X+off.X, p.Y+off.Y)
			}
		}
	}

	return paths
}

func carveCell(g grid.MutableGrid, x, y int) {
	if !grid.InBounds(g, x, y) || g.IsPassable(x, y) {
		return
	}
	g.SetPassable(x, y, true)
}
