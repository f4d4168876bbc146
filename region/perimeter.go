package region

import (
	"github.com/katalvlaran/glasseam/grid"
)

// moore8 lists the Moore neighborhood in clockwise order (y grows downward):
// W, NW, N, NE, E, SE, S, SW.
var moore8 = [8][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// tracePerimeter walks the outer boundary of region id clockwise using
// Moore-neighbor tracing and returns the ordered cyclic cell sequence.
//
// The walk starts at the region's row-major minimum cell (cells[0], the
// flood-fill seed) whose west neighbor is guaranteed to be a non-member, and
// terminates when the opening transition repeats: standing on the start cell
// and stepping to the same first neighbor with the same backtrack as the
// initial move. The naive
// stopping rule (re-entering the start from the initial backtrack) never
// fires on 1-cell-wide regions, whose walk re-enters the start from the
// opposite side; the transition rule closes the loop on any shape. A single
// cell with no member neighbors yields a one-entry perimeter.
//
// Re-entering the start does not emit it again unless the walk continues
// through it, so the start appears once per pass like every other cell and
// width-1 appendages appear once per walk side.
//
// Inner-hole boundaries are intentionally not traced: tunnel mouths only
// make sense on the outer boundary.
//
// Complexity: O(P) time and memory, P = boundary walk length.
func tracePerimeter(lab *Labeling, id int, cells []grid.Point) []grid.Point {
	start := cells[0]
	member := func(p grid.Point) bool { return lab.At(p.X, p.Y) == id }

	// The flood-fill seed is the minimum (y, x) member, so its west neighbor
	// cannot be part of the region.
	startBack := grid.Point{X: start.X - 1, Y: start.Y}

	perim := []grid.Point{start}
	p, back := start, startBack
	var first, firstBack grid.Point
	// Hard cap: each boundary cell is entered at most once per incoming
	// direction, so 8×|cells|+8 steps always suffice.
	limit := 8*len(cells) + 8
	for steps := 0; steps < limit; steps++ {
		// Locate the backtrack direction index relative to p.
		bi := 0
		for i, d := range moore8 {
			if p.X+d[0] == back.X && p.Y+d[1] == back.Y {
				bi = i
				break
			}
		}
		// Scan clockwise from just past the backtrack; first member wins.
		found := false
		prev := back
		var next grid.Point
		for i := 1; i <= 8; i++ {
			d := moore8[(bi+i)%8]
			c := grid.Point{X: p.X + d[0], Y: p.Y + d[1]}
			if member(c) {
				next = c
				found = true
				break
			}
			prev = c
		}
		if !found {
			// Isolated cell: the single-entry perimeter stands.
			return perim
		}
		if steps == 0 {
			first, firstBack = next, prev
		} else if p == start {
			if next == first && prev == firstBack {
				// The opening transition repeats: the loop is closed.
				return perim
			}
			// The walk continues through the start; emit it for this pass.
			perim = append(perim, p)
		}
		p, back = next, prev
		if next != start {
			perim = append(perim, next)
		}
	}

	return perim
}

// PerimeterIndex returns the index of p within perim, or, when p is not a
// perimeter cell, the index of the perimeter cell nearest to p (Euclidean;
// ties break toward the lower index). Used to seed perimeter-local searches
// from line-derived exit points.
//
// Complexity: O(P).
func PerimeterIndex(perim []grid.Point, p grid.Point) int {
	best, bestDist := 0, -1.0
	for i, q := range perim {
		if q == p {
			return i
		}
		d := p.DistTo(q)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
