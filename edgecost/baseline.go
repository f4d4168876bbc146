package edgecost

import (
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// lineCost counts blocked cells along the rasterized segment a→b.
// Passable cells — whichever region they belong to — cost nothing.
// Complexity: O(L), L = segment length.
func lineCost(g grid.Grid, a, b grid.Point) int {
	cost := 0
	for _, p := range grid.Line(a, b) {
		if !g.IsPassable(p.X, p.Y) {
			cost++
		}
	}

	return cost
}

// anchor returns the integer cell that anchors r's centroid walk: the
// rounded centroid when it lies inside the region, otherwise the region
// cell nearest to the centroid (ties break toward the lower row-major
// index, keeping the choice deterministic for concave regions).
// Complexity: O(1) for convex regions, O(n) worst case.
func anchor(lab *region.Labeling, r *region.Region) grid.Point {
	c := r.Centroid.Round()
	if lab.At(c.X, c.Y) == r.ID {
		return c
	}
	best := r.Cells[0]
	bestDist := r.Centroid.DistTo(grid.FPoint{X: float64(best.X), Y: float64(best.Y)})
	for _, cell := range r.Cells[1:] {
		d := r.Centroid.DistTo(grid.FPoint{X: float64(cell.X), Y: float64(cell.Y)})
		if d < bestDist || (d == bestDist && rowMajorLess(cell, best, lab.Width)) {
			best, bestDist = cell, d
		}
	}

	return best
}

func rowMajorLess(a, b grid.Point, w int) bool {
	return a.Y*w+a.X < b.Y*w+b.X
}

// baseline computes the centroid-line estimate for the pair (ra, rb):
// walk the straight line between the two anchors with Bresenham stepping,
// take the last cell on each side still inside its region as the exit
// point, and count blocked cells along the segment between the exits.
//
// Identical anchors (regions sharing a geometric center) degenerate to
// cost 0 with both mouths at the shared anchor — no division anywhere, so
// no zero-length hazard.
//
// Complexity: O(L), L = anchor distance.
func baseline(g grid.Grid, lab *region.Labeling, ra, rb *region.Region) (pa, pb grid.Point, cost int) {
	aAnchor := anchor(lab, ra)
	bAnchor := anchor(lab, rb)
	if aAnchor == bAnchor {
		return aAnchor, bAnchor, 0
	}

	// Exit of A: last A-labeled cell walking a→b.
	pa = aAnchor
	for _, p := range grid.Line(aAnchor, bAnchor) {
		if lab.At(p.X, p.Y) == ra.ID {
			pa = p
		}
	}
	// Exit of B: last B-labeled cell walking b→a.
	pb = bAnchor
	for _, p := range grid.Line(bAnchor, aAnchor) {
		if lab.At(p.X, p.Y) == rb.ID {
			pb = p
		}
	}

	return pa, pb, lineCost(g, pa, pb)
}
