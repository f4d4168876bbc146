package prune

import (
	"math"

	"github.com/katalvlaran/glasseam/grid"
)

// triangle references three point indices; super-triangle vertices use
// indices ≥ n (the real point count).
type triangle struct {
	a, b, c int
}

// delaunayPairs triangulates pts with incremental Bowyer–Watson insertion
// and returns the set of index pairs (a<b, encoded a*len(pts)+b) that are
// edges of the triangulation.
//
// Degenerate inputs — fewer than 3 points, duplicate or collinear
// centroids that break every circumcircle — yield ok=false, and the caller
// treats the Delaunay stage as a no-op.
//
// Points are inserted in index order, so the result is deterministic.
//
// Complexity: O(n²) time, O(n) memory.
func delaunayPairs(pts []grid.FPoint) (map[int]struct{}, bool) {
	n := len(pts)
	if n < 3 {
		return nil, false
	}

	// 1) Super-triangle comfortably enclosing every point.
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	d := math.Max(maxX-minX, maxY-minY)
	if d == 0 {
		// All centroids coincide; no triangulation exists.
		return nil, false
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	all := make([]grid.FPoint, n, n+3)
	copy(all, pts)
	all = append(all,
		grid.FPoint{X: cx - 20*d, Y: cy - d},
		grid.FPoint{X: cx, Y: cy + 20*d},
		grid.FPoint{X: cx + 20*d, Y: cy - d},
	)

	tris := []triangle{{a: n, b: n + 1, c: n + 2}}

	// 2) Insert points one by one.
	for i := 0; i < n; i++ {
		p := all[i]

		// 2a) Collect triangles whose circumcircle contains p.
		var bad []triangle
		var good []triangle
		for _, t := range tris {
			if inCircumcircle(all[t.a], all[t.b], all[t.c], p) {
				bad = append(bad, t)
			} else {
				good = append(good, t)
			}
		}

		// 2b) The cavity boundary: edges of bad triangles not shared by two
		// bad triangles.
		edgeCount := map[[2]int]int{}
		for _, t := range bad {
			for _, e := range [3][2]int{orient(t.a, t.b), orient(t.b, t.c), orient(t.c, t.a)} {
				edgeCount[e]++
			}
		}

		// 2c) Retriangulate the cavity around p.
		tris = good
		for e, cnt := range edgeCount {
			if cnt == 1 {
				tris = append(tris, triangle{a: e[0], b: e[1], c: i})
			}
		}
	}

	// 3) Harvest edges between real points only.
	pairs := map[int]struct{}{}
	for _, t := range tris {
		for _, e := range [3][2]int{orient(t.a, t.b), orient(t.b, t.c), orient(t.c, t.a)} {
			if e[0] < n && e[1] < n {
				pairs[e[0]*n+e[1]] = struct{}{}
			}
		}
	}
	if len(pairs) == 0 {
		return nil, false
	}

	return pairs, true
}

// orient returns the pair (min, max) so shared edges hash identically.
func orient(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// triangle (a, b, c). Degenerate (collinear) triangles contain nothing.
// Complexity: O(1).
func inCircumcircle(a, b, c, p grid.FPoint) bool {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	r2 := (a.X-ux)*(a.X-ux) + (a.Y-uy)*(a.Y-uy)
	dist2 := (p.X-ux)*(p.X-ux) + (p.Y-uy)*(p.Y-uy)

	return dist2 < r2
}
