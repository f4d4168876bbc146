package edgecost

import (
	"math"

	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// frrCandidate is a perimeter point with its projection onto the mid-plane.
type frrCandidate struct {
	pt   grid.Point
	proj float64 // signed coordinate along the plane axis
	idx  int     // perimeter index, used for deterministic tie-breaks
}

// frrRefine performs Frustum Ray Refinement for the pair (ra, rb):
// a global, hierarchical endpoint search for concave region shapes.
//
// Behavior:
//  1. Build the centroid axis and the perpendicular projection plane at the
//     midpoint. A zero-length axis (coincident centroids) aborts — the
//     baseline's degenerate cost-0 handling already covers that pair.
//  2. Filter each perimeter to points inside the visibility cone: the
//     direction from the region's centroid to the point must lie within
//     ConeHalfAngle of the axis toward the other region.
//  3. Project the filtered points onto the plane and span the bin range.
//  4. Per level: split the range into FRRBins bins, pick per bin the A- and
//     B-candidate whose projections sit closest to the bin center (ties
//     break toward the lower perimeter index), cost the ray between them,
//     and recurse into the cheapest bin's sub-range for FRRDepth levels.
//
// Returns ok=false when the cone filter empties either side or no bin holds
// candidates from both regions; the caller keeps its current estimate.
//
// Complexity: O(P + FRRDepth × FRRBins × L).
func frrRefine(g grid.Grid, ra, rb *region.Region, cfg *Options) (grid.Point, grid.Point, int, bool) {
	axX := rb.Centroid.X - ra.Centroid.X
	axY := rb.Centroid.Y - ra.Centroid.Y
	axLen := math.Hypot(axX, axY)
	if axLen == 0 {
		return grid.Point{}, grid.Point{}, 0, false
	}
	axX, axY = axX/axLen, axY/axLen
	// Perpendicular plane axis and plane origin at the midpoint.
	perpX, perpY := -axY, axX
	midX := (ra.Centroid.X + rb.Centroid.X) / 2
	midY := (ra.Centroid.Y + rb.Centroid.Y) / 2

	cosMax := math.Cos(cfg.ConeHalfAngle)
	candA := coneFilter(ra, axX, axY, cosMax, midX, midY, perpX, perpY)
	candB := coneFilter(rb, -axX, -axY, cosMax, midX, midY, perpX, perpY)
	if len(candA) == 0 || len(candB) == 0 {
		return grid.Point{}, grid.Point{}, 0, false
	}

	// Span of projections across both sides seeds the top-level bin range.
	lo, hi := candA[0].proj, candA[0].proj
	for _, c := range candA {
		lo, hi = math.Min(lo, c.proj), math.Max(hi, c.proj)
	}
	for _, c := range candB {
		lo, hi = math.Min(lo, c.proj), math.Max(hi, c.proj)
	}

	var (
		bestA, bestB grid.Point
		bestCost     = -1
	)
	for level := 0; level < cfg.FRRDepth; level++ {
		width := (hi - lo) / float64(cfg.FRRBins)
		bestBin := -1
		for bin := 0; bin < cfg.FRRBins; bin++ {
			bLo := lo + float64(bin)*width
			bHi := bLo + width
			if bin == cfg.FRRBins-1 {
				bHi = hi
			}
			center := (bLo + bHi) / 2
			ca, okA := nearestInBin(candA, bLo, bHi, center)
			cb, okB := nearestInBin(candB, bLo, bHi, center)
			if !okA || !okB {
				continue
			}
			c := lineCost(g, ca.pt, cb.pt)
			if bestCost < 0 || c < bestCost {
				bestA, bestB, bestCost = ca.pt, cb.pt, c
				bestBin = bin
			}
		}
		if bestBin < 0 {
			break
		}
		// Subdivide the winning bin; a zero-width range has converged.
		newLo := lo + float64(bestBin)*width
		newHi := newLo + width
		if newHi <= newLo {
			break
		}
		lo, hi = newLo, newHi
	}
	if bestCost < 0 {
		return grid.Point{}, grid.Point{}, 0, false
	}

	return bestA, bestB, bestCost, true
}

// coneFilter keeps perimeter points of r whose direction from the centroid
// lies within the visibility cone (dot with the unit axis ≥ cosMax) and
// tags each with its projection onto the mid-plane axis.
// Points coincident with the centroid always pass (direction undefined).
// Complexity: O(P).
func coneFilter(r *region.Region, axX, axY, cosMax, midX, midY, perpX, perpY float64) []frrCandidate {
	var out []frrCandidate
	for i, p := range r.Perimeter {
		dx := float64(p.X) - r.Centroid.X
		dy := float64(p.Y) - r.Centroid.Y
		if l := math.Hypot(dx, dy); l > 0 {
			if (dx*axX+dy*axY)/l < cosMax {
				continue
			}
		}
		proj := (float64(p.X)-midX)*perpX + (float64(p.Y)-midY)*perpY
		out = append(out, frrCandidate{pt: p, proj: proj, idx: i})
	}

	return out
}

// nearestInBin picks the candidate whose projection lies in [lo, hi] and
// sits closest to center; ties break toward the lower perimeter index.
// Complexity: O(n).
func nearestInBin(cands []frrCandidate, lo, hi, center float64) (frrCandidate, bool) {
	var best frrCandidate
	bestDist := -1.0
	for _, c := range cands {
		if c.proj < lo || c.proj > hi {
			continue
		}
		d := math.Abs(c.proj - center)
		if bestDist < 0 || d < bestDist || (d == bestDist && c.idx < best.idx) {
			best, bestDist = c, d
		}
	}

	return best, bestDist >= 0
}
