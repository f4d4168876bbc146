package optimize

import (
	"math"

	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/region"
)

// greedyExpand grows the selected set until coverage reaches ct or no
// unselected region can be attached.
//
// Per round, every unselected region is scored by its cheapest edge into
// the selected set; the region maximizing weight/edgeCost wins (a cost-0
// edge means the regions already touch, so its efficiency is +Inf). Ties
// break toward the lower region index; equal-cost connecting edges break
// toward the lower (A, B) pair. Both tie-breaks are load-bearing for the
// byte-identical-rerun guarantee.
//
// Returns the edges added (in selection order), the final coverage, and
// whether the threshold was met.
//
// Complexity: O(V×E) worst case — V rounds, each scanning all edges.
func greedyExpand(regions []region.Region, edges []edgecost.Edge, selected []bool, coverage, ct float64) ([]edgecost.Edge, float64, bool) {
	// Adjacency: per region, the incident edge indices.
	adj := make([][]int, len(regions))
	for ei := range edges {
		adj[edges[ei].A] = append(adj[edges[ei].A], ei)
		adj[edges[ei].B] = append(adj[edges[ei].B], ei)
	}

	var added []edgecost.Edge
	for coverage < ct {
		bestRegion := -1
		bestEdge := -1
		bestEff := 0.0
		for r := range regions {
			if selected[r] {
				continue
			}
			// Cheapest edge from r into the selected set.
			ce := -1
			for _, ei := range adj[r] {
				other := edges[ei].A
				if other == r {
					other = edges[ei].B
				}
				if !selected[other] {
					continue
				}
				if ce < 0 || edges[ei].Cost < edges[ce].Cost ||
					(edges[ei].Cost == edges[ce].Cost && pairLess(edges[ei], edges[ce])) {
					ce = ei
				}
			}
			if ce < 0 {
				continue // not adjacent to the selected set
			}
			eff := math.Inf(1)
			if edges[ce].Cost > 0 {
				eff = regions[r].Weight / float64(edges[ce].Cost)
			}
			// Strict improvement only: the ascending region scan makes the
			// lowest index win every tie.
			if bestRegion < 0 || eff > bestEff {
				bestRegion, bestEdge, bestEff = r, ce, eff
			}
		}
		if bestRegion < 0 {
			return added, coverage, false
		}
		selected[bestRegion] = true
		coverage += regions[bestRegion].Weight
		added = append(added, edges[bestEdge])
	}

	return added, coverage, true
}

// pairLess orders edges by their (A, B) region pair.
func pairLess(x, y edgecost.Edge) bool {
	if x.A != y.A {
		return x.A < y.A
	}

	return x.B < y.B
}
