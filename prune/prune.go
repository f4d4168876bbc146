// Package prune implements the three-stage geometric edge filter applied
// between cost estimation and optimization.
package prune

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// Prune applies the fixed filter sequence Delaunay → angular sectors →
// occlusion to edges and returns the survivors in their original order.
//
// Safety: if the input graph was connected, the output remains connected.
// A union-find audit detects any component a filter split and restores that
// component's full unpruned edge set (documented fallback, not an error).
//
// Side effects: none; inputs are only read.
//
// Complexity: O(n² + E×n) time over n regions and E edges.
func Prune(regions []region.Region, edges []edgecost.Edge, opts ...Option) ([]edgecost.Edge, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(edges) == 0 {
		return nil, nil
	}

	n := len(regions)
	survivors := edges

	// 2) Delaunay-neighbor filter.
	if cfg.UseDelaunay {
		survivors = delaunayFilter(regions, survivors)
	}

	// 3) Angular-sector filter.
	survivors = sectorFilter(regions, survivors, cfg.AngularSectors)

	// 4) Occlusion filter.
	survivors = occlusionFilter(n, survivors, cfg.OcclusionFactor)

	// 5) Connectivity audit with per-component fallback.
	survivors = restoreSplitComponents(n, edges, survivors)

	return survivors, nil
}

// delaunayFilter retains edges whose region pair is an edge of the
// centroid triangulation. Degenerate triangulations keep everything.
func delaunayFilter(regions []region.Region, edges []edgecost.Edge) []edgecost.Edge {
	centroids := make([]grid.FPoint, len(regions))
	for i := range regions {
		centroids[i] = regions[i].Centroid
	}
	pairs, ok := delaunayPairs(centroids)
	if !ok {
		return edges
	}
	kept := edges[:0:0]
	for _, e := range edges {
		if _, in := pairs[e.A*len(regions)+e.B]; in {
			kept = append(kept, e)
		}
	}

	return kept
}

// sectorFilter partitions the directions around each centroid into k equal
// sectors and keeps, per region and sector, only the cheapest outgoing edge
// (ties: lower cost, then lower opposite region index). An edge survives
// when either endpoint keeps it — the union rule is strictly safer for the
// connectivity invariant than requiring agreement.
func sectorFilter(regions []region.Region, edges []edgecost.Edge, k int) []edgecost.Edge {
	width := 2 * math.Pi / float64(k)

	// best[region][sector] = edge index.
	best := make([]map[int]int, len(regions))
	for i := range best {
		best[i] = map[int]int{}
	}
	consider := func(from, to, ei int) {
		dx := regions[to].Centroid.X - regions[from].Centroid.X
		dy := regions[to].Centroid.Y - regions[from].Centroid.Y
		theta := math.Atan2(dy, dx)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		s := int(theta / width)
		if s >= k {
			s = k - 1 // guard the θ=2π boundary
		}
		cur, in := best[from][s]
		if !in {
			best[from][s] = ei
			return
		}
		if edges[ei].Cost < edges[cur].Cost ||
			(edges[ei].Cost == edges[cur].Cost && opposite(edges[ei], from) < opposite(edges[cur], from)) {
			best[from][s] = ei
		}
	}
	for ei := range edges {
		consider(edges[ei].A, edges[ei].B, ei)
		consider(edges[ei].B, edges[ei].A, ei)
	}

	keep := mapset.New[int]()
	for _, sectors := range best {
		for _, ei := range sectors {
			keep.Put(ei)
		}
	}
	kept := edges[:0:0]
	for ei := range edges {
		if keep.Has(ei) {
			kept = append(kept, edges[ei])
		}
	}

	return kept
}

func opposite(e edgecost.Edge, from int) int {
	if e.A == from {
		return e.B
	}

	return e.A
}

// occlusionFilter drops edge (i,j) when a third region m certifies a
// cheaper indirect route: cost(i,m)+cost(m,j) < cost(i,j)×factor. All
// edges are judged against the same pre-removal snapshot.
func occlusionFilter(n int, edges []edgecost.Edge, factor float64) []edgecost.Edge {
	cost := map[int]int{}
	adj := make([][]int, n) // adj[i] = opposite regions with a surviving edge
	for _, e := range edges {
		cost[e.A*n+e.B] = e.Cost
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	lookup := func(i, j int) (int, bool) {
		if i > j {
			i, j = j, i
		}
		c, in := cost[i*n+j]

		return c, in
	}

	kept := edges[:0:0]
	for _, e := range edges {
		occluded := false
		for _, m := range adj[e.A] {
			if m == e.B {
				continue
			}
			cim, okA := lookup(e.A, m)
			cmj, okB := lookup(m, e.B)
			if okA && okB && float64(cim+cmj) < float64(e.Cost)*factor {
				occluded = true
				break
			}
		}
		if !occluded {
			kept = append(kept, e)
		}
	}

	return kept
}

// restoreSplitComponents compares connectivity before and after pruning and
// restores the full original edge set of every component the filters split.
func restoreSplitComponents(n int, original, pruned []edgecost.Edge) []edgecost.Edge {
	full := newDSU(n)
	for _, e := range original {
		full.union(e.A, e.B)
	}
	after := newDSU(n)
	for _, e := range pruned {
		after.union(e.A, e.B)
	}

	// A component is broken when some original edge's endpoints no longer
	// meet in the pruned forest.
	broken := mapset.New[int]()
	for _, e := range original {
		if after.find(e.A) != after.find(e.B) {
			broken.Put(full.find(e.A))
		}
	}
	if broken.Size() == 0 {
		return pruned
	}

	// Rebuild in original order: all original edges of broken components,
	// surviving edges elsewhere.
	prunedSet := mapset.New[int]()
	for _, e := range pruned {
		prunedSet.Put(e.A*n + e.B)
	}
	out := original[:0:0]
	for _, e := range original {
		if broken.Has(full.find(e.A)) || prunedSet.Has(e.A*n+e.B) {
			out = append(out, e)
		}
	}

	return out
}
