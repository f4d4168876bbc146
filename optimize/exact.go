package optimize

import (
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/glasseam/edgecost"
)

// choice kinds for exact-mode reconstruction.
const (
	choiceNone  = iota // unreachable state
	choiceInit         // base case: single terminal, zero cost
	choiceMerge        // two sub-trees merged at the same vertex
	choiceEdge         // tree extended along one edge
)

// choice records how dp[mask][v] was achieved, for tree reconstruction.
type choice struct {
	kind int
	sub  int // choiceMerge: the sub-mask kept at v
	from int // choiceEdge: predecessor vertex
	edge int // choiceEdge: index into the edge slice
}

// exactSteiner computes the true minimum-cost Steiner tree over the
// terminals with Dreyfus–Wagner dynamic programming:
//
//	dp[mask][v] = minimum cost of a tree spanning the terminals in mask
//	              plus vertex v.
//
// Per subset mask (ascending, which guarantees sub-masks are final):
//  1. Merge transition: split mask at v into two cheaper sub-trees.
//  2. Grow transition: Dijkstra relaxation of dp[mask] over the graph,
//     with a lazy min-heap keyed by (distance, vertex) so equal-cost
//     states settle in vertex order — determinism again.
//
// The answer is min over v of dp[full][v] (ties toward the lower vertex);
// the tree is rebuilt from the recorded choices. Returns ErrInfeasible
// when no vertex reaches the full terminal set.
//
// Complexity: O(3^t×V + 2^t×E log V) time, O(2^t×V) memory, t = |terminals|.
func exactSteiner(n int, edges []edgecost.Edge, terminals []int) ([]edgecost.Edge, error) {
	t := len(terminals)
	full := 1<<t - 1
	const inf = math.MaxInt32

	// Adjacency with edge back-references.
	type arc struct{ to, w, edge int }
	adj := make([][]arc, n)
	for ei, e := range edges {
		adj[e.A] = append(adj[e.A], arc{to: e.B, w: e.Cost, edge: ei})
		adj[e.B] = append(adj[e.B], arc{to: e.A, w: e.Cost, edge: ei})
	}

	dp := make([][]int, 1<<t)
	par := make([][]choice, 1<<t)
	for mask := 0; mask <= full; mask++ {
		dp[mask] = make([]int, n)
		par[mask] = make([]choice, n)
		for v := range dp[mask] {
			dp[mask][v] = inf
		}
	}
	for i, term := range terminals {
		dp[1<<i][term] = 0
		par[1<<i][term] = choice{kind: choiceInit}
	}

	type state struct{ dist, v int }
	less := func(a, b state) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}

		return a.v < b.v
	}

	for mask := 1; mask <= full; mask++ {
		// 1) Merge two disjoint sub-trees at a shared vertex. Requiring the
		// sub-mask to carry mask's lowest set bit enumerates each unordered
		// split exactly once.
		low := mask & -mask
		for v := 0; v < n; v++ {
			for sub := (mask - 1) & mask; sub > 0; sub = (sub - 1) & mask {
				if sub&low == 0 {
					continue
				}
				rest := mask ^ sub
				if rest == 0 || dp[sub][v] == inf || dp[rest][v] == inf {
					continue
				}
				if cand := dp[sub][v] + dp[rest][v]; cand < dp[mask][v] {
					dp[mask][v] = cand
					par[mask][v] = choice{kind: choiceMerge, sub: sub}
				}
			}
		}

		// 2) Grow along edges: Dijkstra over dp[mask] with lazy deletion.
		pq := heap.New(less)
		for v := 0; v < n; v++ {
			if dp[mask][v] < inf {
				pq.Push(state{dist: dp[mask][v], v: v})
			}
		}
		for pq.Size() > 0 {
			s, _ := pq.Pop()
			if s.dist > dp[mask][s.v] {
				continue // stale entry
			}
			for _, a := range adj[s.v] {
				if cand := s.dist + a.w; cand < dp[mask][a.to] {
					dp[mask][a.to] = cand
					par[mask][a.to] = choice{kind: choiceEdge, from: s.v, edge: a.edge}
					pq.Push(state{dist: cand, v: a.to})
				}
			}
		}
	}

	// 3) Pick the cheapest root and rebuild the tree.
	root := -1
	for v := 0; v < n; v++ {
		if dp[full][v] < inf && (root < 0 || dp[full][v] < dp[full][root]) {
			root = v
		}
	}
	if root < 0 {
		return nil, ErrInfeasible
	}

	picked := mapset.New[int]()
	var walk func(mask, v int)
	walk = func(mask, v int) {
		c := par[mask][v]
		switch c.kind {
		case choiceMerge:
			walk(c.sub, v)
			walk(mask^c.sub, v)
		case choiceEdge:
			picked.Put(c.edge)
			walk(mask, c.from)
		}
	}
	walk(full, root)

	// Emit in input order so reruns are byte-identical.
	tree := edges[:0:0]
	for ei := range edges {
		if picked.Has(ei) {
			tree = append(tree, edges[ei])
		}
	}

	return tree, nil
}
