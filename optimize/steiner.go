package optimize

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/glasseam/edgecost"
)

// steinerMerge joins all terminals into one component by sweeping edges in
// ascending (cost, A, B) order through a union-find, then strips
// non-terminal leaves from the accepted forest. The surviving tree is the
// classic 2-approximation of the optimal Steiner tree.
//
// Steps:
//  1. Stable-order the edges by cost with the (A, B) pair as tie-break.
//  2. Kruskal sweep: accept every edge that merges two components; stop as
//     soon as one component holds all terminals.
//  3. Keep only the accepted edges inside the terminal component, then
//     iteratively remove degree-1 vertices that are not terminals — they
//     were merged speculatively and serve no terminal path.
//
// Returns ErrInfeasible when the sweep exhausts all edges with terminals
// still apart.
//
// Complexity: O(E log E + E α(V)).
func steinerMerge(n int, edges []edgecost.Edge, terminals []int) ([]edgecost.Edge, error) {
	// 1) Deterministic edge order.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := edges[order[i]], edges[order[j]]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}

		return pairLess(a, b)
	})

	// 2) Kruskal sweep with terminal counting per root.
	d := newDSU(n)
	termCount := make([]int, n)
	for _, t := range terminals {
		termCount[t]++
	}
	var accepted []edgecost.Edge
	done := len(terminals) == 1
	for _, ei := range order {
		if done {
			break
		}
		e := edges[ei]
		ra, rb := d.find(e.A), d.find(e.B)
		if ra == rb {
			continue
		}
		cnt := termCount[ra] + termCount[rb]
		d.union(e.A, e.B)
		root := d.find(e.A)
		termCount[root] = cnt
		accepted = append(accepted, e)
		if cnt == len(terminals) {
			done = true
		}
	}
	if !done {
		return nil, ErrInfeasible
	}

	// 3) Keep the terminal component, then strip non-terminal leaves.
	termRoot := d.find(terminals[0])
	kept := accepted[:0:0]
	for _, e := range accepted {
		if d.find(e.A) == termRoot {
			kept = append(kept, e)
		}
	}

	return stripLeaves(kept, terminals), nil
}

// stripLeaves iteratively removes degree-1 vertices that are not terminals,
// together with their edges, preserving the relative edge order.
func stripLeaves(edges []edgecost.Edge, terminals []int) []edgecost.Edge {
	isTerminal := mapset.New[int]()
	for _, t := range terminals {
		isTerminal.Put(t)
	}

	removed := make([]bool, len(edges))
	for {
		degree := map[int]int{}
		for ei, e := range edges {
			if removed[ei] {
				continue
			}
			degree[e.A]++
			degree[e.B]++
		}
		changed := false
		for ei, e := range edges {
			if removed[ei] {
				continue
			}
			if (degree[e.A] == 1 && !isTerminal.Has(e.A)) ||
				(degree[e.B] == 1 && !isTerminal.Has(e.B)) {
				removed[ei] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	kept := edges[:0:0]
	for ei, e := range edges {
		if !removed[ei] {
			kept = append(kept, e)
		}
	}

	return kept
}
