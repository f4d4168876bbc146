// Package optimize selects the tunnel tree connecting required regions and
// meeting the coverage threshold at minimum excavation cost.
package optimize

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/region"
)

// Optimize selects the minimum-cost tree over regions and edges that
// connects every terminal and reaches the coverage threshold.
//
// Mode dispatch:
//   - one terminal → greedy coverage expansion;
//   - several terminals → exact Dreyfus–Wagner when enabled and the region
//     count is below ExactThreshold, otherwise the union-find Steiner
//     2-approximation; either way a greedy phase tops up coverage.
//
// Returns:
//   - (Selection, nil) on full success;
//   - (Selection, ErrCoverageUnmet) when terminals connect but the
//     threshold is unreachable — the Selection is the best achievable and
//     remains valid output;
//   - (Selection{}, ErrInfeasible) when terminals cannot be connected;
//     callers must leave their grid untouched in that case.
//
// Side effects: none; inputs are only read.
func Optimize(regions []region.Region, edges []edgecost.Edge, opts ...Option) (Selection, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Selection{}, cfg.err
	}

	// 2) Deduplicate and validate terminals.
	terminals := dedupeSorted(cfg.Terminals)
	if len(terminals) == 0 {
		return Selection{}, ErrNoTerminals
	}
	n := len(regions)
	for _, t := range terminals {
		if t < 0 || t >= n {
			return Selection{}, fmt.Errorf("%w: %d (have %d regions)", ErrTerminalOutOfRange, t, n)
		}
	}

	// 3) Seed the selection with the terminal tree.
	selected := make([]bool, n)
	var selEdges []edgecost.Edge
	coverage := 0.0
	if len(terminals) == 1 {
		selected[terminals[0]] = true
		coverage = regions[terminals[0]].Weight
	} else {
		var (
			tree []edgecost.Edge
			err  error
		)
		if cfg.UseExact && n < cfg.ExactThreshold {
			tree, err = exactSteiner(n, edges, terminals)
		} else {
			tree, err = steinerMerge(n, edges, terminals)
		}
		if err != nil {
			return Selection{}, err
		}
		for _, t := range terminals {
			selected[t] = true
		}
		for _, e := range tree {
			selected[e.A] = true
			selected[e.B] = true
		}
		for r := range selected {
			if selected[r] {
				coverage += regions[r].Weight
			}
		}
		selEdges = tree
	}

	// 4) Greedy coverage expansion (no-op when already at threshold).
	added, coverage, met := greedyExpand(regions, edges, selected, coverage, cfg.CoverageThreshold)
	selEdges = append(selEdges, added...)

	// 5) Assemble the selection.
	sel := Selection{
		Edges:        selEdges,
		Coverage:     coverage,
		ThresholdMet: met,
	}
	for r := range selected {
		if selected[r] {
			sel.Vertices = append(sel.Vertices, r)
		}
	}
	for _, e := range selEdges {
		sel.TotalCost += e.Cost
	}
	if !met {
		return sel, ErrCoverageUnmet
	}

	return sel, nil
}

// dedupeSorted returns the sorted distinct values of xs.
func dedupeSorted(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
