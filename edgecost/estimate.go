package edgecost

import (
	"sync"

	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// Estimate produces one candidate Edge per unordered pair of regions whose
// centroids lie within MaxEdgeDistance (0 = unbounded), in ascending
// (A, B) index order.
//
// Per pair:
//  1. Centroid-line baseline (exit points + blocked-cell count).
//  2. FRR, when enabled: a global search whose result is adopted only if it
//     beats the current estimate.
//  3. PGD, when enabled: local descent from the current mouths.
//
// Each Edge's final cost is capped at the baseline, so refinement can only
// improve or tie (the non-regression invariant downstream stages rely on).
//
// Pairs are estimated in parallel across Workers goroutines; each pair
// writes its own slot of a pre-sized result slice, so output is identical
// for any worker count. Side effects: none; g and regions are only read.
//
// Complexity: O(n² × refinement cost) time over n regions, O(n²) memory.
func Estimate(g grid.Grid, lab *region.Labeling, regions []region.Region, opts ...Option) ([]Edge, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if lab == nil {
		return nil, ErrNilLabeling
	}

	// 2) Enumerate surviving pairs in ascending (i, j) order.
	type pair struct{ a, b int }
	var pairs []pair
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if cfg.MaxEdgeDistance > 0 &&
				regions[i].Centroid.DistTo(regions[j].Centroid) > cfg.MaxEdgeDistance {
				continue
			}
			pairs = append(pairs, pair{a: i, b: j})
		}
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	// 3) Estimate every pair into its own pre-assigned slot. Pair results
	//    are independent, so scheduling order cannot affect the output.
	edges := make([]Edge, len(pairs))
	estimateOne := func(k int) {
		ra, rb := &regions[pairs[k].a], &regions[pairs[k].b]
		pa, pb, base := baseline(g, lab, ra, rb)
		best := base
		if cfg.UseFRR {
			if fa, fb, fc, ok := frrRefine(g, ra, rb, &cfg); ok && fc < best {
				pa, pb, best = fa, fb, fc
			}
		}
		if cfg.UsePGD && best > 0 {
			pa, pb, best = pgdRefine(g, ra, rb, pa, pb, best, &cfg)
		}
		edges[k] = Edge{A: ra.ID, B: rb.ID, Cost: best, PointA: pa, PointB: pb}
	}

	workers := cfg.Workers
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers == 1 {
		for k := range pairs {
			estimateOne(k)
		}

		return edges, nil
	}

	var wg sync.WaitGroup
	next := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for k := range next {
				estimateOne(k)
			}
		}()
	}
	for k := range pairs {
		next <- k
	}
	close(next)
	wg.Wait()

	return edges, nil
}
