package edgecost

import (
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// pgdOffsets enumerates the index moves PGD may take per step, in the fixed
// order improvements are scanned: advance/retreat one walk, both in step,
// or both against step. The scan order is part of the determinism contract.
var pgdOffsets = [6][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1},
}

// pgdRefine performs Perimeter Gradient Descent from the given starting
// mouths: a discrete descent over the two ordered perimeters.
//
// Behavior:
//  1. Locate the start mouths in their perimeters (nearest cell when a
//     line-derived exit is not itself a traced boundary cell).
//  2. Per step, scan pgdOffsets in order; the first neighbor pair with
//     strictly lower cost wins. The cumulative drift between the two walks
//     is bounded by |Δa_total − Δb_total| ≤ NSkew, which keeps the mouths
//     roughly abreast and the tunnel from curling.
//  3. Stop when no neighbor improves or MaxPGDIterations is reached.
//
// The result never exceeds the supplied starting cost: if relocating the
// start into the perimeter raised the cost, the original mouths stand.
//
// Complexity: O(MaxPGDIterations × 6 × L).
func pgdRefine(g grid.Grid, ra, rb *region.Region, startA, startB grid.Point, startCost int, cfg *Options) (grid.Point, grid.Point, int) {
	pa, pb := ra.Perimeter, rb.Perimeter
	ia := region.PerimeterIndex(pa, startA)
	ib := region.PerimeterIndex(pb, startB)

	// Re-cost at the snapped indices; snapping may move a mouth.
	cur := lineCost(g, pa[ia], pb[ib])
	da, db := 0, 0

	for iter := 0; iter < cfg.MaxPGDIterations; iter++ {
		moved := false
		for _, off := range pgdOffsets {
			na, nb := da+off[0], db+off[1]
			if absInt(na-nb) > cfg.NSkew {
				continue
			}
			ja := mod(ia+off[0], len(pa))
			jb := mod(ib+off[1], len(pb))
			if c := lineCost(g, pa[ja], pb[jb]); c < cur {
				ia, ib, da, db, cur = ja, jb, na, nb, c
				moved = true
				break
			}
		}
		if !moved {
			break
		}
	}

	// Non-regression: fall back to the starting mouths if descent from the
	// snapped position never beat the incoming cost.
	if cur >= startCost {
		return startA, startB, startCost
	}

	return pa[ia], pb[ib], cur
}

// mod returns i modulo n in [0, n).
func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
