package prune

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// mkRegions builds bare regions with the given centroids; the pruner reads
// nothing else.
func mkRegions(centroids ...grid.FPoint) []region.Region {
	regions := make([]region.Region, len(centroids))
	for i, c := range centroids {
		regions[i] = region.Region{ID: i, Centroid: c}
	}

	return regions
}

func edge(a, b, cost int) edgecost.Edge {
	return edgecost.Edge{A: a, B: b, Cost: cost}
}

func hasPair(edges []edgecost.Edge, a, b int) bool {
	for _, e := range edges {
		if e.A == a && e.B == b {
			return true
		}
	}

	return false
}

// TestPrune_DelaunayDropsNonNeighbors prunes the long diagonal of an
// irregular quadrilateral out of a complete K4 candidate set.
func TestPrune_DelaunayDropsNonNeighbors(t *testing.T) {
	regions := mkRegions(
		grid.FPoint{X: 0, Y: 0},
		grid.FPoint{X: 10, Y: 0},
		grid.FPoint{X: 11, Y: 9},
		grid.FPoint{X: 1, Y: 12},
	)
	var edges []edgecost.Edge
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, edge(i, j, 5))
		}
	}

	// Sector and occlusion neutralized: many sectors, tolerance at minimum
	// with equal costs (2×5 < 5×1 is false).
	out, err := Prune(regions, edges,
		WithAngularSectors(360), WithOcclusionFactor(1))
	require.NoError(t, err)
	require.Less(t, len(out), len(edges), "Delaunay removed nothing")
	require.GreaterOrEqual(t, len(out), 3, "over-pruned below a spanning set")
	for _, e := range out {
		require.True(t, hasPair(edges, e.A, e.B), "invented edge %v", e)
	}
	requireConnected(t, 4, out)
}

// TestPrune_SectorKeepsCheapestPerDirection drops the long chord of a
// near-collinear triple: both endpoints see a cheaper same-sector rival.
func TestPrune_SectorKeepsCheapestPerDirection(t *testing.T) {
	regions := mkRegions(
		grid.FPoint{X: 0, Y: 0},
		grid.FPoint{X: 10, Y: 0},
		grid.FPoint{X: 20, Y: 0},
	)
	// Occlusion tolerance 1 cannot drop the chord (1+1 < 2×1 is false);
	// only the sector filter can, and both endpoints must agree.
	edges := []edgecost.Edge{edge(0, 1, 1), edge(1, 2, 1), edge(0, 2, 2)}

	out, err := Prune(regions, edges, WithDelaunay(false), WithAngularSectors(4), WithOcclusionFactor(1))
	require.NoError(t, err)
	require.True(t, hasPair(out, 0, 1))
	require.True(t, hasPair(out, 1, 2))
	require.False(t, hasPair(out, 0, 2), "long chord survived the sector filter")
}

// TestPrune_OcclusionDropsDetouredEdge removes a direct edge with a cheaper
// two-hop route within tolerance.
func TestPrune_OcclusionDropsDetouredEdge(t *testing.T) {
	regions := mkRegions(
		grid.FPoint{X: 0, Y: 0},
		grid.FPoint{X: 10, Y: 0},
		grid.FPoint{X: 5, Y: 4},
	)
	edges := []edgecost.Edge{edge(0, 1, 10), edge(0, 2, 2), edge(1, 2, 2)}

	out, err := Prune(regions, edges) // defaults: 6 sectors, factor 1.2
	require.NoError(t, err)
	require.False(t, hasPair(out, 0, 1), "occluded edge survived")
	require.True(t, hasPair(out, 0, 2))
	require.True(t, hasPair(out, 1, 2))
}

// TestPrune_ZeroCostEdgeNeverOccluded: a cost-0 edge cannot have a strictly
// cheaper indirect route.
func TestPrune_ZeroCostEdgeNeverOccluded(t *testing.T) {
	regions := mkRegions(
		grid.FPoint{X: 0, Y: 0},
		grid.FPoint{X: 10, Y: 0},
		grid.FPoint{X: 5, Y: 4},
	)
	edges := []edgecost.Edge{edge(0, 1, 0), edge(0, 2, 0), edge(1, 2, 0)}
	out, err := Prune(regions, edges)
	require.NoError(t, err)
	require.Len(t, out, 3)
}

// TestPrune_ConnectivityPreserved asserts the safety invariant on a larger
// synthetic instance: a connected input stays connected for a sweep of
// option combinations.
func TestPrune_ConnectivityPreserved(t *testing.T) {
	centroids := []grid.FPoint{
		{X: 0, Y: 0}, {X: 8, Y: 1}, {X: 16, Y: 0}, {X: 4, Y: 7},
		{X: 12, Y: 8}, {X: 2, Y: 14}, {X: 15, Y: 15},
	}
	regions := mkRegions(centroids...)
	var edges []edgecost.Edge
	for i := range centroids {
		for j := i + 1; j < len(centroids); j++ {
			// Cost grows with distance, so geometry and costs agree.
			d := centroids[i].DistTo(centroids[j])
			edges = append(edges, edge(i, j, int(d)))
		}
	}

	for _, sectors := range []int{4, 6, 12} {
		for _, factor := range []float64{1.0, 1.2, 2.0} {
			out, err := Prune(regions, edges,
				WithAngularSectors(sectors), WithOcclusionFactor(factor))
			require.NoError(t, err)
			requireConnected(t, len(regions), out)
		}
	}
}

// TestRestoreSplitComponents exercises the fallback path directly.
func TestRestoreSplitComponents(t *testing.T) {
	original := []edgecost.Edge{edge(0, 1, 3), edge(2, 3, 4)}

	// Both components split → full restore.
	out := restoreSplitComponents(4, original, nil)
	require.Equal(t, original, out)

	// Only the 2-3 component split → restore just its edges.
	out = restoreSplitComponents(4, original, []edgecost.Edge{edge(0, 1, 3)})
	require.Equal(t, original, out)
}

// TestDelaunayPairs_Degenerate: collinear and coincident centroids make the
// triangulation a no-op signal rather than an error.
func TestDelaunayPairs_Degenerate(t *testing.T) {
	_, ok := delaunayPairs([]grid.FPoint{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.False(t, ok, "two points cannot triangulate")

	_, ok = delaunayPairs([]grid.FPoint{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}})
	require.False(t, ok, "coincident points cannot triangulate")
}

// TestPrune_OptionValidation surfaces recorded option violations.
func TestPrune_OptionValidation(t *testing.T) {
	regions := mkRegions(grid.FPoint{X: 0, Y: 0}, grid.FPoint{X: 1, Y: 0})
	edges := []edgecost.Edge{edge(0, 1, 1)}
	_, err := Prune(regions, edges, WithAngularSectors(0))
	require.ErrorIs(t, err, ErrOptionViolation)
	_, err = Prune(regions, edges, WithOcclusionFactor(0.5))
	require.ErrorIs(t, err, ErrOptionViolation)
}

// requireConnected asserts the edges connect all n regions.
func requireConnected(t *testing.T, n int, edges []edgecost.Edge) {
	t.Helper()
	d := newDSU(n)
	for _, e := range edges {
		d.union(e.A, e.B)
	}
	root := d.find(0)
	for i := 1; i < n; i++ {
		require.Equal(t, root, d.find(i), "region %d disconnected after pruning", i)
	}
}
