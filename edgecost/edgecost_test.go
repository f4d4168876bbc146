package edgecost

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/region"
)

// twoRooms builds two 5×5 floor rooms separated by a 3-cell wall strip —
// the canonical straight-tunnel fixture (expected cost 3).
func twoRooms(t *testing.T) (grid.Grid, *region.Labeling, []region.Region) {
	t.Helper()
	rows := make([][]int, 5)
	for y := range rows {
		rows[y] = make([]int, 13)
		for x := 0; x < 5; x++ {
			rows[y][x] = 1
			rows[y][8+x] = 1
		}
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	lab, regions, err := region.Extract(g, region.WithMinAreaRatio(0))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	return g, lab, regions
}

// TestEstimate_StraightWall expects a single cost-3 edge with mouths on the
// facing room walls.
func TestEstimate_StraightWall(t *testing.T) {
	g, lab, regions := twoRooms(t)

	edges, err := Estimate(g, lab, regions)
	require.NoError(t, err)
	require.Len(t, edges, 1)

	e := edges[0]
	require.Equal(t, 0, e.A)
	require.Equal(t, 1, e.B)
	require.Equal(t, 3, e.Cost)
	require.Equal(t, 0, lab.At(e.PointA.X, e.PointA.Y))
	require.Equal(t, 1, lab.At(e.PointB.X, e.PointB.Y))
}

// TestEstimate_RefinementNeverRegresses compares every refined cost against
// the pure baseline on a concave fixture.
func TestEstimate_RefinementNeverRegresses(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 1, 1, 1, 0, 0, 0, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 1, 0, 0, 0, 1, 1},
	})
	require.NoError(t, err)
	lab, regions, err := region.Extract(g, region.WithMinAreaRatio(0))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	base, err := Estimate(g, lab, regions, WithPGD(false))
	require.NoError(t, err)
	pgd, err := Estimate(g, lab, regions, WithPGD(true))
	require.NoError(t, err)
	frr, err := Estimate(g, lab, regions, WithPGD(true), WithFRR(true))
	require.NoError(t, err)

	require.Len(t, pgd, len(base))
	for i := range base {
		require.LessOrEqual(t, pgd[i].Cost, base[i].Cost, "PGD regressed pair %d-%d", base[i].A, base[i].B)
		require.LessOrEqual(t, frr[i].Cost, base[i].Cost, "FRR regressed pair %d-%d", base[i].A, base[i].B)
	}
}

// TestEstimate_TouchingRegionsCostZero: two regions separated only at the
// label level cannot occur (they would merge), so the cheapest realizable
// adjacency is a diagonal touch — cost 0 via a shared-free line.
func TestEstimate_DiagonalTouch(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)
	lab, regions, err := region.Extract(g, region.WithMinAreaRatio(0))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	edges, err := Estimate(g, lab, regions)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	// Centroid line (0.5,0.5)→(2.5,2.5) passes only region cells.
	require.Equal(t, 0, edges[0].Cost)
}

// TestEstimate_MaxEdgeDistance skips far pairs and keeps near ones.
func TestEstimate_MaxEdgeDistance(t *testing.T) {
	g, lab, regions := twoRooms(t)

	edges, err := Estimate(g, lab, regions, WithMaxEdgeDistance(4))
	require.NoError(t, err)
	require.Empty(t, edges)

	edges, err = Estimate(g, lab, regions, WithMaxEdgeDistance(0)) // unbounded
	require.NoError(t, err)
	require.Len(t, edges, 1)
}

// TestEstimate_WorkerDeterminism requires byte-identical output across
// worker counts.
func TestEstimate_WorkerDeterminism(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 1, 0, 1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 0, 1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1, 0, 1, 1},
	})
	require.NoError(t, err)
	lab, regions, err := region.Extract(g, region.WithMinAreaRatio(0))
	require.NoError(t, err)
	require.Len(t, regions, 6)

	serial, err := Estimate(g, lab, regions, WithWorkers(1))
	require.NoError(t, err)
	parallel, err := Estimate(g, lab, regions, WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

// TestEstimate_ConcaveAnchor verifies a centroid falling on a blocked cell
// is re-anchored inside the region instead of producing a bogus mouth.
func TestEstimate_ConcaveAnchor(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 1, 1, 1, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 0, 0, 1},
	})
	require.NoError(t, err)
	lab, regions, err := region.Extract(g, region.WithMinAreaRatio(0))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	edges, err := Estimate(g, lab, regions)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	e := edges[0]
	require.Equal(t, 0, lab.At(e.PointA.X, e.PointA.Y), "mouth A outside region A")
	require.Equal(t, 1, lab.At(e.PointB.X, e.PointB.Y), "mouth B outside region B")
}

// TestEstimate_OptionValidation surfaces recorded option violations.
func TestEstimate_OptionValidation(t *testing.T) {
	g, lab, regions := twoRooms(t)
	_, err := Estimate(g, lab, regions, WithNSkew(9))
	require.ErrorIs(t, err, ErrOptionViolation)
	_, err = Estimate(g, lab, regions, WithWorkers(0))
	require.ErrorIs(t, err, ErrOptionViolation)
	_, err = Estimate(nil, lab, regions)
	require.ErrorIs(t, err, ErrNilGrid)
	_, err = Estimate(g, nil, regions)
	require.ErrorIs(t, err, ErrNilLabeling)
}
