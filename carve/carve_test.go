package carve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/gridbuilder"
)

// wallEdge crosses the 3-cell wall of a WallStrip(5, 5, 3) fixture at row 2.
func wallEdge() edgecost.Edge {
	return edgecost.Edge{
		A: 0, B: 1, Cost: 3,
		PointA: grid.Pt(4, 2), PointB: grid.Pt(8, 2),
	}
}

func TestCarve_OpensWallCells(t *testing.T) {
	g, err := gridbuilder.WallStrip(5, 5, 3)
	require.NoError(t, err)

	paths := Carve(g, []edgecost.Edge{wallEdge()}, 0)
	require.Len(t, paths, 1)
	require.Equal(t, []grid.Point{
		grid.Pt(4, 2), grid.Pt(5, 2), grid.Pt(6, 2), grid.Pt(7, 2), grid.Pt(8, 2),
	}, paths[0])
	require.Equal(t, 53, g.PassableCount(), "exactly the three wall cells open")
	for x := 5; x < 8; x++ {
		require.True(t, g.IsPassable(x, 2))
		require.False(t, g.IsPassable(x, 1), "row above the tunnel stays blocked")
	}
}

func TestCarve_Idempotent(t *testing.T) {
	g, err := gridbuilder.WallStrip(5, 5, 3)
	require.NoError(t, err)

	Carve(g, []edgecost.Edge{wallEdge()}, 0)
	before := g.PassableCount()
	Carve(g, []edgecost.Edge{wallEdge()}, 0)
	require.Equal(t, before, g.PassableCount())
}

func TestCarve_WidenRadius(t *testing.T) {
	g, err := gridbuilder.WallStrip(5, 5, 3)
	require.NoError(t, err)

	Carve(g, []edgecost.Edge{wallEdge()}, 1)
	require.Equal(t, 59, g.PassableCount(), "three wall columns open across rows 1..3")
	for x := 5; x < 8; x++ {
		for y := 1; y <= 3; y++ {
			require.True(t, g.IsPassable(x, y))
		}
		require.False(t, g.IsPassable(x, 0))
		require.False(t, g.IsPassable(x, 4))
	}
}

// TestCarve_ClipsAtBorder stamps a radius-2 disc along the top row of an
// all-blocked field; out-of-bounds disc cells must be ignored.
func TestCarve_ClipsAtBorder(t *testing.T) {
	g, err := grid.NewBoolGrid(5, 3)
	require.NoError(t, err)

	e := edgecost.Edge{A: 0, B: 1, PointA: grid.Pt(0, 0), PointB: grid.Pt(4, 0)}
	Carve(g, []edgecost.Edge{e}, 2)
	require.Equal(t, 15, g.PassableCount(), "clipped discs cover the whole 5×3 field")
}

func TestCarve_AlreadyOpenLineIsNoOp(t *testing.T) {
	g, err := gridbuilder.Rooms(4, 4, gridbuilder.Rect{X: 0, Y: 0, W: 4, H: 4})
	require.NoError(t, err)

	e := edgecost.Edge{A: 0, B: 0, PointA: grid.Pt(0, 0), PointB: grid.Pt(3, 3)}
	paths := Carve(g, []edgecost.Edge{e}, 0)
	require.Len(t, paths[0], 4)
	require.Equal(t, 16, g.PassableCount())
}
