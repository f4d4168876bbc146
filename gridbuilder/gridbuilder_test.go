package gridbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glasseam/grid"
)

func TestWallStrip(t *testing.T) {
	g, err := WallStrip(5, 5, 3)
	require.NoError(t, err)
	require.Equal(t, 13, g.Width())
	require.Equal(t, 5, g.Height())
	require.Equal(t, 50, g.PassableCount())
	for y := 0; y < 5; y++ {
		for x := 5; x < 8; x++ {
			require.False(t, g.IsPassable(x, y), "wall cell (%d,%d) is passable", x, y)
		}
	}
}

func TestWallStrip_ZeroWallIsOneRoom(t *testing.T) {
	g, err := WallStrip(3, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 6, g.Width())
	require.Equal(t, 12, g.PassableCount())
}

func TestRoomLine(t *testing.T) {
	g, err := RoomLine(3, 4, 2)
	require.NoError(t, err)
	require.Equal(t, 16, g.Width())
	require.Equal(t, 4, g.Height())
	require.Equal(t, 48, g.PassableCount())
	require.True(t, g.IsPassable(6, 0))
	require.False(t, g.IsPassable(4, 0))
}

func TestRooms_Overlap(t *testing.T) {
	g, err := Rooms(6, 6,
		Rect{X: 0, Y: 0, W: 4, H: 4},
		Rect{X: 2, Y: 2, W: 4, H: 4})
	require.NoError(t, err)
	require.Equal(t, 16+16-4, g.PassableCount())
}

func TestPockets(t *testing.T) {
	g, err := Pockets(5, 5, grid.Pt(0, 0), grid.Pt(2, 2), grid.Pt(4, 4))
	require.NoError(t, err)
	require.Equal(t, 3, g.PassableCount())
	require.True(t, g.IsPassable(2, 2))
}

func TestCheckerboard(t *testing.T) {
	g, err := Checkerboard(4, 3)
	require.NoError(t, err)
	require.Equal(t, 6, g.PassableCount())
	require.True(t, g.IsPassable(0, 0))
	require.False(t, g.IsPassable(1, 0))
	require.True(t, g.IsPassable(1, 1))
}

func TestValidation(t *testing.T) {
	_, err := Rooms(0, 5)
	require.ErrorIs(t, err, ErrBadDimensions)
	_, err = Rooms(5, 5, Rect{X: 3, Y: 3, W: 4, H: 1})
	require.ErrorIs(t, err, ErrOutOfField)
	_, err = Rooms(5, 5, Rect{X: 0, Y: 0, W: 0, H: 2})
	require.ErrorIs(t, err, ErrBadDimensions)
	_, err = RoomLine(0, 3, 1)
	require.ErrorIs(t, err, ErrBadDimensions)
	_, err = Pockets(3, 3, grid.Pt(3, 0))
	require.ErrorIs(t, err, ErrOutOfField)
	_, err = Checkerboard(2, 0)
	require.ErrorIs(t, err, ErrBadDimensions)
}
