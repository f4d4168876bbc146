package gridbuilder

import (
	"fmt"

	"github.com/katalvlaran/glasseam/grid"
)

// Rooms builds a w×h all-blocked field and carves each rectangle passable.
// Rectangles may overlap; carving is idempotent. Every rectangle must have
// positive extent and lie fully inside the field.
// Complexity: O(w×h + Σ room area).
func Rooms(w, h int, rooms ...Rect) (*grid.BoolGrid, error) {
	g, err := grid.NewBoolGrid(w, h)
	if err != nil {
		return nil, ErrBadDimensions
	}
	for i, r := range rooms {
		if r.W < 1 || r.H < 1 {
			return nil, fmt.Errorf("%w: room %d has extent %d×%d", ErrBadDimensions, i, r.W, r.H)
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > w || r.Y+r.H > h {
			return nil, fmt.Errorf("%w: room %d", ErrOutOfField, i)
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				g.SetPassable(x, y, true)
			}
		}
	}

	return g, nil
}

// WallStrip builds two roomW×roomH rooms separated by a wallW-cell blocked
// vertical strip. The field is (2×roomW+wallW)×roomH; a wallW of 0 yields
// one contiguous room.
// Complexity: O(field area).
func WallStrip(roomW, roomH, wallW int) (*grid.BoolGrid, error) {
	if roomW < 1 || roomH < 1 || wallW < 0 {
		return nil, ErrBadDimensions
	}

	return Rooms(2*roomW+wallW, roomH,
		Rect{X: 0, Y: 0, W: roomW, H: roomH},
		Rect{X: roomW + wallW, Y: 0, W: roomW, H: roomH})
}

// RoomLine builds count square rooms of side size in one row, each pair
// separated by a gap-cell blocked strip. The field is
// (count×size + (count−1)×gap)×size.
// Complexity: O(field area).
func RoomLine(count, size, gap int) (*grid.BoolGrid, error) {
	if count < 1 || size < 1 || gap < 0 {
		return nil, ErrBadDimensions
	}
	rooms := make([]Rect, count)
	for i := range rooms {
		rooms[i] = Rect{X: i * (size + gap), Y: 0, W: size, H: size}
	}

	return Rooms(count*size+(count-1)*gap, size, rooms...)
}

// Pockets builds a w×h all-blocked field with the given single cells made
// passable, producing that many isolated one-cell regions when the cells
// are pairwise non-adjacent.
// Complexity: O(w×h + len(cells)).
func Pockets(w, h int, cells ...grid.Point) (*grid.BoolGrid, error) {
	g, err := grid.NewBoolGrid(w, h)
	if err != nil {
		return nil, ErrBadDimensions
	}
	for i, c := range cells {
		if !grid.InBounds(g, c.X, c.Y) {
			return nil, fmt.Errorf("%w: pocket %d at (%d,%d)", ErrOutOfField, i, c.X, c.Y)
		}
		g.SetPassable(c.X, c.Y, true)
	}

	return g, nil
}

// Checkerboard builds a w×h field where cells with even coordinate parity
// are passable, giving the densest possible diagonal-touching region
// scatter under 4-connectivity.
// Complexity: O(w×h).
func Checkerboard(w, h int) (*grid.BoolGrid, error) {
	g, err := grid.NewBoolGrid(w, h)
	if err != nil {
		return nil, ErrBadDimensions
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				g.SetPassable(x, y, true)
			}
		}
	}

	return g, nil
}
