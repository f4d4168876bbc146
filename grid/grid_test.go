package grid

import (
	"testing"
)

// TestFromRows_Basic verifies passability mapping (≥1 = floor) and dimensions.
func TestFromRows_Basic(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 1, 1},
		{1, 0, 2},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dims = %d×%d; want 3×2", g.Width(), g.Height())
	}
	if g.IsPassable(0, 0) {
		t.Errorf("(0,0) passable; want blocked")
	}
	if !g.IsPassable(2, 1) {
		t.Errorf("(2,1) blocked; want passable (value 2)")
	}
	if got := g.PassableCount(); got != 4 {
		t.Errorf("PassableCount = %d; want 4", got)
	}
}

// TestFromRows_InvalidRects ensures FromRows rejects bad inputs.
func TestFromRows_InvalidRects(t *testing.T) {
	if _, err := FromRows(nil); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := FromRows([][]int{{1}, {}}); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}

// TestBoolGrid_OutOfBounds verifies out-of-bounds reads report blocked and
// out-of-bounds writes are ignored.
func TestBoolGrid_OutOfBounds(t *testing.T) {
	g, _ := NewBoolGrid(2, 2)
	if g.IsPassable(-1, 0) || g.IsPassable(0, 2) {
		t.Errorf("out-of-bounds cells report passable")
	}
	g.SetPassable(5, 5, true) // must not panic
	if g.PassableCount() != 0 {
		t.Errorf("out-of-bounds write mutated the grid")
	}
}

// TestBoolGrid_CloneIsDeep verifies Clone produces an independent copy.
func TestBoolGrid_CloneIsDeep(t *testing.T) {
	g, _ := NewBoolGrid(3, 3)
	g.SetPassable(1, 1, true)
	c := g.Clone()
	c.SetPassable(1, 1, false)
	if !g.IsPassable(1, 1) {
		t.Errorf("mutating the clone changed the original")
	}
}

// TestLine_Endpoints verifies both endpoints are included and steps are
// 8-connected for a representative set of directions.
func TestLine_Endpoints(t *testing.T) {
	cases := []struct {
		a, b Point
	}{
		{Pt(0, 0), Pt(5, 0)},
		{Pt(0, 0), Pt(0, 5)},
		{Pt(0, 0), Pt(4, 7)},
		{Pt(7, 3), Pt(0, 0)},
		{Pt(2, 2), Pt(2, 2)},
		{Pt(-3, 1), Pt(3, -4)},
	}
	for _, tc := range cases {
		pts := Line(tc.a, tc.b)
		if len(pts) == 0 {
			t.Fatalf("Line(%v,%v) empty", tc.a, tc.b)
		}
		if pts[0] != tc.a || pts[len(pts)-1] != tc.b {
			t.Errorf("Line(%v,%v) endpoints = %v..%v", tc.a, tc.b, pts[0], pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			dx := abs(pts[i].X - pts[i-1].X)
			dy := abs(pts[i].Y - pts[i-1].Y)
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Errorf("Line(%v,%v): non-adjacent step %v→%v", tc.a, tc.b, pts[i-1], pts[i])
			}
		}
	}
}

// TestLine_Degenerate verifies a zero-length line is the single cell.
func TestLine_Degenerate(t *testing.T) {
	pts := Line(Pt(3, 3), Pt(3, 3))
	if len(pts) != 1 || pts[0] != Pt(3, 3) {
		t.Errorf("zero-length line = %v; want [(3,3)]", pts)
	}
}

// TestDisc_Sizes checks a few well-known disc cell counts.
func TestDisc_Sizes(t *testing.T) {
	if n := len(Disc(0)); n != 1 {
		t.Errorf("Disc(0) size = %d; want 1", n)
	}
	if n := len(Disc(1)); n != 5 {
		t.Errorf("Disc(1) size = %d; want 5 (plus shape)", n)
	}
	if n := len(Disc(2)); n != 13 {
		t.Errorf("Disc(2) size = %d; want 13", n)
	}
}
