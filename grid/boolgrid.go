package grid

// BoolGrid is a concrete rectangular passability matrix.
// It satisfies MutableGrid and deep-copies all inputs, so callers keep
// ownership of whatever slice they built it from.
type BoolGrid struct {
	w, h  int
	cells []bool // row-major: cells[y*w+x]
}

// NewBoolGrid returns an all-blocked grid of the given dimensions.
// Returns ErrEmptyGrid when either dimension is < 1.
// Complexity: O(W×H).
func NewBoolGrid(w, h int) (*BoolGrid, error) {
	if w < 1 || h < 1 {
		return nil, ErrEmptyGrid
	}

	return &BoolGrid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// FromRows constructs a BoolGrid from a non-empty, rectangular 2D slice.
// Values ≥ 1 are passable floor; values < 1 are blocked.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int) (*BoolGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &BoolGrid{w: w, h: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = rows[y][x] >= 1
		}
	}

	return g, nil
}

// Width returns the number of columns. Complexity: O(1).
func (g *BoolGrid) Width() int { return g.w }

// Height returns the number of rows. Complexity: O(1).
func (g *BoolGrid) Height() int { return g.h }

// IsPassable reports whether (x, y) is in bounds and traversable.
// Complexity: O(1).
func (g *BoolGrid) IsPassable(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}

	return g.cells[y*g.w+x]
}

// SetPassable sets the passability of (x, y); out-of-bounds writes are ignored.
// Complexity: O(1).
func (g *BoolGrid) SetPassable(x, y int, passable bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = passable
}

// Clone returns an independent deep copy of g.
// Complexity: O(W×H).
func (g *BoolGrid) Clone() *BoolGrid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &BoolGrid{w: g.w, h: g.h, cells: cells}
}

// PassableCount returns the number of passable cells.
// Complexity: O(W×H).
func (g *BoolGrid) PassableCount() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}
