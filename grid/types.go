// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/glasseam.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// DistTo returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) DistTo(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// FPoint is a float coordinate, used for centroids and projection math.
// A centroid is a geometric anchor only; it need not lie on a passable cell.
type FPoint struct {
	X, Y float64
}

// Round converts an FPoint to the nearest integer Point.
// Ties round half away from zero (math.Round semantics), so results are
// independent of evaluation order. Complexity: O(1).
func (f FPoint) Round() Point {
	return Point{X: int(math.Round(f.X)), Y: int(math.Round(f.Y))}
}

// DistTo returns the Euclidean distance between f and g.
func (f FPoint) DistTo(g FPoint) float64 {
	dx, dy := f.X-g.X, f.Y-g.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Grid is the read-only capability every analysis stage consumes.
// Coordinates outside [0,Width)×[0,Height) must report not passable.
type Grid interface {
	// IsPassable reports whether the cell at (x, y) is traversable floor.
	IsPassable(x, y int) bool
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
}

// MutableGrid extends Grid with the single verb the carving stage needs.
type MutableGrid interface {
	Grid
	// SetPassable sets the passability of the cell at (x, y).
	// Out-of-bounds writes are ignored.
	SetPassable(x, y int, passable bool)
}

// InBounds reports whether (x, y) lies within g's boundaries.
// Complexity: O(1).
func InBounds(g Grid, x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}
