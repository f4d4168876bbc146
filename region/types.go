// Package region defines core types, options, and sentinel errors for the
// region subpackage of github.com/katalvlaran/glasseam.
package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glasseam/grid"
)

// Sentinel errors for region extraction.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("region: grid is nil")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// NoRegion is the label of cells that belong to no bridgeable region:
// blocked cells and cells of regions dropped by the minimum-area filter.
const NoRegion = -1

// Region is one maximal 4-connected set of passable cells.
// Regions are immutable once produced: the pipeline only reads them.
type Region struct {
	// ID is the region index; labels in the owning Labeling use this value.
	ID int
	// Cells lists the region's cells in BFS discovery order.
	Cells []grid.Point
	// Size is len(Cells).
	Size int
	// Centroid is the arithmetic mean of the cell coordinates.
	Centroid grid.FPoint
	// Weight is Size divided by the grid's total passable cell count.
	Weight float64
	// Perimeter is the ordered cyclic outer boundary, produced by a
	// clockwise Moore-neighbor trace. Consecutive entries are geometrically
	// adjacent; width-1 appendages appear twice (once per walk side).
	Perimeter []grid.Point
}

// Labeling maps every grid cell to its region index (or NoRegion).
type Labeling struct {
	// Width and Height mirror the analyzed grid's dimensions.
	Width, Height int
	// Labels is row-major: Labels[y*Width+x].
	Labels []int
	// TotalPassable counts all passable cells at analysis time, including
	// cells of regions later dropped by the minimum-area filter.
	TotalPassable int
}

// At returns the region label at (x, y), or NoRegion when out of bounds.
// Complexity: O(1).
func (l *Labeling) At(x, y int) int {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return NoRegion
	}

	return l.Labels[y*l.Width+x]
}

// Options holds tunable parameters for extraction.
type Options struct {
	// MinAreaRatio drops regions smaller than MinAreaRatio × totalPassable.
	// Valid range [0, 1); 0 keeps every region.
	MinAreaRatio float64

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Extract runs.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: MinAreaRatio = 0.05.
func DefaultOptions() Options {
	return Options{MinAreaRatio: 0.05}
}

// WithMinAreaRatio sets the minimum-area drop ratio.
//
//	0 ≤ r < 1: regions below r×totalPassable are dropped
//	otherwise: invalid option → ErrOptionViolation
func WithMinAreaRatio(r float64) Option {
	return func(o *Options) {
		if r < 0 || r >= 1 {
			o.err = fmt.Errorf("%w: MinAreaRatio must be in [0,1), got %v", ErrOptionViolation, r)
			return
		}
		o.MinAreaRatio = r
	}
}
