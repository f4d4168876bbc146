// Package prune defines options and sentinel errors for the prune
// subpackage of github.com/katalvlaran/glasseam.
package prune

import (
	"errors"
	"fmt"
)

// ErrOptionViolation indicates an invalid Option was supplied.
var ErrOptionViolation = errors.New("prune: invalid option supplied")

// Options holds tunable parameters for the three pruning filters.
type Options struct {
	// UseDelaunay enables the Delaunay-neighbor pre-filter.
	UseDelaunay bool
	// AngularSectors is the number of equal directional buckets per region.
	// Valid range [1, 360]; 1 keeps a single cheapest edge per region side.
	AngularSectors int
	// OcclusionFactor is the indirect-path tolerance: edge (i,j) is dropped
	// when some m gives cost(i,m)+cost(m,j) < cost(i,j)×OcclusionFactor.
	// Valid range [1, 10].
	OcclusionFactor float64

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Prune runs.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// Delaunay on, 6 angular sectors, occlusion factor 1.2.
func DefaultOptions() Options {
	return Options{
		UseDelaunay:     true,
		AngularSectors:  6,
		OcclusionFactor: 1.2,
	}
}

// WithDelaunay toggles the Delaunay-neighbor pre-filter.
func WithDelaunay(enabled bool) Option {
	return func(o *Options) { o.UseDelaunay = enabled }
}

// WithAngularSectors sets the number of directional buckets per region.
func WithAngularSectors(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 360 {
			o.err = fmt.Errorf("%w: AngularSectors must be in [1,360], got %d", ErrOptionViolation, n)
			return
		}
		o.AngularSectors = n
	}
}

// WithOcclusionFactor sets the indirect-path tolerance.
func WithOcclusionFactor(f float64) Option {
	return func(o *Options) {
		if f < 1 || f > 10 {
			o.err = fmt.Errorf("%w: OcclusionFactor must be in [1,10], got %v", ErrOptionViolation, f)
			return
		}
		o.OcclusionFactor = f
	}
}
