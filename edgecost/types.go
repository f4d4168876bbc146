// Package edgecost defines core types, options, and sentinel errors for the
// edgecost subpackage of github.com/katalvlaran/glasseam.
package edgecost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/glasseam/grid"
)

// Sentinel errors for edge-cost estimation.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("edgecost: grid is nil")
	// ErrNilLabeling indicates a nil labeling was supplied.
	ErrNilLabeling = errors.New("edgecost: labeling is nil")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("edgecost: invalid option supplied")
)

// Edge is a candidate tunnel between two regions.
// The pair is unordered; by construction A < B.
type Edge struct {
	// A and B are the region indices joined by the tunnel.
	A, B int
	// Cost is the number of blocked cells the tunnel must convert.
	// Invariant: Cost never exceeds the pair's centroid-line baseline.
	Cost int
	// PointA is the proposed tunnel mouth inside region A.
	PointA grid.Point
	// PointB is the proposed tunnel mouth inside region B.
	PointB grid.Point
}

// Options holds tunable parameters for estimation and refinement.
type Options struct {
	// UsePGD enables Perimeter Gradient Descent refinement.
	UsePGD bool
	// NSkew bounds the cumulative drift |Δa−Δb| between the two perimeter
	// walks during PGD. Valid range [0, 5].
	NSkew int
	// MaxPGDIterations caps PGD descent steps. Valid range [1, 1000].
	MaxPGDIterations int

	// UseFRR enables Frustum Ray Refinement (global search; opt-in for
	// concave region shapes).
	UseFRR bool
	// ConeHalfAngle is FRR's visibility half-angle θmax in radians.
	// Valid range (0, π].
	ConeHalfAngle float64
	// FRRBins is the number of projection-plane bins per level. Valid ≥ 2.
	FRRBins int
	// FRRDepth is the number of recursive subdivision levels. Valid ≥ 1.
	FRRDepth int

	// MaxEdgeDistance skips region pairs whose centroids are farther apart;
	// 0 means unbounded. Valid ≥ 0.
	MaxEdgeDistance float64

	// Workers bounds the estimation worker pool. Valid ≥ 1. Results are
	// identical for any worker count.
	Workers int

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Estimate runs.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - PGD on: NSkew=2, MaxPGDIterations=20
//   - FRR off: ConeHalfAngle=π/3, FRRBins=8, FRRDepth=3
//   - MaxEdgeDistance=100, Workers=1.
func DefaultOptions() Options {
	return Options{
		UsePGD:           true,
		NSkew:            2,
		MaxPGDIterations: 20,
		UseFRR:           false,
		ConeHalfAngle:    math.Pi / 3,
		FRRBins:          8,
		FRRDepth:         3,
		MaxEdgeDistance:  100,
		Workers:          1,
	}
}

// WithPGD toggles Perimeter Gradient Descent refinement.
func WithPGD(enabled bool) Option {
	return func(o *Options) { o.UsePGD = enabled }
}

// WithNSkew sets the PGD cumulative skew bound.
//
//	0 ≤ n ≤ 5: valid
//	otherwise: invalid option → ErrOptionViolation
func WithNSkew(n int) Option {
	return func(o *Options) {
		if n < 0 || n > 5 {
			o.err = fmt.Errorf("%w: NSkew must be in [0,5], got %d", ErrOptionViolation, n)
			return
		}
		o.NSkew = n
	}
}

// WithMaxPGDIterations caps PGD descent steps.
func WithMaxPGDIterations(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 1000 {
			o.err = fmt.Errorf("%w: MaxPGDIterations must be in [1,1000], got %d", ErrOptionViolation, n)
			return
		}
		o.MaxPGDIterations = n
	}
}

// WithFRR toggles Frustum Ray Refinement.
func WithFRR(enabled bool) Option {
	return func(o *Options) { o.UseFRR = enabled }
}

// WithConeHalfAngle sets FRR's visibility half-angle in radians.
func WithConeHalfAngle(theta float64) Option {
	return func(o *Options) {
		if theta <= 0 || theta > math.Pi {
			o.err = fmt.Errorf("%w: ConeHalfAngle must be in (0,π], got %v", ErrOptionViolation, theta)
			return
		}
		o.ConeHalfAngle = theta
	}
}

// WithFRRBins sets the number of projection bins per FRR level.
func WithFRRBins(k int) Option {
	return func(o *Options) {
		if k < 2 {
			o.err = fmt.Errorf("%w: FRRBins must be ≥ 2, got %d", ErrOptionViolation, k)
			return
		}
		o.FRRBins = k
	}
}

// WithFRRDepth sets the number of FRR subdivision levels.
func WithFRRDepth(r int) Option {
	return func(o *Options) {
		if r < 1 {
			o.err = fmt.Errorf("%w: FRRDepth must be ≥ 1, got %d", ErrOptionViolation, r)
			return
		}
		o.FRRDepth = r
	}
}

// WithMaxEdgeDistance skips pairs with farther-apart centroids; 0 = unbounded.
func WithMaxEdgeDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxEdgeDistance must be ≥ 0, got %v", ErrOptionViolation, d)
			return
		}
		o.MaxEdgeDistance = d
	}
}

// WithWorkers bounds the estimation worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
