// Package bridge defines the pipeline options, result types, and sentinel
// errors for the glasseam facade.
package bridge

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/optimize"
	"github.com/katalvlaran/glasseam/region"
)

// Sentinel errors for the pipeline facade. Stage failures (infeasibility,
// unmet coverage) surface as the optimize package's sentinels, wrapped.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("bridge: grid is nil")
	// ErrNoRegions indicates the grid has no usable region after extraction.
	ErrNoRegions = errors.New("bridge: no usable regions in grid")
	// ErrRequiredPointBlocked indicates a required point on a blocked cell.
	ErrRequiredPointBlocked = errors.New("bridge: required point is on a blocked cell")
	// ErrRequiredRegionDropped indicates a required point inside a region
	// eliminated by the minimum-area filter.
	ErrRequiredRegionDropped = errors.New("bridge: required point is in a dropped region")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("bridge: invalid option supplied")
)

// Segment is one carved tunnel, reported in selection order.
type Segment struct {
	// FromRegion and ToRegion are the joined region indices (FromRegion < ToRegion).
	FromRegion, ToRegion int
	// FromPoint and ToPoint are the tunnel mouths on the two perimeters.
	FromPoint, ToPoint grid.Point
	// Cost is the number of blocked cells the tunnel converted.
	Cost int
	// Cells is the carved mouth-to-mouth line, endpoints included.
	Cells []grid.Point
}

// Result is the outcome of one bridging pass.
type Result struct {
	// Segments lists the carved tunnels in selection order.
	Segments []Segment
	// Coverage is the summed weight of the connected selection.
	Coverage float64
	// ThresholdMet reports whether Coverage reached the configured threshold.
	ThresholdMet bool
	// Regions is the number of usable regions the pass analyzed.
	Regions int
}

// Options aggregates the tunable parameters of every pipeline stage plus
// the facade's own knobs. Zero values are never used directly; resolve via
// DefaultOptions and the With* options.
type Options struct {
	// MinAreaRatio drops regions below this fraction of the passable area.
	// Valid range [0, 1).
	MinAreaRatio float64
	// CoverageThreshold is the minimum selected-weight fraction. Valid [0, 1].
	CoverageThreshold float64

	// UsePGD enables Perimeter Gradient Descent refinement.
	UsePGD bool
	// NSkew bounds PGD's cumulative perimeter-walk drift. Valid [0, 5].
	NSkew int
	// MaxPGDIterations caps PGD descent steps. Valid [1, 1000].
	MaxPGDIterations int
	// UseFRR enables Frustum Ray Refinement.
	UseFRR bool
	// ConeHalfAngle is FRR's visibility half-angle in radians. Valid (0, π].
	ConeHalfAngle float64
	// FRRBins is the number of FRR projection bins per level. Valid ≥ 2.
	FRRBins int
	// FRRDepth is the number of FRR subdivision levels. Valid ≥ 1.
	FRRDepth int
	// MaxEdgeDistance skips farther-apart region pairs; 0 = unbounded.
	MaxEdgeDistance float64
	// Workers bounds the estimation worker pool. Valid ≥ 1.
	Workers int

	// UseDelaunay enables the Delaunay-neighbor pre-filter.
	UseDelaunay bool
	// AngularSectors is the number of directional buckets per region.
	// Valid [1, 360].
	AngularSectors int
	// OcclusionFactor is the indirect-path tolerance. Valid [1, 10].
	OcclusionFactor float64

	// UseExact enables exact Steiner optimization for small instances.
	UseExact bool
	// ExactThreshold gates exact mode by region count. Valid [2, 24].
	ExactThreshold int

	// RequiredPoints are coordinates whose regions must end up connected.
	RequiredPoints []grid.Point
	// Spawn is an optional extra required point, conventionally the player
	// start. With no required points at all, the heaviest region is the
	// default terminal.
	Spawn *grid.Point

	// WidenRadius widens every carved line by a filled disc. Valid ≥ 0.
	WidenRadius int

	// Per-stage observation hooks; nil hooks are skipped. Hooks must not
	// mutate their arguments.
	OnRegions    func([]region.Region)
	OnCandidates func([]edgecost.Edge)
	OnPruned     func([]edgecost.Edge)
	OnSelection  func(optimize.Selection)

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Bridge runs.
type Option func(*Options)

// DefaultOptions returns the documented stage defaults:
// minA=0.05, ct=0.75, PGD on (NSkew=2, 20 iterations), FRR off
// (θmax=π/3, 8 bins, depth 3), MaxEdgeDistance=100, 1 worker,
// Delaunay on, 6 sectors, occlusion factor 1.2, exact mode off
// (threshold 20), no widening.
func DefaultOptions() Options {
	return Options{
		MinAreaRatio:      0.05,
		CoverageThreshold: 0.75,
		UsePGD:            true,
		NSkew:             2,
		MaxPGDIterations:  20,
		ConeHalfAngle:     math.Pi / 3,
		FRRBins:           8,
		FRRDepth:          3,
		MaxEdgeDistance:   100,
		Workers:           1,
		UseDelaunay:       true,
		AngularSectors:    6,
		OcclusionFactor:   1.2,
		ExactThreshold:    20,
	}
}

// WithMinAreaRatio sets the minimum-area drop ratio.
func WithMinAreaRatio(r float64) Option {
	return func(o *Options) {
		if r < 0 || r >= 1 {
			o.err = fmt.Errorf("%w: MinAreaRatio must be in [0,1), got %v", ErrOptionViolation, r)
			return
		}
		o.MinAreaRatio = r
	}
}

// WithCoverageThreshold sets the minimum selected-weight fraction.
func WithCoverageThreshold(ct float64) Option {
	return func(o *Options) {
		if ct < 0 || ct > 1 {
			o.err = fmt.Errorf("%w: CoverageThreshold must be in [0,1], got %v", ErrOptionViolation, ct)
			return
		}
		o.CoverageThreshold = ct
	}
}

// WithPGD toggles Perimeter Gradient Descent refinement.
func WithPGD(enabled bool) Option {
	return func(o *Options) { o.UsePGD = enabled }
}

// WithNSkew sets the PGD cumulative skew bound.
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

// WithFRRBins sets the number of FRR projection bins per level.
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

// WithExact toggles exact Steiner optimization for small instances.
func WithExact(enabled bool) Option {
	return func(o *Options) { o.UseExact = enabled }
}

// WithExactThreshold sets the region-count gate for exact mode.
func WithExactThreshold(n int) Option {
	return func(o *Options) {
		if n < 2 || n > 24 {
			o.err = fmt.Errorf("%w: ExactThreshold must be in [2,24], got %d", ErrOptionViolation, n)
			return
		}
		o.ExactThreshold = n
	}
}

// WithRequiredPoints sets the coordinates whose regions must connect.
func WithRequiredPoints(pts ...grid.Point) Option {
	return func(o *Options) {
		o.RequiredPoints = append([]grid.Point(nil), pts...)
	}
}

// WithSpawn sets the spawn coordinate as an additional required point.
func WithSpawn(p grid.Point) Option {
	return func(o *Options) {
		sp := p
		o.Spawn = &sp
	}
}

// WithWidenRadius widens every carved tunnel by a filled disc.
func WithWidenRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: WidenRadius must be ≥ 0, got %d", ErrOptionViolation, r)
			return
		}
		o.WidenRadius = r
	}
}

// WithRegionHook observes the extracted regions.
func WithRegionHook(fn func([]region.Region)) Option {
	return func(o *Options) { o.OnRegions = fn }
}

// WithCandidateHook observes the estimated candidate edges.
func WithCandidateHook(fn func([]edgecost.Edge)) Option {
	return func(o *Options) { o.OnCandidates = fn }
}

// WithPrunedHook observes the edges surviving pruning.
func WithPrunedHook(fn func([]edgecost.Edge)) Option {
	return func(o *Options) { o.OnPruned = fn }
}

// WithSelectionHook observes the optimizer's selection before carving.
func WithSelectionHook(fn func(optimize.Selection)) Option {
	return func(o *Options) { o.OnSelection = fn }
}
