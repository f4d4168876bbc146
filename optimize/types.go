// Package optimize defines core types, options, and sentinel errors for the
// optimize subpackage of github.com/katalvlaran/glasseam.
package optimize

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glasseam/edgecost"
)

// Sentinel errors for tree selection.
var (
	// ErrNoTerminals indicates no required region was supplied.
	ErrNoTerminals = errors.New("optimize: at least one terminal region is required")
	// ErrTerminalOutOfRange indicates a terminal index outside the region set.
	ErrTerminalOutOfRange = errors.New("optimize: terminal region index out of range")
	// ErrInfeasible indicates the terminals cannot be mutually connected
	// with the supplied edge set.
	ErrInfeasible = errors.New("optimize: required regions cannot be connected")
	// ErrCoverageUnmet indicates the terminals connect but the coverage
	// threshold is unreachable; the returned Selection is still the best
	// achievable and the caller decides whether to accept it.
	ErrCoverageUnmet = errors.New("optimize: coverage threshold unreachable")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("optimize: invalid option supplied")
)

// Selection is the chosen subgraph: a tree of regions and tunnel edges.
type Selection struct {
	// Vertices lists the selected region indices in ascending order.
	Vertices []int
	// Edges lists the selected tunnel edges in selection order.
	// Invariant: len(Edges) == len(Vertices)−1 and the edges are acyclic.
	Edges []edgecost.Edge
	// Coverage is the summed weight of the selected regions.
	Coverage float64
	// ThresholdMet reports whether Coverage reached the configured
	// coverage threshold.
	ThresholdMet bool
	// TotalCost is the summed cost of the selected edges.
	TotalCost int
}

// Options holds tunable parameters for tree selection.
type Options struct {
	// CoverageThreshold is the minimum fraction of passable area the
	// selected regions must reach. Valid range [0, 1]; 0 disables coverage
	// expansion entirely.
	CoverageThreshold float64
	// Terminals are the required region indices (deduplicated internally).
	Terminals []int
	// UseExact enables the Dreyfus–Wagner exact mode for small instances.
	UseExact bool
	// ExactThreshold gates exact mode: it runs only when the region count
	// is strictly below this value. Valid range [2, 24] (the DP is
	// exponential in the terminal count).
	ExactThreshold int

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Optimize runs.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// CoverageThreshold=0.75, no terminals, exact mode off (threshold 20).
func DefaultOptions() Options {
	return Options{
		CoverageThreshold: 0.75,
		ExactThreshold:    20,
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

// WithTerminals sets the required region indices.
func WithTerminals(terminals ...int) Option {
	return func(o *Options) {
		o.Terminals = append([]int(nil), terminals...)
	}
}

// WithExact toggles the exact Dreyfus–Wagner mode for small instances.
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
