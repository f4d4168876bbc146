// Package bridge is the glasseam pipeline facade: one call analyzes a
// grid, selects a tunnel tree, and carves it.
//
// What:
//
//	Bridge(g, opts...) runs the five stages in fixed order:
//
//	  1. region extraction   (flood fill, minimum-area filter)
//	  2. edge-cost estimation (centroid line + PGD/FRR refinement)
//	  3. geometric pruning    (Delaunay → sectors → occlusion)
//	  4. tree optimization    (greedy / Steiner approx / exact DP)
//	  5. carving              (Bresenham, optional widening)
//
//	Stages 1–4 are pure; only stage 5 mutates the grid. A fresh analysis
//	is computed from the current grid on every call; nothing is cached
//	between invocations.
//
// Terminals:
//
//   - Every required point and the spawn map to the region containing
//     them; those regions must end up mutually connected.
//   - With no required points at all, the heaviest region is the default
//     terminal.
//   - When a single terminal's region alone meets the coverage threshold,
//     stages 2–4 are skipped and zero segments are reported.
//
// Errors:
//
//   - ErrNilGrid, ErrNoRegions, ErrRequiredPointBlocked,
//     ErrRequiredRegionDropped, ErrOptionViolation: degenerate input,
//     grid untouched.
//   - optimize.ErrInfeasible (wrapped): terminals cannot connect even on
//     the unpruned graph; grid untouched.
//   - optimize.ErrCoverageUnmet (wrapped): terminals connect but the
//     threshold is unreachable; the best-effort tree IS carved and
//     reported alongside the error, the caller decides.
//
// Determinism: identical grid and options yield byte-identical Result
// values and carved output.
//
// Observation: per-stage hooks (WithRegionHook, WithCandidateHook,
// WithPrunedHook, WithSelectionHook) expose intermediate state for
// tracing; there is no logging inside the pipeline.
package bridge
