// Package glasseam is an in-memory engine for region-connectivity bridging
// on 2D passable/blocked grids — detect disconnected floor regions, plan a
// minimum-cost tree of tunnels, and carve it.
//
// 🚀 What is glasseam?
//
//	A deterministic, dependency-light library that brings together:
//		• Region analysis: flood-fill labeling, centroids, ordered perimeters
//		• Tunnel costing: centroid-line baseline + local (PGD) and global (FRR) refinement
//		• Geometric pruning: Delaunay neighbors, angular sectors, occlusion
//		• Optimization: greedy coverage expansion, union-find Steiner approximation,
//		  exact subset-DP for small instances
//		• Carving: Bresenham tunnels, optional widening, idempotent mutation
//
// ✨ Why choose glasseam?
//
//   - Deterministic – identical grids and options always yield byte-identical tunnels
//   - Pure per-invocation – no caches, no cross-call state, safe to rerun anytime
//   - Tunable – every stage is driven by explicit, validated options
//   - Extensible – per-stage hooks for tracing without coupling to any logger
//
// Everything is organized under flat, single-concern subpackages:
//
//	grid/        — Point, Grid capability interfaces, BoolGrid, Bresenham
//	region/      — connected-component extraction with perimeter tracing
//	edgecost/    — tunnel cost estimation and endpoint refinement
//	prune/       — three-stage geometric candidate filtering
//	optimize/    — coverage/terminal tree selection
//	carve/       — grid mutation along selected tunnels
//	bridge/      — the full five-stage pipeline behind one call
//	gridbuilder/ — deterministic grid fixtures for tests and examples
//
// Quick ASCII example:
//
//	###########        ###########
//	#AAA###BBB#        #AAA###BBB#
//	#AAA###BBB#   →    #AAA+++BBB#
//	#AAA###BBB#        #AAA###BBB#
//	###########        ###########
//
//	two sealed rooms become one reachable floor via a single 3-cell tunnel.
//
// Dive into bridge.Bridge for the one-call entry point, or use the stage
// packages directly when you need only part of the pipeline.
//
//	go get github.com/katalvlaran/glasseam
package glasseam
