// Package region labels the passable cells of a grid into maximal
// 4-connected regions and derives the per-region geometry the rest of the
// bridging pipeline consumes.
//
// What:
//
//   - Extract walks the grid once with an explicit-queue flood fill (BFS, no
//     recursion) and labels every passable cell with a region index; blocked
//     cells keep the NoRegion sentinel.
//   - Each surviving region carries its cells, size, centroid (arithmetic
//     mean of cell coordinates — a geometric anchor, not necessarily a
//     passable cell), weight (size / total passable cells), and an ordered
//     cyclic perimeter produced by Moore-neighbor boundary tracing.
//   - Regions smaller than MinAreaRatio × totalPassable are dropped: their
//     cells stay passable on the grid but are relabeled NoRegion and never
//     become bridgeable vertices.
//
// Why:
//
//   - Tunnel planning needs region identities, geometric anchors for
//     candidate edges, and ordered perimeters for endpoint refinement.
//   - Everything is recomputed from the current grid snapshot per call;
//     regions are produced, consumed, and discarded within one pass.
//
// Determinism:
//
//   - Regions are numbered in row-major discovery order, so identical grids
//     always produce identical labelings.
//   - Perimeter walks start at the lexicographically smallest boundary cell
//     and proceed in a fixed clockwise direction.
//
// Complexity:
//
//   - Extract: O(W×H×4) time, O(W×H) memory.
//   - Perimeter tracing: O(P) per region, P = boundary length.
//
// Errors:
//
//   - ErrNilGrid: a nil grid was supplied.
//   - ErrOptionViolation: an option value is outside its valid range.
package region
