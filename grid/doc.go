// Package grid provides the minimal 2D-grid surface the bridging pipeline
// consumes: integer points, read-only and mutable passability capabilities,
// a concrete boolean grid, and integer line/disc rasterization.
//
// What:
//
//   - Point: an integer (X, Y) coordinate with float helpers.
//   - Grid / MutableGrid: the capability interfaces every stage works against.
//   - BoolGrid: a rectangular passability matrix with deep-copy semantics.
//   - Line: Bresenham rasterization between two points.
//   - Disc: filled-disc offsets for tunnel widening.
//
// Why:
//
//   - The bridging engine must stay agnostic of whoever generated the map;
//     a grid only needs to answer IsPassable(x, y) inside Width×Height.
//   - Carving (the single mutating stage) needs exactly one extra verb:
//     SetPassable.
//
// Complexity:
//
//   - BoolGrid queries and mutation: O(1).
//   - Line(a, b): O(max(|Δx|, |Δy|)) time and memory.
//   - Disc(r): O(r²) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
