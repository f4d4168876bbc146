// Package carve applies a selected tunnel set to a grid: every blocked
// cell on the Bresenham line between an edge's two mouth points becomes
// passable, optionally widened by a disc radius.
//
// What:
//
//   - Carve walks each edge's PointA→PointB line and flips blocked cells
//     to passable in place; with radius > 0 every line cell additionally
//     stamps a filled disc of that radius.
//   - The per-edge line cells are returned so callers can report the
//     tunnel segments without re-rasterizing.
//
// Invariants:
//
//   - Idempotent: carving the same edge twice changes nothing further.
//   - Widened disc cells outside the grid are clipped; mouth points come
//     from in-bounds perimeters, so the lines themselves never leave it.
//   - The only mutation is blocked → passable; no cell is ever re-blocked.
//
// Complexity: O(Σ line length × radius²) time.
package carve
