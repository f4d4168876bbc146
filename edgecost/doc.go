// Package edgecost estimates the excavation cost of candidate tunnels
// between region pairs and refines their endpoints.
//
// What:
//
//   - Estimate produces one Edge per unordered region pair within
//     MaxEdgeDistance: a cost (count of blocked cells to convert) plus the
//     two proposed tunnel mouths.
//   - The centroid-line baseline walks the straight line between centroids
//     with integer Bresenham stepping, finds the last cell on each side
//     still inside its region (the exit points), and counts blocked cells
//     between them.
//   - Perimeter Gradient Descent (PGD) is a local, deterministic discrete
//     descent over the two ordered perimeters, bounded by a cumulative skew
//     constraint and an iteration cap.
//   - Frustum Ray Refinement (FRR) is a global, deterministic hierarchical
//     search: perimeter points inside a visibility cone are projected onto
//     the mid-plane, binned, sampled one ray per bin, and the best bin is
//     recursively subdivided.
//
// Why:
//
//   - The centroid line is cheap but blind to concavity; PGD polishes a
//     known-good pair, FRR finds good mouths on complex shapes. Default
//     policy: PGD on, FRR off (opt in via WithFRR for concave regions).
//
// Guarantees:
//
//   - Refinement never regresses: every Edge cost ≤ its centroid-line
//     baseline cost for that pair.
//   - Determinism: all searches use fixed scan orders and explicit
//     tie-breaks; parallel estimation writes into a pre-sized slice indexed
//     by pair, so scheduling cannot reorder results.
//   - Touching or overlapping anchors degenerate to cost 0 without division
//     by zero.
//
// Complexity:
//
//   - Baseline per pair: O(L), L = centroid-line length.
//   - PGD per pair: O(MaxPGDIterations × 6 × L).
//   - FRR per pair: O(P + Depth × Bins × L), P = perimeter sizes.
//
// Errors:
//
//   - ErrNilGrid, ErrNilLabeling: missing inputs.
//   - ErrOptionViolation: an option value is outside its valid range.
package edgecost
