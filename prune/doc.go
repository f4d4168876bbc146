// Package prune thins the candidate edge set with three sequential
// geometric filters before optimization: Delaunay neighbors → angular
// sectors → occlusion. The stage order is fixed; it affects which edges
// survive and is part of the reproducibility contract.
//
// What:
//
//   - Delaunay filter: triangulate the region centroids (Bowyer–Watson) and
//     keep only edges whose pair is a triangulation edge. Non-Delaunay
//     pairs are never natural neighbors, so they are geometrically
//     redundant for tree construction (~60% typical reduction).
//   - Angular-sector filter: partition the 360° around each centroid into
//     equal sectors and keep only the cheapest outgoing edge per sector
//     (ties: lower cost, then lower region index). An edge survives when
//     either endpoint retains it.
//   - Occlusion filter: drop edge (i,j) when a third surviving region m
//     offers cost(i,m)+cost(m,j) < cost(i,j)×OcclusionFactor — a cheaper
//     indirect route certifies the direct edge cannot be optimal. All edges
//     are judged against the same survivor snapshot, so removal order
//     cannot change the outcome.
//
// Safety invariant:
//
//   - If the pre-pruning graph is connected, the post-pruning graph stays
//     connected. A union-find audit compares components before and after;
//     any component the filters split falls back to its full unpruned edge
//     set (recovered internally, never surfaced as an error).
//
// Degeneracies:
//
//   - Fewer than 3 regions, collinear centroids, or a failed triangulation
//     make the Delaunay filter a no-op rather than an error.
//
// Complexity:
//
//   - Delaunay: O(n²) incremental insertion over n centroids.
//   - Sector filter: O(E). Occlusion: O(E×n). Audit: O(E α(n)).
//
// Errors:
//
//   - ErrOptionViolation: an option value is outside its valid range.
package prune
