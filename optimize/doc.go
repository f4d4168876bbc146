// Package optimize selects the minimum-cost tree of regions that connects
// every required terminal and lifts reachable floor coverage over the
// configured threshold.
//
// What:
//
//   - Single terminal: greedy expansion. Start from the terminal, repeatedly
//     attach the unselected region maximizing weight/edgeCost (cost-0 edges
//     attach first), stop at the coverage threshold.
//   - Multiple terminals: phase 1 joins all terminals with a union-find
//     sweep over edges in ascending cost order and strips non-terminal
//     leaves — the classic 2-approximation of the optimal Steiner tree.
//     Phase 2 reuses the greedy expansion from the merged component when a
//     coverage threshold remains unmet.
//   - Exact mode (opt-in, small instances): Dreyfus–Wagner dynamic
//     programming over terminal subsets, dp[mask][v] = cheapest tree
//     spanning the terminals in mask plus vertex v. Produces the true
//     optimum; gated on the region count.
//
// Output invariants:
//
//   - Selected edges always form a tree over the selected vertices:
//     |E| = |V|−1, acyclic.
//   - Deterministic: edges are processed in (cost, A, B) order and every
//     tie-break is explicit (greedy picks the lowest region index), so
//     identical inputs yield byte-identical selections.
//
// Failure taxonomy:
//
//   - ErrInfeasible: the terminals cannot be mutually connected with the
//     supplied edges. No partial result; the caller's grid stays untouched.
//   - ErrCoverageUnmet: terminals connect but the threshold is unreachable
//     even after absorbing every reachable region. The best-effort
//     Selection is still returned alongside the error — the caller decides
//     whether to accept it.
//
// Complexity:
//
//   - Greedy: O(V×E) worst case. Steiner phase 1: O(E log E).
//   - Exact: O(3^t×V + 2^t×E log V) for t terminals.
package optimize
