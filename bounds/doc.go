// SPDX-License-Identifier: MIT

// Package bounds produces a certified (lower, upper) bound pair on the
// minimum biclique cover number bc(G) before any integer program is built.
// The upper bound sizes the candidate set of the formulation (and therefore
// the model), so cheap, reliable bounds are the difference between a
// tractable solve and a hopeless one.
//
// # Lower bounds
//
// Every lower-bound method is certified: it never exceeds bc(G), whatever its
// quality on a particular instance. Dispatch is by the closed LBMethod enum,
// with no fallback between methods.
//
//   - LBIndependentEdges: a maximum-effort search (greedy plus exchange
//     improvement) for a set of edges no two of which fit in one biclique;
//     each such edge needs its own biclique, so the set size is a bound.
//     Also yields the witness edge list consumed by edge fixing.
//   - LBMaximalIndependentSet: the same structure found by a single greedy
//     pass: weaker and cheaper.
//   - LBMatch: ceil(|M|²/|E|) from a maximum matching M of G; any valid
//     matching certifies the bound, since the expression is monotone in |M|.
//   - LBClique: ceil(log2 ω̃) for a greedily found clique of size ω̃ ≤ ω(G):
//     covering a clique on n vertices takes at least ceil(log2 n) bicliques.
//   - LBLovasz: a spectral relaxation: the Hoffman bound
//     1 + λ_max/|λ_min| on the chromatic number, pushed through
//     ceil(log2(·)). Tighter than LBClique on some dense instances, at the
//     cost of an eigendecomposition (gonum).
//
// # Upper bounds
//
// Every upper-bound method returns a feasible Cover certificate whose length
// is the bound:
//
//   - UBNumber: one single-edge biclique per edge; always feasible, never tight.
//   - UBVertex: greedy star cover by descending uncovered degree.
//   - UBMergeStars: the star cover, then greedy pairwise merging while the
//     merged sides stay complete bipartite; never larger than UBVertex.
//
// Compute runs one method of each kind and enforces the pair invariant
// lower ≤ upper ≤ |E| (an edgeless graph yields (0, 0) and the empty cover).
//
// # Conflict structure
//
// Two edges conflict when no single biclique can cover both; the conflict
// test and the pairwise enumeration are exported because the formulation's
// conflict inequalities use exactly the same relation.
package bounds
