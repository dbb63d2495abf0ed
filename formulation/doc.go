// SPDX-License-Identifier: MIT

// Package formulation turns a graph and a candidate budget into a
// mixed-integer model of the minimum biclique cover problem, loaded into a
// mip.Solver.
//
// Two model families are supported:
//
//   - Natural: binary side-membership variables x[v][b][side] per vertex and
//     candidate, continuous linking variables y[u→v][b] per arc, and explicit
//     validity rows forbidding non-adjacent pairs from facing each other
//     across one candidate.
//   - Extended: binary side indicators p[v][b][side] and binary per-arc
//     coverage variables y[u→v][b] with direct linking, fewer upfront rows,
//     and support for the common-neighbor (triangle) inequalities.
//
// Both minimize the number of opened candidates Σ z[b] under full edge
// coverage, with a z[b] ≥ z[b+1] symmetry break. The strengthening
// inequalities (edge fixing onto a conflicting-edge witness, pairwise
// conflict rows, triangle rows, and a fractional validity separator) attach
// to a built Model on demand; the run driver picks which per configuration.
//
// A Model is bound to the one Solver it was built on and is not safe for
// concurrent use.
package formulation
