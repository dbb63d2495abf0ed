// SPDX-License-Identifier: MIT

// Package mip abstracts the external mixed-integer programming solver behind
// the narrowest interface the engine needs: variable and constraint
// registration, objective sense, warm-start injection, a lazy-separation
// hook, and one time-limited optimize call. Everything the solver does
// between Optimize entering and returning (branch-and-bound, presolve,
// threading) is opaque to this module and never reimplemented here.
//
// The HiGHS backend adapts the interface onto the gohighs bindings. Two
// solver features are emulated where the bindings stop short of the native
// C API:
//
//   - Lazy separation runs as a cut loop: solve, hand the incumbent values to
//     the registered Separator, append whatever violated rows come back, and
//     re-solve under the remaining deadline until separation is clean.
//   - A warm start becomes an objective cutoff row (the warm assignment's
//     objective value bounds the optimum from above) plus a recorded
//     incumbent, so a run that times out before the solver finds its own
//     incumbent still reports the injected solution.
//
// A Solver value owns one model for one solve. It is not safe for concurrent
// use and must not be shared between runs; batch drivers create one per run.
//
// Errors:
//
//	ErrSolverFailure - the backend reported an internal error.
package mip
