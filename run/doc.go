// SPDX-License-Identifier: MIT

// Package run drives complete solve runs: bound estimation, model
// construction, strengthening, warm start, and the single solver call, plus
// batch execution of independent run configurations.
//
// One run walks a fixed state path
//
//	Configured → Bounded → Built → (WarmStarted) → Solving
//
// and ends in exactly one terminal state: Optimal, TimedOutFeasible,
// TimedOutNoIncumbent, Infeasible, or Error. An edgeless graph short-circuits
// from Bounded straight to Optimal with the empty cover. Runs never share
// graphs, bounds, models, or solver backends; a batch is just N independent
// runs executed under a worker limit, with per-run failures recorded in the
// report and never aborting the rest.
//
// Errors:
//
//	ErrConfig     - unusable run configuration or graph input.
//	ErrInfeasible - the model admits no cover within the candidate budget.
//	ErrSolver     - the backend failed mid-solve.
package run
