// SPDX-License-Identifier: MIT

package mip

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrSolverFailure wraps any backend-internal failure (model load, presolve,
// or an unexpected terminal status).
var ErrSolverFailure = errors.New("mip: solver failure")

// Inf is the bound value meaning "unbounded on this side".
var Inf = math.Inf(1)

// VarID identifies a variable within one Solver. IDs are dense and assigned
// in registration order starting at 0, so Result.Values[id] is the value of
// the variable with that id.
type VarID int

// Term is one coefficient of a linear expression.
type Term struct {
	Var  VarID
	Coef float64
}

// Row is a two-sided linear constraint Lo ≤ Σ Terms ≤ Hi. Use -Inf or Inf
// for a one-sided row.
type Row struct {
	Lo    float64
	Terms []Term
	Hi    float64
}

// Separator inspects an integral incumbent (indexed by VarID) and returns
// the constraints it violates, or nil when the incumbent is clean. It is
// called once per cut round from inside Optimize.
type Separator func(values []float64) []Row

// Status classifies the outcome of one Optimize call.
type Status string

const (
	// StatusOptimal means the solver proved optimality and Result.Values
	// holds an optimal assignment.
	StatusOptimal Status = "optimal"

	// StatusSubOptimal means the deadline expired first. Result.Values holds
	// the best incumbent found (possibly the warm start), and Result.HasValues
	// reports whether any incumbent exists at all.
	StatusSubOptimal Status = "suboptimal"

	// StatusInfeasible means the model admits no feasible assignment.
	StatusInfeasible Status = "infeasible"

	// StatusError means the backend failed; the accompanying error carries
	// the cause.
	StatusError Status = "error"
)

// Result is the outcome of one Optimize call.
type Result struct {
	Status    Status
	Objective float64
	BestBound float64
	Gap       float64
	HasValues bool
	Values    []float64
}

// Solver is the narrow model-building and solving surface the formulation
// layer depends on. One Solver value carries one model through one Optimize
// call; it is not safe for concurrent use.
type Solver interface {
	// AddBinaryVar registers a {0,1} variable and returns its id.
	AddBinaryVar(name string) VarID

	// AddVar registers a bounded variable, integral or continuous.
	AddVar(name string, lo, hi float64, integer bool) VarID

	// SetVarBounds tightens the bounds of an existing variable. Fixing a
	// binary variable to 1 is SetVarBounds(v, 1, 1).
	SetVarBounds(v VarID, lo, hi float64)

	// AddRow appends a linear constraint to the model.
	AddRow(row Row)

	// SetObjective installs the objective. Terms not listed have zero cost.
	SetObjective(terms []Term, minimize bool)

	// WarmStart injects a known feasible assignment (indexed by VarID) and
	// its objective value. The solver may use it as a cutoff and must report
	// it as the incumbent if the search finds nothing better in time.
	WarmStart(values []float64, objective float64)

	// SetSeparator registers a lazy-constraint separator invoked on every
	// integral incumbent.
	SetSeparator(fn Separator)

	// Optimize solves the model within timeLimit. Cancelling ctx between cut
	// rounds aborts with ctx.Err(). A Status of StatusError is always paired
	// with a non-nil error.
	Optimize(ctx context.Context, timeLimit time.Duration) (Result, error)
}
