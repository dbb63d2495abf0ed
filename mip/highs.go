// SPDX-License-Identifier: MIT

package mip

import (
	"context"
	"fmt"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"
)

// HiGHS is the Solver backend over the gohighs bindings. The model is
// accumulated in Go memory and loaded into a fresh HiGHS instance on every
// cut round, so appended lazy rows always reach the solver.
type HiGHS struct {
	lo       []float64
	hi       []float64
	kind     []highs.VariableType
	costs    []float64
	minimize bool

	rows []Row
	sep  Separator

	warm    []float64
	warmObj float64
	hasWarm bool
}

var _ Solver = (*HiGHS)(nil)

// NewHiGHS returns an empty minimizing model.
func NewHiGHS() *HiGHS {
	return &HiGHS{minimize: true}
}

// AddBinaryVar registers a {0,1} integer variable. The name is accepted for
// interface compatibility; the bindings address columns by index only.
func (h *HiGHS) AddBinaryVar(_ string) VarID {
	return h.addCol(0, 1, highs.Integer)
}

// AddVar registers a bounded variable.
func (h *HiGHS) AddVar(_ string, lo, hi float64, integer bool) VarID {
	kind := highs.Continuous
	if integer {
		kind = highs.Integer
	}

	return h.addCol(lo, hi, kind)
}

func (h *HiGHS) addCol(lo, hi float64, kind highs.VariableType) VarID {
	h.lo = append(h.lo, lo)
	h.hi = append(h.hi, hi)
	h.kind = append(h.kind, kind)
	h.costs = append(h.costs, 0)

	return VarID(len(h.lo) - 1)
}

// SetVarBounds tightens the bounds of an existing variable.
func (h *HiGHS) SetVarBounds(v VarID, lo, hi float64) {
	h.lo[v] = lo
	h.hi[v] = hi
}

// AddRow appends a linear constraint.
func (h *HiGHS) AddRow(row Row) {
	h.rows = append(h.rows, row)
}

// SetObjective installs the objective, replacing any previous one.
func (h *HiGHS) SetObjective(terms []Term, minimize bool) {
	for i := range h.costs {
		h.costs[i] = 0
	}
	for _, t := range terms {
		h.costs[t.Var] = t.Coef
	}
	h.minimize = minimize
}

// WarmStart records a feasible incumbent and its objective value. The
// incumbent's objective becomes a cutoff row during Optimize, and the
// assignment is reported whenever the search itself produces nothing better.
func (h *HiGHS) WarmStart(values []float64, objective float64) {
	h.warm = append([]float64(nil), values...)
	h.warmObj = objective
	h.hasWarm = true
}

// SetSeparator registers the lazy-constraint separator.
func (h *HiGHS) SetSeparator(fn Separator) {
	h.sep = fn
}

// Optimize runs the cut loop: solve, separate on the incumbent, append the
// violated rows, and re-solve under the remaining deadline until separation
// comes back clean or time runs out.
func (h *HiGHS) Optimize(ctx context.Context, timeLimit time.Duration) (Result, error) {
	deadline := time.Now().Add(timeLimit)

	rows := append([]Row(nil), h.rows...)
	if h.hasWarm {
		rows = append(rows, h.cutoffRow())
	}

	for {
		if err := ctx.Err(); err != nil {
			return Result{Status: StatusError}, err
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return h.fallback(0, 0), nil
		}

		sol, bound, gap, err := h.solveOnce(rows, remaining)
		if err != nil {
			return Result{Status: StatusError}, err
		}

		switch sol.Status {
		case highs.ModelStatusOptimal:
			if h.sep != nil {
				if cuts := h.sep(sol.ColValues); len(cuts) > 0 {
					rows = append(rows, cuts...)

					continue
				}
			}

			return Result{
				Status:    StatusOptimal,
				Objective: sol.Objective,
				BestBound: sol.Objective,
				HasValues: true,
				Values:    sol.ColValues,
			}, nil

		case highs.ModelStatusTimeLimit,
			highs.ModelStatusObjectiveBound,
			highs.ModelStatusObjectiveTarget:
			// A timed-out incumbent may still violate rows the separator
			// never saw; only a clean one is reportable.
			if sol.HasSolution() && len(sol.ColValues) > 0 &&
				(h.sep == nil || len(h.sep(sol.ColValues)) == 0) {
				return Result{
					Status:    StatusSubOptimal,
					Objective: sol.Objective,
					BestBound: bound,
					Gap:       gap,
					HasValues: true,
					Values:    sol.ColValues,
				}, nil
			}

			return h.fallback(bound, gap), nil

		case highs.ModelStatusInfeasible, highs.ModelStatusUnboundedOrInfeasible:
			return Result{Status: StatusInfeasible}, nil

		default:
			return Result{Status: StatusError},
				fmt.Errorf("%w: terminal model status %v", ErrSolverFailure, sol.Status)
		}
	}
}

// fallback reports the warm incumbent when the solver produced no usable one.
func (h *HiGHS) fallback(bound, gap float64) Result {
	res := Result{Status: StatusSubOptimal, BestBound: bound, Gap: gap}
	if h.hasWarm {
		res.Objective = h.warmObj
		res.HasValues = true
		res.Values = append([]float64(nil), h.warm...)
	}

	return res
}

// cutoffRow bounds the objective by the warm incumbent's value.
func (h *HiGHS) cutoffRow() Row {
	var terms []Term
	for i, c := range h.costs {
		if c != 0 {
			terms = append(terms, Term{Var: VarID(i), Coef: c})
		}
	}
	if h.minimize {
		return Row{Lo: -Inf, Terms: terms, Hi: h.warmObj}
	}

	return Row{Lo: h.warmObj, Terms: terms, Hi: Inf}
}

// solveOnce loads the accumulated model plus the given row set into a fresh
// HiGHS instance and runs it.
func (h *HiGHS) solveOnce(rows []Row, limit time.Duration) (*highs.Solution, float64, float64, error) {
	s, err := highs.NewSolver()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	defer s.Close()

	if err = s.SetBoolOption("output_flag", false); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	if err = s.SetFloatOption("time_limit", limit.Seconds()); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	if err = s.AddVars(h.lo, h.hi); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	if err = s.SetColCosts(h.costs); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	if err = s.SetIntegrality(h.kind); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	if err = s.SetMaximize(!h.minimize); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	for _, r := range rows {
		index := make([]int, len(r.Terms))
		value := make([]float64, len(r.Terms))
		for i, t := range r.Terms {
			index[i] = int(t.Var)
			value[i] = t.Coef
		}
		if err = s.AddRow(r.Lo, r.Hi, index, value); err != nil {
			return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
		}
	}

	sol, err := s.Run()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	// Info values are best effort; a missing key leaves the zero value.
	bound, _ := s.GetFloatInfo("mip_dual_bound")
	gap, _ := s.GetFloatInfo("mip_gap")

	return sol, bound, gap, nil
}
