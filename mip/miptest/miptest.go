// SPDX-License-Identifier: MIT

// Package miptest provides a scripted in-memory mip.Solver for tests.
// Model construction is recorded verbatim so tests can assert on variable
// counts, bounds, and row structure, and Optimize replays pre-scripted
// results instead of invoking the HiGHS library. The fake mimics the real
// cut loop: an optimal scripted result is fed to the registered separator,
// and returned cuts advance the script to its next entry.
package miptest

import (
	"context"
	"time"

	"github.com/katalvlaran/bicover/mip"
)

// Step is one scripted Optimize round.
type Step struct {
	Result mip.Result
	Err    error
}

// Fake records every Solver call and replays scripted results.
// The zero value replays a single optimal all-zeros assignment.
type Fake struct {
	Names    []string
	Lo       []float64
	Hi       []float64
	Integer  []bool
	Rows     []mip.Row
	Obj      []mip.Term
	Minimize bool

	Warm    []float64
	WarmObj float64
	HasWarm bool

	Sep mip.Separator

	Script    []Step
	Optimized int
}

var _ mip.Solver = (*Fake)(nil)

func (f *Fake) AddBinaryVar(name string) mip.VarID {
	return f.AddVar(name, 0, 1, true)
}

func (f *Fake) AddVar(name string, lo, hi float64, integer bool) mip.VarID {
	f.Names = append(f.Names, name)
	f.Lo = append(f.Lo, lo)
	f.Hi = append(f.Hi, hi)
	f.Integer = append(f.Integer, integer)

	return mip.VarID(len(f.Names) - 1)
}

func (f *Fake) SetVarBounds(v mip.VarID, lo, hi float64) {
	f.Lo[v] = lo
	f.Hi[v] = hi
}

func (f *Fake) AddRow(row mip.Row) {
	f.Rows = append(f.Rows, row)
}

func (f *Fake) SetObjective(terms []mip.Term, minimize bool) {
	f.Obj = append([]mip.Term(nil), terms...)
	f.Minimize = minimize
}

func (f *Fake) WarmStart(values []float64, objective float64) {
	f.Warm = append([]float64(nil), values...)
	f.WarmObj = objective
	f.HasWarm = true
}

func (f *Fake) SetSeparator(fn mip.Separator) {
	f.Sep = fn
}

// Optimize replays the script. Each optimal step with values is handed to
// the separator; non-empty cuts are recorded and the script advances,
// otherwise the step's result is returned as is.
func (f *Fake) Optimize(_ context.Context, _ time.Duration) (mip.Result, error) {
	for {
		step, scripted := f.next()
		f.Optimized++
		if step.Err != nil {
			return step.Result, step.Err
		}
		if scripted && step.Result.Status == mip.StatusOptimal && step.Result.HasValues && f.Sep != nil {
			if cuts := f.Sep(step.Result.Values); len(cuts) > 0 {
				f.Rows = append(f.Rows, cuts...)

				continue
			}
		}

		return step.Result, nil
	}
}

func (f *Fake) next() (Step, bool) {
	if f.Optimized < len(f.Script) {
		return f.Script[f.Optimized], true
	}

	return Step{Result: mip.Result{
		Status:    mip.StatusOptimal,
		HasValues: true,
		Values:    make([]float64, len(f.Names)),
	}}, false
}

// VarByName returns the id of the first variable registered under name.
func (f *Fake) VarByName(name string) (mip.VarID, bool) {
	for i, n := range f.Names {
		if n == name {
			return mip.VarID(i), true
		}
	}

	return 0, false
}
