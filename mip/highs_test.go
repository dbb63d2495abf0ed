// SPDX-License-Identifier: MIT

package mip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHiGHS_VariableRegistration(t *testing.T) {
	h := NewHiGHS()
	z := h.AddBinaryVar("z[0]")
	y := h.AddVar("y[0]", 0, 1, false)
	require.Equal(t, VarID(0), z)
	require.Equal(t, VarID(1), y)

	h.SetVarBounds(z, 1, 1)
	require.Equal(t, []float64{1, 0}, h.lo)
	require.Equal(t, []float64{1, 1}, h.hi)
}

func TestHiGHS_CutoffRowFollowsObjectiveSense(t *testing.T) {
	h := NewHiGHS()
	a := h.AddBinaryVar("a")
	b := h.AddBinaryVar("b")
	h.AddBinaryVar("c")
	h.SetObjective([]Term{{Var: a, Coef: 1}, {Var: b, Coef: 2}}, true)
	h.WarmStart([]float64{1, 1, 0}, 3)

	row := h.cutoffRow()
	require.Equal(t, []Term{{Var: a, Coef: 1}, {Var: b, Coef: 2}}, row.Terms)
	require.Equal(t, -Inf, row.Lo)
	require.Equal(t, 3.0, row.Hi)

	h.SetObjective([]Term{{Var: a, Coef: 1}}, false)
	row = h.cutoffRow()
	require.Equal(t, 3.0, row.Lo)
	require.Equal(t, Inf, row.Hi)
}

func TestHiGHS_FallbackReportsWarmIncumbent(t *testing.T) {
	h := NewHiGHS()
	h.AddBinaryVar("a")
	h.WarmStart([]float64{1}, 1)

	res := h.fallback(0.5, 0.5)
	require.Equal(t, StatusSubOptimal, res.Status)
	require.True(t, res.HasValues)
	require.Equal(t, []float64{1}, res.Values)
	require.Equal(t, 1.0, res.Objective)

	empty := NewHiGHS().fallback(0, 0)
	require.False(t, empty.HasValues)
}
