// SPDX-License-Identifier: MIT

package formulation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/bounds"
	"github.com/katalvlaran/bicover/formulation"
	"github.com/katalvlaran/bicover/mip"
	"github.com/katalvlaran/bicover/mip/miptest"
)

func TestFixEdges_PinsWitnessPrefix(t *testing.T) {
	g := disjointPair(t)
	f := &miptest.Fake{}
	m, err := formulation.Build(g, f, formulation.Options{
		Kind: formulation.Natural, Candidates: 2,
	})
	require.NoError(t, err)

	witness := bounds.IndependentEdgeSet(g)
	require.Len(t, witness, 2)
	m.FixEdges(witness)

	// Candidate 0 carries edge (1,2): 1 on side A, 2 on side B, the forward
	// arc open, the backward arc closed.
	for name, want := range map[string][2]float64{
		"x[1][0][0]": {1, 1},
		"x[2][0][1]": {1, 1},
		"y[1->2][0]": {1, 1},
		"y[2->1][0]": {0, 0},
		"z[0]":       {1, 1},
		"x[3][1][0]": {1, 1},
		"x[4][1][1]": {1, 1},
		"y[3->4][1]": {1, 1},
		"y[4->3][1]": {0, 0},
		"z[1]":       {1, 1},
	} {
		id := varID(t, f, name)
		require.Equal(t, want[0], f.Lo[id], "%s lower bound", name)
		require.Equal(t, want[1], f.Hi[id], "%s upper bound", name)
	}

	// Untouched variables keep their relaxation bounds.
	id := varID(t, f, "x[1][1][0]")
	require.Equal(t, 0.0, f.Lo[id])
	require.Equal(t, 1.0, f.Hi[id])
}

func TestFixEdges_TruncatesToCandidateBudget(t *testing.T) {
	g := disjointPair(t)
	f := &miptest.Fake{}
	m, err := formulation.Build(g, f, formulation.Options{
		Kind: formulation.Natural, Candidates: 1,
	})
	require.NoError(t, err)

	m.FixEdges(bounds.IndependentEdgeSet(g))
	require.Equal(t, 1.0, f.Lo[varID(t, f, "z[0]")])
}

func TestConflictRows_OnePerPairPerCandidate(t *testing.T) {
	g := disjointPair(t)
	f := &miptest.Fake{}
	m, err := formulation.Build(g, f, formulation.Options{
		Kind: formulation.Natural, Candidates: 2,
	})
	require.NoError(t, err)

	before := len(f.Rows)
	pairs := bounds.ConflictingPairs(g)
	require.Equal(t, [][2]int{{0, 1}}, pairs)
	m.ConflictRows(pairs)

	require.Len(t, f.Rows, before+2)
	for _, row := range f.Rows[before:] {
		require.Equal(t, 1.0, row.Hi)
		require.Len(t, row.Terms, 4)
	}
}

func TestCommonNeighborRows_ExtendedOnly(t *testing.T) {
	g := triangle(t)

	nat := &miptest.Fake{}
	m, err := formulation.Build(g, nat, formulation.Options{
		Kind: formulation.Natural, Candidates: 2,
	})
	require.NoError(t, err)
	require.ErrorIs(t, m.CommonNeighborRows(), formulation.ErrUnsupportedInequality)

	ext := &miptest.Fake{}
	m, err = formulation.Build(g, ext, formulation.Options{
		Kind: formulation.Extended, Candidates: 2,
	})
	require.NoError(t, err)

	before := len(ext.Rows)
	require.NoError(t, m.CommonNeighborRows())
	// One triangle, one row per candidate, both orientations of all three
	// edges, at most two covered.
	require.Len(t, ext.Rows, before+2)
	for _, row := range ext.Rows[before:] {
		require.Equal(t, 2.0, row.Hi)
		require.Len(t, row.Terms, 6)
	}
}

func TestSeparator_EmitsViolatedValidityRows(t *testing.T) {
	g := fourCycle(t)
	f := &miptest.Fake{}
	m, err := formulation.Build(g, f, formulation.Options{
		Kind: formulation.Natural, Candidates: 2, OmitValidity: true,
	})
	require.NoError(t, err)

	sep := m.Separator()

	// A clean all-zeros point separates nothing.
	require.Empty(t, sep(make([]float64, m.NumVars())))

	// Vertices 1 and 3 are non-adjacent in the 4-cycle: facing each other
	// across a closed candidate violates validity.
	values := make([]float64, m.NumVars())
	values[varID(t, f, "x[1][0][0]")] = 1
	values[varID(t, f, "x[3][0][1]")] = 1
	cuts := sep(values)
	require.Len(t, cuts, 1)
	require.Equal(t, mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
		{Var: varID(t, f, "x[1][0][0]"), Coef: 1},
		{Var: varID(t, f, "x[3][0][1]"), Coef: 1},
		{Var: varID(t, f, "z[0]"), Coef: -1},
	}}, cuts[0])

	// Non-adjacent vertices may never face each other across a candidate,
	// open or closed: the cut persists after opening z[0].
	values[varID(t, f, "z[0]")] = 1
	require.Len(t, sep(values), 1)

	// Moving vertex 3 off side B clears the violation.
	values[varID(t, f, "x[3][0][1]")] = 0
	require.Empty(t, sep(values))
}

func TestEnableSeparation_RegistersOnSolver(t *testing.T) {
	f := &miptest.Fake{}
	m, err := formulation.Build(fourCycle(t), f, formulation.Options{
		Kind: formulation.Natural, Candidates: 1, OmitValidity: true,
	})
	require.NoError(t, err)

	require.Nil(t, f.Sep)
	m.EnableSeparation()
	require.NotNil(t, f.Sep)
}
