// SPDX-License-Identifier: MIT

package bounds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/bcgraph"
	"github.com/katalvlaran/bicover/bounds"
)

func mustGraph(t *testing.T, edges ...bcgraph.Edge) *bcgraph.Graph {
	t.Helper()
	g, err := bcgraph.NewGraph(edges)
	require.NoError(t, err)

	return g
}

func singleEdge(t *testing.T) *bcgraph.Graph {
	return mustGraph(t, bcgraph.Edge{U: 1, V: 2})
}

func triangle(t *testing.T) *bcgraph.Graph {
	return mustGraph(t,
		bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 2, V: 3}, bcgraph.Edge{U: 1, V: 3})
}

func fourCycle(t *testing.T) *bcgraph.Graph {
	return mustGraph(t,
		bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 2, V: 3},
		bcgraph.Edge{U: 3, V: 4}, bcgraph.Edge{U: 4, V: 1})
}

func complete4(t *testing.T) *bcgraph.Graph {
	return mustGraph(t,
		bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 1, V: 3}, bcgraph.Edge{U: 1, V: 4},
		bcgraph.Edge{U: 2, V: 3}, bcgraph.Edge{U: 2, V: 4}, bcgraph.Edge{U: 3, V: 4})
}

var allLBMethods = []bounds.LBMethod{
	bounds.LBMatch, bounds.LBLovasz, bounds.LBClique,
	bounds.LBIndependentEdges, bounds.LBMaximalIndependentSet,
}

var allUBMethods = []bounds.UBMethod{
	bounds.UBNumber, bounds.UBVertex, bounds.UBMergeStars,
}

func TestCompute_EmptyGraph(t *testing.T) {
	g, err := bcgraph.NewGraph(nil, 1, 2, 3)
	require.NoError(t, err)
	for _, lbm := range allLBMethods {
		for _, ubm := range allUBMethods {
			pair, cover, err := bounds.Compute(g, lbm, ubm)
			require.NoError(t, err)
			require.Equal(t, bounds.Pair{Lower: 0, Upper: 0}, pair)
			require.Empty(t, cover)
		}
	}
}

func TestCompute_SingleEdge_AllMethodsGiveOneOne(t *testing.T) {
	g := singleEdge(t)
	for _, lbm := range allLBMethods {
		for _, ubm := range allUBMethods {
			pair, cover, err := bounds.Compute(g, lbm, ubm)
			require.NoError(t, err, "lb=%s ub=%s", lbm, ubm)
			require.Equal(t, bounds.Pair{Lower: 1, Upper: 1}, pair, "lb=%s ub=%s", lbm, ubm)
			require.True(t, cover.Validate(g))
		}
	}
}

func TestCompute_PairInvariant(t *testing.T) {
	graphs := map[string]*bcgraph.Graph{
		"triangle":  triangle(t),
		"fourCycle": fourCycle(t),
		"complete4": complete4(t),
		"path3":     mustGraph(t, bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 2, V: 3}),
	}
	for name, g := range graphs {
		for _, lbm := range allLBMethods {
			for _, ubm := range allUBMethods {
				pair, cover, err := bounds.Compute(g, lbm, ubm)
				require.NoError(t, err)
				require.GreaterOrEqual(t, pair.Lower, 1, "%s lb=%s", name, lbm)
				require.LessOrEqual(t, pair.Lower, pair.Upper, "%s lb=%s ub=%s", name, lbm, ubm)
				require.LessOrEqual(t, pair.Upper, g.NumEdges(), "%s ub=%s", name, ubm)
				require.Len(t, cover, pair.Upper)
				require.True(t, cover.Validate(g), "%s ub=%s", name, ubm)
			}
		}
	}
}

func TestCompute_UnknownMethods(t *testing.T) {
	g := singleEdge(t)
	_, _, err := bounds.Compute(g, bounds.LBMethod("nope"), bounds.UBVertex)
	require.ErrorIs(t, err, bounds.ErrUnknownMethod)
	_, _, err = bounds.Compute(g, bounds.LBMatch, bounds.UBMethod("nope"))
	require.ErrorIs(t, err, bounds.ErrUnknownMethod)
}

func TestParseMethods(t *testing.T) {
	m, err := bounds.ParseLBMethod("independent_edges")
	require.NoError(t, err)
	require.Equal(t, bounds.LBIndependentEdges, m)
	_, err = bounds.ParseLBMethod("magic")
	require.ErrorIs(t, err, bounds.ErrUnknownMethod)

	u, err := bounds.ParseUBMethod("merge_stars")
	require.NoError(t, err)
	require.Equal(t, bounds.UBMergeStars, u)
	_, err = bounds.ParseUBMethod("magic")
	require.ErrorIs(t, err, bounds.ErrUnknownMethod)
}
