// SPDX-License-Identifier: MIT

package bounds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/bcgraph"
	"github.com/katalvlaran/bicover/bounds"
)

func TestLowerBound_EmptyGraphIsZero(t *testing.T) {
	g, err := bcgraph.NewGraph(nil, 1, 2)
	require.NoError(t, err)
	for _, m := range allLBMethods {
		lb, err := bounds.LowerBound(g, m)
		require.NoError(t, err)
		require.Zero(t, lb, "method %s", m)
	}
}

func TestLowerBound_CliqueOnCompleteGraph(t *testing.T) {
	// Covering K4 needs ceil(log2 4) = 2 bicliques; the greedy clique finds
	// the whole vertex set.
	lb, err := bounds.LowerBound(complete4(t), bounds.LBClique)
	require.NoError(t, err)
	require.Equal(t, 2, lb)
}

func TestLowerBound_SpectralOnCompleteGraph(t *testing.T) {
	// K4 spectrum: λ_max = 3, λ_min = −1, Hoffman ratio 4 → ceil(log2 4) = 2.
	lb, err := bounds.LowerBound(complete4(t), bounds.LBLovasz)
	require.NoError(t, err)
	require.Equal(t, 2, lb)
}

func TestLowerBound_SpectralOnTriangle(t *testing.T) {
	// Triangle spectrum: 2, −1, −1 → ratio 3 → ceil(log2 3) = 2, the exact
	// cover number of K3.
	lb, err := bounds.LowerBound(triangle(t), bounds.LBLovasz)
	require.NoError(t, err)
	require.Equal(t, 2, lb)
}

func TestLowerBound_MatchOnFourCycle(t *testing.T) {
	// A maximum matching of the 4-cycle has 2 edges: ceil(2²/4) = 1.
	lb, err := bounds.LowerBound(fourCycle(t), bounds.LBMatch)
	require.NoError(t, err)
	require.Equal(t, 1, lb)
}

func TestIndependentEdgeSet_PairwiseConflicting(t *testing.T) {
	// Two disjoint edges with no cross connection cannot share a biclique.
	g := mustGraph(t, bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 3, V: 4})
	set := bounds.IndependentEdgeSet(g)
	require.Len(t, set, 2)
	for i := range set {
		for j := i + 1; j < len(set); j++ {
			require.True(t, bounds.Conflicting(g, set[i], set[j]))
		}
	}
}

func TestIndependentEdgeSet_FourCycleCollapsesToOne(t *testing.T) {
	// Every disjoint edge pair of the 4-cycle has both cross edges, so any
	// two of its edges fit in one biclique: the witness set is a single edge.
	set := bounds.IndependentEdgeSet(fourCycle(t))
	require.Len(t, set, 1)
}

func TestConflicting_Relation(t *testing.T) {
	g := fourCycle(t)
	edges := g.Edges()
	// (1,2) and (3,4) are co-coverable through cross edges (1,4) and (2,3).
	require.False(t, bounds.Conflicting(g, edges[0], edges[2]))
	// Sharing a vertex always allows a common star.
	require.False(t, bounds.Conflicting(g, edges[0], edges[1]))
	// An edge never conflicts with itself.
	require.False(t, bounds.Conflicting(g, edges[0], edges[0]))

	h := mustGraph(t, bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 3, V: 4})
	require.True(t, bounds.Conflicting(h, h.Edges()[0], h.Edges()[1]))
	require.Equal(t, [][2]int{{0, 1}}, bounds.ConflictingPairs(h))
}

func TestLowerBound_GreedySetWeakerOrEqual(t *testing.T) {
	// The single-pass greedy bound never beats the exchange-improved one.
	graphs := []*bcgraph.Graph{
		triangle(t), fourCycle(t), complete4(t),
		mustGraph(t,
			bcgraph.Edge{U: 1, V: 2}, bcgraph.Edge{U: 3, V: 4},
			bcgraph.Edge{U: 5, V: 6}, bcgraph.Edge{U: 2, V: 3}),
	}
	for _, g := range graphs {
		strong, err := bounds.LowerBound(g, bounds.LBIndependentEdges)
		require.NoError(t, err)
		weak, err := bounds.LowerBound(g, bounds.LBMaximalIndependentSet)
		require.NoError(t, err)
		require.LessOrEqual(t, weak, strong)
	}
}
