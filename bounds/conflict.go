// SPDX-License-Identifier: MIT

package bounds

import "github.com/katalvlaran/bicover/bcgraph"

// CoCoverable reports whether one biclique of g can cover both edges.
//
// Edges sharing a vertex are always co-coverable: for (a,b) and (c,b) the
// star ({a,c}, {b}) covers both. Vertex-disjoint edges (a,b) and (c,d) are
// co-coverable exactly when one of the two cross pairs exists in g,
// (a,d) with (b,c) or (a,c) with (b,d), since those are the edges a
// complete bipartite subgraph containing both must supply.
// Complexity: O(1)
func CoCoverable(g *bcgraph.Graph, e, f bcgraph.Edge) bool {
	a, b := e.U, e.V
	c, d := f.U, f.V
	if a == c || a == d || b == c || b == d {
		return true
	}

	return (g.HasEdge(a, d) && g.HasEdge(b, c)) ||
		(g.HasEdge(a, c) && g.HasEdge(b, d))
}

// Conflicting reports whether no single biclique of g can cover both edges.
// The negation of CoCoverable for distinct edges; a set of pairwise
// conflicting edges forces one biclique per edge, which is what both the
// independent-edges bound and the conflict inequalities exploit.
func Conflicting(g *bcgraph.Graph, e, f bcgraph.Edge) bool {
	if e == f {
		return false
	}

	return !CoCoverable(g, e, f)
}

// ConflictingPairs enumerates every unordered pair of conflicting edges as
// (i, j) indices into g.Edges(), i < j, in ascending order.
// Complexity: O(E²)
func ConflictingPairs(g *bcgraph.Graph) [][2]int {
	edges := g.Edges()
	out := make([][2]int, 0)
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if Conflicting(g, edges[i], edges[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// coCoverAdjacency builds, per edge index, the indices of distinct edges that
// are co-coverable with it. An independent set in this structure is a set of
// pairwise conflicting edges.
// Complexity: O(E²)
func coCoverAdjacency(g *bcgraph.Graph) [][]int {
	edges := g.Edges()
	adj := make([][]int, len(edges))
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if CoCoverable(g, edges[i], edges[j]) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	return adj
}
