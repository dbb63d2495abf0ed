// SPDX-License-Identifier: MIT

package bcgraph

import "sort"

// Biclique is a pair of disjoint, non-empty vertex sides.
//
// A Biclique with sides (A, B) covers edge (u, v) when the endpoints fall on
// opposite sides. Validity against a concrete Graph (every A×B pair being an
// actual edge) is checked by CompleteIn, not enforced by construction.
type Biclique struct {
	A, B []int
}

// NewBiclique builds a Biclique with sorted, deduplicated sides.
// Complexity: O((|A|+|B|)·log)
func NewBiclique(a, b []int) Biclique {
	return Biclique{A: uniqueSorted(a), B: uniqueSorted(b)}
}

// Covers reports whether the biclique covers edge (u, v): one endpoint on
// each side, in either orientation.
// Complexity: O(log(|A|+|B|))
func (bc Biclique) Covers(u, v int) bool {
	return (containsSorted(bc.A, u) && containsSorted(bc.B, v)) ||
		(containsSorted(bc.A, v) && containsSorted(bc.B, u))
}

// CompleteIn reports whether the biclique is a valid complete bipartite
// subgraph of g: both sides non-empty, disjoint, and every A×B pair adjacent.
// Complexity: O(|A|·|B|)
func (bc Biclique) CompleteIn(g *Graph) bool {
	if len(bc.A) == 0 || len(bc.B) == 0 {
		return false
	}
	for _, u := range bc.A {
		if containsSorted(bc.B, u) {
			return false
		}
		for _, v := range bc.B {
			if !g.HasEdge(u, v) {
				return false
			}
		}
	}

	return true
}

// Cover is an ordered sequence of bicliques; its length is the objective
// value of the cover it certifies.
type Cover []Biclique

// Validate reports whether the cover is a feasible certificate for g:
// every biclique complete bipartite in g and every edge of g covered by at
// least one biclique. Multiple coverage of one edge is permitted. The empty
// cover validates exactly the edgeless graph.
// Complexity: O(Σ|A_i|·|B_i| + E·len(cover))
func (c Cover) Validate(g *Graph) bool {
	for _, bc := range c {
		if !bc.CompleteIn(g) {
			return false
		}
	}
	for _, e := range g.Edges() {
		covered := false
		for _, bc := range c {
			if bc.Covers(e.U, e.V) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return true
}

func uniqueSorted(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}

	return out[:n]
}

func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)

	return i < len(s) && s[i] == v
}
