// SPDX-License-Identifier: MIT

package bounds

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bicover/bcgraph"
)

// LowerBound computes a certified lower bound on bc(g) with the configured
// method. The result never exceeds the true optimum; zero is only returned
// for an edgeless graph. Returns ErrUnknownMethod for an unrecognized method.
func LowerBound(g *bcgraph.Graph, method LBMethod) (int, error) {
	if g.NumEdges() == 0 {
		return 0, nil
	}

	switch method {
	case LBMatch:
		_, m := maximumMatching(g)

		return int(math.Ceil(float64(m*m) / float64(g.NumEdges()))), nil
	case LBLovasz:
		return spectralBound(g), nil
	case LBClique:
		return log2Ceil(len(greedyClique(g))), nil
	case LBIndependentEdges:
		return len(IndependentEdgeSet(g)), nil
	case LBMaximalIndependentSet:
		return len(greedyConflictingEdges(g)), nil
	default:
		return 0, fmt.Errorf("lower-bound method %q: %w", method, ErrUnknownMethod)
	}
}

// IndependentEdgeSet finds a large set of pairwise conflicting edges: no
// single biclique can cover two of them, so bc(g) is at least the set size.
// A degree-ordered greedy pass is followed by (1,2)-exchange improvement
// (drop one chosen edge, insert two compatible replacements) until a fixed
// point. The witness list (ascending edge order) seeds edge fixing in the
// formulation stage.
// Complexity: O(E²) per improvement pass.
func IndependentEdgeSet(g *bcgraph.Graph) []bcgraph.Edge {
	edges := g.Edges()
	adj := coCoverAdjacency(g)

	// Greedy in ascending co-coverability degree: edges compatible with many
	// bicliques are the least useful witnesses.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(adj[order[a]]) < len(adj[order[b]])
	})
	chosen := greedyIndependent(adj, order)

	for improveByExchange(adj, chosen) {
	}

	out := make([]bcgraph.Edge, 0, len(chosen))
	for i, ok := range chosen {
		if ok {
			out = append(out, edges[i])
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].U != out[b].U {
			return out[a].U < out[b].U
		}

		return out[a].V < out[b].V
	})

	return out
}

// greedyConflictingEdges is the cheap single-pass variant: a maximal set of
// pairwise conflicting edges in plain edge order, no improvement. Weaker than
// IndependentEdgeSet and much faster on dense instances.
func greedyConflictingEdges(g *bcgraph.Graph) []bcgraph.Edge {
	edges := g.Edges()
	adj := coCoverAdjacency(g)
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	chosen := greedyIndependent(adj, order)

	out := make([]bcgraph.Edge, 0)
	for i, ok := range chosen {
		if ok {
			out = append(out, edges[i])
		}
	}

	return out
}

// greedyIndependent picks, in the given order, every index compatible with
// all previously picked ones. adj lists the incompatible partners per index.
func greedyIndependent(adj [][]int, order []int) map[int]bool {
	chosen := make(map[int]bool, len(adj))
	blocked := make([]bool, len(adj))
	for _, i := range order {
		if blocked[i] {
			continue
		}
		chosen[i] = true
		for _, j := range adj[i] {
			blocked[j] = true
		}
	}

	return chosen
}

// improveByExchange attempts one (1,2)-exchange: remove a chosen index whose
// removal frees two mutually compatible candidates. Reports whether the set
// grew.
func improveByExchange(adj [][]int, chosen map[int]bool) bool {
	conflictsWithChosen := func(i int, skip int) int {
		n := 0
		for _, j := range adj[i] {
			if chosen[j] && j != skip {
				n++
			}
		}

		return n
	}

	removable := make([]int, 0, len(chosen))
	for i := range chosen {
		removable = append(removable, i)
	}
	sort.Ints(removable)

	for _, rem := range removable {
		// Candidates blocked only by rem.
		free := make([]int, 0)
		for i := range adj {
			if !chosen[i] && i != rem && conflictsWithChosen(i, rem) == 0 {
				free = append(free, i)
			}
		}
		if len(free) < 2 {
			continue
		}
		sort.Ints(free)
		for a := 0; a < len(free); a++ {
			for b := a + 1; b < len(free); b++ {
				if !contains(adj[free[a]], free[b]) {
					delete(chosen, rem)
					chosen[free[a]] = true
					chosen[free[b]] = true

					return true
				}
			}
		}
	}

	return false
}

// greedyClique finds a large clique of g: from each of the highest-degree
// seed vertices, extend greedily by the highest-degree vertex adjacent to the
// whole current clique; keep the best. The size never exceeds ω(g), so
// ceil(log2 ω̃) stays a certified bound on bc(g): covering a clique on n
// vertices needs at least ceil(log2 n) bicliques.
// Complexity: O(seeds·V·E)
func greedyClique(g *bcgraph.Graph) []int {
	vertices := g.Vertices()
	sort.SliceStable(vertices, func(a, b int) bool {
		return g.Degree(vertices[a]) > g.Degree(vertices[b])
	})

	const maxSeeds = 24
	seeds := vertices
	if len(seeds) > maxSeeds {
		seeds = seeds[:maxSeeds]
	}

	best := []int{}
	for _, seed := range seeds {
		clique := []int{seed}
		for _, v := range vertices {
			if v == seed {
				continue
			}
			ok := true
			for _, c := range clique {
				if !g.HasEdge(v, c) {
					ok = false
					break
				}
			}
			if ok {
				clique = append(clique, v)
			}
		}
		if len(clique) > len(best) {
			best = clique
		}
	}
	sort.Ints(best)

	return best
}

// log2Ceil returns ceil(log2(n)) for n ≥ 1, the cover bound for a clique on
// n vertices.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	k := 0
	for c := 1; c < n; c *= 2 {
		k++
	}

	return k
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
