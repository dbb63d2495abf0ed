// SPDX-License-Identifier: MIT

package bounds

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bicover/bcgraph"
)

// UpperBound computes a feasible biclique cover of g with the configured
// heuristic; its length is the upper bound on bc(g). An edgeless graph
// yields the empty cover. Returns ErrUnknownMethod for an unrecognized
// method; no heuristic fails on well-formed input.
func UpperBound(g *bcgraph.Graph, method UBMethod) (bcgraph.Cover, error) {
	if g.NumEdges() == 0 {
		return bcgraph.Cover{}, nil
	}

	switch method {
	case UBNumber:
		return edgeCover(g), nil
	case UBVertex:
		return starCover(g), nil
	case UBMergeStars:
		return mergeStars(g, starCover(g)), nil
	default:
		return nil, fmt.Errorf("upper-bound method %q: %w", method, ErrUnknownMethod)
	}
}

// edgeCover covers each edge with its own single-pair biclique. Trivially
// feasible, never tight; useful only as a worst-case candidate cap.
// Complexity: O(E)
func edgeCover(g *bcgraph.Graph) bcgraph.Cover {
	cover := make(bcgraph.Cover, 0, g.NumEdges())
	for _, e := range g.Edges() {
		cover = append(cover, bcgraph.NewBiclique([]int{e.U}, []int{e.V}))
	}

	return cover
}

// starCover is the greedy star heuristic: repeatedly pick the vertex with the
// most uncovered incident edges (ties by smaller id), emit the star biclique
// ({v}, uncovered neighbors of v), and mark those edges covered.
// Deterministic by construction.
// Complexity: O(V·E)
func starCover(g *bcgraph.Graph) bcgraph.Cover {
	uncovered := make(map[bcgraph.Edge]struct{}, g.NumEdges())
	for _, e := range g.Edges() {
		uncovered[e] = struct{}{}
	}

	uncoveredDegree := func(v int) int {
		n := 0
		for _, u := range g.Neighbors(v) {
			if _, ok := uncovered[bcgraph.NormalizeEdge(v, u)]; ok {
				n++
			}
		}

		return n
	}

	cover := make(bcgraph.Cover, 0)
	for len(uncovered) > 0 {
		best, bestDeg := -1, 0
		for _, v := range g.Vertices() {
			if d := uncoveredDegree(v); d > bestDeg {
				best, bestDeg = v, d
			}
		}

		leaves := make([]int, 0, bestDeg)
		for _, u := range g.Neighbors(best) {
			e := bcgraph.NormalizeEdge(best, u)
			if _, ok := uncovered[e]; ok {
				leaves = append(leaves, u)
				delete(uncovered, e)
			}
		}
		cover = append(cover, bcgraph.NewBiclique([]int{best}, leaves))
	}

	return cover
}

// mergeStars improves a star cover by greedy pairwise merging: two bicliques
// are replaced by one whenever some union of their sides is still disjoint
// and complete bipartite in g (the merged biclique covers a superset of their
// edges). Both the parallel union (A1∪A2, B1∪B2) and the crossed union
// (A1∪B2, B1∪A2) are tried; passes repeat until no merge applies, a local
// optimum, never larger than the input cover.
// Complexity: O(passes·k²·V²) for k input bicliques.
func mergeStars(g *bcgraph.Graph, in bcgraph.Cover) bcgraph.Cover {
	cover := make(bcgraph.Cover, len(in))
	copy(cover, in)

	for merged := true; merged; {
		merged = false
	search:
		for i := 0; i < len(cover); i++ {
			for j := i + 1; j < len(cover); j++ {
				m, ok := tryMerge(g, cover[i], cover[j])
				if !ok {
					continue
				}
				cover[i] = m
				cover = append(cover[:j], cover[j+1:]...)
				merged = true
				break search
			}
		}
	}

	return cover
}

// tryMerge returns a valid merge of two bicliques, preferring the parallel
// orientation, or ok=false when neither orientation stays complete bipartite.
func tryMerge(g *bcgraph.Graph, x, y bcgraph.Biclique) (bcgraph.Biclique, bool) {
	parallel := bcgraph.NewBiclique(union(x.A, y.A), union(x.B, y.B))
	if parallel.CompleteIn(g) {
		return parallel, true
	}
	crossed := bcgraph.NewBiclique(union(x.A, y.B), union(x.B, y.A))
	if crossed.CompleteIn(g) {
		return crossed, true
	}

	return bcgraph.Biclique{}, false
}

func union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Ints(out)

	return out
}
