// SPDX-License-Identifier: MIT

package bounds

import "github.com/katalvlaran/bicover/bcgraph"

// noMatch marks an unmatched vertex in the matching maps.
const noMatch = -1

// maximumMatching computes a large matching of g: a greedy maximal matching
// followed by alternating-path augmentation rounds. Without blossom
// contraction the result can fall short of the true maximum on some
// non-bipartite graphs, which is safe here: the matching bound is monotone
// in the matching size, so any valid matching certifies it.
//
// Returns the matched-partner map (noMatch for unmatched vertices) and the
// number of matched pairs.
// Complexity: O(V·E) worst case.
func maximumMatching(g *bcgraph.Graph) (map[int]int, int) {
	mate := make(map[int]int, g.NumVertices())
	for _, v := range g.Vertices() {
		mate[v] = noMatch
	}

	// Greedy maximal matching in deterministic edge order.
	size := 0
	for _, e := range g.Edges() {
		if mate[e.U] == noMatch && mate[e.V] == noMatch {
			mate[e.U], mate[e.V] = e.V, e.U
			size++
		}
	}

	// Augmentation rounds: grow via simple alternating paths from each
	// unmatched vertex until a round yields no improvement.
	for improved := true; improved; {
		improved = false
		for _, root := range g.Vertices() {
			if mate[root] != noMatch {
				continue
			}
			if augment(g, mate, root) {
				size++
				improved = true
			}
		}
	}

	return mate, size
}

// augment searches for an alternating path from the unmatched root and flips
// it when found. DFS over (unmatched edge, matched edge) steps.
func augment(g *bcgraph.Graph, mate map[int]int, root int) bool {
	visited := map[int]bool{root: true}

	var dfs func(v int) bool
	dfs = func(v int) bool {
		for _, u := range g.Neighbors(v) {
			if visited[u] {
				continue
			}
			visited[u] = true
			w := mate[u]
			if w == noMatch {
				// Augmenting path ends here; flip the last edge.
				mate[v], mate[u] = u, v

				return true
			}
			visited[w] = true
			if dfs(w) {
				mate[v], mate[u] = u, v

				return true
			}
		}

		return false
	}

	return dfs(root)
}
