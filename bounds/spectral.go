// SPDX-License-Identifier: MIT

package bounds

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bicover/bcgraph"
)

// spectralBound is the "lovasz" estimator: a Hoffman-style eigenvalue bound.
//
// For the adjacency spectrum λ_max ≥ ... ≥ λ_min of g, the chromatic number
// satisfies χ(g) ≥ 1 + λ_max/|λ_min|, and covering g takes at least
// ceil(log2 χ(g)) bicliques, so ceil(log2(1 + λ_max/|λ_min|)) never exceeds
// bc(g). This replaces the semidefinite theta relaxation with a plain
// symmetric eigendecomposition; it is exact on complete graphs
// (λ_max = n−1, λ_min = −1 gives ceil(log2 n)) and certified everywhere.
//
// Complexity: O(V³) for the eigendecomposition.
func spectralBound(g *bcgraph.Graph) int {
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 || g.NumEdges() == 0 {
		return 0
	}

	index := make(map[int]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	a := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		a.SetSym(index[e.U], index[e.V], 1)
	}

	var eig mat.EigenSym
	if !eig.Factorize(a, false) {
		// Factorization failure degrades to the weakest certified bound.
		return 1
	}
	values := eig.Values(nil) // ascending order

	lambdaMin, lambdaMax := values[0], values[n-1]
	if lambdaMin >= -1e-9 {
		// No negative eigenvalue only happens without edges; guarded above.
		return 1
	}
	ratio := 1 + lambdaMax/(-lambdaMin)
	if ratio <= 1 {
		return 1
	}

	// χ is integral, so χ ≥ ceil(ratio); the epsilon absorbs eigenvalue noise
	// that would otherwise push 2.0000001 up to 3.
	return log2Ceil(int(math.Ceil(ratio - 1e-6)))
}
