// SPDX-License-Identifier: MIT

package bounds

import "github.com/katalvlaran/bicover/bcgraph"

// Pair is a certified bound pair on bc(g). Invariant after Compute:
// 0 ≤ Lower ≤ Upper ≤ |E|, with (0, 0) exactly for edgeless graphs.
// A Pair is never mutated after computation.
type Pair struct {
	Lower int
	Upper int
}

// Compute runs one lower-bound and one upper-bound method and returns the
// bound pair together with the upper bound's Cover certificate (warm-start
// and candidate-sizing input for the formulation stage).
//
// The pair invariant is enforced here: any nonempty graph gets Lower ≥ 1,
// and a lower bound that exceeds the heuristic upper bound (possible only
// through estimator slack) is clamped down to keep the pair ordered.
func Compute(g *bcgraph.Graph, lbm LBMethod, ubm UBMethod) (Pair, bcgraph.Cover, error) {
	if g.NumEdges() == 0 {
		return Pair{}, bcgraph.Cover{}, nil
	}

	cover, err := UpperBound(g, ubm)
	if err != nil {
		return Pair{}, nil, err
	}
	lb, err := LowerBound(g, lbm)
	if err != nil {
		return Pair{}, nil, err
	}

	if lb < 1 {
		lb = 1
	}
	if lb > len(cover) {
		lb = len(cover)
	}

	return Pair{Lower: lb, Upper: len(cover)}, cover, nil
}
