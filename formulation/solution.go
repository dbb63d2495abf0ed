// SPDX-License-Identifier: MIT

package formulation

import (
	"sort"

	"github.com/katalvlaran/bicover/bcgraph"
)

// WarmStart translates a feasible cover into a full variable assignment and
// hands it to the solver with its objective value. The cover's bicliques
// occupy the candidate prefix in order, which satisfies the symmetry rows.
//
// Every arc whose endpoints face each other across an open candidate gets
// its y set, not just one covering candidate per edge; the Natural model's
// lower linking row forces exactly that.
func (m *Model) WarmStart(cover bcgraph.Cover) error {
	if len(cover) > m.k {
		return ErrCoverTooLarge
	}

	values := make([]float64, m.NumVars())
	for b, bic := range cover {
		values[m.z[b]] = 1
		for _, v := range bic.A {
			values[m.side[0][b][m.vidx[v]]] = 1
		}
		for _, v := range bic.B {
			values[m.side[1][b][m.vidx[v]]] = 1
		}
	}
	for i, e := range m.g.Edges() {
		for b, bic := range cover {
			if memberOf(bic.A, e.U) && memberOf(bic.B, e.V) {
				values[m.y[2*i][b]] = 1
			}
			if memberOf(bic.A, e.V) && memberOf(bic.B, e.U) {
				values[m.y[2*i+1][b]] = 1
			}
		}
	}

	m.s.WarmStart(values, float64(len(cover)))

	return nil
}

// ExtractCover reads a solved assignment back into a Cover certificate.
// Candidates with z below the rounding threshold or with an empty side are
// dropped. Natural membership comes from the x variables, Extended
// membership from the covered arcs.
func (m *Model) ExtractCover(values []float64) bcgraph.Cover {
	cover := make(bcgraph.Cover, 0, m.k)
	for b := 0; b < m.k; b++ {
		if values[m.z[b]] < half {
			continue
		}

		var sideA, sideB []int
		if m.kind == Natural {
			for vi, v := range m.vertices {
				if values[m.side[0][b][vi]] >= half {
					sideA = append(sideA, v)
				}
				if values[m.side[1][b][vi]] >= half {
					sideB = append(sideB, v)
				}
			}
		} else {
			for ai, a := range m.arcs {
				if values[m.y[ai][b]] >= half {
					sideA = append(sideA, a.From)
					sideB = append(sideB, a.To)
				}
			}
		}
		if len(sideA) == 0 || len(sideB) == 0 {
			continue
		}
		cover = append(cover, bcgraph.NewBiclique(sideA, sideB))
	}

	return cover
}

// memberOf reports membership in an ascending id slice.
func memberOf(sorted []int, v int) bool {
	i := sort.SearchInts(sorted, v)

	return i < len(sorted) && sorted[i] == v
}
