// SPDX-License-Identifier: MIT

package formulation

import (
	"github.com/katalvlaran/bicover/bcgraph"
	"github.com/katalvlaran/bicover/mip"
)

// FixEdges pins the first candidates onto a witness of pairwise conflicting
// edges. No two witness edges fit in one biclique, so forcing edge b into
// candidate b cuts symmetric branches without excluding any optimum. The
// pinning is done through variable bounds: for witness edge (u, v) on
// candidate b, u joins side A, v joins side B, the forward arc is covered,
// the backward arc is closed, and the candidate opens.
func (m *Model) FixEdges(witness []bcgraph.Edge) {
	n := len(witness)
	if n > m.k {
		n = m.k
	}
	for b := 0; b < n; b++ {
		e := witness[b]
		i := m.eidx[e]
		m.s.SetVarBounds(m.side[0][b][m.vidx[e.U]], 1, 1)
		m.s.SetVarBounds(m.side[1][b][m.vidx[e.V]], 1, 1)
		m.s.SetVarBounds(m.y[2*i][b], 1, 1)
		m.s.SetVarBounds(m.y[2*i+1][b], 0, 0)
		m.s.SetVarBounds(m.z[b], 1, 1)
	}
}

// ConflictRows adds, for every conflicting edge pair and every candidate,
// the row forbidding both edges from being covered by that candidate.
// Pairs are indices into g.Edges(), as produced by bounds.ConflictingPairs.
func (m *Model) ConflictRows(pairs [][2]int) {
	for _, p := range pairs {
		for b := 0; b < m.k; b++ {
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 1, Terms: []mip.Term{
				{Var: m.y[2*p[0]][b], Coef: 1},
				{Var: m.y[2*p[0]+1][b], Coef: 1},
				{Var: m.y[2*p[1]][b], Coef: 1},
				{Var: m.y[2*p[1]+1][b], Coef: 1},
			}})
		}
	}
}

// CommonNeighborRows adds the triangle rows of the Extended model: a
// biclique is bipartite, so at most two of a triangle's three edges can be
// covered by one candidate. Returns ErrUnsupportedInequality on a Natural
// model, whose continuous linking variables make the row meaningless at
// fractional points.
func (m *Model) CommonNeighborRows() error {
	if m.kind != Extended {
		return ErrUnsupportedInequality
	}

	for _, tri := range m.g.Triangles() {
		edges := []bcgraph.Edge{
			bcgraph.NormalizeEdge(tri[0], tri[1]),
			bcgraph.NormalizeEdge(tri[0], tri[2]),
			bcgraph.NormalizeEdge(tri[1], tri[2]),
		}
		for b := 0; b < m.k; b++ {
			terms := make([]mip.Term, 0, 6)
			for _, e := range edges {
				i := m.eidx[e]
				terms = append(terms,
					mip.Term{Var: m.y[2*i][b], Coef: 1},
					mip.Term{Var: m.y[2*i+1][b], Coef: 1})
			}
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Terms: terms, Hi: 2})
		}
	}

	return nil
}

// Separator returns the fractional validity separator: it scans the current
// relaxation values for non-adjacent ordered pairs facing each other across
// a candidate beyond tolerance and emits the violated rows. Side-effect-free
// on the model; the solver appends whatever it returns.
func (m *Model) Separator() mip.Separator {
	nonAdjacent := m.g.NonAdjacentArcs()

	return func(values []float64) []mip.Row {
		var out []mip.Row
		for _, na := range nonAdjacent {
			u, w := m.vidx[na.From], m.vidx[na.To]
			for b := 0; b < m.k; b++ {
				lhs := values[m.side[0][b][u]] + values[m.side[1][b][w]]
				if lhs > values[m.z[b]]+sepTol {
					out = append(out, mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
						{Var: m.side[0][b][u], Coef: 1},
						{Var: m.side[1][b][w], Coef: 1},
						{Var: m.z[b], Coef: -1},
					}})
				}
			}
		}

		return out
	}
}

// EnableSeparation registers the fractional separator on the solver.
func (m *Model) EnableSeparation() {
	m.s.SetSeparator(m.Separator())
}
