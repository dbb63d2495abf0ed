// SPDX-License-Identifier: MIT

package formulation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bicover/bcgraph"
	"github.com/katalvlaran/bicover/mip"
)

// Sentinel errors for model construction and strengthening.
var (
	// ErrUnknownKind indicates a model kind outside {natural, extended}.
	ErrUnknownKind = errors.New("formulation: unknown model kind")

	// ErrNoCandidates indicates a non-positive candidate budget.
	ErrNoCandidates = errors.New("formulation: candidate count must be positive")

	// ErrCoverTooLarge indicates a warm-start cover wider than the candidate
	// budget.
	ErrCoverTooLarge = errors.New("formulation: warm cover exceeds candidate count")

	// ErrUnsupportedInequality indicates an inequality family the chosen
	// model kind does not carry.
	ErrUnsupportedInequality = errors.New("formulation: inequality not supported by this model")
)

// Kind selects the model family.
type Kind string

const (
	// Natural is the membership/linking model with explicit validity rows.
	Natural Kind = "natural"

	// Extended is the indicator model with binary per-arc coverage.
	Extended Kind = "extended"
)

// ParseKind maps a configuration string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Natural, Extended:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Options parameterizes Build.
type Options struct {
	// Kind selects the model family.
	Kind Kind

	// Candidates is K, the number of candidate bicliques. A feasible model
	// needs K at least bc(g); the run driver passes a certified upper bound.
	Candidates int

	// OmitValidity leaves the validity rows out of the upfront model; the
	// fractional Separator must then be registered to emit them lazily.
	OmitValidity bool
}

// sepTol is the violation tolerance of the fractional separator, and half
// the rounding threshold of cover extraction.
const (
	sepTol = 1e-6
	half   = 0.5
)

// Model is one built formulation, bound to the solver it was loaded into.
// Variable ids are retained so that strengthening, warm starts, and cover
// extraction address the same columns the rows do.
type Model struct {
	kind Kind
	g    *bcgraph.Graph
	s    mip.Solver
	k    int

	vertices []int
	vidx     map[int]int
	eidx     map[bcgraph.Edge]int
	arcs     []bcgraph.Arc

	z    []mip.VarID      // z[b]
	side [2][][]mip.VarID // side[s][b][vi]: x (Natural) or p (Extended)
	y    [][]mip.VarID    // y[ai][b]; arc 2i is edge i forward, 2i+1 backward
}

// Build registers the variables, rows, and objective of the chosen model
// kind on s and returns the bound Model.
func Build(g *bcgraph.Graph, s mip.Solver, opts Options) (*Model, error) {
	if opts.Candidates < 1 {
		return nil, ErrNoCandidates
	}
	if opts.Kind != Natural && opts.Kind != Extended {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind)
	}

	m := &Model{
		kind:     opts.Kind,
		g:        g,
		s:        s,
		k:        opts.Candidates,
		vertices: g.Vertices(),
		arcs:     g.Arcs(),
	}
	m.vidx = make(map[int]int, len(m.vertices))
	for i, v := range m.vertices {
		m.vidx[v] = i
	}
	m.eidx = make(map[bcgraph.Edge]int, g.NumEdges())
	for i, e := range g.Edges() {
		m.eidx[e] = i
	}

	m.registerVars()
	switch m.kind {
	case Natural:
		m.naturalRows()
	case Extended:
		m.extendedRows()
	}
	if !opts.OmitValidity {
		m.validityRows()
	}
	m.coverageRows()
	m.symmetryRows()

	obj := make([]mip.Term, m.k)
	for b, id := range m.z {
		obj[b] = mip.Term{Var: id, Coef: 1}
	}
	s.SetObjective(obj, true)

	return m, nil
}

// Kind reports the model family.
func (m *Model) Kind() Kind { return m.kind }

// Candidates reports the candidate budget K.
func (m *Model) Candidates() int { return m.k }

// NumVars reports the number of registered variables.
func (m *Model) NumVars() int {
	return m.k + 2*len(m.vertices)*m.k + len(m.arcs)*m.k
}

func (m *Model) registerVars() {
	letter := "x"
	if m.kind == Extended {
		letter = "p"
	}

	m.z = make([]mip.VarID, m.k)
	for b := range m.z {
		m.z[b] = m.s.AddBinaryVar(fmt.Sprintf("z[%d]", b))
	}

	for side := 0; side < 2; side++ {
		m.side[side] = make([][]mip.VarID, m.k)
		for b := range m.side[side] {
			m.side[side][b] = make([]mip.VarID, len(m.vertices))
		}
	}
	for b := 0; b < m.k; b++ {
		for vi, v := range m.vertices {
			for side := 0; side < 2; side++ {
				name := fmt.Sprintf("%s[%d][%d][%d]", letter, v, b, side)
				m.side[side][b][vi] = m.s.AddBinaryVar(name)
			}
		}
	}

	m.y = make([][]mip.VarID, len(m.arcs))
	for ai, a := range m.arcs {
		m.y[ai] = make([]mip.VarID, m.k)
		for b := 0; b < m.k; b++ {
			name := fmt.Sprintf("y[%d->%d][%d]", a.From, a.To, b)
			if m.kind == Extended {
				m.y[ai][b] = m.s.AddBinaryVar(name)
			} else {
				m.y[ai][b] = m.s.AddVar(name, 0, 1, false)
			}
		}
	}
}

// naturalRows loads coupling, exclusivity, and three-way linking rows.
func (m *Model) naturalRows() {
	for b := 0; b < m.k; b++ {
		for vi := range m.vertices {
			// x[v][b][side] ≤ z[b]
			for side := 0; side < 2; side++ {
				m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
					{Var: m.side[side][b][vi], Coef: 1},
					{Var: m.z[b], Coef: -1},
				}})
			}
			// x[v][b][0] + x[v][b][1] ≤ z[b]
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: m.side[0][b][vi], Coef: 1},
				{Var: m.side[1][b][vi], Coef: 1},
				{Var: m.z[b], Coef: -1},
			}})
		}
	}

	for ai, a := range m.arcs {
		from, to := m.vidx[a.From], m.vidx[a.To]
		for b := 0; b < m.k; b++ {
			yv := m.y[ai][b]
			xa := m.side[0][b][from]
			xb := m.side[1][b][to]
			// y ≤ x_A, y ≤ x_B, y ≥ x_A + x_B − z
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: yv, Coef: 1}, {Var: xa, Coef: -1},
			}})
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: yv, Coef: 1}, {Var: xb, Coef: -1},
			}})
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: xa, Coef: 1}, {Var: xb, Coef: 1},
				{Var: m.z[b], Coef: -1}, {Var: yv, Coef: -1},
			}})
		}
	}
}

// extendedRows loads exclusivity and two-way linking rows. Coverage pushes
// the binary y up, so no lower linking row is needed.
func (m *Model) extendedRows() {
	for b := 0; b < m.k; b++ {
		for vi := range m.vertices {
			// p[v][b][0] + p[v][b][1] ≤ z[b]
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: m.side[0][b][vi], Coef: 1},
				{Var: m.side[1][b][vi], Coef: 1},
				{Var: m.z[b], Coef: -1},
			}})
		}
	}

	for ai, a := range m.arcs {
		from, to := m.vidx[a.From], m.vidx[a.To]
		for b := 0; b < m.k; b++ {
			yv := m.y[ai][b]
			// y ≤ p_A, y ≤ p_B
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: yv, Coef: 1}, {Var: m.side[0][b][from], Coef: -1},
			}})
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: yv, Coef: 1}, {Var: m.side[1][b][to], Coef: -1},
			}})
		}
	}
}

// validityRows forbids every non-adjacent ordered pair from facing each
// other across one candidate: side0[u] + side1[w] ≤ z[b].
func (m *Model) validityRows() {
	for _, na := range m.g.NonAdjacentArcs() {
		u, w := m.vidx[na.From], m.vidx[na.To]
		for b := 0; b < m.k; b++ {
			m.s.AddRow(mip.Row{Lo: -mip.Inf, Hi: 0, Terms: []mip.Term{
				{Var: m.side[0][b][u], Coef: 1},
				{Var: m.side[1][b][w], Coef: 1},
				{Var: m.z[b], Coef: -1},
			}})
		}
	}
}

// coverageRows demands every edge be covered in at least one orientation by
// at least one candidate.
func (m *Model) coverageRows() {
	for i := range m.g.Edges() {
		terms := make([]mip.Term, 0, 2*m.k)
		for _, ai := range []int{2 * i, 2*i + 1} {
			for b := 0; b < m.k; b++ {
				terms = append(terms, mip.Term{Var: m.y[ai][b], Coef: 1})
			}
		}
		m.s.AddRow(mip.Row{Lo: 1, Terms: terms, Hi: mip.Inf})
	}
}

// symmetryRows orders the candidates: z[b] ≥ z[b+1].
func (m *Model) symmetryRows() {
	for b := 0; b+1 < m.k; b++ {
		m.s.AddRow(mip.Row{Lo: 0, Hi: mip.Inf, Terms: []mip.Term{
			{Var: m.z[b], Coef: 1},
			{Var: m.z[b+1], Coef: -1},
		}})
	}
}
