// SPDX-License-Identifier: MIT

package bcgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeVertex indicates an edge endpoint with a negative id.
	ErrNegativeVertex = errors.New("bcgraph: negative vertex id")

	// ErrSelfLoop indicates an edge joining a vertex to itself.
	ErrSelfLoop = errors.New("bcgraph: self-loop not allowed")
)

// Edge is an undirected edge, normalized so that U < V.
type Edge struct {
	U, V int
}

// Arc is one orientation of an undirected edge.
type Arc struct {
	From, To int
}

// NormalizeEdge orders the endpoints so that U < V.
// Complexity: O(1)
func NormalizeEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Graph is a simple undirected graph over integer vertex ids.
//
// The zero value is not usable; construct with NewGraph. Once constructed a
// Graph is immutable: all methods are read-only and safe for concurrent use.
type Graph struct {
	vertices []int                    // ascending vertex ids
	edges    []Edge                   // ascending (U, V) pairs, U < V
	adjacent map[int]map[int]struct{} // adjacency sets
}

// NewGraph builds an immutable Graph from an edge list.
//
// Endpoints appearing in any edge become vertices; duplicate edges (in either
// orientation) collapse into one. Isolated vertices may be supplied through
// extraVertices; they participate in Vertices and NonAdjacentArcs but carry
// no edges.
//
// Returns ErrNegativeVertex or ErrSelfLoop on malformed input.
// Complexity: O((V + E)·log(V + E))
func NewGraph(edges []Edge, extraVertices ...int) (*Graph, error) {
	adjacent := make(map[int]map[int]struct{})
	touch := func(v int) map[int]struct{} {
		nbrs, ok := adjacent[v]
		if !ok {
			nbrs = make(map[int]struct{})
			adjacent[v] = nbrs
		}

		return nbrs
	}

	dedup := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, ErrNegativeVertex
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		ne := NormalizeEdge(e.U, e.V)
		if _, seen := dedup[ne]; seen {
			continue
		}
		dedup[ne] = struct{}{}
		touch(ne.U)[ne.V] = struct{}{}
		touch(ne.V)[ne.U] = struct{}{}
	}
	for _, v := range extraVertices {
		if v < 0 {
			return nil, ErrNegativeVertex
		}
		touch(v)
	}

	g := &Graph{
		vertices: make([]int, 0, len(adjacent)),
		edges:    make([]Edge, 0, len(dedup)),
		adjacent: adjacent,
	}
	for v := range adjacent {
		g.vertices = append(g.vertices, v)
	}
	sort.Ints(g.vertices)
	for e := range dedup {
		g.edges = append(g.edges, e)
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}

		return g.edges[i].V < g.edges[j].V
	})

	return g, nil
}

// NumVertices reports the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges reports the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Vertices returns the vertex ids in ascending order.
// The returned slice is a copy and may be mutated freely.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns the edge list in ascending (U, V) order.
// The returned slice is a copy and may be mutated freely.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether v is a vertex of the graph.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adjacent[v]

	return ok
}

// HasEdge reports whether {u, v} is an edge, in either orientation.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	nbrs, ok := g.adjacent[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Degree reports the number of neighbors of v (0 for unknown vertices).
func (g *Graph) Degree(v int) int { return len(g.adjacent[v]) }

// Neighbors returns the neighbors of v in ascending order.
// Complexity: O(d·log d) for degree d.
func (g *Graph) Neighbors(v int) []int {
	nbrs := g.adjacent[v]
	out := make([]int, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// CommonNeighbors returns the vertices adjacent to both u and v, ascending.
// Complexity: O(min(d_u, d_v)·log)
func (g *Graph) CommonNeighbors(u, v int) []int {
	a, b := g.adjacent[u], g.adjacent[v]
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make([]int, 0, len(a))
	for w := range a {
		if _, ok := b[w]; ok {
			out = append(out, w)
		}
	}
	sort.Ints(out)

	return out
}

// Arcs returns both orientations of every edge, in edge order with the
// forward orientation first. The Natural and Extended formulations index
// their per-arc variables by exactly this sequence.
// Complexity: O(E)
func (g *Graph) Arcs() []Arc {
	out := make([]Arc, 0, 2*len(g.edges))
	for _, e := range g.edges {
		out = append(out, Arc{From: e.U, To: e.V}, Arc{From: e.V, To: e.U})
	}

	return out
}

// NonAdjacentArcs returns every ordered pair (u, w) of distinct vertices with
// no edge between them, in ascending (u, w) order. These are the complement
// arcs that drive the biclique-validity constraints: u on side A and w on
// side B of one candidate is forbidden whenever (u, w) is such a pair.
// Complexity: O(V²)
func (g *Graph) NonAdjacentArcs() []Arc {
	out := make([]Arc, 0)
	for _, u := range g.vertices {
		for _, w := range g.vertices {
			if u == w || g.HasEdge(u, w) {
				continue
			}
			out = append(out, Arc{From: u, To: w})
		}
	}

	return out
}

// Triangles returns every unordered vertex triple forming a triangle, each
// reported once as an ascending triple. Consumed by the common-neighbor
// inequalities of the Extended model.
// Complexity: O(E·V)
func (g *Graph) Triangles() [][3]int {
	out := make([][3]int, 0)
	for _, e := range g.edges {
		for _, w := range g.CommonNeighbors(e.U, e.V) {
			if w > e.V { // e.U < e.V < w: count each triangle once
				out = append(out, [3]int{e.U, e.V, w})
			}
		}
	}

	return out
}
