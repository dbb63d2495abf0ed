// SPDX-License-Identifier: MIT

// Package bcgraph defines the immutable graph model consumed by every other
// stage of the engine, together with the Biclique and Cover certificate types.
//
// A Graph is a simple undirected graph over stable non-negative integer
// vertex ids: no self-loops, no parallel edges. It is built once, from an
// explicit edge list or by the bcio readers, and is strictly read-only
// afterwards, so a single Graph value may be shared freely across bounding,
// formulation and solving without synchronization.
//
// # Determinism
//
// All iteration orders are deterministic: Vertices and Edges return ascending
// slices, Arcs enumerates both orientations of each edge in edge order, and
// NonAdjacentArcs enumerates complement arcs in ascending (from, to) order.
// Every downstream component (bound estimators, candidate seeding, model
// variable indexing) relies on this to produce reproducible runs.
//
// # Certificates
//
// A Biclique is a pair of disjoint, non-empty vertex sides (A, B); it covers
// edge (u,v) when the endpoints fall on opposite sides. A Cover is an ordered
// sequence of bicliques; Cover.Validate confirms that each biclique is
// complete bipartite in the graph and that every graph edge is covered;
// the round-trip check applied to heuristic certificates and solver output
// alike.
//
// Errors:
//
//	ErrNegativeVertex - an edge endpoint is a negative id.
//	ErrSelfLoop       - an edge joins a vertex to itself.
package bcgraph
