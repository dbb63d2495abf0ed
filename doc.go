// Package bicover computes minimum biclique covers of simple undirected
// graphs: certified lower and upper bounds, two mixed-integer programming
// formulations, and a run driver that couples both to an external
// branch-and-bound solver through warm starts and lazily separated cuts.
//
// A biclique is a complete bipartite subgraph (A, B): every vertex of A is
// adjacent to every vertex of B. A biclique cover is a sequence of bicliques
// whose covered edges together equal the whole edge set; the minimum biclique
// cover number bc(G) is the smallest such sequence.
//
// The work is organized under focused subpackages:
//
//	bcgraph/     - immutable graph model, Biclique and Cover certificate types
//	bounds/      - lower-bound estimators (matching, conflict clique, spectral)
//	               and upper-bound heuristics (stars, merged stars)
//	mip/         - the narrow solver interface and the HiGHS backend
//	formulation/ - Natural and Extended MIP encodings plus inequality generators
//	run/         - run configuration, the solve state machine, batch execution
//	bcio/        - edge-list / GML graph readers and run-config loading
//	cmd/bicover  - command-line entry point
//
// Quick ASCII example, the 4-cycle:
//
//	1───2          the star heuristic covers it with ({1},{2,4}) and
//	│   │          ({3},{2,4}); merging them shows C4 is K_{2,2}, so the
//	4───3          single biclique ({1,3},{2,4}) is optimal: bc(C4) = 1
//
// The bounding stage always runs first: the upper-bound certificate sizes the
// candidate set of the integer program, and its bicliques seed the warm start.
package bicover
