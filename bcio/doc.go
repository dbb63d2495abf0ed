// SPDX-License-Identifier: MIT

// Package bcio reads the engine's external inputs: graph files and run
// configuration documents.
//
// Graphs come in two formats, selected by file extension:
//
//   - .txt: a header line whose last whitespace token is the edge count,
//     then one "u v" pair per line.
//   - .gml: the subset of GML with node [ id N ] and
//     edge [ source N target N ] blocks.
//
// Run configurations are YAML documents (JSON parses too, being a YAML
// subset) with a defaults block cascading into per-run overrides:
//
//	defaults:
//	  model: natural
//	  time_limit: 600
//	runs:
//	  - name: bc-$graph-$model
//	    graph: data/grid9.txt
//	  - graph: data/c5.gml
//	    model: extended
//
// Every parse or validation failure wraps ErrParse.
package bcio
