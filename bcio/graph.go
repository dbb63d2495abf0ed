// SPDX-License-Identifier: MIT

package bcio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/bicover/bcgraph"
)

// ErrParse indicates malformed graph or configuration input.
var ErrParse = errors.New("bcio: parse error")

// ReadGraph reads a graph file, dispatching on the extension (.txt edge
// list or .gml). Self-loops and negative ids are rejected; duplicate edges
// collapse.
func ReadGraph(path string) (*bcgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	var edges []bcgraph.Edge
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		edges, err = parseEdgeList(f)
	case ".gml":
		edges, err = parseGML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported graph format %q", ErrParse, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	g, err := bcgraph.NewGraph(edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return g, nil
}

// parseEdgeList reads the header line (its last token is the declared edge
// count) and then one "u v" pair per non-blank line.
func parseEdgeList(r io.Reader) ([]bcgraph.Edge, error) {
	sc := bufio.NewScanner(r)

	declared := -1
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad header %q", sc.Text())
		}
		declared = n

		break
	}
	if declared < 0 {
		return nil, errors.New("missing header line")
	}

	edges := make([]bcgraph.Edge, 0, declared)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad edge line %q", sc.Text())
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("bad endpoint %q", fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad endpoint %q", fields[1])
		}
		edges = append(edges, bcgraph.Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(edges) != declared {
		return nil, fmt.Errorf("header declares %d edges, found %d", declared, len(edges))
	}

	return edges, nil
}

// parseGML reads the node/edge block subset of GML. Unknown keys inside a
// block are skipped; nodes without edges are ignored since the engine keys
// everything off the edge set.
func parseGML(r io.Reader) ([]bcgraph.Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}

		return sc.Text(), true
	}

	var edges []bcgraph.Edge
	for {
		tok, ok := next()
		if !ok {
			break
		}
		if tok != "edge" {
			continue
		}
		if tok, ok = next(); !ok || tok != "[" {
			return nil, errors.New("edge block without [")
		}

		source, target := -1, -1
		for {
			key, ok := next()
			if !ok {
				return nil, errors.New("unterminated edge block")
			}
			if key == "]" {
				break
			}
			val, ok := next()
			if !ok {
				return nil, errors.New("unterminated edge block")
			}
			switch key {
			case "source", "target":
				n, err := strconv.Atoi(val)
				if err != nil {
					return nil, fmt.Errorf("bad %s %q", key, val)
				}
				if key == "source" {
					source = n
				} else {
					target = n
				}
			}
		}
		if source < 0 || target < 0 {
			return nil, errors.New("edge block missing source or target")
		}
		edges = append(edges, bcgraph.Edge{U: source, V: target})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}
