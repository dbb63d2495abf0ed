// SPDX-License-Identifier: MIT

package bcio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/bcio"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadGraph_EdgeList(t *testing.T) {
	path := writeFile(t, "c4.txt", "4 4\n1 2\n2 3\n3 4\n4 1\n")
	g, err := bcio.ReadGraph(path)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(4, 1))
	require.False(t, g.HasEdge(1, 3))
}

func TestReadGraph_EdgeListSkipsBlankLinesAndDedups(t *testing.T) {
	path := writeFile(t, "g.txt", "2\n\n1 2\n\n2 1\n")
	g, err := bcio.ReadGraph(path)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumEdges())
}

func TestReadGraph_EdgeListHeaderMismatch(t *testing.T) {
	path := writeFile(t, "bad.txt", "3\n1 2\n2 3\n")
	_, err := bcio.ReadGraph(path)
	require.ErrorIs(t, err, bcio.ErrParse)
}

func TestReadGraph_EdgeListSelfLoop(t *testing.T) {
	path := writeFile(t, "loop.txt", "1\n2 2\n")
	_, err := bcio.ReadGraph(path)
	require.ErrorIs(t, err, bcio.ErrParse)
}

func TestReadGraph_EdgeListBadTokens(t *testing.T) {
	for name, content := range map[string]string{
		"header":   "x\n",
		"empty":    "",
		"endpoint": "1\n1 two\n",
		"arity":    "1\n1 2 3\n",
	} {
		path := writeFile(t, name+".txt", content)
		_, err := bcio.ReadGraph(path)
		require.ErrorIs(t, err, bcio.ErrParse, name)
	}
}

func TestReadGraph_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "g.csv", "1,2\n")
	_, err := bcio.ReadGraph(path)
	require.ErrorIs(t, err, bcio.ErrParse)
}

func TestReadGraph_GML(t *testing.T) {
	path := writeFile(t, "p3.gml", `
graph [
  node [ id 1 ]
  node [ id 2 ]
  node [ id 3 ]
  edge [ source 1 target 2 ]
  edge [ source 2 target 3 ]
]
`)
	g, err := bcio.ReadGraph(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.NumEdges())
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 3))
}

func TestReadGraph_GMLMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"missingTarget": "graph [ edge [ source 1 ] ]",
		"unterminated":  "graph [ edge [ source 1 target",
		"badSource":     "graph [ edge [ source one target 2 ] ]",
		"noBracket":     "graph [ edge source 1 target 2 ]",
	} {
		path := writeFile(t, name+".gml", content)
		_, err := bcio.ReadGraph(path)
		require.ErrorIs(t, err, bcio.ErrParse, name)
	}
}
