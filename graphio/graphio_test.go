// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/graphio"
	"github.com/katalvlaran/mstforest/mst"
)

const squareText = `# four vertices, five edges
4
A
B
C
D

A B 1
B C 2
C D 3
A D 10
A C 5
`

const squareTOML = `
vertices = ["A", "B", "C", "D"]

[[edge]]
from = "A"
to = "B"
weight = 1

[[edge]]
from = "B"
to = "C"
weight = 2

[[edge]]
from = "C"
to = "D"
weight = 3

[[edge]]
from = "A"
to = "D"
weight = 10

[[edge]]
from = "A"
to = "C"
weight = 5
`

const squareHCL = `
vertex "A" {}
vertex "B" {}
vertex "C" {}
vertex "D" {}

edge {
  from   = "A"
  to     = "B"
  weight = 1
}
edge {
  from   = "B"
  to     = "C"
  weight = 2
}
edge {
  from   = "C"
  to     = "D"
  weight = 3
}
edge {
  from   = "A"
  to     = "D"
  weight = 10
}
edge {
  from   = "A"
  to     = "C"
  weight = 5
}
`

func TestRead_AllFormatsAgree(t *testing.T) {
	sources := map[graphio.Format]string{
		graphio.FormatText: squareText,
		graphio.FormatTOML: squareTOML,
		graphio.FormatHCL:  squareHCL,
	}
	for f, src := range sources {
		t.Run(string(f), func(t *testing.T) {
			doc, err := graphio.Read(strings.NewReader(src), f, "square."+string(f))
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C", "D"}, doc.Vertices)
			require.Len(t, doc.Edges, 5)
			assert.Equal(t, graphio.EdgeRecord{From: "A", To: "D", Weight: 10}, doc.Edges[3])

			g, err := doc.Graph()
			require.NoError(t, err)
			res, err := mst.Solve(g)
			require.NoError(t, err)
			assert.Equal(t, 6.0, res.TotalWeight)
		})
	}
}

func TestReadText_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", "# nothing\n\n"},
		{"bad count", "three\nA\n"},
		{"negative count", "-1\n"},
		{"too few names", "3\nA\nB\n"},
		{"name with space", "1\nA B\n"},
		{"duplicate name", "2\nA\nA\n"},
		{"short edge", "2\nA\nB\nA B\n"},
		{"bad weight", "2\nA\nB\nA B heavy\n"},
		{"undeclared endpoint", "2\nA\nB\nA Z 1\n"},
		{"infinite weight", "2\nA\nB\nA B +Inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphio.ReadText(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, graphio.ErrSyntax)
		})
	}
}

func TestReadText_LineNumbers(t *testing.T) {
	_, err := graphio.ReadText(strings.NewReader("2\nA\n# gap\nB\nA B x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
}

func TestReadText_SelfLoopsAndNegativeWeights(t *testing.T) {
	doc, err := graphio.ReadText(strings.NewReader("2\nA\nB\nA A 0\nA B -2.5\nB A 4\n"))
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestReadTOML_Errors(t *testing.T) {
	_, err := graphio.ReadTOML(strings.NewReader("vertices = [\"A\"\n"))
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.ReadTOML(strings.NewReader("vertices = [\"A\"]\ncolour = \"red\"\n"))
	assert.ErrorIs(t, err, graphio.ErrSyntax, "unknown keys are rejected")

	_, err = graphio.ReadTOML(strings.NewReader("vertices = [\"A\"]\n[[edge]]\nfrom = \"A\"\nto = \"B\"\nweight = 1\n"))
	assert.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestReadHCL_Errors(t *testing.T) {
	_, err := graphio.ReadHCL(strings.NewReader("vertex \"A\" {"), "broken.hcl")
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.ReadHCL(strings.NewReader("vertex \"A\" {}\nedge {\n from = \"A\"\n}\n"), "partial.hcl")
	assert.ErrorIs(t, err, graphio.ErrSyntax, "to and weight are required")
}

func TestWriteText_RejectsWhitespaceNames(t *testing.T) {
	var buf bytes.Buffer
	err := graphio.WriteText(&buf, &graphio.Document{Vertices: []string{"New York"}})
	assert.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestSaveLoad_PreservesOrder(t *testing.T) {
	src, err := graphio.ReadText(strings.NewReader(squareText))
	require.NoError(t, err)
	g, err := src.Graph()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"g.txt", "g.toml", "g.hcl"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, graphio.Save(path, g, ""))

			loaded, err := graphio.Load(context.Background(), path, "")
			require.NoError(t, err)
			assert.Equal(t, src, graphio.FromGraph(loaded))
		})
	}
}

func TestFormatSelection(t *testing.T) {
	f, err := graphio.FormatFromPath("/tmp/x.GRAPH")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatText, f)

	_, err = graphio.FormatFromPath("graph.json")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	f, err = graphio.ParseFormat("HCL")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatHCL, f)

	_, err = graphio.ParseFormat("yaml")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	_, err = graphio.Load(context.Background(), "graph.json", "")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestLoad_ExplicitFormatOverridesExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.data")
	require.NoError(t, os.WriteFile(path, []byte(squareText), 0o644))

	g, err := graphio.Load(context.Background(), path, graphio.FormatText)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	_, err = graphio.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
