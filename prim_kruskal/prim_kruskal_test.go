// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/builder"
	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/prim_kruskal"
)

// triangle is A-B(1), B-C(2), A-C(3); its MST is {A-B, B-C} with weight 3.
func triangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// randomConnected builds a seeded connected graph with integer weights in [1,100].
func randomConnected(tb testing.TB, n int, p float64, seed int64) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeights(1, 100), builder.WithSymbNumb("V")},
		builder.RandomConnected(n, p),
	)
	require.NoError(tb, err)

	return g
}

// undirectedKeys normalises edge endpoints so orientation does not matter.
func undirectedKeys(edges []core.Edge) map[string]bool {
	keys := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		keys[u+"-"+v] = true
	}

	return keys
}

func TestValidation(t *testing.T) {
	t.Parallel()

	directed := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, err := directed.AddEdge("A", "B", 1)
	require.NoError(t, err)

	twoVertices := core.NewGraph(core.WithWeighted())
	require.NoError(t, twoVertices.AddVertex("A"))
	require.NoError(t, twoVertices.AddVertex("B"))

	tests := []struct {
		name      string
		g         *core.Graph
		root      string
		wantPrim  error
		wantKrusk error
	}{
		{"nil graph", nil, "A", prim_kruskal.ErrInvalidGraph, prim_kruskal.ErrInvalidGraph},
		{"unweighted", core.NewGraph(), "A", prim_kruskal.ErrInvalidGraph, prim_kruskal.ErrInvalidGraph},
		{"directed", directed, "A", prim_kruskal.ErrInvalidGraph, prim_kruskal.ErrInvalidGraph},
		{"empty", core.NewGraph(core.WithWeighted()), "A", prim_kruskal.ErrDisconnected, prim_kruskal.ErrDisconnected},
		{"two isolated vertices", twoVertices, "A", prim_kruskal.ErrDisconnected, prim_kruskal.ErrDisconnected},
		{"empty root", triangle(), "", prim_kruskal.ErrEmptyRoot, nil},
		{"unknown root", triangle(), "Z", core.ErrVertexNotFound, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edges, total, err := prim_kruskal.Prim(tc.g, tc.root)
			assert.ErrorIs(t, err, tc.wantPrim)
			assert.Empty(t, edges)
			assert.Zero(t, total)

			_, _, err = prim_kruskal.Kruskal(tc.g)
			if tc.wantKrusk == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantKrusk)
		})
	}
}

func TestTriangle(t *testing.T) {
	t.Parallel()

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()
			edges, total, err := prim_kruskal.Compute(triangle(),
				prim_kruskal.WithMethod(method), prim_kruskal.WithRoot("A"))
			require.NoError(t, err)
			assert.Equal(t, 3.0, total)
			assert.Equal(t, map[string]bool{"A-B": true, "B-C": true}, undirectedKeys(edges))
		})
	}
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, total, err = prim_kruskal.Prim(g, "X")
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
		require.NoError(t, err, method)
		require.Len(t, edges, 1, method)
		assert.Equal(t, 1.0, total, method)
		assert.NotEqual(t, edges[0].From, edges[0].To, method)
	}
}

func TestPrim_EdgesOrientedAwayFromTree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 1) // stored B→A, discovered from A
	_, _ = g.AddEdge("C", "B", 2)

	edges, _, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	inTree := map[string]bool{"A": true}
	for _, e := range edges {
		assert.True(t, inTree[e.From], "edge %s-%s starts outside the tree", e.From, e.To)
		inTree[e.To] = true
	}
}

func TestKruskalForest(t *testing.T) {
	g := triangle()
	_, _ = g.AddEdge("X", "Y", 7)
	require.NoError(t, g.AddVertex("Lonely"))

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	forest, total, err := prim_kruskal.KruskalForest(g)
	require.NoError(t, err)
	assert.Len(t, forest, 3) // 6 vertices, 3 components
	assert.Equal(t, 10.0, total)

	empty, total, err := prim_kruskal.KruskalForest(core.NewGraph(core.WithWeighted()))
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Zero(t, total)

	_, _, err = prim_kruskal.KruskalForest(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestCompute_UnknownMethod(t *testing.T) {
	_, _, err := prim_kruskal.Compute(triangle(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestPrimMatchesKruskal_Random(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g := randomConnected(t, 5+int(seed)*3, 0.15, seed)
		n := g.VertexCount()

		kEdges, kTotal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		require.Len(t, kEdges, n-1)

		forest, fTotal, err := prim_kruskal.KruskalForest(g)
		require.NoError(t, err)
		assert.Equal(t, kEdges, forest, "forest of a connected graph is its tree")
		assert.Equal(t, kTotal, fTotal)

		for _, root := range []string{"V0", g.Vertices()[n-1]} {
			pEdges, pTotal, err := prim_kruskal.Prim(g, root)
			require.NoError(t, err)
			assert.Len(t, pEdges, n-1)
			assert.InDelta(t, kTotal, pTotal, 1e-9, "seed %d root %s", seed, root)
		}
	}
}
