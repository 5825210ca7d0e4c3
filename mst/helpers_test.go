// SPDX-License-Identifier: MIT

package mst_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/mst"
)

// edgeSpec is a compact undirected edge description for fixtures.
type edgeSpec struct {
	u, v string
	w    float64
}

// buildGraph creates a weighted undirected graph from vertices (added first,
// in order) and edges.
func buildGraph(t testing.TB, vertices []string, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// buildRandomConnected creates a connected graph of n vertices: a random
// spanning chain plus up to extra random edges, seeded for reproducibility.
func buildRandomConnected(t testing.TB, n, extra int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithWeighted())
	perm := r.Perm(n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}
	for i := 1; i < n; i++ {
		u, v := fmt.Sprintf("V%d", perm[i-1]), fmt.Sprintf("V%d", perm[i])
		_, err := g.AddEdge(u, v, float64(1+r.Intn(50)))
		require.NoError(t, err)
	}
	if limit := n*(n-1)/2 - (n - 1); extra > limit {
		extra = limit
	}
	for added := 0; added < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), float64(1+r.Intn(50))); err == nil {
			added++
		}
	}

	return g
}

// undirectedKeys renders arcs as sorted "u-v(w)" strings, independent of orientation.
func undirectedKeys(arcs []mst.Arc) []string {
	out := make([]string, 0, len(arcs))
	for _, a := range arcs {
		u, v := a.Undirected()
		out = append(out, fmt.Sprintf("%s-%s(%g)", u, v, a.Weight))
	}
	sort.Strings(out)

	return out
}
