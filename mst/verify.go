// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/dsu"
)

// Report summarizes a checked arc set against its graph.
type Report struct {
	Vertices    int      // |V| of the graph
	Arcs        int      // number of checked arcs
	Components  int      // connected components of (V, arcs)
	TotalWeight float64  // sum of arc weights
	Uncovered   []string // vertices touched by no arc, in graph order
	Spanning    bool     // Components == 1
}

// Verify checks that arcs form a forest over g made of real graph edges.
//
// Error Conditions:
//   - ErrInvalidGraph: g is nil.
//   - ErrUnknownVertex: an arc endpoint is not a vertex of g.
//   - ErrForeignArc: no edge of g joins the endpoints with the arc's weight.
//   - ErrCycle: an arc joins two vertices already connected by earlier arcs.
//
// Complexity: O(V + Σ deg(arc.From) + A·α(V)).
func Verify(g *core.Graph, arcs []Arc) (Report, error) {
	if g == nil {
		return Report{}, ErrInvalidGraph
	}

	vertices := g.Vertices()
	set := dsu.New(vertices...)
	covered := make(map[string]bool, len(vertices))
	rep := Report{Vertices: len(vertices), Arcs: len(arcs)}

	for i, a := range arcs {
		if !set.Has(a.From) || !set.Has(a.To) {
			return Report{}, fmt.Errorf("%w: arc %d %s", ErrUnknownVertex, i, a)
		}
		if !hasEdge(g, a) {
			return Report{}, fmt.Errorf("%w: arc %d %s", ErrForeignArc, i, a)
		}
		merged, err := set.Union(a.From, a.To)
		if err != nil {
			return Report{}, fmt.Errorf("mst: verify arc %d %s: %w", i, a, err)
		}
		if !merged {
			return Report{}, fmt.Errorf("%w: arc %d %s closes a cycle", ErrCycle, i, a)
		}
		covered[a.From] = true
		covered[a.To] = true
		rep.TotalWeight += a.Weight
	}

	for _, v := range vertices {
		if !covered[v] {
			rep.Uncovered = append(rep.Uncovered, v)
		}
	}
	rep.Components = set.Count()
	rep.Spanning = rep.Components == 1

	return rep, nil
}

// hasEdge reports whether g holds an edge matching a in either orientation.
func hasEdge(g *core.Graph, a Arc) bool {
	edges, err := g.Neighbors(a.From)
	if err != nil {
		return false
	}
	for _, e := range edges {
		if e.Other(a.From) == a.To && e.Weight == a.Weight {
			return true
		}
	}

	return false
}
