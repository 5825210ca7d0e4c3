// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path halving and union by size.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed() and !graph.HasDirectedEdges().
//  2. If len(vertices)==0 → ErrDisconnected; if len(vertices)==1 → trivial MST (empty, weight=0).
//  3. Build the minimum spanning forest (see KruskalForest).
//  4. If the forest has fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	mst, total := forest(graph)
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// KruskalForest computes a minimum spanning forest: a minimum spanning tree of
// every connected component. It never reports ErrDisconnected; a graph with k
// components yields |V|-k edges.
//
// Error Conditions:
//   - ErrInvalidGraph: as for Kruskal.
func KruskalForest(graph *core.Graph) ([]core.Edge, float64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	mst, total := forest(graph)

	return mst, total, nil
}

// forest runs Kruskal over all edges of a validated graph.
func forest(graph *core.Graph) ([]core.Edge, float64) {
	vertices := graph.Vertices()

	// Collect all edges, skipping self-loops: they cannot be part of a spanning tree.
	allEdges := graph.Edges() // creation order
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// Stable sort keeps creation order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	set := dsu.New(vertices...)
	var (
		mst         = make([]core.Edge, 0, len(vertices))
		totalWeight float64
	)
	for _, e := range edges {
		// Union reports false when the endpoints are already connected.
		if merged, _ := set.Union(e.From, e.To); !merged {
			continue
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
		if set.Count() == 1 {
			break
		}
	}

	return mst, totalWeight
}

// validate enforces the undirected, weighted precondition shared by Prim and Kruskal.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}

	return nil
}
