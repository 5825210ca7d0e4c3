// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph consumed by the
// spanning-tree solvers in this module.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Sequential Edge.ID generation ("e1", "e2", …)
//
// Determinism:
//
//	Vertices() returns vertices in insertion order, SortedVertices() in
//	lexicographic order, Edges() and Neighbors() in edge-creation order.
//	Two graphs built by the same sequence of calls iterate identically,
//	which is what makes tie-breaking in the solvers reproducible.
//
// Orientation:
//
//	An undirected edge is stored once and is visible from both endpoints.
//	Neighbors(v) returns the shared *Edge; callers orient it with
//	Edge.Other(v) when they need the far endpoint.
//
// Concurrency:
//
//	All methods take a single sync.RWMutex. Readers never block each other,
//	so a loaded graph can be solved by several goroutines at once.
//
// Core Methods:
//
//	AddVertex(id string) error                                      // O(1)
//	AddEdge(from, to string, weight float64) (edgeID string, error) // O(1)†
//	HasVertex(id string) bool                                       // O(1)
//	Neighbors(id string) ([]*Edge, error)                           // O(d)
//	Vertices() []string                                             // O(V)
//	Edges() []*Edge                                                 // O(E)
//
// † O(d) when multi-edges are disabled, because the duplicate check scans the
// adjacency bucket of the source vertex.
package core
