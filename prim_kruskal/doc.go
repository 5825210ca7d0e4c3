// SPDX-License-Identifier: MIT

// Package prim_kruskal provides the classic minimum spanning tree algorithms
// used as baselines for the partial-tree engine in package mst.
//
// Algorithms
//
//   - Kruskal(g): stable sort of all edges by weight, then union-find over the
//     dsu package. Equal weights keep edge creation order.
//     Time O(E log E), memory O(V + E).
//
//   - KruskalForest(g): the same pass without the connectivity requirement. A
//     graph with k components yields |V|-k edges. The mstsolve verify command
//     compares its total weight against mst.Solve.
//
//   - Prim(g, root): grows one tree from root with a container/heap min-heap of
//     candidate edges, each edge oriented away from the tree.
//     Time O(E log V), memory O(V + E).
//
//   - Compute(g, opts...): dispatches on WithMethod (MethodKruskal by default).
//     MethodPrim without WithRoot starts from the first vertex in insertion
//     order.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil, directed or unweighted graph, or one holding
//     directed edges.
//   - ErrEmptyRoot, core.ErrVertexNotFound: Prim without a usable root.
//   - ErrDisconnected: empty graph, or more than one component (Kruskal, Prim).
//   - ErrUnknownMethod: Compute with an unsupported method.
//
// Self-loops never enter a tree; parallel edges compete on weight like any
// other edge.
package prim_kruskal
