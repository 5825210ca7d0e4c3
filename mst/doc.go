// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees (or spanning forests) of an
// undirected, weighted *core.Graph by merging partial trees.
//
// What & Why
//
//   - A partial tree is a connected set of vertices already joined by accepted
//     arcs, plus the frontier of candidate arcs leaving it, kept in a min-heap
//     (ArcQueue).
//
//   - The solver starts with one partial tree per vertex and keeps them in a
//     work queue (Collection). Each round it takes the front partition, accepts
//     its cheapest arc that leaves the partition, merges the partition on the
//     other side into it, and puts the result at the back of the queue. By the
//     cut property every accepted arc belongs to some minimum spanning tree.
//
//   - Compared with Prim (one growing tree) and Kruskal (one global sort), the
//     work is spread round-robin over all partitions, which is the shape of
//     Borůvka-style algorithms and of the partial-tree exercises it comes from.
//
// Algorithm
//
//  1. Initialize(g): one singleton PartialTree per vertex, in g.Vertices()
//     order, whose ArcQueue holds all arcs leaving that vertex.
//  2. Execute(c): while c.Len() > 1:
//     a. P := c.RemoveFront().
//     b. Extract arcs from P until one leads outside P. Arcs whose destination
//     P already owns are internal and are discarded for good.
//     c. No such arc: P is isolated. A Diagnostic is recorded and P is dropped.
//     d. Otherwise the arc is accepted, the partition owning its destination
//     is removed from the collection and merged into P, and P is appended.
//  3. The loop stops when at most one partition remains.
//
// Membership
//
//	The Collection tracks which partition owns each vertex with a union-find
//	index (package dsu), updated on every Merge. Both the "is this arc
//	internal?" test and RemoveTreeContaining are O(α(V)) lookups instead of
//	scans over partitions or their arcs.
//
// Complexity
//
//   - Time: O(E log E). Every arc is inserted once, moved by O(log V) heap
//     merges, and extracted at most once.
//   - Space: O(V + E).
//
// Ties
//
//	Equal weights are resolved by ArcQueue insertion order: arcs inserted first
//	win, and arcs absorbed by a merge rank after the receiver's own. Vertex
//	insertion order therefore decides which of several equally minimal trees
//	is returned. The total weight never depends on it.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil graph, or a graph containing directed edges.
//   - ErrEmptyCollection: RemoveFront on an empty Collection.
//   - ErrNoSuchPartition: an accepted arc points at a vertex that no queued
//     partition owns. This is an internal-consistency failure and halts Execute.
//   - ErrIsolatedPartition: carried by Diagnostic.Err(); never returned by
//     Execute on its own.
//   - ErrDisconnected: returned together with the partial Result only when
//     WithStrict() is set and the result does not span the graph.
//
// Disconnected graphs
//
//	A graph with k components yields V-k arcs. Partitions that run out of
//	outgoing arcs are reported as IsolatedPartition diagnostics and logged at
//	Warn level through the configured *slog.Logger.
package mst
