// SPDX-License-Identifier: MIT

// Package graphio reads and writes weighted undirected graphs in three
// formats and watches a graph file for changes.
//
// Formats:
//   - text (.txt, .graph): the vertex count N on the first line, the N vertex
//     names one per line, then one "from to weight" line per edge. Blank lines
//     and lines starting with '#' are ignored.
//   - TOML (.toml): a top-level vertices array and one [[edge]] table per edge.
//   - HCL (.hcl): one vertex "name" {} block per vertex and one
//     edge { from, to, weight } block per edge.
//
// All formats decode into a Document, whose Graph method builds the
// core.Graph in declaration order; that order decides tie-breaking in the
// partial-tree solver. Every edge endpoint must be declared as a vertex.
package graphio
