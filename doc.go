// SPDX-License-Identifier: MIT

// Package mstforest computes minimum spanning trees, and minimum spanning
// forests of disconnected graphs, by repeatedly merging partial trees.
//
// 🚀 What is mstforest?
//
//	An in-memory MST engine plus the tooling around it:
//		• Partial-tree solver: singleton partitions absorb their nearest neighbour
//		• Classic baselines: Prim and Kruskal for cross-checking
//		• Graph builders: paths, grids, random and multi-component fixtures
//		• Graph files: plain text, TOML and HCL, with a file watcher
//		• mstsolve: a CLI to solve, generate and verify graphs
//
// Packages:
//
//	core/          thread-safe Graph, Edge and vertex primitives
//	dsu/           union-find over string vertex IDs
//	mst/           PartialTree, Collection, Initialize/Execute/Solve and Verify
//	prim_kruskal/  Prim and Kruskal reference implementations
//	builder/       deterministic graph constructors for tests and benchmarks
//	graphio/       text, TOML and HCL codecs, Load/Save and Watcher
//	config/        viper-backed settings for the CLI
//	ctxlog/        slog logger carried in a context.Context
//	cmd/mstsolve/  the command-line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	    │ ╲   │
//	   10  5  2
//	    │   ╲ │
//	    D──3──C
//
// Solve accepts A-B, C-B and D-C for a total weight of 6.
//
//	go install github.com/katalvlaran/mstforest/cmd/mstsolve@latest
package mstforest
