// SPDX-License-Identifier: MIT

// Package builder generates deterministic weighted graph fixtures for the
// spanning-tree solvers, the benchmarks and the mstsolve generate command.
//
// A fixture is assembled by BuildGraph from one or more Constructor values:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeights(1, 50)},
//		builder.RandomConnected(100, 0.05),
//	)
//
// Components:
//   - Topologies: Path, Cycle, Complete, Grid, RandomSparse, RandomConnected,
//     Components (disjoint connected blocks) and Isolated (bare vertices).
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntUniformWeightFn, NormalWeightFn.
//
// Guarantees:
//   - Same options, seed and constructor order give identical graphs,
//     including vertex order, which decides tie-breaking in mst.Solve.
//   - Option constructors panic on meaningless input; constructors never
//     panic and return sentinel errors wrapped with the constructor name.
//   - Weights are drawn only when the graph is weighted.
package builder
