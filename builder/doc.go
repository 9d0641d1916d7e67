// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from
// composable topology constructors.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 9)},
//		builder.Cycle(5),
//		builder.RandomSparse(10, 0.2),
//	)
//
// Every constructor appends its own block of fresh nodes (ids continue from
// the graph's current NodeCount), so composing constructors yields disjoint
// components. Edges are emitted in a fixed, documented order; with a fixed
// seed the same call sequence always produces the same graph.
//
// Weights default to 1. WithWeightRange draws uniformly from [lo, hi] and
// needs an RNG (WithSeed).
package builder
