// SPDX-License-Identifier: MIT

// Package matrix offers dense and sparse tables over optional values and the
// all-pairs shortest path routine built on them.
//
//   - Dense: a row-major r×c matrix of Cell{Value, OK}. An absent cell means
//     "no edge" or "no path"; no sentinel number stands in for infinity.
//   - FromGraph / AllPairs: seed a Dense from a core.Graph weight matrix and
//     close it with FloydWarshall. Row i of AllPairs equals a single-source
//     Dijkstra run from node i+1 on graphs with non-negative weights.
//   - Grid[T]: a bounded sparse table that stores populated cells only and
//     iterates in row-major or column-major order, yielding optional.Value
//     for every position, or only the populated ones through Present.
//
// Indices are 0-based; Dense.Distance takes 1-based core.NodeID values.
package matrix
