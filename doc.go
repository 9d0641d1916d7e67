// SPDX-License-Identifier: MIT

// Package dsalab is a toolkit of classical data structures and graph
// algorithms with a small command shell on top.
//
// Graphs:
//
//	core/          weighted graph, dense node ids 1..n, adjacency + matrix
//	builder/       deterministic fixture generators (path, grid, G(n,p), ...)
//	bfs/, dfs/     traversals; dfs also does topological sort and cycle checks
//	dijkstra/      single-source shortest paths, lazy-deletion heap
//	matrix/        Floyd–Warshall over optional cells; sparse Grid
//	toposort/      Kahn's algorithm
//	prim_kruskal/  minimum spanning tree or forest
//	disjointset/   union-find with switchable heuristics
//
// Containers and algorithms:
//
//	avl/           balanced ordered map with in/pre/post-order iterators
//	hashtable/     separate chaining, optional growth and Murmur3 hashing
//	list/, stack/, queue/   linked list, LIFO, ring buffer, priority queue
//	sorting/, search/       seven sorts over key functions; linear/binary search
//	expr/          postfix evaluation, expression trees, polynomials
//	optional/, record/      explicit absence; the shared record type
//
// The dsalab command (cmd/dsalab) drives all of them through
// internal/session.
package dsalab
