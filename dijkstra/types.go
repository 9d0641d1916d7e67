// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source id is outside 1..NodeCount().
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates PathTo was asked for a vertex the source cannot reach.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrPathNotTracked indicates PathTo was called on a Result computed without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors not tracked (use WithReturnPath)")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, record predecessors so Result.PathTo works.
// MaxDistance      – vertices whose distance would exceed this cap stay unreachable.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	ReturnPath       bool  // Whether to record predecessors
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables predecessor tracking for Result.PathTo.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// A negative value panics with ErrBadMaxDistance.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero or negative panics with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no predecessors, no distance cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
