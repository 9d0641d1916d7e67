// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	rng      *rand.Rand             // nil = no randomness
	weightFn func(*rand.Rand) int64 // edge weight source
	needRNG  bool                   // weightFn draws from rng
}

const defaultConstWeight = int64(1)

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithConstWeight gives every edge weight w.
func WithConstWeight(w int64) BuilderOption {
	return func(c *builderConfig) {
		c.weightFn = func(*rand.Rand) int64 { return w }
		c.needRNG = false
	}
}

// WithWeightRange draws each weight uniformly from [lo, hi].
// Panics if lo > hi.
func WithWeightRange(lo, hi int64) BuilderOption {
	if lo > hi {
		panic("builder: WithWeightRange requires lo <= hi")
	}

	return func(c *builderConfig) {
		c.weightFn = func(r *rand.Rand) int64 { return lo + r.Int63n(hi-lo+1) }
		c.needRNG = true
	}
}

// weight returns the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
