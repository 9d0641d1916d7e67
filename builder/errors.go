// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic choice without WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology is returned by ByName for an unrecognized kind.
var ErrUnknownTopology = errors.New("builder: unknown topology")
