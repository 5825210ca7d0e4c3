// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors. Constructors wrap them as "<Method>: <detail>: %w";
// branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, k) below its minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a core insertion failure.
	ErrConstructFailed = errors.New("builder: construction failed")
)
