// SPDX-License-Identifier: MIT

package synth

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("synth: parameter too small")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("synth: probability out of range")

	// ErrNeedRandSource indicates a stochastic step without an RNG.
	ErrNeedRandSource = errors.New("synth: rng is required")

	// ErrUnknownShape is returned by ByName for unsupported shape names.
	ErrUnknownShape = errors.New("synth: unknown shape")
)
