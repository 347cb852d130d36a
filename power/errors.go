// SPDX-License-Identifier: MIT

package power

import "errors"

var (
	// ErrOrder is returned when the maximum order is below 1.
	ErrOrder = errors.New("power: max order must be >= 1")

	// ErrInterrupted wraps a context error observed between hops.
	ErrInterrupted = errors.New("power: interrupted between hops")
)
