// SPDX-License-Identifier: MIT

package synth

import "fmt"

// Shapes lists the names accepted by ByName.
var Shapes = []string{"path", "cycle", "star", "complete", "random"}

// ByName resolves a shape name into a Constructor. p is used by "random" only.
func ByName(name string, n int, p float64) (Constructor, error) {
	switch name {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%q (want one of %v): %w", name, Shapes, ErrUnknownShape)
	}
}
