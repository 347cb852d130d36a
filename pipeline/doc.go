// SPDX-License-Identifier: MIT

// Package pipeline runs one dataset through the whole engine:
//
//	index → prime → build → power → (verify)
//
// Every failure is reported as a *StageError carrying the dataset name and
// the stage that failed; errors.Is still reaches the sentinel underneath
// (index.ErrMapping, prime.ErrInvalidStart, power.ErrOrder,
// sparse.ErrOverflow, ...). A failed dataset never yields a Result.
//
// Matrix cells are int64 (checked) or *big.Int, chosen per run through
// Settings.Precision; the stages themselves are generic over the cell type.
package pipeline
