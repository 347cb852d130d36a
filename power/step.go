// SPDX-License-Identifier: MIT

package power

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/primepath/sparse"
)

// Step describes one hop of the sequence.
type Step struct {
	Order    int           `json:"order"`    // k, 1-based
	NNZ      int           `json:"nnz"`      // non-zero cells of A^k
	Sparsity float64       `json:"sparsity"` // percent of empty cells
	RowMean  float64       `json:"row_mean"` // mean non-zeros per row
	RowStd   float64       `json:"row_std"`  // sample std-dev of non-zeros per row
	RowMax   int           `json:"row_max"`  // densest row
	Elapsed  time.Duration `json:"elapsed"`  // product + canonicalization time (0 for k=1)
}

// measure builds the Step for a canonical matrix.
func measure[T any](k int, m *sparse.CSR[T], elapsed time.Duration) (Step, error) {
	s, err := sparse.Sparsity(m)
	if err != nil {
		return Step{}, err
	}

	n := m.Order()
	occ := make([]float64, n)
	rowMax := 0
	for i := 0; i < n; i++ {
		c := m.RowNNZ(i)
		occ[i] = float64(c)
		rowMax = max(rowMax, c)
	}
	mean, std := stat.Mean(occ, nil), 0.0
	if n > 1 {
		std = stat.StdDev(occ, nil)
	}

	return Step{
		Order:    k,
		NNZ:      m.NNZ(),
		Sparsity: s,
		RowMean:  mean,
		RowStd:   std,
		RowMax:   rowMax,
		Elapsed:  elapsed,
	}, nil
}
