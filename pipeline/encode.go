// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/primepath/index"
	"github.com/katalvlaran/primepath/kg"
	"github.com/katalvlaran/primepath/prime"
	"github.com/katalvlaran/primepath/sparse"
)

// Graph is a dataset after indexing, prime assignment and matrix
// construction. Adjacency[h, t] is the sum of the primes of every relation
// linking h to t.
type Graph[T any] struct {
	Entities  *index.Index
	Relations *index.Index
	Primes    *prime.Assignment
	Adjacency *sparse.CSR[T]
}

// Encode runs the index, prime and build stages over ds.
// Errors are *StageError.
func Encode[T any](ds *kg.Dataset, s Settings, ar sparse.Arith[T]) (*Graph[T], error) {
	name := datasetName(ds)
	if ds == nil {
		return nil, stageErr(name, StageIndex, fmt.Errorf("nil dataset: %w", index.ErrMapping))
	}

	entities, relations, err := index.FromTriples(ds.Triples)
	if err != nil {
		return nil, stageErr(name, StageIndex, err)
	}
	primes, err := prime.Assign(relations, s.Start, s.Strategy)
	if err != nil {
		return nil, stageErr(name, StagePrime, err)
	}

	weights := make([]T, primes.Len())
	for id, p := range primes.Primes() {
		if weights[id], err = ar.FromUint64(p); err != nil {
			return nil, stageErr(name, StageBuild, fmt.Errorf("prime %d: %w", p, err))
		}
	}
	ts := make([]sparse.Triple[T], len(ds.Triples))
	for i, t := range ds.Triples {
		h, _ := entities.ID(t.Head)
		tl, _ := entities.ID(t.Tail)
		r, _ := relations.ID(t.Relation)
		ts[i] = sparse.Triple[T]{Row: h, Col: tl, Val: weights[r]}
	}
	adj, err := sparse.FromTriples(entities.Len(), ts, ar)
	if err != nil {
		return nil, stageErr(name, StageBuild, err)
	}

	return &Graph[T]{Entities: entities, Relations: relations, Primes: primes, Adjacency: adj}, nil
}

func datasetName(ds *kg.Dataset) string {
	if ds == nil {
		return ""
	}

	return ds.Name
}
