// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/primepath/index"
	"github.com/katalvlaran/primepath/sparse"
)

// DefaultMaxNodes caps the order of matrices accepted by DOT.
const DefaultMaxNodes = 500

// ErrTooLarge is returned by DOT for matrices above the node cap.
var ErrTooLarge = errors.New("report: matrix too large to render")

// DOTOption configures DOT.
type DOTOption func(*dotConfig)

type dotConfig struct {
	name     string
	maxNodes int
	isolated bool
}

// WithGraphName sets the digraph name (default "G").
func WithGraphName(name string) DOTOption {
	return func(c *dotConfig) { c.name = name }
}

// WithMaxNodes replaces DefaultMaxNodes. Panics if n < 1.
func WithMaxNodes(n int) DOTOption {
	if n < 1 {
		panic("report: WithMaxNodes: n must be ≥ 1")
	}

	return func(c *dotConfig) { c.maxNodes = n }
}

// WithIsolated also emits entities with no stored cell in m.
func WithIsolated() DOTOption {
	return func(c *dotConfig) { c.isolated = true }
}

// DOT renders the support of m as a Graphviz digraph: one edge i → j per
// stored cell, labeled with its value. Nodes are named by labels when
// labels is non-nil, by numeric id otherwise.
//
// Errors: sparse.ErrNilMatrix, ErrTooLarge, index.ErrUnknownLabel when
// labels is shorter than m.
func DOT[T any](m *sparse.CSR[T], ar sparse.Arith[T], labels *index.Index, opts ...DOTOption) (string, error) {
	cfg := dotConfig{name: "G", maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		return "", sparse.ErrNilMatrix
	}
	if m.Order() > cfg.maxNodes {
		return "", fmt.Errorf("order %d > %d: %w", m.Order(), cfg.maxNodes, ErrTooLarge)
	}

	name := func(id int) (string, error) {
		if labels == nil {
			return strconv.Quote(strconv.Itoa(id)), nil
		}
		l, err := labels.Label(id)
		if err != nil {
			return "", err
		}

		return strconv.Quote(l), nil
	}

	g := gographviz.NewGraph()
	if err := g.SetName(strconv.Quote(cfg.name)); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	added := make([]bool, m.Order())
	addNode := func(id int) (string, error) {
		n, err := name(id)
		if err != nil {
			return "", err
		}
		if !added[id] {
			added[id] = true
			if err = g.AddNode(g.Name, n, nil); err != nil {
				return "", err
			}
		}

		return n, nil
	}

	var err error
	m.Do(func(i, j int, v T) bool {
		var from, to string
		if from, err = addNode(i); err != nil {
			return false
		}
		if to, err = addNode(j); err != nil {
			return false
		}
		err = g.AddEdge(from, to, true, map[string]string{"label": strconv.Quote(ar.Format(v))})
		return err == nil
	})
	if err != nil {
		return "", fmt.Errorf("report: dot: %w", err)
	}
	if cfg.isolated {
		for id := range added {
			if _, err = addNode(id); err != nil {
				return "", fmt.Errorf("report: dot: %w", err)
			}
		}
	}

	return g.String(), nil
}
