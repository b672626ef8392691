// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — Cycle(n) constructor: the simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices are 0..n-1, edges i -> (i+1)%n for i=0..n-1.
package builder

import (
	"fmt"

	"github.com/exdecomp/cutmatching/core"
)

const minCycleNodes = 3

// Cycle returns the simple cycle C_n on vertices 0..n-1.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}
	return g, nil
}
