// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — Complete(n) constructor: the complete graph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices are 0..n-1.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity: O(n) vertices + O(n²) edges.
package builder

import (
	"fmt"

	"github.com/exdecomp/cutmatching/core"
)

const minCompleteNodes = 1

// Complete returns the complete simple graph K_n.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}
	return g, nil
}
