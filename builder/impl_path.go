// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — Path(n) constructor: the simple path P_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n==1 yields an isolated vertex.
//   - Vertices are 0..n-1, edges (i-1,i) for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.
package builder

import (
	"fmt"

	"github.com/exdecomp/cutmatching/core"
)

const minPathNodes = 1

// Path returns the simple path P_n on vertices 0..n-1.
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i-1, i, err)
		}
	}
	return g, nil
}
