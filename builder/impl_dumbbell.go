// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_dumbbell.go — Dumbbell(k) constructor: two K_k cliques joined by a
// single bridge edge.
//
// This is not one of the teacher's constructors; it supplements the
// family (spec.md §8 scenario 4 needs exactly this topology — the textbook
// poor-expander witness for the cut-matching game's Balanced outcome) in
// the same deterministic, sentinel-error style as Complete/Path/Star/Cycle.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices).
//   • Vertices 0..k-1 form the left clique, k..2k-1 the right clique.
//   • One bridge edge joins vertex k-1 (left) to vertex k (right).
package builder

import (
	"fmt"

	"github.com/exdecomp/cutmatching/core"
)

const minDumbbellClique = 1

// Dumbbell returns two K_k cliques connected by a single bridge edge.
func Dumbbell(k int) (*core.Graph, error) {
	if k < minDumbbellClique {
		return nil, fmt.Errorf("Dumbbell: k=%d < min=%d: %w", k, minDumbbellClique, ErrTooFewVertices)
	}

	g := core.NewGraph(2 * k)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Dumbbell: AddEdge(%d,%d): %w", i, j, err)
			}
			if err := g.AddEdge(k+i, k+j); err != nil {
				return nil, fmt.Errorf("Dumbbell: AddEdge(%d,%d): %w", k+i, k+j, err)
			}
		}
	}
	if err := g.AddEdge(k-1, k); err != nil {
		return nil, fmt.Errorf("Dumbbell: bridge AddEdge(%d,%d): %w", k-1, k, err)
	}
	return g, nil
}
