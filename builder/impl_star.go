// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go — Star(leaves) constructor: the star K_{1,leaves}.
//
// Contract:
//   - leaves ≥ 1 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; vertices 1..leaves are spokes.
//
// Complexity: O(leaves) vertices and edges.
package builder

import (
	"fmt"

	"github.com/exdecomp/cutmatching/core"
)

const minStarLeaves = 1

// center is the fixed hub vertex id of any star built by Star.
const center = 0

// Star returns the star topology K_{1,leaves}: hub vertex 0 connected to
// leaves 1..leaves.
func Star(leaves int) (*core.Graph, error) {
	if leaves < minStarLeaves {
		return nil, fmt.Errorf("Star: leaves=%d < min=%d: %w", leaves, minStarLeaves, ErrTooFewVertices)
	}

	g := core.NewGraph(leaves + 1)
	for leaf := 1; leaf <= leaves; leaf++ {
		if err := g.AddEdge(center, leaf); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(%d,%d): %w", center, leaf, err)
		}
	}
	return g, nil
}
