package unitflow

// LevelCut scans height levels 1..h and returns the vertex set above the
// cheapest boundary: the level l minimizing the number of structural
// edges crossing from height > l to height <= l, smallest l breaking
// ties. Per spec.md §4.2, a non-trivial cut always exists whenever this
// is called with a non-empty excess set, because Compute only leaves
// vertices frozen at height exactly h+1 — so the vertex set above level
// h is already that excess set, giving sizeAbove(l) > 0 for every
// l in [1,h].
//
// Complexity: O(n + m) — each edge contributes two increments to a
// difference array, which is then prefix-summed once.
func (g *Graph) LevelCut(h int) []int {
	if h < 1 {
		return g.excessSet()
	}

	delta := make([]int, h+2) // difference array: crossing[l] = delta[0] + ... + delta[l]
	for v := 0; v < g.n; v++ {
		if !g.alive[v] {
			continue
		}
		for _, e := range g.adj[v] {
			if !g.alive[e.to] {
				continue
			}
			hv, hw := g.height[v], g.height[e.to]
			if hv <= hw {
				continue // count each undirected edge once, from its higher endpoint
			}
			// edge goes from v (height hv) down to e.to (height hw < hv).
			// it crosses level l for every l in [hw, hv-1].
			lo, hi := hw, hv-1
			if lo < 0 {
				lo = 0
			}
			if hi > h {
				hi = h
			}
			if lo > hi {
				continue
			}
			delta[lo]++
			delta[hi+1]--
		}
	}

	crossing := make([]int, h+1)
	running := 0
	for l := 0; l <= h; l++ {
		running += delta[l]
		crossing[l] = running
	}

	bestL, bestCount := 1, crossing[1]
	for l := 2; l <= h; l++ {
		if crossing[l] < bestCount {
			bestL, bestCount = l, crossing[l]
		}
	}

	out := make([]int, 0)
	for v := 0; v < g.n; v++ {
		if g.alive[v] && g.height[v] > bestL {
			out = append(out, v)
		}
	}
	return out
}

// excessSet returns the alive vertices currently holding positive excess.
func (g *Graph) excessSet() []int {
	out := make([]int, 0)
	for v := 0; v < g.n; v++ {
		if g.alive[v] && g.excess[v] > 0 {
			out = append(out, v)
		}
	}
	return out
}
