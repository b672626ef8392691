package unitflow

// Compute runs bounded-height push–relabel with heights capped at h: a
// vertex whose relabel target would exceed h is frozen there and left
// with positive excess instead of being processed further. It returns
// the alive vertices still holding positive excess when no eligible
// vertex remains — spec.md §4.2's "unrouted sources/intermediate stuck
// nodes", not an error.
//
// Complexity: no allocations after the initial queue is built; each
// half-edge is scanned at most O(h) times across relabels.
func (g *Graph) Compute(h int) []int {
	queue := make([]int, 0, g.n)
	queued := make([]bool, g.n)
	for v := 0; v < g.n; v++ {
		if g.alive[v] && g.excess[v] > 0 && g.height[v] <= h {
			queue = append(queue, v)
			queued[v] = true
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false

		g.discharge(v, h, &queue, queued)
	}

	var stuck []int
	for v := 0; v < g.n; v++ {
		if g.alive[v] && g.excess[v] > 0 {
			stuck = append(stuck, v)
		}
	}
	return stuck
}

// discharge pushes v's excess along admissible edges until it is
// exhausted, v is frozen (height[v] > h), or no residual edge remains —
// in which case v is relabeled and discharge continues from the cursor
// reset to 0, per spec.md §4.2's algorithm sketch.
func (g *Graph) discharge(v, h int, queue *[]int, queued []bool) {
	for g.excess[v] > 0 && g.height[v] <= h {
		if g.nextEdge[v] >= len(g.adj[v]) {
			if !g.relabel(v, h) {
				return // frozen: height[v] now > h, excess stays
			}
			continue
		}

		idx := g.nextEdge[v]
		e := &g.adj[v][idx]
		if g.alive[e.to] && e.residual() > 0 && g.height[v] == g.height[e.to]+1 {
			amount := g.excess[v]
			if r := e.residual(); r < amount {
				amount = r
			}
			g.push(v, idx, amount, h, queue, queued)
		} else {
			g.nextEdge[v]++
		}
	}
}

// relabel raises height[v] to the minimum admissible label over residual
// neighbors, capped at h+1 (frozen). It returns false when v ends up
// frozen, signaling discharge to stop processing v this round.
func (g *Graph) relabel(v, h int) bool {
	newHeight := h + 1
	for i := range g.adj[v] {
		e := &g.adj[v][i]
		if g.alive[e.to] && e.residual() > 0 && g.height[e.to]+1 < newHeight {
			newHeight = g.height[e.to] + 1
		}
	}
	g.height[v] = newHeight
	g.nextEdge[v] = 0
	return newHeight <= h
}

// push moves amount units of flow from v to e.to along the half-edge at
// adj[v][idx], absorbing into the target's remaining sink capacity
// first and only adding to its routable excess beyond that.
func (g *Graph) push(v, idx, amount, h int, queue *[]int, queued []bool) {
	e := &g.adj[v][idx]
	w := e.to

	e.flow += amount
	g.adj[w][e.rev].flow -= amount
	g.excess[v] -= amount

	if g.sinkCap[w] > 0 {
		absorb := amount
		if g.sinkCap[w] < absorb {
			absorb = g.sinkCap[w]
		}
		g.absorbed[w] += absorb
		g.sinkCap[w] -= absorb
		amount -= absorb
	}

	if amount > 0 {
		g.excess[w] += amount
		if !queued[w] && g.height[w] <= h {
			*queue = append(*queue, w)
			queued[w] = true
		}
	}
}
