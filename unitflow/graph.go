package unitflow

// AddEdge inserts an undirected edge (u,v) with the given initial
// capacity in both directions, storing it as two half-edges that point
// at each other via rev. Capacity is overwritten uniformly at solver
// construction time by SetUniformCapacity; a caller building topology
// ahead of that (e.g. package subdivision) may pass 0 here, matching
// spec.md §6.4's "initial edge capacities = 0 (the solver overwrites)".
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v, cap int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrNoSuchVertex
	}
	if cap < 0 {
		return ErrNegativeCapacity
	}
	g.adj[u] = append(g.adj[u], edge{to: v, cap: cap, rev: len(g.adj[v])})
	g.adj[v] = append(g.adj[v], edge{to: u, cap: cap, rev: len(g.adj[u]) - 1})
	return nil
}

// SetUniformCapacity overwrites the capacity of every half-edge in the
// graph to cap, leaving flow at 0. Called once by the cut-matching
// solver at construction per spec.md §4.3's capacity formula
// ceil(1/(φT)).
//
// Complexity: O(n + m).
func (g *Graph) SetUniformCapacity(cap int) {
	for u := range g.adj {
		for i := range g.adj[u] {
			g.adj[u][i].cap = cap
			g.adj[u][i].flow = 0
		}
	}
}

// AddSource marks u as a unit-flow source, adding capacity directly to
// its excess so push–relabel treats it as already holding supply.
func (g *Graph) AddSource(u, capacity int) {
	g.isSource[u] = true
	g.excess[u] += capacity
}

// AddSink marks u as a sink able to absorb up to capacity units without
// that volume needing to be routed onward.
func (g *Graph) AddSink(u, capacity int) {
	g.isSink[u] = true
	g.sinkCap[u] += capacity
}

// Reset zeroes flow/excess/height/nextEdge/absorbed/sinkCap and clears
// source/sink marks for every vertex, without touching alive/removed
// state. This is the discipline spec.md §5 relies on to prevent one
// round's push–relabel state from leaking into the next.
//
// Complexity: O(n + m).
func (g *Graph) Reset() {
	for u := range g.adj {
		for i := range g.adj[u] {
			g.adj[u][i].flow = 0
		}
	}
	for v := 0; v < g.n; v++ {
		g.isSource[v] = false
		g.isSink[v] = false
		g.height[v] = 0
		g.excess[v] = 0
		g.nextEdge[v] = 0
		g.absorbed[v] = 0
		g.sinkCap[v] = 0
	}
}

// Alive reports whether v is currently alive.
func (g *Graph) Alive(v int) bool {
	return v >= 0 && v < g.n && g.alive[v]
}

// AliveCount returns the number of currently alive vertices.
//
// Complexity: O(n).
func (g *Graph) AliveCount() int {
	count := 0
	for v := 0; v < g.n; v++ {
		if g.alive[v] {
			count++
		}
	}
	return count
}

// RemovedCount returns the number of currently removed vertices.
func (g *Graph) RemovedCount() int { return g.n - g.AliveCount() }

// RemovedVertices returns the currently removed vertex ids in ascending
// order, mirroring core.Graph.RemovedVertices.
//
// Complexity: O(n).
func (g *Graph) RemovedVertices() []int {
	out := make([]int, 0, len(g.removedStack))
	for v := 0; v < g.n; v++ {
		if !g.alive[v] {
			out = append(out, v)
		}
	}
	return out
}

// Vertices returns the currently alive vertex ids in ascending order.
//
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.alive[v] {
			out = append(out, v)
		}
	}
	return out
}

// Neighbors returns the alive neighbors of v over the graph's original
// topology (regardless of current residual capacity) — the adjacency
// LevelCut needs to count structural crossing edges.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, len(g.adj[v]))
	for _, e := range g.adj[v] {
		if g.alive[e.to] {
			out = append(out, e.to)
		}
	}
	return out
}

// Degree returns the number of alive incident edges of v.
//
// Complexity: O(deg(v)).
func (g *Graph) Degree(v int) int {
	count := 0
	for _, e := range g.adj[v] {
		if g.alive[e.to] {
			count++
		}
	}
	return count
}

// GlobalVolume sums Degree over the given vertex ids.
//
// Complexity: O(sum of degrees of the given vertices).
func (g *Graph) GlobalVolume(vs []int) int {
	total := 0
	for _, v := range vs {
		total += g.Degree(v)
	}
	return total
}

// Remove marks v as removed and pushes it onto the LIFO restore stack.
func (g *Graph) Remove(v int) error {
	if v < 0 || v >= g.n {
		return ErrNoSuchVertex
	}
	if !g.alive[v] {
		return ErrAlreadyRemoved
	}
	g.alive[v] = false
	g.removedStack = append(g.removedStack, v)
	return nil
}

// RestoreRemoves undoes every removal in LIFO order.
func (g *Graph) RestoreRemoves() {
	for i := len(g.removedStack) - 1; i >= 0; i-- {
		g.alive[g.removedStack[i]] = true
	}
	g.removedStack = g.removedStack[:0]
}
