package unitflow

// MatchPair is one decoded source-to-sink pairing produced by Matching.
type MatchPair struct {
	Source int
	Sink   int
}

// Matching decodes routed flow into a vertex-disjoint pairing: for each
// source (in the given order) it traces a simple path along half-edges
// carrying positive flow, consuming one unit of flow per step, until it
// reaches a sink not already claimed by an earlier source. A source
// whose trace dead-ends before reaching a free sink is simply omitted —
// spec.md §4.2 tolerates a partial matching rather than treating this
// as an error.
//
// Complexity: O(m) total, since each unit of flow consumed along a
// traced path is never revisited.
func (g *Graph) Matching(sources []int) []MatchPair {
	consumedSink := make([]bool, g.n)
	var out []MatchPair

	for _, src := range sources {
		if !g.alive[src] {
			continue
		}
		if sink, ok := g.tracePath(src, consumedSink); ok {
			consumedSink[sink] = true
			out = append(out, MatchPair{Source: src, Sink: sink})
		}
	}
	return out
}

// tracePath follows positive-flow half-edges from start, consuming one
// unit of flow at each step, until it lands on an alive, unconsumed
// sink, or has nowhere left to go.
func (g *Graph) tracePath(start int, consumedSink []bool) (int, bool) {
	visited := map[int]bool{start: true}
	cur := start

	for {
		if g.isSink[cur] && !consumedSink[cur] && cur != start {
			return cur, true
		}

		next, idx := -1, -1
		for i := range g.adj[cur] {
			e := &g.adj[cur][i]
			if e.flow > 0 && g.alive[e.to] && !visited[e.to] {
				next, idx = e.to, i
				break
			}
		}
		if next == -1 {
			return 0, false
		}

		g.adj[cur][idx].flow--
		g.adj[next][g.adj[cur][idx].rev].flow++
		visited[next] = true
		cur = next
	}
}
