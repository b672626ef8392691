package subdivision

import "github.com/exdecomp/cutmatching/unitflow"

// Graph bundles the subdivided flow graph with the original graph's
// vertex count, so callers can tell original vertices (ids < N) apart
// from split vertices (ids >= N) without recomputing it.
type Graph struct {
	Flow *unitflow.Graph
	N    int // number of original vertices; split vertex for edge e has id N+e
}

// edgeLister is the subset of *core.Graph that Build needs. Declaring it
// here (rather than importing package core) keeps subdivision usable
// against any topology source that can enumerate its own edges — the
// "Graph reader" role spec.md §6.4 describes.
type edgeLister interface {
	N() int
	M() int
	EdgeAt(id int) (u, v int)
}

// Build constructs G′: one fresh split vertex per edge of g, connected
// to that edge's two endpoints by a length-2 path. Per spec.md §6.4,
// split-vertex ids are n+e for edge id e, and every edge of G′ starts at
// capacity 0 — the cut-matching solver overwrites it uniformly once it
// knows φ and T.
//
// Complexity: O(n + m).
func Build(g edgeLister) *Graph {
	n, m := g.N(), g.M()
	flow := unitflow.NewGraph(n + m)

	for e := 0; e < m; e++ {
		u, v := g.EdgeAt(e)
		split := n + e
		// AddEdge's error is only ever ErrNoSuchVertex or
		// ErrNegativeCapacity; both are impossible for ids we just
		// computed from g's own bounds and a zero capacity.
		_ = flow.AddEdge(u, split, 0)
		_ = flow.AddEdge(split, v, 0)
	}

	return &Graph{Flow: flow, N: n}
}

// IsSplit reports whether vertex id belongs to a split vertex rather
// than an original vertex of G.
func (sg *Graph) IsSplit(id int) bool { return id >= sg.N }
