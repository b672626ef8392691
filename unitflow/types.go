package unitflow

import "errors"

// Sentinel errors for unitflow graph operations. These are all
// precondition violations per spec — never returned for ordinary
// "flow didn't fully route" outcomes, which are communicated through
// Compute's return value instead.
var (
	// ErrNoSuchVertex indicates an operation referenced a vertex id
	// outside [0,n).
	ErrNoSuchVertex = errors.New("unitflow: no such vertex")

	// ErrNegativeCapacity indicates AddEdge was called with cap < 0.
	ErrNegativeCapacity = errors.New("unitflow: negative edge capacity")

	// ErrAlreadyRemoved indicates Remove was called on a vertex already removed.
	ErrAlreadyRemoved = errors.New("unitflow: vertex already removed")
)

// edge is one half of an undirected flow edge. to is the endpoint this
// half-edge points at; cap is the (constant, for the lifetime of one
// round) capacity of this direction; flow is the signed amount currently
// pushed along it; rev is the index, within adj[to], of the paired
// half-edge — the reverse-pointer spec.md §3 names explicitly.
type edge struct {
	to   int
	cap  int
	flow int
	rev  int
}

// residual returns the remaining capacity of e.
func (e *edge) residual() int { return e.cap - e.flow }

// Graph is the flow graph described in spec.md §4.1: a mutable graph with
// per-edge capacity/flow and per-vertex height/excess/nextEdge/absorbed/
// sink scratch state, supporting source/sink injection and reversible
// vertex removal.
type Graph struct {
	n   int
	adj [][]edge

	alive        []bool
	removedStack []int

	isSource []bool
	isSink   []bool

	// Per-vertex push–relabel scratch state, reset at the start of every
	// round via Reset — spec.md §5's "sole discipline protecting against
	// cross-round contamination".
	height   []int
	excess   []int
	nextEdge []int
	absorbed []int
	sinkCap  []int
}

// NewGraph allocates a Graph over n vertices (0..n-1) with no edges.
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	g := &Graph{
		n:        n,
		adj:      make([][]edge, n),
		alive:    make([]bool, n),
		isSource: make([]bool, n),
		isSink:   make([]bool, n),
		height:   make([]int, n),
		excess:   make([]int, n),
		nextEdge: make([]int, n),
		absorbed: make([]int, n),
		sinkCap:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		g.alive[v] = true
	}
	return g
}

// N returns the number of vertices the graph was constructed with,
// including any currently removed.
func (g *Graph) N() int { return g.n }
