package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrNoSuchVertex indicates an operation referenced a vertex id outside [0,n).
	ErrNoSuchVertex = errors.New("core: no such vertex")

	// ErrLoopNotAllowed indicates a self-loop edge (u == v) was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAlreadyRemoved indicates Remove was called on a vertex already removed.
	ErrAlreadyRemoved = errors.New("core: vertex already removed")

	// ErrNothingToRestore indicates RestoreOne was called with an empty
	// removal stack.
	ErrNothingToRestore = errors.New("core: no removed vertex to restore")
)

// Graph is a plain undirected, unweighted topology over vertices
// 0..n-1. Edges carry no weight or direction — the cut-matching game
// derives all capacity from φ and T once it builds the subdivision graph
// (package subdivision), so this type only needs to answer adjacency,
// degree, and alive/removed queries.
//
// muVert guards alive/removedStack; muAdj guards adj. They are kept
// separate, mirroring the lvlath convention, so a reader iterating
// adjacency does not block a concurrent alive/removed query.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	n     int    // number of vertices, fixed at construction
	alive []bool // alive[v]: whether v is currently alive

	// removedStack records removals in the order they happened, so
	// RestoreRemoves can undo them LIFO — the discipline spec.md §3
	// requires of the outer driver.
	removedStack []int

	// adj[v] lists the neighbors of v as originally constructed; it is
	// never mutated by Remove (Degree/Neighbors filter by alive(w) instead),
	// since Remove must be cheap and reversible without touching neighbors.
	adj [][]int

	// edges records (u,v) pairs in insertion order; an edge's id is its
	// index here. Package subdivision needs this stable numbering to
	// assign split-vertex ids n+e per spec.
	edges [][2]int
}

// NewGraph allocates a Graph over n vertices (0..n-1), all alive, with no
// edges; edges are added one at a time with AddEdge.
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	g := &Graph{
		n:     n,
		alive: make([]bool, n),
		adj:   make([][]int, n),
	}
	for v := 0; v < n; v++ {
		g.alive[v] = true
	}
	return g
}

// AddEdge inserts the undirected edge (u,v) into the graph's adjacency.
// Self-loops are rejected. Parallel edges are permitted and are not
// deduplicated here or by package subdivision; each call appends one
// adjacency entry per endpoint.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrNoSuchVertex
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges = append(g.edges, [2]int{u, v})
	return nil
}

// N returns the number of vertices the graph was constructed with,
// including any currently removed.
func (g *Graph) N() int { return g.n }

// M returns the number of edges added via AddEdge.
func (g *Graph) M() int { return len(g.edges) }

// EdgeAt returns the (u,v) endpoints of the edge with the given id —
// its position in AddEdge call order. Package subdivision uses this id
// directly as the split-vertex offset.
func (g *Graph) EdgeAt(id int) (u, v int) {
	e := g.edges[id]
	return e[0], e[1]
}
