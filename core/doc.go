// Package core defines the original graph G that the cut-matching solver
// operates on: a plain undirected, unweighted topology with reversible
// vertex removal.
//
// Unlike a general-purpose graph library, G carries no weights, no
// directedness, and no multi-edge policy — the cut-matching game derives
// all capacities from φ and the round budget T (see package cutmatching),
// so G is topology only. What it does carry is the thing the solver
// actually mutates: a vertex can be marked removed and later restored, in
// strict last-in-first-out order, so an outer recursive decomposition
// driver can undo exactly the removals a single Solver.Compute call made.
//
// Graph is safe under concurrent use (muVert/muAdj follow the same
// separate-lock discipline this codebase's ancestry uses elsewhere), which
// matters when an outer driver recurses on disjoint components from
// multiple goroutines.
package core
