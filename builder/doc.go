// Package builder provides deterministic constructors for the graph
// families exercised by the cut-matching solver's end-to-end scenarios:
// complete graphs, paths, cycles, stars, and two-clique dumbbells.
//
// Every constructor returns a *core.Graph ready to be handed to package
// subdivision, plus a sentinel error for out-of-range sizes. None of
// these topologies are stochastic, so — unlike the builder package this
// one descends from — there is no RNG/config plumbing: a fixed n (or k)
// fully determines the graph.
package builder
