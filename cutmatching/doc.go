// Package cutmatching implements the cut-matching game: given a subset
// of a graph (expressed as a core.Graph and its subdivision.Graph) and a
// target conductance φ, Solver.Compute plays a bounded number of rounds
// alternating a spectral-flavored flow projection with a unit-flow
// routing subproblem, and classifies the subset as an Expander, a
// NearExpander with a small side peeled off, or Balanced with a roughly
// even split.
//
// Solver owns both graphs exclusively for the duration of Compute: it
// mutates them via removal and expects the caller to restore removals
// (core.Graph.RestoreRemoves) if it wants the original subset back.
//
// This package sits atop three others that make up the rest of the
// module: core (the original graph G), subdivision (builds G′ by
// subdividing each edge through a split vertex), and unitflow (the flow
// graph and bounded-height push–relabel engine the round loop invokes
// every round). Package builder supplies deterministic topology
// constructors the test suites build scenarios from. An external
// expander-decomposition driver — out of scope here — is expected to
// invoke Solver.Compute per component and recurse on the result.
package cutmatching
