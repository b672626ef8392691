// Package subdivision builds the auxiliary graph G′ the cut-matching game
// is actually played on: every edge (u,v) of the original graph G is
// replaced by a length-2 path u – s_e – v through a fresh split vertex
// s_e, so |V(G′)| = n + m. Original vertices keep their ids 0..n-1;
// split vertex ids are n + e for edge id e.
//
// Build returns the G′ flow graph; Densify then builds the compact index
// maps a cut-matching solver re-densifies at the start of every call: ToSplit
// maps a vertex id to its compact split-vertex index (or -1 if the
// vertex isn't a split vertex or is currently dead), and FromSplit is
// its inverse.
package subdivision
