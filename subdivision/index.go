package subdivision

// Index is the compact-index arena spec.md §3 names ToSplit/FromSplit
// for: a dense, parallel-array map between split-vertex ids and their
// compact position among currently-alive split vertices. Kept as two
// plain int slices rather than pointers, mirroring the
// subdivisionIdx/fromSubdivisionIdx arena-with-indices pattern.
type Index struct {
	// ToSplit[v] is v's compact index if v is an alive split vertex,
	// else -1. Length N()+numEdges, indexed by full vertex id.
	ToSplit []int

	// FromSplit[i] is the split-vertex id occupying compact slot i.
	// Length equals the number of alive split vertices at the time of
	// the last Densify call.
	FromSplit []int
}

// Densify rebuilds idx over the split vertices (ids >= sg.N) that are
// currently alive in sg.Flow, in ascending id order. Per spec.md §3,
// this happens once at solver start; thereafter indices stay stable
// even as split vertices are later removed (a removed split vertex
// keeps its compact slot until the solver returns).
func Densify(sg *Graph) *Index {
	total := sg.Flow.N()
	idx := &Index{
		ToSplit:   make([]int, total),
		FromSplit: make([]int, 0, total-sg.N),
	}
	for v := range idx.ToSplit {
		idx.ToSplit[v] = -1
	}

	for v := sg.N; v < total; v++ {
		if !sg.Flow.Alive(v) {
			continue
		}
		idx.ToSplit[v] = len(idx.FromSplit)
		idx.FromSplit = append(idx.FromSplit, v)
	}
	return idx
}

// NumSplitNodes returns the number of compact slots in idx.
func (idx *Index) NumSplitNodes() int { return len(idx.FromSplit) }
