package cutmatching

// matchPair is one pairing of compact split-vertex indices produced by a
// single round's flow decoding.
type matchPair struct {
	I, J int
}

// roundMatching is the ordered list of pairs one round contributed.
type roundMatching []matchPair

// projectFlow applies every round's pairwise averaging to f in order,
// in place: for each pair (i,j), f[i] and f[j] both become their mean.
// Rounds are never mutated by this — only f. Grounded directly on the
// original's projectFlow: O(sum of round sizes).
func projectFlow(rounds []roundMatching, f []float64) {
	for _, round := range rounds {
		for _, p := range round {
			avg := 0.5 * (f[p.I] + f[p.J])
			f[p.I] = avg
			f[p.J] = avg
		}
	}
}

// scrub removes, from every recorded round, any pair touching a
// compact index whose underlying split vertex is no longer alive —
// spec.md §3 invariant 4. isRemoved reports removal by full vertex id;
// fromSplit maps a compact index back to that id.
func scrub(rounds []roundMatching, fromSplit []int, isRemoved func(int) bool) {
	for r, round := range rounds {
		kept := round[:0]
		for _, p := range round {
			if isRemoved(fromSplit[p.I]) || isRemoved(fromSplit[p.J]) {
				continue
			}
			kept = append(kept, p)
		}
		rounds[r] = kept
	}
}
