package cutmatching

import (
	"math"
	"math/rand"
)

// randomUnitVector draws an independent standard-normal sample for every
// compact split-vertex slot and L2-normalizes the result, per spec.md
// §4.5. Because every slot in a densified index corresponds to exactly
// one split vertex, there is no analogue of the original's `>= 0`
// truthiness check here: iterating compact indices directly means only
// legitimate split vertices are ever touched.
func randomUnitVector(rng *rand.Rand, numSplitNodes int) []float64 {
	result := make([]float64, numSplitNodes)
	total := 0.0
	for i := range result {
		x := rng.NormFloat64()
		result[i] = x
		total += x * x
	}

	norm := math.Sqrt(total)
	if norm == 0 {
		return result
	}
	for i := range result {
		result[i] /= norm
	}
	return result
}

// samplePotential draws k independent unit vectors, projects each
// through rounds without mutating it, and returns Σ(avg-f_i)² over all
// compact indices for each draw — a diagnostic measure of how far the
// current matching history has pulled a fresh random vector from
// uniform.
func samplePotential(rng *rand.Rand, numSplitNodes int, rounds []roundMatching, k int) []float64 {
	result := make([]float64, k)
	avg := 1.0 / float64(numSplitNodes)

	for s := 0; s < k; s++ {
		f := randomUnitVector(rng, numSplitNodes)
		projectFlow(rounds, f)

		total := 0.0
		for _, fi := range f {
			d := avg - fi
			total += d * d
		}
		result[s] = total
	}
	return result
}
