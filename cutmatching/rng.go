package cutmatching

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// ConfigureRandomness implements spec.md §6.4's configureRandomness(seed)
// contract: seed 0 draws entropy from the process's nondeterministic
// source (crypto/rand, mirroring the original's std::random_device
// fallback); any other seed produces a fully deterministic stream.
func ConfigureRandomness(seed int64) *mathrand.Rand {
	if seed == 0 {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(buf[:]))
		} else {
			seed = defaultFallbackSeed
		}
	}
	return mathrand.New(mathrand.NewSource(seed))
}

// defaultFallbackSeed is used only if the crypto/rand read itself fails,
// which in practice never happens on supported platforms.
const defaultFallbackSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier via a
// SplitMix64-style avalanche mix, giving independent substreams from one
// base seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG derives an independent RNG stream from base, consuming one
// draw from base to decorrelate repeated calls with the same stream id.
// The Solver uses this to give the potential sampler's diagnostic draws
// their own stream, so the sampler's Gaussian draws never come from the
// round loop's RNG. Each call still advances base by one draw, so with
// samplePotential > 0 the vectors the loop later draws from base
// (resampleUnitVector) differ from a run without sampling.
func deriveRNG(base *mathrand.Rand, stream uint64) *mathrand.Rand {
	parent := base.Int63()
	return mathrand.New(mathrand.NewSource(deriveSeed(parent, stream)))
}
