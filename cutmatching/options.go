package cutmatching

import (
	"github.com/sirupsen/logrus"
)

// Deterministic defaults, named rather than left as magic numbers.
// spec.md §4.3 leaves these unspecified by the caller's choice; these
// values favor a modest round budget and a balance target roughly a
// third of the subdivision graph's volume, matching typical expander
// decomposition usage.
const (
	defaultTConst             = 0
	defaultTFactor            = 1.0
	defaultMinBalance         = 1.0 / 3.0
	defaultResampleUnitVector = false
	defaultRandomWalkSteps    = 0
	defaultSamplePotential    = 0
)

// Parameters aggregates every knob spec.md §4.3/§6.2 names. It is built
// via Option functions and passed by value to NewSolver.
type Parameters struct {
	tConst             int
	tFactor            float64
	minBalance         float64
	resampleUnitVector bool
	randomWalkSteps    int
	samplePotential    int

	seed int64

	logger  *logrus.Logger
	metrics *Metrics
}

// Option configures a Parameters value.
type Option func(*Parameters)

// WithTConst sets the constant term of the round budget T. Negative
// values are clamped to 0.
func WithTConst(tConst int) Option {
	return func(p *Parameters) {
		if tConst < 0 {
			tConst = 0
		}
		p.tConst = tConst
	}
}

// WithTFactor sets the (log10 m)² coefficient of the round budget T.
// Negative values are clamped to 0.
func WithTFactor(tFactor float64) Option {
	return func(p *Parameters) {
		if tFactor < 0 {
			tFactor = 0
		}
		p.tFactor = tFactor
	}
}

// WithMinBalance sets the target balance as a fraction of G′'s total
// volume. Values outside [0,1] are clamped.
func WithMinBalance(minBalance float64) Option {
	return func(p *Parameters) {
		if minBalance < 0 {
			minBalance = 0
		} else if minBalance > 1 {
			minBalance = 1
		}
		p.minBalance = minBalance
	}
}

// WithResampleUnitVector enables drawing a fresh unit vector every round
// (re-projected through history) instead of updating one vector
// incrementally via pairwise averaging.
func WithResampleUnitVector(resample bool) Option {
	return func(p *Parameters) { p.resampleUnitVector = resample }
}

// WithRandomWalkSteps sets the number of extra projections applied
// after a fresh draw; only meaningful alongside WithResampleUnitVector.
// Negative values are clamped to 0.
func WithRandomWalkSteps(steps int) Option {
	return func(p *Parameters) {
		if steps < 0 {
			steps = 0
		}
		p.randomWalkSteps = steps
	}
}

// WithSamplePotential enables the diagnostic potential sampler, drawing
// k fresh unit vectors per sample point. Negative values are clamped
// to 0 (disabled).
func WithSamplePotential(k int) Option {
	return func(p *Parameters) {
		if k < 0 {
			k = 0
		}
		p.samplePotential = k
	}
}

// WithSeed fixes the solver's RNG seed for reproducible runs. Seed 0
// (the default) draws entropy from the process's nondeterministic
// source instead — see ConfigureRandomness.
func WithSeed(seed int64) Option {
	return func(p *Parameters) { p.seed = seed }
}

// WithLogger attaches a logrus.Logger the solver emits round-level
// Debug/Trace records and outcome-level Info records to. A nil logger
// (the default) is a legal no-op.
func WithLogger(logger *logrus.Logger) Option {
	return func(p *Parameters) { p.logger = logger }
}

// WithMetrics attaches a Metrics registration the solver reports
// per-round and per-outcome observations to. A nil Metrics (the
// default) disables instrumentation entirely.
func WithMetrics(m *Metrics) Option {
	return func(p *Parameters) { p.metrics = m }
}

// newParameters applies deterministic defaults and then opts in order.
func newParameters(opts ...Option) Parameters {
	p := Parameters{
		tConst:             defaultTConst,
		tFactor:            defaultTFactor,
		minBalance:         defaultMinBalance,
		resampleUnitVector: defaultResampleUnitVector,
		randomWalkSteps:    defaultRandomWalkSteps,
		samplePotential:    defaultSamplePotential,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// shouldMaintainMatchings mirrors the original's derived flag: rounds
// history is only worth keeping if something re-projects through it.
func (p Parameters) shouldMaintainMatchings() bool {
	return p.resampleUnitVector || p.samplePotential > 0
}
