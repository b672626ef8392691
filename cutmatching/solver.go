package cutmatching

import (
	"context"
	"io"
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/exdecomp/cutmatching/core"
	"github.com/exdecomp/cutmatching/subdivision"
)

// Solver plays the cut-matching game described in package cutmatching's
// doc comment against one (graph, subdivision graph) pair. It is built
// once via NewSolver and consumed by exactly one Compute call, per
// spec.md §3's lifecycle contract.
type Solver struct {
	graph  *core.Graph
	sub    *subdivision.Graph
	idx    *subdivision.Index
	phi    float64
	params Parameters

	t             int
	numSplitNodes int
	rng           *rand.Rand
}

// NewSolver validates its preconditions and derives the round budget T
// and uniform subdivision-edge capacity from phi, following spec.md
// §4.3's Solver constructor. sub must have been built from graph (same
// original vertex count) via subdivision.Build.
func NewSolver(graph *core.Graph, sub *subdivision.Graph, phi float64, opts ...Option) (*Solver, error) {
	if graph.AliveCount() == 0 {
		return nil, ErrEmptySubset
	}
	if phi <= 0 || phi > 1 {
		return nil, ErrInvalidPhi
	}
	if sub.N != graph.N() {
		return nil, ErrSizeMismatch
	}

	params := newParameters(opts...)
	rng := ConfigureRandomness(params.seed)

	logM := safeLog10(graph.M())
	t := params.tConst + int(math.Ceil(params.tFactor*logM*logM))

	numSplitNodes := sub.Flow.N() - sub.N

	tForCapacity := t
	if tForCapacity < 1 {
		tForCapacity = 1
	}
	capacity := int(math.Ceil(1.0 / phi / float64(tForCapacity)))
	sub.Flow.SetUniformCapacity(capacity)

	idx := subdivision.Densify(sub)

	return &Solver{
		graph:         graph,
		sub:           sub,
		idx:           idx,
		phi:           phi,
		params:        params,
		t:             t,
		numSplitNodes: numSplitNodes,
		rng:           rng,
	}, nil
}

// safeLog10 mirrors std::log10 for the T formula, but guards m<=1 to 0
// instead of returning -Inf — spec.md §7's "log10(m)=0 when m=1" edge
// case, extended defensively to m=0.
func safeLog10(m int) float64 {
	if m <= 1 {
		return 0
	}
	return math.Log10(float64(m))
}

// logger returns a non-nil logger, falling back to a discarded one so
// call sites never need a nil check.
func (s *Solver) logger() *logrus.Logger {
	if s.params.logger != nil {
		return s.params.logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Compute runs the round loop and returns the classified Result.
// ctx is accepted only so log call sites can attach request
// correlation; it is never checked for cancellation mid-round, per
// spec.md §5's single-threaded synchronous scheduling model.
func (s *Solver) Compute(ctx context.Context) Result {
	log := s.logger().WithContext(ctx)

	if s.numSplitNodes <= 1 {
		log.WithField("numSplitNodes", s.numSplitNodes).Debug("cut-matching exited early")
		return Result{Type: Expander, Iterations: 0}
	}

	lowerVolumeBalance := s.numSplitNodes / (10 * s.t)
	targetVolumeBalance := lowerVolumeBalance
	if mb := int(s.params.minBalance * float64(s.sub.Flow.GlobalVolume(s.sub.Flow.Vertices()))); mb > targetVolumeBalance {
		targetVolumeBalance = mb
	}

	maintainMatchings := s.params.shouldMaintainMatchings()
	var rounds []roundMatching
	var sampledPotentials [][]float64

	flow := randomUnitVector(s.rng, s.numSplitNodes)

	iterations := 0
	for ; iterations < s.t; iterations++ {
		if s.sub.Flow.GlobalVolume(s.sub.Flow.RemovedVertices()) > targetVolumeBalance {
			break
		}

		if s.params.samplePotential > 0 {
			sampleRNG := deriveRNG(s.rng, uint64(iterations))
			sample := samplePotential(sampleRNG, s.numSplitNodes, rounds, s.params.samplePotential)
			sampledPotentials = append(sampledPotentials, sample)
			for _, v := range sample {
				s.params.metrics.observePotential(v)
			}
		}

		log.WithField("iteration", iterations).Trace("round start")

		if s.params.resampleUnitVector {
			flow = randomUnitVector(s.rng, s.numSplitNodes)
			for i := 0; i < s.params.randomWalkSteps; i++ {
				projectFlow(rounds, flow)
			}
		}

		curCount := s.curSubdivisionCount()
		total := 0.0
		for _, x := range flow {
			total += x
		}
		avgFlow := total / float64(curCount)

		axLeft, axRight := s.bipartition(flow, avgFlow)
		axLeft, axRight = trimToBalance(axLeft, axRight, flow, s.idx.ToSplit)

		log.WithFields(logrus.Fields{"sources": len(axLeft), "sinks": len(axRight)}).Trace("selected sources/sinks")

		s.sub.Flow.Reset()
		for _, u := range axLeft {
			s.sub.Flow.AddSource(u, 1)
		}
		for _, u := range axRight {
			s.sub.Flow.AddSink(u, 1)
		}

		h := heightBound(s.phi, s.numSplitNodes)
		hasExcess := s.sub.Flow.Compute(h)

		var removed []int
		if len(hasExcess) > 0 {
			removed = s.sub.Flow.LevelCut(h)
		}

		removedSet := make(map[int]bool, len(removed))
		for _, u := range removed {
			removedSet[u] = true
		}
		isRemoved := func(u int) bool { return removedSet[u] }

		axLeft = filterOut(axLeft, isRemoved)
		axRight = filterOut(axRight, isRemoved)

		for _, u := range removed {
			s.peel(u)
		}
		for _, u := range s.sub.Flow.Vertices() {
			if s.sub.Flow.Degree(u) == 0 {
				removedSet[u] = true
				s.peel(u)
			}
		}

		if maintainMatchings {
			scrub(rounds, s.idx.FromSplit, isRemoved)
		}

		matched := s.sub.Flow.Matching(axLeft)
		round := make(roundMatching, 0, len(matched))
		for _, pair := range matched {
			i, j := s.idx.ToSplit[pair.Source], s.idx.ToSplit[pair.Sink]
			matchedFlow := 0.5 * (flow[i] + flow[j])
			flow[i], flow[j] = matchedFlow, matchedFlow
			round = append(round, matchPair{I: i, J: j})
		}
		log.WithField("matched", len(round)).Trace("round matching decoded")

		if maintainMatchings {
			rounds = append(rounds, round)
		}

		s.params.metrics.observeRemovedVolume(s.sub.Flow.GlobalVolume(s.sub.Flow.RemovedVertices()))
	}

	result := Result{Iterations: iterations}

	if s.params.samplePotential > 0 {
		sampleRNG := deriveRNG(s.rng, uint64(iterations)+1)
		sampledPotentials = append(sampledPotentials,
			samplePotential(sampleRNG, s.numSplitNodes, rounds, s.params.samplePotential))
	}
	result.SampledPotentials = sampledPotentials

	volRPrime := s.sub.Flow.GlobalVolume(s.sub.Flow.RemovedVertices())

	switch {
	case s.graph.AliveCount() != 0 && s.graph.RemovedCount() != 0 && volRPrime > lowerVolumeBalance:
		result.Type = Balanced
		log.WithFields(logrus.Fields{"iterations": iterations, "alive": s.graph.AliveCount(), "removed": s.graph.RemovedCount()}).Info("cut-matching: balanced")
	case s.graph.RemovedCount() == 0:
		result.Type = Expander
		log.WithField("iterations", iterations).Info("cut-matching: expander")
	case s.graph.AliveCount() == 0:
		s.graph.RestoreRemoves()
		result.Type = Expander
		log.WithField("iterations", iterations).Info("cut-matching: expander (restored)")
	default:
		result.Type = NearExpander
		log.WithFields(logrus.Fields{"iterations": iterations, "remaining": s.graph.AliveCount()}).Info("cut-matching: near expander")
	}

	s.params.metrics.countOutcome(result.Type, iterations)

	return result
}

// curSubdivisionCount returns the number of currently alive split
// vertices: the live subdivision graph's size minus the live original
// graph's size.
func (s *Solver) curSubdivisionCount() int {
	return s.sub.Flow.AliveCount() - s.graph.AliveCount()
}

// peel removes u from the subdivision graph, and from the original
// graph too when u is an original vertex (compact index -1).
func (s *Solver) peel(u int) {
	if s.idx.ToSplit[u] == -1 {
		_ = s.graph.Remove(u)
	}
	_ = s.sub.Flow.Remove(u)
}

// bipartition splits the currently alive split vertices into axLeft
// (f < avg) and axRight (f >= avg), expressed as full vertex ids.
func (s *Solver) bipartition(flow []float64, avgFlow float64) (axLeft, axRight []int) {
	for u, i := range s.idx.ToSplit {
		if i < 0 || !s.sub.Flow.Alive(u) {
			continue
		}
		if flow[i] < avgFlow {
			axLeft = append(axLeft, u)
		} else {
			axRight = append(axRight, u)
		}
	}
	return axLeft, axRight
}

// trimToBalance applies spec.md §4.3 step 4's fixed trimming rules:
// sort both sides by flow value, then pop from the back of axRight
// while it holds more than half the combined set, and pop from the
// back of axLeft while it holds more than an eighth or still outnumbers
// axRight. axLeft/axRight hold full vertex ids; toSplit translates them
// to flow's compact split indices.
func trimToBalance(axLeft, axRight []int, flow []float64, toSplit []int) (left, right []int) {
	sort.Slice(axLeft, func(a, b int) bool {
		return flow[toSplit[axLeft[a]]] < flow[toSplit[axLeft[b]]]
	})
	sort.Slice(axRight, func(a, b int) bool {
		return flow[toSplit[axRight[a]]] > flow[toSplit[axRight[b]]]
	})

	n := len(axLeft) + len(axRight)
	for 2*len(axRight) > n {
		axRight = axRight[:len(axRight)-1]
	}
	for 8*len(axLeft) > n || len(axLeft) > len(axRight) {
		axLeft = axLeft[:len(axLeft)-1]
	}
	return axLeft, axRight
}

// heightBound computes spec.md §4.3 step 6's push–relabel height cap.
func heightBound(phi float64, numSplitNodes int) int {
	logN := math.Log10(float64(numSplitNodes))
	a := int(math.Round(1.0 / phi / logN))
	b := int(math.Floor(logN))
	if a > b {
		return a
	}
	return b
}

// filterOut returns the subsequence of ids for which reject is false,
// reusing ids' backing array.
func filterOut(ids []int, reject func(int) bool) []int {
	out := ids[:0]
	for _, id := range ids {
		if !reject(id) {
			out = append(out, id)
		}
	}
	return out
}
