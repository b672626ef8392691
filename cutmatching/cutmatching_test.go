package cutmatching_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/exdecomp/cutmatching/builder"
	"github.com/exdecomp/cutmatching/core"
	"github.com/exdecomp/cutmatching/cutmatching"
	"github.com/exdecomp/cutmatching/subdivision"
)

type SolverSuite struct {
	suite.Suite
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) build(g *core.Graph) *subdivision.Graph {
	return subdivision.Build(g)
}

func (s *SolverSuite) TestSingleton() {
	g := core.NewGraph(1)
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.5)
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.Equal(cutmatching.Expander, result.Type)
	s.Equal(0, result.Iterations)
}

func (s *SolverSuite) TestTwoVertexEdge() {
	g := core.NewGraph(2)
	s.Require().NoError(g.AddEdge(0, 1))
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.5)
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.Equal(cutmatching.Expander, result.Type)
	s.Equal(0, result.Iterations)
}

func (s *SolverSuite) TestCompleteGraphIsExpander() {
	g, err := builder.Complete(6)
	s.Require().NoError(err)
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.1, cutmatching.WithSeed(42))
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.Equal(cutmatching.Expander, result.Type)
	s.Equal(0, g.RemovedCount())
}

func (s *SolverSuite) TestDumbbellIsBalancedOrNearExpander() {
	g, err := builder.Dumbbell(4)
	s.Require().NoError(err)
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.2, cutmatching.WithSeed(7))
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.Contains([]cutmatching.Type{cutmatching.Balanced, cutmatching.NearExpander}, result.Type)
	s.classificationInvariants(g, result)
}

func (s *SolverSuite) TestPathIsBalancedOrNearExpander() {
	g, err := builder.Path(10)
	s.Require().NoError(err)
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.5, cutmatching.WithSeed(11))
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.classificationInvariants(g, result)
}

func (s *SolverSuite) TestStarSatisfiesClassificationInvariants() {
	g, err := builder.Star(10)
	s.Require().NoError(err)
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.3, cutmatching.WithSeed(5))
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.classificationInvariants(g, result)
}

// classificationInvariants checks, on the graph as it stands right after
// Compute returned, that alive plus removed vertices equal N, that the
// iteration count stays under a loose bound of 1000, and that an
// Expander outcome leaves either no removed or no alive vertices.
func (s *SolverSuite) classificationInvariants(g *core.Graph, result cutmatching.Result) {
	s.Equal(g.N(), g.AliveCount()+g.RemovedCount())
	s.LessOrEqual(result.Iterations, 1000) // sanity: some finite T was honored
	if result.Type == cutmatching.Expander {
		alive, removed := g.AliveCount(), g.RemovedCount()
		s.True(removed == 0 || alive == 0)
	}
}

func (s *SolverSuite) TestRejectsEmptySubset() {
	g := core.NewGraph(3)
	_ = g.Remove(0)
	_ = g.Remove(1)
	_ = g.Remove(2)
	sg := s.build(g)

	_, err := cutmatching.NewSolver(g, sg, 0.5)
	s.ErrorIs(err, cutmatching.ErrEmptySubset)
}

func (s *SolverSuite) TestRejectsInvalidPhi() {
	g, err := builder.Complete(3)
	s.Require().NoError(err)
	sg := s.build(g)

	_, err = cutmatching.NewSolver(g, sg, 0)
	s.ErrorIs(err, cutmatching.ErrInvalidPhi)

	_, err = cutmatching.NewSolver(g, sg, 1.5)
	s.ErrorIs(err, cutmatching.ErrInvalidPhi)
}

func (s *SolverSuite) TestSeedIsReproducible() {
	g1, err := builder.Dumbbell(4)
	s.Require().NoError(err)
	sg1 := s.build(g1)
	solver1, err := cutmatching.NewSolver(g1, sg1, 0.2, cutmatching.WithSeed(99))
	s.Require().NoError(err)
	r1 := solver1.Compute(context.Background())

	g2, err := builder.Dumbbell(4)
	s.Require().NoError(err)
	sg2 := s.build(g2)
	solver2, err := cutmatching.NewSolver(g2, sg2, 0.2, cutmatching.WithSeed(99))
	s.Require().NoError(err)
	r2 := solver2.Compute(context.Background())

	s.Equal(r1.Type, r2.Type)
	s.Equal(r1.Iterations, r2.Iterations)
}

func (s *SolverSuite) TestPotentialSamplingPopulatesResult() {
	g, err := builder.Path(10)
	s.Require().NoError(err)
	sg := s.build(g)

	solver, err := cutmatching.NewSolver(g, sg, 0.5,
		cutmatching.WithSeed(3), cutmatching.WithSamplePotential(4))
	s.Require().NoError(err)

	result := solver.Compute(context.Background())
	s.NotEmpty(result.SampledPotentials)
	for _, sample := range result.SampledPotentials {
		s.Len(sample, 4)
		for _, v := range sample {
			s.GreaterOrEqual(v, 0.0)
			s.False(math.IsNaN(v))
		}
	}
}
