package unitflow_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/exdecomp/cutmatching/unitflow"
)

// EngineSuite exercises the flow graph and the push–relabel/level-cut/
// matching operations built on top of it.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// chain builds a path 0-1-2-...-(n-1) with unit capacity on every edge.
func (s *EngineSuite) chain(n int) *unitflow.Graph {
	g := unitflow.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		s.Require().NoError(g.AddEdge(i, i+1, 1))
	}
	return g
}

// funnel builds two unit-capacity sources (0,1) forced through a shared
// bottleneck edge (2,3) of capacity 1, so routing the second unit
// requires vertex 2 to relabel past the bottleneck's fixed height.
func (s *EngineSuite) funnel() *unitflow.Graph {
	g := unitflow.NewGraph(4)
	s.Require().NoError(g.AddEdge(0, 2, 1))
	s.Require().NoError(g.AddEdge(1, 2, 1))
	s.Require().NoError(g.AddEdge(2, 3, 1))
	return g
}

func (s *EngineSuite) TestRoutesWithinHeightBound() {
	g := s.chain(4)
	g.AddSource(0, 1)
	g.AddSink(3, 1)

	stuck := g.Compute(4)
	s.Empty(stuck)

	pairs := g.Matching([]int{0})
	s.Require().Len(pairs, 1)
	s.Equal(0, pairs[0].Source)
	s.Equal(3, pairs[0].Sink)
}

func (s *EngineSuite) TestFreezesBeyondHeightBound() {
	g := s.funnel()
	g.AddSource(0, 1)
	g.AddSource(1, 1)
	g.AddSink(3, 2)

	// the bottleneck edge (2,3) only admits one unit before vertex 2 must
	// relabel past the height bound to route the second.
	stuck := g.Compute(1)
	s.Require().Len(stuck, 1)
	s.Equal(2, stuck[0])
}

func (s *EngineSuite) TestLevelCutIsNonEmptyWhenExcessRemains() {
	g := s.funnel()
	g.AddSource(0, 1)
	g.AddSource(1, 1)
	g.AddSink(3, 2)

	stuck := g.Compute(1)
	s.Require().NotEmpty(stuck)

	cut := g.LevelCut(1)
	s.NotEmpty(cut)
	for _, v := range stuck {
		s.Contains(cut, v)
	}
}

func (s *EngineSuite) TestResetClearsScratchState() {
	g := s.chain(4)
	g.AddSource(0, 1)
	g.AddSink(3, 1)
	g.Compute(4)

	g.Reset()
	s.Empty(g.Matching([]int{0}))
}

func (s *EngineSuite) TestMatchingToleratesUnroutedSource() {
	g := unitflow.NewGraph(3)
	s.Require().NoError(g.AddEdge(0, 1, 1))
	g.AddSource(0, 1)
	g.AddSink(2, 1) // unreachable: no edge (1,2)

	g.Compute(4)
	pairs := g.Matching([]int{0})
	s.Empty(pairs)
}

func (s *EngineSuite) TestRemoveAndRestore() {
	g := s.chain(3)
	s.Require().NoError(g.Remove(1))
	s.False(g.Alive(1))
	s.Equal(0, g.Degree(0))

	g.RestoreRemoves()
	s.True(g.Alive(1))
	s.Equal(1, g.Degree(0))
}

func (s *EngineSuite) TestAddEdgeRejectsNegativeCapacity() {
	g := unitflow.NewGraph(2)
	err := g.AddEdge(0, 1, -1)
	s.ErrorIs(err, unitflow.ErrNegativeCapacity)
}

func (s *EngineSuite) TestAddEdgeRejectsOutOfRange() {
	g := unitflow.NewGraph(2)
	err := g.AddEdge(0, 5, 1)
	s.ErrorIs(err, unitflow.ErrNoSuchVertex)
}
