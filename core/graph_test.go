package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/exdecomp/cutmatching/core"
)

// GraphSuite exercises Graph's adjacency, degree, and removal bookkeeping.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) triangle() *core.Graph {
	g := core.NewGraph(3)
	s.Require().NoError(g.AddEdge(0, 1))
	s.Require().NoError(g.AddEdge(1, 2))
	s.Require().NoError(g.AddEdge(0, 2))
	return g
}

func (s *GraphSuite) TestDegreeAndVolume() {
	g := s.triangle()
	s.Equal(2, g.Degree(0))
	s.Equal(6, g.GlobalVolume(g.Vertices()))
}

func (s *GraphSuite) TestLoopRejected() {
	g := core.NewGraph(2)
	require.ErrorIs(s.T(), g.AddEdge(0, 0), core.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestOutOfRangeRejected() {
	g := core.NewGraph(2)
	require.ErrorIs(s.T(), g.AddEdge(0, 5), core.ErrNoSuchVertex)
}

func (s *GraphSuite) TestRemoveUpdatesDegreeOfNeighbors() {
	g := s.triangle()
	s.Require().NoError(g.Remove(2))
	s.Equal(1, g.Degree(0))
	s.Equal(1, g.Degree(1))
	s.Equal(2, g.AliveCount())
	s.Equal(1, g.RemovedCount())
}

func (s *GraphSuite) TestDoubleRemoveErrors() {
	g := s.triangle()
	s.Require().NoError(g.Remove(0))
	require.ErrorIs(s.T(), g.Remove(0), core.ErrAlreadyRemoved)
}

func (s *GraphSuite) TestRestoreRemovesIsLIFOAndExact() {
	g := s.triangle()
	s.Require().NoError(g.Remove(0))
	s.Require().NoError(g.Remove(1))
	g.RestoreRemoves()
	s.Equal(3, g.AliveCount())
	s.Equal(0, g.RemovedCount())
	s.Equal(2, g.Degree(2))
}

func (s *GraphSuite) TestRestoreOneUndoesLastOnly() {
	g := s.triangle()
	s.Require().NoError(g.Remove(0))
	s.Require().NoError(g.Remove(1))
	s.Require().NoError(g.RestoreOne())
	s.True(g.Alive(1))
	s.False(g.Alive(0))
}

func (s *GraphSuite) TestRestoreOneEmptyErrors() {
	g := core.NewGraph(1)
	require.ErrorIs(s.T(), g.RestoreOne(), core.ErrNothingToRestore)
}
