package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/exdecomp/cutmatching/builder"
)

// ConstructorSuite exercises every deterministic topology constructor.
type ConstructorSuite struct {
	suite.Suite
}

func TestConstructorSuite(t *testing.T) {
	suite.Run(t, new(ConstructorSuite))
}

func (s *ConstructorSuite) TestComplete() {
	g, err := builder.Complete(6)
	s.Require().NoError(err)
	s.Equal(6, g.N())
	for v := 0; v < 6; v++ {
		s.Equal(5, g.Degree(v))
	}
}

func (s *ConstructorSuite) TestCompleteTooSmall() {
	_, err := builder.Complete(0)
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)
}

func (s *ConstructorSuite) TestPath() {
	g, err := builder.Path(10)
	s.Require().NoError(err)
	s.Equal(1, g.Degree(0))
	s.Equal(1, g.Degree(9))
	s.Equal(2, g.Degree(5))
}

func (s *ConstructorSuite) TestPathSingleton() {
	g, err := builder.Path(1)
	s.Require().NoError(err)
	s.Equal(0, g.Degree(0))
}

func (s *ConstructorSuite) TestStar() {
	g, err := builder.Star(10)
	s.Require().NoError(err)
	s.Equal(11, g.N())
	s.Equal(10, g.Degree(0))
	s.Equal(1, g.Degree(1))
}

func (s *ConstructorSuite) TestCycle() {
	g, err := builder.Cycle(5)
	s.Require().NoError(err)
	for v := 0; v < 5; v++ {
		s.Equal(2, g.Degree(v))
	}
}

func (s *ConstructorSuite) TestCycleTooSmall() {
	_, err := builder.Cycle(2)
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)
}

func (s *ConstructorSuite) TestDumbbell() {
	g, err := builder.Dumbbell(4)
	s.Require().NoError(err)
	s.Equal(8, g.N())
	// Bridge endpoints have one extra edge beyond their clique degree.
	s.Equal(4, g.Degree(3))
	s.Equal(4, g.Degree(4))
	// Every other vertex only sees its clique.
	s.Equal(3, g.Degree(0))
	s.Equal(3, g.Degree(7))
}
