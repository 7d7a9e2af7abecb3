package shortestpath

import (
	"errors"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"
)

var _ = check.Suite(new(graphTestSuite))

type graphTestSuite struct{}

func (s *graphTestSuite) vertices() []Vertex {
	return []Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}}
}

func (s *graphTestSuite) TestAddLane(c *check.C) {
	g, err := NewGraph(s.vertices(), nil)
	c.Assert(err, check.IsNil)

	c.Assert(g.AddLane("a-b", 0, 1, 7), check.IsNil)

	edges := g.Edges()
	c.Assert(edges, check.HasLen, 1)
	c.Assert(edges[0], check.DeepEquals, Edge{
		ID:          "a-b",
		Source:      Vertex{ID: "A"},
		Destination: Vertex{ID: "B"},
		Weight:      7,
	})
}

func (s *graphTestSuite) TestAddLaneGeneratesID(c *check.C) {
	g, err := NewGraph(s.vertices(), nil)
	c.Assert(err, check.IsNil)

	c.Assert(g.AddLane("", 1, 2, 3), check.IsNil)

	_, err = uuid.Parse(g.Edges()[0].ID)
	c.Assert(err, check.IsNil)
}

func (s *graphTestSuite) TestAddLaneInvalidIndex(c *check.C) {
	g, err := NewGraph(s.vertices(), nil)
	c.Assert(err, check.IsNil)

	specs := []struct {
		src, dst int
	}{
		{-1, 0},
		{0, -1},
		{3, 0},
		{0, 3},
	}

	for _, spec := range specs {
		err := g.AddLane("lane", spec.src, spec.dst, 1)
		c.Assert(
			errors.Is(err, ErrInvalidIndex), check.Equals, true,
			check.Commentf("lane %d -> %d", spec.src, spec.dst),
		)
	}

	c.Assert(g.Edges(), check.HasLen, 0)
}

func (s *graphTestSuite) TestNegativeWeights(c *check.C) {
	g, err := NewGraph(s.vertices(), nil)
	c.Assert(err, check.IsNil)

	err = g.AddLane("lane", 0, 1, -1)
	c.Assert(errors.Is(err, ErrNegativeWeight), check.Equals, true)

	_, err = NewGraph(s.vertices(), []Edge{
		{ID: "bad", Source: Vertex{ID: "A"}, Destination: Vertex{ID: "B"}, Weight: -4},
	})
	c.Assert(errors.Is(err, ErrNegativeWeight), check.Equals, true)
}

func (s *graphTestSuite) TestAccessorsReturnCopies(c *check.C) {
	g, err := NewGraph(s.vertices(), nil)
	c.Assert(err, check.IsNil)

	vertices := g.Vertices()
	vertices[0].ID = "Z"
	c.Assert(g.Vertices()[0].ID, check.Equals, "A")

	c.Assert(g.HasVertex(Vertex{ID: "A", Name: "other name"}), check.Equals, true)
	c.Assert(g.HasVertex(Vertex{ID: "Z"}), check.Equals, false)
}

func (s *graphTestSuite) TestDuplicatesAndLoopsAccepted(c *check.C) {
	g, err := NewGraph(
		[]Vertex{{ID: "A"}, {ID: "A"}},
		nil,
	)
	c.Assert(err, check.IsNil)
	c.Assert(g.AddLane("loop", 0, 0, 1), check.IsNil)
	c.Assert(g.AddLane("p1", 0, 1, 1), check.IsNil)
	c.Assert(g.AddLane("p2", 0, 1, 2), check.IsNil)

	c.Assert(g.Vertices(), check.HasLen, 2)
	c.Assert(g.Edges(), check.HasLen, 3)
}
