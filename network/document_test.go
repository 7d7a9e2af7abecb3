package network

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uRoute/planner"
	"github.com/mycok/uRoute/routenode"
)

var _ = check.Suite(new(documentTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type documentTestSuite struct{}

const sampleDocument = `{
	"nodes": [
		{"node_id": 1, "lat": 33.41, "lon": -111.94, "name": "Tempe Transit Center"},
		{"node_id": 2, "lat": 33.42, "lon": -111.93}
	],
	"lanes": [
		{"id": "a", "from": 1, "to": 2, "duration": 6}
	]
}`

func (s *documentTestSuite) TestDecode(c *check.C) {
	doc, err := Decode(strings.NewReader(sampleDocument))
	c.Assert(err, check.IsNil)

	r, err := doc.Registry()
	c.Assert(err, check.IsNil)
	c.Assert(r.Len(), check.Equals, 2)

	n, err := r.Node(1)
	c.Assert(err, check.IsNil)
	c.Assert(n, check.DeepEquals, routenode.RouteNode{
		ID: 1, Lat: 33.41, Lon: -111.94, Name: "Tempe Transit Center",
	})

	c.Assert(doc.PlannerLanes(), check.DeepEquals, []planner.Lane{
		{ID: "a", From: 1, To: 2, Duration: 6},
	})
}

func (s *documentTestSuite) TestDecodeMalformed(c *check.C) {
	_, err := Decode(strings.NewReader(`{"nodes": [`))
	c.Assert(err, check.ErrorMatches, "decode network document: .*")
}

func (s *documentTestSuite) TestDuplicateNodes(c *check.C) {
	doc := &Document{Nodes: []Node{{ID: 1}, {ID: 1}}}

	_, err := doc.Registry()
	c.Assert(errors.Is(err, routenode.ErrDuplicateNode), check.Equals, true)
}

func (s *documentTestSuite) TestEncodeRegistry(c *check.C) {
	r := routenode.NewRegistry()
	c.Assert(r.Add(routenode.RouteNode{ID: 3, Lat: 1.5, Lon: 2.5}), check.IsNil)

	var buf bytes.Buffer
	doc := FromRegistry(r, []planner.Lane{{ID: "x", From: 3, To: 3, Duration: 1}})
	c.Assert(Encode(&buf, doc), check.IsNil)

	decoded, err := Decode(&buf)
	c.Assert(err, check.IsNil)
	c.Assert(decoded, check.DeepEquals, doc)
}
