package shortestpath

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// lane is an outgoing connection in the calculator's adjacency index.
type lane struct {
	destID string
	weight int
}

// traversal holds the state of a single shortest path calculation. A new
// traversal is created for every calculation and is never shared.
type traversal struct {
	visited     map[string]bool
	frontier    frontier
	distance    map[string]int
	predecessor map[string]string
}

func newTraversal(srcID string) *traversal {
	t := &traversal{
		visited:     make(map[string]bool),
		distance:    map[string]int{srcID: 0},
		predecessor: make(map[string]string),
	}
	t.frontier.add(srcID, 0)

	return t
}

// shortestDistance returns the best known distance to the vertex with the
// specified ID and false if the vertex has not been reached yet.
func (t *traversal) shortestDistance(id string) (int, bool) {
	dist, reached := t.distance[id]

	return dist, reached
}

// Calculator is a shortest path calculator from a single vertex to all
// other vertices in a graph.
type Calculator struct {
	cfg Config

	// Vertex set of the graph, used to validate calculation sources.
	known map[string]bool
	// Vertices keyed by ID, including edge endpoints missing from the
	// vertex list. The first occurrence of an ID wins.
	vertices map[string]Vertex
	// Outgoing lanes per source vertex ID in edge order.
	outgoing map[string][]lane

	// Result of the last call to Execute.
	result *Result
}

// NewCalculator returns a new shortest path calculator for the graph in
// cfg. Later changes to the graph are not visible to the calculator.
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("shortest path calculator: config validation failed: %w", err)
	}

	c := &Calculator{
		cfg:      cfg,
		known:    make(map[string]bool),
		vertices: make(map[string]Vertex),
		outgoing: make(map[string][]lane),
	}

	for _, v := range cfg.Graph.vertices {
		c.known[v.ID] = true
		c.addVertex(v)
	}

	for _, e := range cfg.Graph.edges {
		c.addVertex(e.Source)
		c.addVertex(e.Destination)
		c.addLane(e)
	}

	return c, nil
}

func (c *Calculator) addVertex(v Vertex) {
	if _, exists := c.vertices[v.ID]; !exists {
		c.vertices[v.ID] = v
	}
}

// addLane indexes e as an outgoing lane of its source vertex. Only the
// first edge between a pair of vertices is kept: parallel edges resolve to
// the first match in edge order, not the cheapest one.
func (c *Calculator) addLane(e Edge) {
	srcID := e.Source.ID
	for _, l := range c.outgoing[srcID] {
		if l.destID == e.Destination.ID {
			return
		}
	}

	c.outgoing[srcID] = append(c.outgoing[srcID], lane{
		destID: e.Destination.ID,
		weight: e.Weight,
	})
}

// Execute calculates the shortest paths from source to every reachable
// vertex and stores the result in the calculator, replacing the result of
// any previous call. ErrUnknownSource is returned if source is not part of
// the graph.
func (c *Calculator) Execute(source Vertex) error {
	c.result = nil

	res, err := c.Run(source)
	if err != nil {
		return err
	}

	c.result = res

	return nil
}

// Run calculates the shortest paths from source and returns the result
// without modifying the calculator. Run may be invoked concurrently for
// different sources.
func (c *Calculator) Run(source Vertex) (*Result, error) {
	if !c.known[source.ID] {
		return nil, fmt.Errorf(
			"calculate shortest paths from %q: %w", source.ID, ErrUnknownSource,
		)
	}

	startedAt := c.cfg.Clock.Now()
	t := newTraversal(source.ID)

	for t.frontier.Len() > 0 {
		entry := t.frontier.next()
		// Skip vertices that were already finalized and entries that were
		// superseded by a shorter distance.
		if t.visited[entry.id] || entry.distance != t.distance[entry.id] {
			continue
		}

		t.visited[entry.id] = true
		c.relax(t, entry.id)
	}

	res := &Result{
		source:      c.vertices[source.ID],
		vertices:    c.vertices,
		distance:    t.distance,
		predecessor: t.predecessor,
	}

	c.cfg.Logger.WithFields(logrus.Fields{
		"source":  source.ID,
		"visited": len(t.visited),
		"took":    c.cfg.Clock.Now().Sub(startedAt),
	}).Debug("calculated shortest paths")

	return res, nil
}

// relax updates the distance and predecessor of every unvisited neighbor of
// the vertex with the specified ID whenever a shorter path through it is
// found.
func (c *Calculator) relax(t *traversal, id string) {
	dist, _ := t.shortestDistance(id)

	for _, l := range c.neighbors(t, id) {
		alt := dist + l.weight
		if current, reached := t.shortestDistance(l.destID); reached && current <= alt {
			continue
		}

		t.distance[l.destID] = alt
		t.predecessor[l.destID] = id
		t.frontier.add(l.destID, alt)
	}
}

// neighbors returns the outgoing lanes of the vertex with the specified ID
// that lead to vertices which have not been visited yet.
func (c *Calculator) neighbors(t *traversal, id string) []lane {
	var list []lane
	for _, l := range c.outgoing[id] {
		if !t.visited[l.destID] {
			list = append(list, l)
		}
	}

	return list
}

// Result returns the result of the last successful call to Execute or nil
// if there is none.
func (c *Calculator) Result() *Result {
	return c.result
}

// Distance returns the shortest distance from the last executed source to v.
// The second return value is false if v is unreachable or no calculation
// has been executed.
func (c *Calculator) Distance(v Vertex) (int, bool) {
	if c.result == nil {
		return 0, false
	}

	return c.result.Distance(v)
}

// BuildShortestPathTo returns the vertices that form the shortest path from
// the last executed source to dest along with the path cost.
func (c *Calculator) BuildShortestPathTo(dest Vertex) ([]Vertex, int, error) {
	if c.result == nil {
		return nil, 0, fmt.Errorf("build path to %q: %w", dest.ID, ErrNotCalculated)
	}

	return c.result.PathTo(dest)
}
