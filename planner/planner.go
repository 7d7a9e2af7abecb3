/*
	planner package plans the fastest route between two route nodes by
	feeding the node registry and the configured lanes into the shortest
	path calculator.
*/

package planner

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uRoute/routenode"
	"github.com/mycok/uRoute/shortestpath"
)

// Route is the fastest sequence of stops between two route nodes.
type Route struct {
	Stops    []routenode.RouteNode
	Duration int
}

// Planner plans routes over the nodes of a registry. Every plan works on a
// snapshot of the registry taken when the plan is requested.
type Planner struct {
	config Config
}

// New creates and returns a fully configured route planner.
func New(config Config) (*Planner, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("route planner: config validation failed: %w", err)
	}

	return &Planner{config: config}, nil
}

// Plan returns the fastest route from the node with ID fromID to the node
// with ID toID.
func (p *Planner) Plan(fromID, toID int) (*Route, error) {
	startedAt := p.config.Clock.Now()

	if !p.config.Nodes.Has(toID) {
		return nil, fmt.Errorf("plan route to %d: %w", toID, ErrUnknownNode)
	}

	calc, nodes, err := p.calculator()
	if err != nil {
		return nil, err
	}

	if err := calc.Execute(vertexFor(routenode.RouteNode{ID: fromID})); err != nil {
		return nil, fmt.Errorf("plan route from %d: %w", fromID, err)
	}

	path, duration, err := calc.BuildShortestPathTo(vertexFor(routenode.RouteNode{ID: toID}))
	if err != nil {
		return nil, fmt.Errorf("plan route from %d to %d: %w", fromID, toID, err)
	}

	route := &Route{Duration: duration}
	for _, v := range path {
		route.Stops = append(route.Stops, nodes[v.ID])
	}

	p.config.Logger.WithFields(logrus.Fields{
		"from":     fromID,
		"to":       toID,
		"stops":    len(route.Stops),
		"duration": duration,
		"took":     p.config.Clock.Now().Sub(startedAt),
	}).Info("planned route")

	return route, nil
}

// Durations returns the travel duration from the node with ID fromID to
// every node reachable from it, keyed by node ID.
func (p *Planner) Durations(fromID int) (map[int]int, error) {
	calc, nodes, err := p.calculator()
	if err != nil {
		return nil, err
	}

	res, err := calc.Run(vertexFor(routenode.RouteNode{ID: fromID}))
	if err != nil {
		return nil, fmt.Errorf("calculate durations from %d: %w", fromID, err)
	}

	durations := make(map[int]int)
	for _, v := range res.Reached() {
		dist, _ := res.Distance(v)
		durations[nodes[v.ID].ID] = dist
	}

	p.config.Logger.WithFields(logrus.Fields{
		"from":    fromID,
		"reached": len(durations),
	}).Debug("calculated durations")

	return durations, nil
}

// calculator builds a shortest path calculator from the current registry
// contents and the configured lanes. It also returns the registry nodes
// keyed by vertex ID.
func (p *Planner) calculator() (*shortestpath.Calculator, map[string]routenode.RouteNode, error) {
	registered := p.config.Nodes.Nodes()

	nodes := make(map[string]routenode.RouteNode, len(registered))
	vertices := make([]shortestpath.Vertex, 0, len(registered))
	positions := make(map[int]int, len(registered))
	for _, n := range registered {
		v := vertexFor(n)
		nodes[v.ID] = n
		positions[n.ID] = len(vertices)
		vertices = append(vertices, v)
	}

	g, err := shortestpath.NewGraph(vertices, nil)
	if err != nil {
		return nil, nil, err
	}

	for _, l := range p.config.Lanes {
		srcIdx, srcExists := positions[l.From]
		dstIdx, dstExists := positions[l.To]
		if !srcExists || !dstExists {
			return nil, nil, fmt.Errorf(
				"add lane %d -> %d: %w", l.From, l.To, ErrUnknownNode,
			)
		}

		if err := g.AddLane(l.ID, srcIdx, dstIdx, l.Duration); err != nil {
			return nil, nil, err
		}
	}

	calc, err := shortestpath.NewCalculator(shortestpath.Config{
		Graph:  g,
		Clock:  p.config.Clock,
		Logger: p.config.Logger.WithField("component", "shortest-path"),
	})
	if err != nil {
		return nil, nil, err
	}

	return calc, nodes, nil
}

// vertexFor converts a route node into a graph vertex. The node ID is used
// as vertex ID and as name when the node has no name.
func vertexFor(n routenode.RouteNode) shortestpath.Vertex {
	id := strconv.Itoa(n.ID)
	name := n.Name
	if name == "" {
		name = id
	}

	return shortestpath.Vertex{
		ID:   id,
		Name: name,
		Lat:  n.Lat,
		Lon:  n.Lon,
	}
}
