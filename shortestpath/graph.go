/*
	shortestpath package provides a single source shortest path calculator
	for small, manually constructed graphs of transit route nodes, based on
	Dijkstra's algorithm. Edges are directed and must carry non-negative
	weights.
*/

package shortestpath

import (
	"fmt"

	"github.com/google/uuid"
)

// Vertex represents a routable point in the graph. Vertices are identified
// by ID only: two vertices with the same ID are the same vertex regardless
// of their name or coordinates.
type Vertex struct {
	ID   string
	Name string
	Lat  float32
	Lon  float32
}

// Equal reports whether v and other share the same ID.
func (v Vertex) Equal(other Vertex) bool { return v.ID == other.ID }

// String returns the display name of the vertex, falling back to its ID.
func (v Vertex) String() string {
	if v.Name != "" {
		return v.Name
	}

	return v.ID
}

// Edge represents a directed, weighted connection (lane) from Source to
// Destination.
type Edge struct {
	ID          string
	Source      Vertex
	Destination Vertex
	// Weight is the cost of travelling along the edge, ie: a duration or a
	// distance.
	Weight int
}

// String returns a short description of the edge.
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s (%d)", e.Source, e.Destination, e.Weight)
}

// Graph aggregates the vertices and edges used for a calculation. Duplicate
// vertices, self-loops and parallel edges are accepted as provided.
type Graph struct {
	vertices []Vertex
	edges    []Edge
}

// NewGraph creates a graph from the provided vertices and edges. An error is
// returned if any of the edges carries a negative weight.
func NewGraph(vertices []Vertex, edges []Edge) (*Graph, error) {
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("create edge %q: %w", e.ID, ErrNegativeWeight)
		}
	}

	g := &Graph{
		vertices: append([]Vertex(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
	}

	return g, nil
}

// AddLane adds a directed edge between the vertices at positions srcIdx and
// dstIdx of the vertex list. If laneID is empty a random ID is generated.
func (g *Graph) AddLane(laneID string, srcIdx, dstIdx, duration int) error {
	if srcIdx < 0 || srcIdx >= len(g.vertices) {
		return fmt.Errorf("add lane %q: source index %d: %w", laneID, srcIdx, ErrInvalidIndex)
	}

	if dstIdx < 0 || dstIdx >= len(g.vertices) {
		return fmt.Errorf("add lane %q: destination index %d: %w", laneID, dstIdx, ErrInvalidIndex)
	}

	if duration < 0 {
		return fmt.Errorf("add lane %q: %w", laneID, ErrNegativeWeight)
	}

	if laneID == "" {
		laneID = uuid.New().String()
	}

	g.edges = append(g.edges, Edge{
		ID:          laneID,
		Source:      g.vertices[srcIdx],
		Destination: g.vertices[dstIdx],
		Weight:      duration,
	})

	return nil
}

// Vertices returns a copy of the graph's vertex list.
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// Edges returns a copy of the graph's edge list.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// HasVertex returns true if a vertex with the same ID as v is part of the
// graph.
func (g *Graph) HasVertex(v Vertex) bool {
	for _, known := range g.vertices {
		if known.Equal(v) {
			return true
		}
	}

	return false
}
