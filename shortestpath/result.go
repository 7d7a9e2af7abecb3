package shortestpath

import (
	"fmt"
	"sort"
)

// Result holds the distances and predecessor links computed by a single
// shortest path calculation. A Result is read-only.
type Result struct {
	source      Vertex
	vertices    map[string]Vertex
	distance    map[string]int
	predecessor map[string]string
}

// Source returns the vertex the calculation started from.
func (r *Result) Source() Vertex { return r.source }

// Distance returns the shortest distance from the source to v. The second
// return value is false if v is unreachable.
func (r *Result) Distance(v Vertex) (int, bool) {
	dist, reached := r.distance[v.ID]

	return dist, reached
}

// Predecessor returns the vertex preceding v on the shortest path from the
// source. The second return value is false for the source itself and for
// unreachable vertices.
func (r *Result) Predecessor(v Vertex) (Vertex, bool) {
	id, exists := r.predecessor[v.ID]
	if !exists {
		return Vertex{}, false
	}

	return r.vertices[id], true
}

// Reached returns all vertices reachable from the source ordered by their
// distance and then by ID.
func (r *Result) Reached() []Vertex {
	list := make([]Vertex, 0, len(r.distance))
	for id := range r.distance {
		list = append(list, r.vertices[id])
	}

	sort.Slice(list, func(i, j int) bool {
		di, dj := r.distance[list[i].ID], r.distance[list[j].ID]
		if di != dj {
			return di < dj
		}

		return list[i].ID < list[j].ID
	})

	return list
}

// Distances returns a copy of the distance map keyed by vertex ID.
func (r *Result) Distances() map[string]int {
	m := make(map[string]int, len(r.distance))
	for id, dist := range r.distance {
		m[id] = dist
	}

	return m
}

// Predecessors returns a copy of the predecessor map keyed by vertex ID.
func (r *Result) Predecessors() map[string]string {
	m := make(map[string]string, len(r.predecessor))
	for id, prev := range r.predecessor {
		m[id] = prev
	}

	return m
}

// PathTo returns the vertices that form the shortest path from the source to
// dest, in travel order, along with the path cost. The path to the source
// itself only contains the source. ErrUnreachableTarget is returned if dest
// cannot be reached.
func (r *Result) PathTo(dest Vertex) ([]Vertex, int, error) {
	cost, reached := r.distance[dest.ID]
	if !reached {
		return nil, 0, fmt.Errorf("build path to %q: %w", dest.ID, ErrUnreachableTarget)
	}

	var path []Vertex
	id := dest.ID
	for {
		// Every hop moves to a distinct reached vertex, so a valid walk
		// can't be longer than the number of reached vertices.
		if len(path) >= len(r.distance) {
			return nil, 0, fmt.Errorf("build path to %q: %w", dest.ID, ErrCorruptPredecessors)
		}

		path = append(path, r.vertices[id])

		prev, exists := r.predecessor[id]
		if !exists {
			break
		}
		id = prev
	}

	if id != r.source.ID {
		return nil, 0, fmt.Errorf("build path to %q: %w", dest.ID, ErrCorruptPredecessors)
	}

	// Reverse path slice in place to form path from src->dst
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, nil
}
