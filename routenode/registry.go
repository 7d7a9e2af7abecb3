/*
	routenode package stores route node (bus stop) information. Each node
	is identified by an integer ID and carries the latitude and longitude
	coordinates used to place it on a map.
*/

package routenode

import (
	"fmt"
	"sync"
)

// RouteNode represents a single transit stop. Two nodes are considered
// equal if they share the same ID.
type RouteNode struct {
	ID   int     // Node unique identifier
	Lat  float32 // Latitude of the stop
	Lon  float32 // Longitude of the stop
	Name string  // Optional display name
}

// Equal reports whether n and other identify the same node.
func (n RouteNode) Equal(other RouteNode) bool { return n.ID == other.ID }

// Registry holds the set of known route nodes. Nodes are keyed by ID and
// kept in insertion order. A Registry can be safely accessed by multiple
// goroutines.
type Registry struct {
	mu    sync.RWMutex
	nodes map[int]RouteNode
	order []int
}

// NewRegistry returns an empty node registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[int]RouteNode),
	}
}

// Add inserts node into the registry. If a node with the same ID is already
// registered, Add returns ErrDuplicateNode and leaves the registry unchanged.
func (r *Registry) Add(node RouteNode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[node.ID]; exists {
		return fmt.Errorf("add node %d: %w", node.ID, ErrDuplicateNode)
	}

	r.nodes[node.ID] = node
	r.order = append(r.order, node.ID)

	return nil
}

// Node performs a node lookup by id.
func (r *Registry) Node(id int) (RouteNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.nodes[id]
	if !exists {
		return RouteNode{}, fmt.Errorf("find node %d: %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// Has returns true if a node with the specified id is registered.
func (r *Registry) Has(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.nodes[id]

	return exists
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Nodes returns a copy of the registered nodes in insertion order.
func (r *Registry) Nodes() []RouteNode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]RouteNode, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.nodes[id])
	}

	return list
}
