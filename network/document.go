/*
	network package reads and writes transit network documents: the JSON
	representation of the route nodes and the lanes connecting them.
*/

package network

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mycok/uRoute/planner"
	"github.com/mycok/uRoute/routenode"
)

// Node is the document representation of a route node.
type Node struct {
	ID   int     `json:"node_id"`
	Lat  float32 `json:"lat"`
	Lon  float32 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

// Lane is the document representation of a directed lane between two
// route nodes.
type Lane struct {
	ID       string `json:"id,omitempty"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	Duration int    `json:"duration"`
}

// Document is a complete transit network.
type Document struct {
	Nodes []Node `json:"nodes"`
	Lanes []Lane `json:"lanes"`
}

// Decode reads a network document from r.
func Decode(r io.Reader) (*Document, error) {
	doc := new(Document)
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode network document: %w", err)
	}

	return doc, nil
}

// Encode writes doc to w as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode network document: %w", err)
	}

	return nil
}

// FromRegistry builds a document holding the nodes of the registry, in
// insertion order, and the provided lanes.
func FromRegistry(r *routenode.Registry, lanes []planner.Lane) *Document {
	doc := &Document{
		Nodes: []Node{},
		Lanes: []Lane{},
	}

	for _, n := range r.Nodes() {
		doc.Nodes = append(doc.Nodes, Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Name: n.Name})
	}

	for _, l := range lanes {
		doc.Lanes = append(doc.Lanes, Lane{ID: l.ID, From: l.From, To: l.To, Duration: l.Duration})
	}

	return doc
}

// Registry returns a registry populated with the document nodes. An error
// is returned if the document lists the same node ID more than once.
func (doc *Document) Registry() (*routenode.Registry, error) {
	r := routenode.NewRegistry()
	for _, n := range doc.Nodes {
		err := r.Add(routenode.RouteNode{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Name: n.Name})
		if err != nil {
			return nil, fmt.Errorf("populate registry: %w", err)
		}
	}

	return r, nil
}

// PlannerLanes returns the document lanes in the form expected by the
// route planner.
func (doc *Document) PlannerLanes() []planner.Lane {
	lanes := make([]planner.Lane, 0, len(doc.Lanes))
	for _, l := range doc.Lanes {
		lanes = append(lanes, planner.Lane{ID: l.ID, From: l.From, To: l.To, Duration: l.Duration})
	}

	return lanes
}
