package routenode

import "errors"

var (
	// ErrDuplicateNode is returned when a node with an already registered
	// ID is added to a registry.
	ErrDuplicateNode = errors.New("duplicate route node")

	// ErrNodeNotFound is returned when a node lookup by ID fails.
	ErrNodeNotFound = errors.New("route node not found")
)
