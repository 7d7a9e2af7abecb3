package shortestpath

import "errors"

var (
	// ErrInvalidIndex is returned when a lane references a vertex position
	// outside the graph's vertex list.
	ErrInvalidIndex = errors.New("invalid vertex index")

	// ErrNegativeWeight is returned when an edge with a negative weight is
	// added to a graph.
	ErrNegativeWeight = errors.New("negative edge weights not supported")

	// ErrUnknownSource is returned when a calculation is started from a
	// vertex that is not part of the graph.
	ErrUnknownSource = errors.New("source vertex is not part of the graph")

	// ErrUnreachableTarget is returned when no path exists from the source
	// vertex to the requested target.
	ErrUnreachableTarget = errors.New("no path to target vertex")

	// ErrNotCalculated is returned when results are requested from a
	// calculator before any shortest path calculation was executed.
	ErrNotCalculated = errors.New("shortest paths not calculated")

	// ErrCorruptPredecessors is returned when walking the predecessor links
	// does not terminate at the source vertex.
	ErrCorruptPredecessors = errors.New("predecessor links do not lead to the source")
)
