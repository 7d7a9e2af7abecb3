package planner

import "errors"

// ErrUnknownNode is returned when a lane or a route endpoint refers to a
// node that is not registered.
var ErrUnknownNode = errors.New("unknown route node")
