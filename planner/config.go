package planner

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uRoute/routenode"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/mycok/uRoute/planner NodeAPI

// NodeAPI defines a minimum set of API methods for querying the route node
// registry.
type NodeAPI interface {
	// Nodes returns the registered route nodes in insertion order.
	Nodes() []routenode.RouteNode

	// Has returns true if a node with the specified id is registered.
	Has(id int) bool
}

// Lane is a directed travel segment between two route nodes.
type Lane struct {
	// Lane identifier. If empty, a random ID is assigned.
	ID string
	// ID of the node the lane starts from.
	From int
	// ID of the node the lane leads to.
	To int
	// Travel duration along the lane.
	Duration int
}

// Config defines configurations for the route planner.
type Config struct {
	// API for querying the route node registry.
	Nodes NodeAPI

	// Lanes connecting the route nodes.
	Lanes []Lane

	// A clock instance for generating time-related events. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.Nodes == nil {
		err = multierror.Append(err, fmt.Errorf("node API not provided"))
	}

	for _, l := range config.Lanes {
		if l.Duration < 0 {
			err = multierror.Append(err, fmt.Errorf(
				"invalid duration for lane %d -> %d, must be >= 0", l.From, l.To,
			))
		}
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
