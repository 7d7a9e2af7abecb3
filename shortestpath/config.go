package shortestpath

import (
	"errors"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
)

// Config encapsulates the configuration options for creating calculators.
type Config struct {
	// Graph to run calculations against. The calculator works on a snapshot
	// of the graph taken when it is created. A valid graph is required for
	// the config to be valid.
	Graph *Graph

	// A clock instance for timing calculations. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// validate checks whether a calculator configuration is valid and sets the
// default values if required.
func (c *Config) validate() error {
	var err error

	if c.Graph == nil {
		err = multierror.Append(err, errors.New("graph not provided"))
	}

	if c.Clock == nil {
		c.Clock = clock.WallClock
	}

	if c.Logger == nil {
		c.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
