package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uRoute/network"
	"github.com/mycok/uRoute/planner"
)

const (
	appName = "uRoute-planner"
	appSHA  = "compiled-and-deployed-at"
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"SHA":  appSHA,
		"host": host,
	})

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *logrus.Entry) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)

	networkPath := fs.String(
		"network", "", "Path to a JSON network document listing route nodes and lanes",
	)
	fromID := fs.Int("from", 0, "ID of the route node to start from")
	toID := fs.Int(
		"to", -1, "ID of the destination route node. If negative, durations"+
			" to every reachable node are printed instead",
	)
	logLevel := fs.String(
		"log-level", "info", "Log level [supported: debug, info, warn, error]",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger.Logger.SetLevel(level)

	p, err := configurePlanner(*networkPath, logger)
	if err != nil {
		return err
	}

	if *toID < 0 {
		durations, err := p.Durations(*fromID)
		if err != nil {
			return err
		}

		printDurations(out, *fromID, durations)

		return nil
	}

	route, err := p.Plan(*fromID, *toID)
	if err != nil {
		return err
	}

	printRoute(out, route)

	return nil
}

func configurePlanner(networkPath string, logger *logrus.Entry) (*planner.Planner, error) {
	if networkPath == "" {
		return nil, fmt.Errorf("network document must be specified with --network")
	}

	f, err := os.Open(networkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open network document: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := network.Decode(f)
	if err != nil {
		return nil, err
	}

	registry, err := doc.Registry()
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"nodes": registry.Len(),
		"lanes": len(doc.Lanes),
	}).Info("loaded network document")

	return planner.New(planner.Config{
		Nodes:  registry,
		Lanes:  doc.PlannerLanes(),
		Logger: logger.WithField("service", "route-planner"),
	})
}

func printRoute(out io.Writer, route *planner.Route) {
	for i, stop := range route.Stops {
		name := stop.Name
		if name == "" {
			name = fmt.Sprint(stop.ID)
		}

		fmt.Fprintf(out, "%2d. %s (%.5f, %.5f)\n", i+1, name, stop.Lat, stop.Lon)
	}

	fmt.Fprintf(out, "total duration: %d\n", route.Duration)
}

func printDurations(out io.Writer, fromID int, durations map[int]int) {
	ids := make([]int, 0, len(durations))
	for id := range durations {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Fprintf(out, "durations from %d:\n", fromID)
	for _, id := range ids {
		fmt.Fprintf(out, "%6d: %d\n", id, durations[id])
	}
}
