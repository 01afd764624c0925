package internal

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// BridgeStrategy picks how a hole gets connected to its outer boundary.
type BridgeStrategy int

const (
	// Closest outer vertex to the right of the hole's rightmost vertex. This
	// is an approximation: on concave outer boundaries the bridge can cross the
	// boundary, and ear clipping then fails or misbehaves.
	BridgeNearestX BridgeStrategy = iota
	// Cast a ray to the right against the outer edges and bridge to the
	// closest visible vertex. Changes which bridges are chosen compared to
	// BridgeNearestX, so it has to be asked for.
	BridgeRayCast
)

var bridgeStrategyNames = []string{"nearest-x", "ray-cast"}

func (s BridgeStrategy) String() string {
	if int(s) < len(bridgeStrategyNames) {
		return bridgeStrategyNames[s]
	}
	return fmt.Sprintf("BridgeStrategy(%d)", int(s))
}

func ParseBridgeStrategy(name string) (BridgeStrategy, error) {
	for i, n := range bridgeStrategyNames {
		if strings.EqualFold(n, name) {
			return BridgeStrategy(i), nil
		}
	}
	return 0, errors.Errorf("unknown bridge strategy %q (want one of %s)", name, strings.Join(bridgeStrategyNames, ", "))
}

type Logger interface {
	Printf(format string, args ...interface{})
}

type Options struct {
	Bridge BridgeStrategy
	// Relative difference under which two loop areas are considered equal.
	AreaTolerance float64
	// Upper bound on the vertex count of a spliced polygon. Zero means no
	// limit; a hole that would push the polygon past the limit is dropped.
	MaxPolygonVertices int
	// Classify loops by containment instead of treating every loop but the
	// largest as a hole. Lets a sector consist of several disjoint areas.
	Islands bool
	// Sectors processed concurrently by a level build. Values below 2 mean
	// sequential processing.
	Workers int
	// 0 logs faults only, 1 adds a line per sector, 2 adds pipeline detail.
	Verbosity int
	// Colour fault lines in the log.
	Color  bool
	Logger Logger
}

func DefaultOptions() Options {
	return Options{
		Bridge:        BridgeNearestX,
		AreaTolerance: 1e-9,
		Workers:       1,
		Logger:        log.New(os.Stderr, "", 0),
	}
}

// Verbose logs only when the configured verbosity reaches level.
func (o *Options) Verbose(level int, format string, args ...interface{}) {
	if o.Logger != nil && level <= o.Verbosity {
		o.Logger.Printf(format, args...)
	}
}

func (o *Options) Validate() error {
	if o.AreaTolerance < 0 {
		return errors.Errorf("area tolerance must not be negative, got %g", o.AreaTolerance)
	}
	if o.MaxPolygonVertices < 0 {
		return errors.Errorf("max polygon vertices must not be negative, got %d", o.MaxPolygonVertices)
	}
	if o.Bridge != BridgeNearestX && o.Bridge != BridgeRayCast {
		return errors.Errorf("unknown bridge strategy %d", int(o.Bridge))
	}
	return nil
}
