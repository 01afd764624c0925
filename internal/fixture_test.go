package internal

import (
	"embed"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/sectormesh/level"
)

// This file turns the svg fixtures into levels. This is not a full (or even
// correct) svg parser. Every polygon in the fixture becomes a closed loop of
// one-sided lines facing sector 0, in the order and winding it was drawn. If
// anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *level.Level {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	b := level.NewBuilder()
	sector := b.AddSector(0, 128)
	for _, polygonEl := range polygons {
		b.AddLoop(sector, level.NoSector, parsePoints(polygonEl.Attributes["points"])...)
	}
	l, err := b.Build()
	if err != nil {
		log.Fatalf("Fixture %q is not a valid level: %v", name, err)
	}
	return l
}

func parsePoints(pointString string) [][2]float64 {
	var points [][2]float64
	for _, pointString := range strings.Split(pointString, " ") {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points
}

// Loop with made up vertex ids, numbered from 0 in order.
func loopOf(points ...Point) Loop {
	l := Loop{Points: points}
	for i := range points {
		l.Vertices = append(l.Vertices, i)
	}
	return l
}

// Same, with vertex ids starting at first.
func loopFrom(first int, points ...Point) Loop {
	l := loopOf(points...)
	for i := range l.Vertices {
		l.Vertices[i] += first
	}
	return l
}

func testOptions() *Options {
	opts := DefaultOptions()
	opts.Logger = log.New(io.Discard, "", 0)
	return &opts
}

