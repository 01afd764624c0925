// Package level holds the read-only level data the tessellator consumes: vertex
// positions, linedefs with their front and back sectors, and sector heights.
//
// Everything in here is created once at load time and never mutated again.
// Derived geometry lives elsewhere and is rebuilt from scratch on reload.
package level

// Side selects one of the two sides of a linedef. The front side is to the
// right of the line when walking from its start vertex to its end vertex.
type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Front {
		return "front"
	}
	return "back"
}

func (s Side) Opposite() Side {
	if s == Front {
		return Back
	}
	return Front
}

// NoSector marks a side of a linedef that faces the void.
const NoSector = -1

// Store is the level data contract of the tessellator. Implementations must be
// safe for concurrent reads.
type Store interface {
	SectorCount() int
	// Edge ids bordering the sector, in no particular order.
	SectorEdges(sector int) []int
	EdgeEndpoints(edge int) (start, end int)
	// The sector on the given side of the edge, if any.
	EdgeSideSector(edge int, side Side) (sector int, ok bool)
	VertexPosition(vertex int) (x, y float64)
	SectorHeights(sector int) (floor, ceiling float64)
}
