package level

import (
	"github.com/pkg/errors"
)

type Vertex struct {
	X, Y float64
}

// Linedef is a boundary segment between two vertices. Front and Back are
// sidedef indices, or NoSide.
type Linedef struct {
	Start, End  int
	Front, Back int
}

// NoSide is the sidedef index of a one-sided linedef's missing side.
const NoSide = -1

type Sidedef struct {
	Sector int
}

type Sector struct {
	Floor, Ceiling float64
	// Filled by New. An edge is listed once even if both of its sides face
	// this sector.
	Edges []int
}

// Level is the in-memory Store implementation.
type Level struct {
	Vertices []Vertex
	Linedefs []Linedef
	Sidedefs []Sidedef
	Sectors  []Sector
}

var _ Store = (*Level)(nil)

// New validates the references between the lumps and assigns every linedef to
// the sectors on its sides.
func New(vertices []Vertex, linedefs []Linedef, sidedefs []Sidedef, sectors []Sector) (*Level, error) {
	l := &Level{
		Vertices: vertices,
		Linedefs: linedefs,
		Sidedefs: sidedefs,
		Sectors:  sectors,
	}
	for i := range l.Sectors {
		l.Sectors[i].Edges = nil
	}

	for i, sd := range sidedefs {
		if sd.Sector < 0 || sd.Sector >= len(sectors) {
			return nil, errors.Errorf("sidedef %d references sector %d, level has %d sectors", i, sd.Sector, len(sectors))
		}
	}

	for i, ld := range linedefs {
		if ld.Start < 0 || ld.Start >= len(vertices) || ld.End < 0 || ld.End >= len(vertices) {
			return nil, errors.Errorf("linedef %d references vertices %d-%d, level has %d vertices", i, ld.Start, ld.End, len(vertices))
		}
		for _, sd := range []int{ld.Front, ld.Back} {
			if sd != NoSide && (sd < 0 || sd >= len(sidedefs)) {
				return nil, errors.Errorf("linedef %d references sidedef %d, level has %d sidedefs", i, sd, len(sidedefs))
			}
		}

		front, hasFront := l.EdgeSideSector(i, Front)
		back, hasBack := l.EdgeSideSector(i, Back)
		if hasFront {
			l.Sectors[front].Edges = append(l.Sectors[front].Edges, i)
		}
		if hasBack && (!hasFront || back != front) {
			l.Sectors[back].Edges = append(l.Sectors[back].Edges, i)
		}
	}
	return l, nil
}

func (l *Level) SectorCount() int {
	return len(l.Sectors)
}

func (l *Level) SectorEdges(sector int) []int {
	return l.Sectors[sector].Edges
}

func (l *Level) EdgeEndpoints(edge int) (start, end int) {
	ld := l.Linedefs[edge]
	return ld.Start, ld.End
}

func (l *Level) EdgeSideSector(edge int, side Side) (sector int, ok bool) {
	ld := l.Linedefs[edge]
	sd := ld.Front
	if side == Back {
		sd = ld.Back
	}
	if sd == NoSide {
		return NoSector, false
	}
	return l.Sidedefs[sd].Sector, true
}

func (l *Level) VertexPosition(vertex int) (x, y float64) {
	v := l.Vertices[vertex]
	return v.X, v.Y
}

func (l *Level) SectorHeights(sector int) (floor, ceiling float64) {
	s := l.Sectors[sector]
	return s.Floor, s.Ceiling
}
