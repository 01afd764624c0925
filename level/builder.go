package level

// Builder assembles a Level line by line. It is mostly useful for tests and
// for converting hand drawn shapes; real maps come from the wad package.
type Builder struct {
	vertices []Vertex
	linedefs []Linedef
	sidedefs []Sidedef
	sectors  []Sector
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddSector(floor, ceiling float64) int {
	b.sectors = append(b.sectors, Sector{Floor: floor, Ceiling: ceiling})
	return len(b.sectors) - 1
}

func (b *Builder) AddVertex(x, y float64) int {
	b.vertices = append(b.vertices, Vertex{X: x, Y: y})
	return len(b.vertices) - 1
}

// AddLine adds a linedef from start to end. Front and back are sector ids, or
// NoSector for a side facing the void.
func (b *Builder) AddLine(start, end, front, back int) int {
	b.linedefs = append(b.linedefs, Linedef{
		Start: start,
		End:   end,
		Front: b.side(front),
		Back:  b.side(back),
	})
	return len(b.linedefs) - 1
}

// AddLoop adds a closed chain of lines through the given points, returning the
// new edge ids.
func (b *Builder) AddLoop(front, back int, points ...[2]float64) []int {
	first := len(b.vertices)
	for _, p := range points {
		b.AddVertex(p[0], p[1])
	}
	edges := make([]int, 0, len(points))
	for i := range points {
		edges = append(edges, b.AddLine(first+i, first+(i+1)%len(points), front, back))
	}
	return edges
}

func (b *Builder) side(sector int) int {
	if sector == NoSector {
		return NoSide
	}
	b.sidedefs = append(b.sidedefs, Sidedef{Sector: sector})
	return len(b.sidedefs) - 1
}

func (b *Builder) Build() (*Level, error) {
	return New(b.vertices, b.linedefs, b.sidedefs, b.sectors)
}
