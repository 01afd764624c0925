package sectormesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Surface int

const (
	Floor Surface = iota
	Ceiling
	Wall
)

func (s Surface) String() string {
	switch s {
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Surface(%d)", int(s))
}

// Normal points out of the surface into the sector. Walls face every which
// way, so theirs is the zero vector; see the vertex normals instead.
func (s Surface) Normal() mgl64.Vec3 {
	switch s {
	case Floor:
		return mgl64.Vec3{0, 1, 0}
	case Ceiling:
		return mgl64.Vec3{0, -1, 0}
	}
	return mgl64.Vec3{}
}

type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Mesh is a flat triangle list, three vertices per triangle, counterclockwise
// when seen from the side the normal points to. Level coordinates (x, y) at
// height h map to the position (x, h, -y).
//
// A mesh is never modified once built. Rebuilding produces a new one.
type Mesh struct {
	Sector        int
	Surface       Surface
	Vertices      []Vertex
	TriangleCount uint32
}

func newMesh(tess *Tessellation, surface Surface, height float64) *Mesh {
	mesh := &Mesh{
		Sector:        tess.Sector,
		Surface:       surface,
		Vertices:      make([]Vertex, 0, 3*len(tess.Triangles)),
		TriangleCount: uint32(len(tess.Triangles)),
	}
	normal := surface.Normal()
	for _, tri := range tess.Triangles {
		corners := [3]mgl64.Vec3{
			{tri.A.X, height, -tri.A.Y},
			{tri.B.X, height, -tri.B.Y},
			{tri.C.X, height, -tri.C.Y},
		}
		// Seen from below, the winding flips
		if surface == Ceiling {
			corners[0], corners[2] = corners[2], corners[0]
		}
		for _, position := range corners {
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: position, Normal: normal})
		}
	}
	return mesh
}

func (m *Mesh) Empty() bool {
	return m.TriangleCount == 0
}

// Area sums up the areas of the triangles.
func (m *Mesh) Area() float64 {
	var area float64
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		a, b, c := m.Vertices[i].Position, m.Vertices[i+1].Position, m.Vertices[i+2].Position
		area += b.Sub(a).Cross(c.Sub(a)).Len() / 2
	}
	return area
}

// Buffer interleaves positions and normals, six floats per vertex, ready to
// upload as a vertex buffer.
func (m *Mesh) Buffer() []float32 {
	buf := make([]float32, 0, 6*len(m.Vertices))
	for _, v := range m.Vertices {
		buf = append(buf,
			float32(v.Position.X()), float32(v.Position.Y()), float32(v.Position.Z()),
			float32(v.Normal.X()), float32(v.Normal.Y()), float32(v.Normal.Z()),
		)
	}
	return buf
}
