package sectormesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/osuushi/sectormesh/level"
	"github.com/pkg/errors"
)

// BuildWallMesh builds the walls seen from inside a sector. Every side of an
// edge that faces the sector contributes:
//
//   - a full wall from floor to ceiling when the other side is the void,
//   - an upper wall down to the neighbour's ceiling when it is lower,
//   - a lower wall up to the neighbour's floor when it is higher.
//
// Walls don't depend on the sector's loops, so a sector whose floor can't be
// reconstructed still has them.
func (b *Builder) BuildWallMesh(sector int) (*Mesh, error) {
	if sector < 0 || sector >= b.store.SectorCount() {
		return nil, errors.Errorf("sector %d out of range, level has %d sectors", sector, b.store.SectorCount())
	}
	return b.wallMesh(sector), nil
}

func (b *Builder) wallMesh(sector int) *Mesh {
	mesh := &Mesh{Sector: sector, Surface: Wall}
	floor, ceiling := b.store.SectorHeights(sector)

	for _, edge := range b.store.SectorEdges(sector) {
		start, end := b.store.EdgeEndpoints(edge)
		for _, side := range []level.Side{level.Front, level.Back} {
			if s, ok := b.store.EdgeSideSector(edge, side); !ok || s != sector {
				continue
			}
			// Walk the edge with the sector on the right
			from, to := start, end
			if side == level.Back {
				from, to = end, start
			}
			other, ok := b.store.EdgeSideSector(edge, side.Opposite())
			if !ok {
				b.addWall(mesh, from, to, floor, ceiling)
				continue
			}
			otherFloor, otherCeiling := b.store.SectorHeights(other)
			if otherCeiling < ceiling {
				b.addWall(mesh, from, to, otherCeiling, ceiling)
			}
			if otherFloor > floor {
				b.addWall(mesh, from, to, floor, otherFloor)
			}
		}
	}
	return mesh
}

// Two triangles between the given heights, facing to the right of from->to.
func (b *Builder) addWall(mesh *Mesh, from, to int, bottom, top float64) {
	fx, fy := b.store.VertexPosition(from)
	tx, ty := b.store.VertexPosition(to)
	if top <= bottom || (fx == tx && fy == ty) {
		return
	}
	normal := mgl64.Vec3{ty - fy, 0, tx - fx}.Normalize()

	fromBottom := mgl64.Vec3{fx, bottom, -fy}
	toBottom := mgl64.Vec3{tx, bottom, -ty}
	toTop := mgl64.Vec3{tx, top, -ty}
	fromTop := mgl64.Vec3{fx, top, -fy}
	for _, position := range []mgl64.Vec3{fromBottom, toBottom, toTop, toTop, fromTop, fromBottom} {
		mesh.Vertices = append(mesh.Vertices, Vertex{Position: position, Normal: normal})
	}
	mesh.TriangleCount += 2
}
