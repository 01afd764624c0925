package internal

import (
	"sort"

	"github.com/osuushi/sectormesh/level"
)

// SectorEdge is a level edge as seen from one sector: Start and End are swapped
// when the sector sits behind the edge, so that walking from Start to End
// always keeps the sector on the right.
type SectorEdge struct {
	ID         int
	Start, End int
}

// EdgeIndex is the per-sector edge arena. Edges are sorted by id, which makes
// everything built on top of it independent of the order the level store
// lists them in.
type EdgeIndex struct {
	Sector int
	Edges  []SectorEdge
	// Positions in Edges of the edges touching each vertex
	incident  map[int][]int
	positions map[int]Point
	// Edges with the sector on both sides, left out of Edges
	SelfReferencing []int
}

func NewEdgeIndex(store level.Store, sector int) *EdgeIndex {
	ids := append([]int(nil), store.SectorEdges(sector)...)
	sort.Ints(ids)

	index := &EdgeIndex{
		Sector:    sector,
		Edges:     make([]SectorEdge, 0, len(ids)),
		incident:  make(map[int][]int),
		positions: make(map[int]Point),
	}
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue // listed twice by the store
		}
		front, hasFront := store.EdgeSideSector(id, level.Front)
		back, hasBack := store.EdgeSideSector(id, level.Back)
		if hasFront && hasBack && front == sector && back == sector {
			index.SelfReferencing = append(index.SelfReferencing, id)
			continue
		}

		start, end := store.EdgeEndpoints(id)
		if !hasFront || front != sector {
			start, end = end, start
		}
		pos := len(index.Edges)
		index.Edges = append(index.Edges, SectorEdge{ID: id, Start: start, End: end})
		index.incident[start] = append(index.incident[start], pos)
		if end != start {
			index.incident[end] = append(index.incident[end], pos)
		}
		for _, v := range []int{start, end} {
			if _, ok := index.positions[v]; !ok {
				x, y := store.VertexPosition(v)
				index.positions[v] = Point{x, y}
			}
		}
	}
	return index
}

func (idx *EdgeIndex) Len() int {
	return len(idx.Edges)
}

// Incident returns the positions in Edges of the edges touching vertex, in
// ascending edge id order.
func (idx *EdgeIndex) Incident(vertex int) []int {
	return idx.incident[vertex]
}

func (idx *EdgeIndex) Position(vertex int) Point {
	p, ok := idx.positions[vertex]
	if !ok {
		fatalf("vertex %d is not part of sector %d", vertex, idx.Sector)
	}
	return p
}
