package internal

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// findBridge returns the position in outer of the vertex the hole vertex h
// should be connected to.
func findBridge(outer Loop, h Point, strategy BridgeStrategy) (int, bool) {
	var (
		b  int
		ok bool
	)
	switch strategy {
	case BridgeRayCast:
		b, ok = rayCastBridge(outer, h)
	default:
		b, ok = nearestXBridge(outer, h)
	}
	if !ok {
		return -1, false
	}
	return resolveOccurrence(outer, b, h), true
}

// The outer vertex with the smallest positive x distance from h. Ties go to
// the vertex closest to h in y, then to the first in loop order. No
// intersection test is made, so this is only right for outer boundaries that
// are convex around the hole.
func nearestXBridge(outer Loop, h Point) (int, bool) {
	best := -1
	for i, p := range outer.Points {
		dx := p.X - h.X
		if dx <= 0 {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		bp := outer.Points[best]
		bestDx := bp.X - h.X
		if dx < bestDx-Tolerance ||
			(dx <= bestDx+Tolerance && math.Abs(p.Y-h.Y) < math.Abs(bp.Y-h.Y)-Tolerance) {
			best = i
		}
	}
	return best, best >= 0
}

// Cast a ray from h towards +x and find the first boundary edge it hits. The
// edge endpoint with the larger x is visible from h unless a reflex vertex of
// the boundary sits inside the triangle between h, the hit point and that
// endpoint; then the reflex vertex making the smallest angle with the ray is
// the visible one.
func rayCastBridge(outer Loop, h Point) (int, bool) {
	n := outer.Len()
	items := make([]rtree.BulkItem, n)
	maxX := math.Inf(-1)
	for i, a := range outer.Points {
		b := outer.Points[CircularIndex(i+1, n)]
		items[i] = rtree.BulkItem{
			Box: rtree.Box{
				MinX: math.Min(a.X, b.X),
				MinY: math.Min(a.Y, b.Y),
				MaxX: math.Max(a.X, b.X),
				MaxY: math.Max(a.Y, b.Y),
			},
			RecordID: i,
		}
		maxX = math.Max(maxX, a.X)
	}
	if maxX < h.X {
		return -1, false
	}
	tree := rtree.BulkLoad(items)

	bestEdge := -1
	bestX := math.Inf(1)
	// Padded, so edges merely touching the ray are returned as well
	ray := rtree.Box{MinX: h.X - Tolerance, MinY: h.Y - Tolerance, MaxX: maxX + 1, MaxY: h.Y + Tolerance}
	// The callback never fails, so neither does the search.
	_ = tree.RangeSearch(ray, func(i int) error {
		a, b := outer.Points[i], outer.Points[CircularIndex(i+1, n)]
		// Edges facing h from the right run upwards on a counterclockwise
		// boundary. Horizontal edges are covered by their neighbours.
		if a.Y >= b.Y || h.Y < a.Y || h.Y > b.Y {
			return nil
		}
		x := a.X + (h.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x < h.X || x >= bestX {
			return nil
		}
		bestX = x
		bestEdge = i
		return nil
	})
	if bestEdge < 0 {
		return -1, false
	}

	hit := Point{bestX, h.Y}
	ia, ib := bestEdge, CircularIndex(bestEdge+1, n)
	if outer.Points[ia].Equal(hit) {
		return ia, true
	}
	if outer.Points[ib].Equal(hit) {
		return ib, true
	}
	m := ia
	if outer.Points[ib].X > outer.Points[ia].X {
		m = ib
	}

	tri := Triangle{h, hit, outer.Points[m]}
	if !tri.IsCCW() {
		tri = Triangle{h, outer.Points[m], hit}
	}
	best := m
	bestAngle, bestDist := rayAngle(h, outer.Points[m])
	for i, p := range outer.Points {
		if i == m || p.Equal(outer.Points[m]) || !isReflex(outer, i) || !tri.ContainsPoint(p) {
			continue
		}
		angle, dist := rayAngle(h, p)
		if angle < bestAngle-Tolerance || (Equal(angle, bestAngle) && dist < bestDist) {
			best, bestAngle, bestDist = i, angle, dist
		}
	}
	return best, true
}

func rayAngle(h, p Point) (angle, dist float64) {
	d := p.Sub(h)
	return math.Atan2(math.Abs(d.Y), d.X), math.Hypot(d.X, d.Y)
}

func isReflex(l Loop, i int) bool {
	n := l.Len()
	return orient(l.Points[CircularIndex(i-1, n)], l.Points[i], l.Points[CircularIndex(i+1, n)]) < 0
}

// After earlier splices a bridge vertex appears twice in the boundary, once on
// each side of the slit. Only one of the copies has h inside the angle formed
// by its neighbours; bridging from the other would cross the slit.
func resolveOccurrence(outer Loop, b int, h Point) int {
	n := outer.Len()
	for i, v := range outer.Vertices {
		if v != outer.Vertices[b] {
			continue
		}
		if inWedge(outer.Points[CircularIndex(i-1, n)], outer.Points[i], outer.Points[CircularIndex(i+1, n)], h) {
			return i
		}
	}
	return b
}

// Whether p lies strictly inside the interior angle at b of a
// counterclockwise boundary running a, b, c.
func inWedge(a, b, c, p Point) bool {
	left1 := orient(a, b, p) > 0
	left2 := orient(b, c, p) > 0
	if orient(a, b, c) >= 0 {
		return left1 && left2
	}
	return left1 || left2
}
