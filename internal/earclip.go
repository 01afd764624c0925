package internal

import "math"

// ClipEars triangulates a simple counterclockwise polygon by ear clipping.
//
// Candidates are scanned in sequence order. A vertex is an ear when the turn
// at it is convex and the triangle with its two neighbours contains no reflex
// vertex of the remaining polygon. Convex vertices never need checking: the
// boundary can't reach into the triangle without bringing a reflex vertex
// along. Points on the triangle's boundary count as inside, except for copies
// of the triangle's own corners, which bridges produce. Collinear vertices are
// removed without emitting a triangle, so every triangle has strictly
// positive area.
//
// Once a full pass over the remaining vertices finds no ear, clipping stops
// with a NoEarFound fault. The triangles emitted until then are returned and
// remain valid.
func ClipEars(sector int, poly Loop) ([]Triangle, error) {
	working := append([]Point(nil), poly.Points...)
	triangles := make([]Triangle, 0, max(len(working)-2, 0))

	i, misses := 0, 0
	for len(working) > 2 {
		n := len(working)
		if misses >= n {
			return triangles, newFault(NoEarFound, sector,
				"no ear among the %d remaining vertices", n)
		}
		i = CircularIndex(i, n)
		prev := working[CircularIndex(i-1, n)]
		cur := working[i]
		next := working[CircularIndex(i+1, n)]

		area := orient(prev, cur, next)
		switch {
		case math.Abs(area) <= Epsilon:
			working = removeAt(working, i)
			misses = 0
		case area > 0 && isEar(working, i):
			triangles = append(triangles, Triangle{prev, cur, next})
			working = removeAt(working, i)
			misses = 0
		default:
			i++
			misses++
		}
	}
	return triangles, nil
}

func isEar(working []Point, i int) bool {
	n := len(working)
	tri := Triangle{working[CircularIndex(i-1, n)], working[i], working[CircularIndex(i+1, n)]}
	for j, p := range working {
		if j == i || j == CircularIndex(i-1, n) || j == CircularIndex(i+1, n) {
			continue
		}
		if orient(working[CircularIndex(j-1, n)], p, working[CircularIndex(j+1, n)]) > Epsilon {
			continue
		}
		if tri.HasCorner(p) {
			continue
		}
		if tri.ContainsPoint(p) {
			return false
		}
	}
	return true
}

func removeAt(points []Point, i int) []Point {
	copy(points[i:], points[i+1:])
	return points[:len(points)-1]
}
