package internal

import "math"

func (t *Triangle) SignedArea() float64 {
	return orient(t.A, t.B, t.C) / 2
}

func (t *Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

// Conservative containment test: a point on an edge of the triangle counts as
// inside. The triangle must be counterclockwise.
func (t *Triangle) ContainsPoint(p Point) bool {
	return orient(t.A, t.B, p) >= -Epsilon &&
		orient(t.B, t.C, p) >= -Epsilon &&
		orient(t.C, t.A, p) >= -Epsilon
}

func (t *Triangle) HasCorner(p Point) bool {
	return p.Equal(t.A) || p.Equal(t.B) || p.Equal(t.C)
}

func (l Loop) Len() int {
	return len(l.Vertices)
}

// Shoelace formula. Counterclockwise loops have positive area.
func (l Loop) SignedArea() float64 {
	var sum float64
	for i, p := range l.Points {
		next := l.Points[CircularIndex(i+1, len(l.Points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func (l Loop) Area() float64 {
	return math.Abs(l.SignedArea())
}

func (l Loop) IsCCW() bool {
	return l.SignedArea() > 0
}

func (l Loop) IsCW() bool {
	return l.SignedArea() < 0
}

func (l Loop) Reverse() Loop {
	n := l.Len()
	reversed := Loop{
		Vertices: make([]int, n),
		Points:   make([]Point, n),
	}
	for i := 0; i < n; i++ {
		reversed.Vertices[i] = l.Vertices[n-1-i]
		reversed.Points[i] = l.Points[n-1-i]
	}
	return reversed
}

// Rotate returns the loop starting at position i. The cycle is unchanged.
func (l Loop) Rotate(i int) Loop {
	n := l.Len()
	rotated := Loop{
		Vertices: make([]int, 0, n),
		Points:   make([]Point, 0, n),
	}
	for k := 0; k < n; k++ {
		j := CircularIndex(i+k, n)
		rotated.Vertices = append(rotated.Vertices, l.Vertices[j])
		rotated.Points = append(rotated.Points, l.Points[j])
	}
	return rotated
}

// Index of the vertex with the largest x coordinate, ties going to the lowest
// vertex id.
func (l Loop) MaxXIndex() int {
	best := 0
	for i := 1; i < l.Len(); i++ {
		p, bp := l.Points[i], l.Points[best]
		if p.X > bp.X || (p.X == bp.X && l.Vertices[i] < l.Vertices[best]) {
			best = i
		}
	}
	return best
}

func (l Loop) HasVertex(vertex int) bool {
	for _, v := range l.Vertices {
		if v == vertex {
			return true
		}
	}
	return false
}

// Winding rule point-in-polygon.
func (l Loop) ContainsPointByEvenOdd(p Point) bool {
	return l.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts edges crossed by a ray going
// right from p.
func (l Loop) CrossingCount(p Point) int {
	crossingCount := 0
	for i, a := range l.Points {
		b := l.Points[CircularIndex(i+1, len(l.Points))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Contains reports whether other lies inside l. The loops are assumed not to
// cross, so one vertex of other that is not shared with l decides it. A loop
// sharing every vertex with l is tested through its first edge midpoint.
func (l Loop) Contains(other Loop) bool {
	for i, v := range other.Vertices {
		if !l.HasVertex(v) {
			return l.ContainsPointByEvenOdd(other.Points[i])
		}
	}
	if other.Len() < 2 {
		return false
	}
	a, b := other.Points[0], other.Points[1]
	return l.ContainsPointByEvenOdd(Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2})
}
