package internal

import "math"

const Tolerance = 1e-6

// Twice-area threshold below which three points are considered collinear.
// Level coordinates are usually integral, so exact collinearity is the common
// case and this only needs to absorb rounding.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Cross product of two vectors treated as 3D vectors with z = 0.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Twice the signed area of the triangle abc. Positive when a, b, c turn
// counterclockwise, negative when they turn clockwise, zero when collinear.
func orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
