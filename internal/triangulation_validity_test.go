package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Check that the tessellation covers exactly the region enclosed by the
// sector's loops (by the even-odd rule) with well formed triangles.
func AssertValidTriangulation(t *testing.T, tess *Tessellation, expectedArea float64) {
	t.Helper()

	corners := make(map[Point]bool)
	for _, loop := range tess.Loops {
		for _, p := range loop.Points {
			corners[p] = true
		}
	}
	for i := range tess.Triangles {
		tri := &tess.Triangles[i]
		assert.Greater(t, tri.SignedArea(), 0.0, "triangle %v is not counterclockwise", *tri)
		for _, p := range []Point{tri.A, tri.B, tri.C} {
			assert.True(t, corners[p], "triangle corner %v is not a sector vertex", p)
		}
	}
	assert.InDelta(t, expectedArea, tess.Area(), 1e-6)

	validateCoverageBySampling(t, tess)
}

func validateCoverageBySampling(t *testing.T, tess *Tessellation) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, loop := range tess.Loops {
		for _, p := range loop.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%, and offset the grid so samples don't land
	// on the integral coordinates the fixtures use
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding - 0.0123
	minY -= yPadding - 0.0321
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			crossings := 0
			for _, loop := range tess.Loops {
				crossings += loop.CrossingCount(p)
			}
			expected := crossings%2 == 1

			covering := 0
			for i := range tess.Triangles {
				if strictlyInside(&tess.Triangles[i], p) {
					covering++
				}
			}
			assert.LessOrEqual(t, covering, 1, "point %v is covered by overlapping triangles", p)
			if expected {
				assert.Equal(t, 1, covering, "point %v should be covered", p)
			} else {
				assert.Equal(t, 0, covering, "point %v should not be covered", p)
			}
		}
	}
}

func strictlyInside(tri *Triangle, p Point) bool {
	return orient(tri.A, tri.B, p) > 0 && orient(tri.B, tri.C, p) > 0 && orient(tri.C, tri.A, p) > 0
}
