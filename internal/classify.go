package internal

import (
	"math"
	"sort"
)

// ClassifyLoops decides which loops of a sector are outer boundaries and which
// are holes, and fixes their winding: outer boundaries counterclockwise, holes
// clockwise.
//
// By default the loop with the largest area is the single outer boundary and
// every other loop is one of its holes. With opts.Islands set, loops are
// nested by containment instead, so a sector may have several outer
// boundaries, including islands sitting inside another loop's hole.
//
// Loops enclosing no area (fewer than three vertices, or collinear) are
// dropped.
func ClassifyLoops(sector int, loops []Loop, opts *Options) ([]Shape, error) {
	type measured struct {
		loop Loop
		area float64
	}
	var candidates []measured
	for _, loop := range loops {
		area := loop.Area()
		if loop.Len() < 3 || area <= Epsilon {
			opts.Verbose(2, "sector %d: dropping degenerate loop of %d vertices", sector, loop.Len())
			continue
		}
		candidates = append(candidates, measured{loop, area})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Largest first. Stable so equal areas keep the loop builder's order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].area > candidates[j].area
	})

	if !opts.Islands {
		if len(candidates) > 1 && sameArea(candidates[0].area, candidates[1].area, opts.AreaTolerance) {
			return nil, newFault(AmbiguousOuterLoop, sector,
				"two largest loops both have area %g", candidates[0].area)
		}
		shape := Shape{Outer: counterclockwise(candidates[0].loop)}
		for _, c := range candidates[1:] {
			shape.Holes = append(shape.Holes, clockwise(c.loop))
		}
		return []Shape{shape}, nil
	}

	// Containment nesting. Since candidates are sorted by area, a loop can only
	// be contained by one that comes before it; the innermost container is the
	// latest such loop.
	parent := make([]int, len(candidates))
	depth := make([]int, len(candidates))
	for i := range candidates {
		parent[i] = -1
		for j := i - 1; j >= 0; j-- {
			if candidates[j].loop.Contains(candidates[i].loop) {
				if sameArea(candidates[i].area, candidates[j].area, opts.AreaTolerance) {
					return nil, newFault(AmbiguousOuterLoop, sector,
						"nested loops both have area %g", candidates[i].area)
				}
				parent[i] = j
				depth[i] = depth[j] + 1
				break
			}
		}
	}

	var shapes []Shape
	shapeOf := make(map[int]int)
	for i, c := range candidates {
		if depth[i]%2 == 0 {
			shapeOf[i] = len(shapes)
			shapes = append(shapes, Shape{Outer: counterclockwise(c.loop)})
		}
	}
	for i, c := range candidates {
		if depth[i]%2 == 1 {
			s := shapeOf[parent[i]]
			shapes[s].Holes = append(shapes[s].Holes, clockwise(c.loop))
		}
	}
	return shapes, nil
}

func sameArea(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(math.Max(a, b), 1)
}

func counterclockwise(l Loop) Loop {
	if l.IsCW() {
		return l.Reverse()
	}
	return l
}

func clockwise(l Loop) Loop {
	if l.IsCCW() {
		return l.Reverse()
	}
	return l
}
