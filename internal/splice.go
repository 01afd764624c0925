package internal

import "sort"

// SpliceHoles cuts every hole of the shape into its outer boundary, producing
// one simple polygon.
//
// For each hole, its rightmost vertex H is connected to a vertex B of the
// current boundary. The boundary then runs B, H, around the hole, H again, B
// again, and on: a zero-width slit into the hole. Every splice adds the hole's
// vertices plus two. Holes are spliced from the rightmost one leftwards, each
// into the boundary produced by the previous splice, so later bridges can't
// cross earlier ones.
//
// A hole that can't be spliced is left out and reported as a fault; the
// returned polygon is still valid, it just doesn't have that hole.
func SpliceHoles(sector int, shape Shape, opts *Options) (Loop, error) {
	outer := shape.Outer
	if shape.IsSimple() {
		return outer, nil
	}

	order := make([]int, len(shape.Holes))
	maxX := make([]float64, len(shape.Holes))
	for i, hole := range shape.Holes {
		order[i] = i
		maxX[i] = hole.Points[hole.MaxXIndex()].X
	}
	sort.SliceStable(order, func(i, j int) bool {
		return maxX[order[i]] > maxX[order[j]]
	})

	var faults FaultList
	for _, h := range order {
		hole := shape.Holes[h]
		if opts.MaxPolygonVertices > 0 && outer.Len()+hole.Len()+2 > opts.MaxPolygonVertices {
			fault := newFault(HoleSpliceOverflow, sector,
				"splicing %d hole vertices into %d would exceed the limit of %d",
				hole.Len(), outer.Len(), opts.MaxPolygonVertices)
			fault.Hole = h
			faults = append(faults, fault)
			continue
		}

		hi := hole.MaxXIndex()
		bridge, ok := findBridge(outer, hole.Points[hi], opts.Bridge)
		if !ok {
			fault := newFault(BridgeNotFound, sector,
				"no %s bridge from hole vertex %d at (%g, %g)",
				opts.Bridge, hole.Vertices[hi], hole.Points[hi].X, hole.Points[hi].Y)
			fault.Hole = h
			faults = append(faults, fault)
			continue
		}
		opts.Verbose(2, "sector %d: bridging hole %d vertex %d to outer vertex %d",
			sector, h, hole.Vertices[hi], outer.Vertices[bridge])
		outer = splice(outer, bridge, hole, hi)
	}
	return outer, faults.Err()
}

// Insert the hole, walked from position hi, right after position b of outer.
func splice(outer Loop, b int, hole Loop, hi int) Loop {
	n := outer.Len() + hole.Len() + 2
	result := Loop{
		Vertices: make([]int, 0, n),
		Points:   make([]Point, 0, n),
	}
	push := func(l Loop, i int) {
		result.Vertices = append(result.Vertices, l.Vertices[i])
		result.Points = append(result.Points, l.Points[i])
	}

	for i := 0; i <= b; i++ {
		push(outer, i)
	}
	for k := 0; k < hole.Len(); k++ {
		push(hole, CircularIndex(hi+k, hole.Len()))
	}
	push(hole, hi)
	push(outer, b)
	for i := b + 1; i < outer.Len(); i++ {
		push(outer, i)
	}

	if result.Len() != n {
		fatalf("spliced polygon has %d vertices, expected %d", result.Len(), n)
	}
	return result
}
