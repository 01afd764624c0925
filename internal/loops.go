package internal

// BuildLoops partitions the edges of a sector into closed vertex loops.
//
// The walk starts from the lowest unclaimed edge and keeps extending the
// trailing vertex with an unclaimed edge touching it, until it gets back to
// the first vertex. At a vertex shared by more than two edges, an edge leaving
// the vertex in its sector orientation is preferred, then the lowest edge id.
// Coming back to a vertex that is already in the loop (two loops pinched
// together at one vertex) splits the revisited part off as its own loop, so a
// loop never lists a vertex twice.
func BuildLoops(idx *EdgeIndex) ([]Loop, error) {
	claimed := newBitset(idx.Len())
	claimedCount := 0
	var loops []Loop

	seed := 0
	for claimedCount < idx.Len() {
		for claimed.Has(seed) {
			seed++
		}
		edge := idx.Edges[seed]
		claimed.Set(seed)
		claimedCount++

		first := edge.Start
		vertices := []int{first}
		seen := map[int]int{first: 0}
		trailing := edge.End

		// Every step claims an edge, so a walk can't take more steps than the
		// sector has edges.
		for steps := 0; ; steps++ {
			if steps > idx.Len() {
				return loops, newFault(UnclaimedEdges, idx.Sector,
					"loop starting at vertex %d did not close after %d steps", first, steps)
			}

			if trailing == first {
				break
			}
			if at, ok := seen[trailing]; ok {
				// Pinch point. The part from the earlier visit is closed.
				loops = append(loops, idx.makeLoop(vertices[at:]))
				for _, v := range vertices[at+1:] {
					delete(seen, v)
				}
				vertices = vertices[:at]
			}
			seen[trailing] = len(vertices)
			vertices = append(vertices, trailing)

			next, ok := idx.nextEdge(trailing, claimed)
			if !ok {
				return loops, newFault(UnclaimedEdges, idx.Sector,
					"no unclaimed edge continues from vertex %d, %d of %d edges claimed",
					trailing, claimedCount, idx.Len())
			}
			claimed.Set(next)
			claimedCount++
			if e := idx.Edges[next]; e.Start == trailing {
				trailing = e.End
			} else {
				trailing = e.Start
			}
		}

		if len(vertices) > 0 {
			loops = append(loops, idx.makeLoop(vertices))
		}
	}
	return loops, nil
}

// Pick the edge that continues a walk arriving at vertex.
func (idx *EdgeIndex) nextEdge(vertex int, claimed bitset) (int, bool) {
	fallback := -1
	for _, pos := range idx.Incident(vertex) {
		if claimed.Has(pos) {
			continue
		}
		if idx.Edges[pos].Start == vertex {
			return pos, true
		}
		if fallback < 0 {
			fallback = pos
		}
	}
	return fallback, fallback >= 0
}

func (idx *EdgeIndex) makeLoop(vertices []int) Loop {
	loop := Loop{
		Vertices: append([]int(nil), vertices...),
		Points:   make([]Point, len(vertices)),
	}
	for i, v := range vertices {
		loop.Points[i] = idx.Position(v)
	}
	return loop
}
