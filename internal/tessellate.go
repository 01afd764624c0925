package internal

import "github.com/osuushi/sectormesh/level"

// Tessellation keeps every intermediate stage of one sector's reconstruction,
// for drawing and tests. Only Triangles matters to the mesh.
type Tessellation struct {
	Sector int
	// Loops as built from the edges, before classification.
	Loops  []Loop
	Shapes []Shape
	// One spliced polygon per shape.
	Polygons  []Loop
	Triangles []Triangle
}

// Area is the total area of the triangles.
func (t *Tessellation) Area() float64 {
	var area float64
	for i := range t.Triangles {
		area += t.Triangles[i].SignedArea()
	}
	return area
}

// Tessellate runs the whole pipeline for one sector of the store.
//
// Faults that leave nothing to draw (unclaimed edges, an ambiguous outer loop)
// end the tessellation with no triangles. The others are collected while the
// remaining stages carry on, and are returned together with the partial
// result. The returned tessellation is never nil.
//
// Broken invariants panic; callers recover with HandleReconstructPanicRecover.
func Tessellate(store level.Store, sector int, opts *Options) (*Tessellation, error) {
	tess := &Tessellation{Sector: sector}

	idx := NewEdgeIndex(store, sector)
	if len(idx.SelfReferencing) > 0 {
		opts.Verbose(2, "sector %d: skipping self-referencing edges %v", sector, idx.SelfReferencing)
	}

	loops, err := BuildLoops(idx)
	tess.Loops = loops
	if err != nil {
		return tess, err
	}
	opts.Verbose(2, "sector %d: %d edges in %d loops", sector, idx.Len(), len(loops))

	shapes, err := ClassifyLoops(sector, loops, opts)
	tess.Shapes = shapes
	if err != nil {
		return tess, err
	}

	var faults FaultList
	for _, shape := range shapes {
		poly, err := SpliceHoles(sector, shape, opts)
		faults = append(faults, Faults(err)...)
		tess.Polygons = append(tess.Polygons, poly)

		triangles, err := ClipEars(sector, poly)
		faults = append(faults, Faults(err)...)
		tess.Triangles = append(tess.Triangles, triangles...)
		opts.Verbose(2, "sector %d: polygon of %d vertices gave %d triangles",
			sector, poly.Len(), len(triangles))
	}
	return tess, faults.Err()
}
