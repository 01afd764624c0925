package internal

type Point struct {
	X float64
	Y float64
}

type Triangle struct {
	A, B, C Point
}

// Loop is a closed cycle of level vertices. The last vertex connects back to
// the first. Vertices holds the level vertex ids and Points their positions,
// index for index. After hole splicing a loop may list the same vertex twice
// (the two sides of a bridge), otherwise every vertex appears once.
type Loop struct {
	Vertices []int
	Points   []Point
}

// Shape is an outer boundary together with the holes cut out of it. Holes are
// resolved into the outer loop by SpliceHoles before triangulation ever sees
// them. A shape without holes is already a simple polygon.
type Shape struct {
	Outer Loop
	Holes []Loop
}

func (s Shape) IsSimple() bool {
	return len(s.Holes) == 0
}

// Bitset of claimed edges, indexed by position in an EdgeIndex.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) Set(i int) {
	b[i/64] |= 1 << uint(i%64)
}

func (b bitset) Has(i int) bool {
	return b[i/64]&(1<<uint(i%64)) != 0
}
