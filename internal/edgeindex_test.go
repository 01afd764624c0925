package internal

import (
	"testing"

	"github.com/osuushi/sectormesh/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdgeIndex(t *testing.T) {
	// Two squares side by side, sharing the edge from (10,0) to (10,10)
	b := level.NewBuilder()
	left := b.AddSector(0, 128)
	right := b.AddSector(8, 128)
	v := []int{
		b.AddVertex(0, 0),
		b.AddVertex(10, 0),
		b.AddVertex(10, 10),
		b.AddVertex(0, 10),
		b.AddVertex(20, 0),
		b.AddVertex(20, 10),
	}
	b.AddLine(v[1], v[0], left, level.NoSector)
	shared := b.AddLine(v[1], v[2], right, left)
	b.AddLine(v[3], v[2], left, level.NoSector)
	b.AddLine(v[0], v[3], left, level.NoSector)
	b.AddLine(v[4], v[1], right, level.NoSector)
	b.AddLine(v[5], v[4], right, level.NoSector)
	b.AddLine(v[2], v[5], right, level.NoSector)
	// A line inside the left square, with the left sector on both sides
	inner := b.AddLine(b.AddVertex(2, 2), b.AddVertex(4, 4), left, left)
	l, err := b.Build()
	require.NoError(t, err)

	t.Run("front side keeps orientation", func(t *testing.T) {
		idx := NewEdgeIndex(l, right)
		require.Equal(t, 4, idx.Len())
		assert.Equal(t, SectorEdge{ID: shared, Start: v[1], End: v[2]}, idx.Edges[0])
	})

	t.Run("back side swaps endpoints", func(t *testing.T) {
		idx := NewEdgeIndex(l, left)
		var found bool
		for _, e := range idx.Edges {
			if e.ID == shared {
				found = true
				assert.Equal(t, v[2], e.Start)
				assert.Equal(t, v[1], e.End)
			}
		}
		assert.True(t, found)
	})

	t.Run("self-referencing edges are skipped", func(t *testing.T) {
		idx := NewEdgeIndex(l, left)
		assert.Equal(t, 4, idx.Len())
		assert.Equal(t, []int{inner}, idx.SelfReferencing)
	})

	t.Run("incidence and positions", func(t *testing.T) {
		idx := NewEdgeIndex(l, right)
		assert.Len(t, idx.Incident(v[1]), 2)
		assert.Empty(t, idx.Incident(v[0]))
		assert.Equal(t, Point{20, 10}, idx.Position(v[5]))
		assert.Panics(t, func() { idx.Position(v[0]) })
	})
}
