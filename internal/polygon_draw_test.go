package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSector(t *testing.T) {
	tess, err := Tessellate(LoadFixture("square_hole"), 0, testOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sector.png")
	require.NoError(t, DrawSector(path, tess, 8))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, DrawSector(path, &Tessellation{Sector: 1}, 8), "nothing to draw")
}

func TestLoopName(t *testing.T) {
	l := loopFrom(3, Point{0, 0}, Point{1, 0}, Point{1, 1})
	assert.Equal(t, l.Name(0), l.Rotate(1).Name(0), "names don't depend on the starting vertex")
	assert.Contains(t, l.String(), "[3 4 5]")
}
