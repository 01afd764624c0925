package wad

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/sectormesh/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLump struct {
	name string
	data interface{}
}

func buildWad(t *testing.T, magic uint32, lumps []testLump) []byte {
	var body bytes.Buffer
	entries := make([]lumpEntry, len(lumps))
	for i, l := range lumps {
		pos := 12 + body.Len()
		if l.data != nil {
			require.NoError(t, binary.Write(&body, binary.LittleEndian, l.data))
		}
		entries[i].FilePos = uint32(pos)
		entries[i].Size = uint32(12 + body.Len() - pos)
		copy(entries[i].Name[:], l.name)
	}

	var out bytes.Buffer
	h := header{MagicSig: magic, LumpCount: uint32(len(lumps)), DirectoryStart: uint32(12 + body.Len())}
	require.NoError(t, binary.Write(&out, binary.LittleEndian, h))
	out.Write(body.Bytes())
	require.NoError(t, binary.Write(&out, binary.LittleEndian, entries))
	return out.Bytes()
}

// A square room with a pillar in the middle, the pillar being a second
// sector.
func mapLumps(marker string) []testLump {
	return []testLump{
		{marker, nil},
		{"THINGS", nil},
		{"LINEDEFS", []linedef{
			{StartVertex: 0, EndVertex: 1, FrontSdef: 0, BackSdef: noSidedef},
			{StartVertex: 1, EndVertex: 2, FrontSdef: 1, BackSdef: noSidedef},
			{StartVertex: 2, EndVertex: 3, FrontSdef: 2, BackSdef: noSidedef},
			{StartVertex: 3, EndVertex: 0, FrontSdef: 3, BackSdef: noSidedef},
			{StartVertex: 4, EndVertex: 5, FrontSdef: 4, BackSdef: 5},
			{StartVertex: 5, EndVertex: 6, FrontSdef: 4, BackSdef: 5},
			{StartVertex: 6, EndVertex: 7, FrontSdef: 4, BackSdef: 5},
			{StartVertex: 7, EndVertex: 4, FrontSdef: 4, BackSdef: 5},
		}},
		{"SIDEDEFS", []sidedef{
			{Sector: 0}, {Sector: 0}, {Sector: 0}, {Sector: 0},
			{Sector: 0}, {Sector: 1},
		}},
		{"VERTEXES", []vertex{
			{0, 0}, {0, 256}, {256, 256}, {256, 0},
			{96, 96}, {160, 96}, {160, 160}, {96, 160},
		}},
		{"SEGS", nil},
		{"SSECTORS", nil},
		{"NODES", nil},
		{"SECTORS", []sector{
			{FloorHeight: 0, CeilHeight: 128},
			{FloorHeight: 32, CeilHeight: 128},
		}},
		{"REJECT", nil},
		{"BLOCKMAP", nil},
	}
}

func TestRead(t *testing.T) {
	data := buildWad(t, pwadMagicSig, append(mapLumps("MAP01"), mapLumps("MAP02")...))
	f, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.False(t, f.IWAD)
	assert.Equal(t, []string{"MAP01", "MAP02"}, f.Maps())

	l, err := f.Level("MAP02")
	require.NoError(t, err)
	require.Equal(t, 2, l.SectorCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, l.SectorEdges(0))
	assert.Equal(t, []int{4, 5, 6, 7}, l.SectorEdges(1))

	floor, ceiling := l.SectorHeights(1)
	assert.Equal(t, 32.0, floor)
	assert.Equal(t, 128.0, ceiling)

	x, y := l.VertexPosition(2)
	assert.Equal(t, 256.0, x)
	assert.Equal(t, 256.0, y)

	_, ok := l.EdgeSideSector(0, level.Back)
	assert.False(t, ok)
	sector, ok := l.EdgeSideSector(5, level.Back)
	assert.True(t, ok)
	assert.Equal(t, 1, sector)

	assert.NoError(t, f.Close())
}

func TestRead_Errors(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		_, err := Read(bytes.NewReader(buildWad(t, 0x12345678, nil)))
		assert.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Read(bytes.NewReader([]byte("PWAD")))
		assert.Error(t, err)
	})

	t.Run("directory past the end", func(t *testing.T) {
		data := buildWad(t, pwadMagicSig, mapLumps("E1M1"))
		binary.LittleEndian.PutUint32(data[4:8], 0xffffffff)
		_, err := Read(bytes.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "runs past the end of the file")
	})

	t.Run("unknown map", func(t *testing.T) {
		f, err := Read(bytes.NewReader(buildWad(t, iwadMagicSig, mapLumps("E1M1"))))
		require.NoError(t, err)
		assert.True(t, f.IWAD)
		_, err = f.Level("E1M2")
		assert.EqualError(t, err, "map E1M2 not found")
	})

	t.Run("hexen map", func(t *testing.T) {
		lumps := append(mapLumps("MAP01"), testLump{"BEHAVIOR", nil})
		f, err := Read(bytes.NewReader(buildWad(t, pwadMagicSig, lumps)))
		require.NoError(t, err)
		_, err = f.Level("MAP01")
		assert.EqualError(t, err, "map MAP01 is in Hexen format")
	})

	t.Run("missing lump", func(t *testing.T) {
		lumps := mapLumps("MAP01")
		lumps[3].name = "SIDEDEFZ"
		f, err := Read(bytes.NewReader(buildWad(t, pwadMagicSig, lumps)))
		require.NoError(t, err)
		_, err = f.Level("MAP01")
		assert.EqualError(t, err, "map MAP01: SIDEDEFS lump missing")
	})

	t.Run("lump past the end", func(t *testing.T) {
		data := buildWad(t, pwadMagicSig, mapLumps("MAP01"))
		dir := binary.LittleEndian.Uint32(data[8:12])
		binary.LittleEndian.PutUint32(data[dir+3*16:], uint32(len(data)))
		f, err := Read(bytes.NewReader(data))
		require.NoError(t, err)
		_, err = f.Level("MAP01")
		assert.EqualError(t, err, "map MAP01: SIDEDEFS lump runs past the end of the file")
	})

	t.Run("bad reference", func(t *testing.T) {
		lumps := mapLumps("MAP01")
		lumps[3].data = []sidedef{{Sector: 0}}
		f, err := Read(bytes.NewReader(buildWad(t, pwadMagicSig, lumps)))
		require.NoError(t, err)
		_, err = f.Level("MAP01")
		assert.Error(t, err)
	})
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wad")
	require.NoError(t, os.WriteFile(path, buildWad(t, pwadMagicSig, mapLumps("E1M1")), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"E1M1"}, f.Maps())

	_, err = Open(filepath.Join(t.TempDir(), "missing.wad"))
	assert.Error(t, err)
}
