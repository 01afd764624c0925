// Package wad reads Doom maps out of WAD files.
package wad

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/osuushi/sectormesh/level"
	"github.com/pkg/errors"
)

type File struct {
	r      io.ReaderAt
	size   int64
	closer io.Closer
	IWAD   bool
	lumps  []lumpEntry
}

func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening wad")
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "opening wad")
	}
	w, err := Read(io.NewSectionReader(f, 0, st.Size()))
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	w.closer = f
	return w, nil
}

// Source is a WAD's bytes. *bytes.Reader and *io.SectionReader both qualify.
type Source interface {
	io.ReaderAt
	Size() int64
}

// Read parses the header and directory of a WAD. Lumps are read on demand, so
// r must stay usable for as long as the File is.
func Read(r Source) (*File, error) {
	var h header
	if err := binary.Read(io.NewSectionReader(r, 0, 12), binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if h.MagicSig != iwadMagicSig && h.MagicSig != pwadMagicSig {
		return nil, errors.Errorf("not a wad file (signature %#08x)", h.MagicSig)
	}

	dirSize := int64(h.LumpCount) * 16
	if int64(h.DirectoryStart)+dirSize > r.Size() {
		return nil, errors.Errorf("directory of %d lumps at %d runs past the end of the file (%d bytes)",
			h.LumpCount, h.DirectoryStart, r.Size())
	}
	lumps := make([]lumpEntry, h.LumpCount)
	dir := io.NewSectionReader(r, int64(h.DirectoryStart), dirSize)
	if err := binary.Read(dir, binary.LittleEndian, lumps); err != nil {
		return nil, errors.Wrap(err, "reading directory")
	}
	return &File{r: r, size: r.Size(), IWAD: h.MagicSig == iwadMagicSig, lumps: lumps}, nil
}

func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Maps lists the map markers in directory order. A marker is any lump
// followed by a THINGS lump.
func (f *File) Maps() []string {
	var maps []string
	for i := 0; i+thingsOffset < len(f.lumps); i++ {
		if f.lumpName(i+thingsOffset) == "THINGS" {
			maps = append(maps, f.lumpName(i))
		}
	}
	return maps
}

// Level loads the named map. Only the Doom map format is understood.
func (f *File) Level(name string) (*level.Level, error) {
	marker := -1
	for i := range f.lumps {
		if f.lumpName(i) == name {
			marker = i
			break
		}
	}
	if marker < 0 {
		return nil, errors.Errorf("map %s not found", name)
	}
	if marker+behaviorOffset < len(f.lumps) && f.lumpName(marker+behaviorOffset) == "BEHAVIOR" {
		return nil, errors.Errorf("map %s is in Hexen format", name)
	}

	var linedefs []linedef
	var sidedefs []sidedef
	var vertices []vertex
	var sectors []sector
	for _, lump := range []struct {
		offset int
		name   string
		dst    interface{}
		size   int
	}{
		{linedefsOffset, "LINEDEFS", &linedefs, 14},
		{sidedefsOffset, "SIDEDEFS", &sidedefs, 30},
		{vertexesOffset, "VERTEXES", &vertices, 4},
		{sectorsOffset, "SECTORS", &sectors, 26},
	} {
		if err := f.readLump(name, marker+lump.offset, lump.name, lump.size, lump.dst); err != nil {
			return nil, err
		}
	}

	return convert(linedefs, sidedefs, vertices, sectors)
}

// Read lump idx into dst, a pointer to a slice of records of the given size.
func (f *File) readLump(mapName string, idx int, name string, size int, dst interface{}) error {
	if idx >= len(f.lumps) || f.lumpName(idx) != name {
		return errors.Errorf("map %s: %s lump missing", mapName, name)
	}
	entry := f.lumps[idx]
	if int(entry.Size)%size != 0 {
		return errors.Errorf("map %s: %s lump size %d is not a multiple of %d", mapName, name, entry.Size, size)
	}
	if int64(entry.FilePos)+int64(entry.Size) > f.size {
		return errors.Errorf("map %s: %s lump runs past the end of the file", mapName, name)
	}
	count := int(entry.Size) / size
	section := io.NewSectionReader(f.r, int64(entry.FilePos), int64(entry.Size))

	var err error
	switch dst := dst.(type) {
	case *[]linedef:
		*dst = make([]linedef, count)
		err = binary.Read(section, binary.LittleEndian, *dst)
	case *[]sidedef:
		*dst = make([]sidedef, count)
		err = binary.Read(section, binary.LittleEndian, *dst)
	case *[]vertex:
		*dst = make([]vertex, count)
		err = binary.Read(section, binary.LittleEndian, *dst)
	case *[]sector:
		*dst = make([]sector, count)
		err = binary.Read(section, binary.LittleEndian, *dst)
	}
	return errors.Wrapf(err, "map %s: reading %s", mapName, name)
}

func (f *File) lumpName(idx int) string {
	return string(byteSliceBeforeTerm(f.lumps[idx].Name[:]))
}

func convert(linedefs []linedef, sidedefs []sidedef, vertices []vertex, sectors []sector) (*level.Level, error) {
	lv := make([]level.Vertex, len(vertices))
	for i, v := range vertices {
		lv[i] = level.Vertex{X: float64(v.XPos), Y: float64(v.YPos)}
	}
	ll := make([]level.Linedef, len(linedefs))
	for i, ld := range linedefs {
		ll[i] = level.Linedef{
			Start: int(ld.StartVertex),
			End:   int(ld.EndVertex),
			Front: sidedefIndex(ld.FrontSdef),
			Back:  sidedefIndex(ld.BackSdef),
		}
	}
	ls := make([]level.Sidedef, len(sidedefs))
	for i, sd := range sidedefs {
		ls[i] = level.Sidedef{Sector: int(sd.Sector)}
	}
	lsec := make([]level.Sector, len(sectors))
	for i, s := range sectors {
		lsec[i] = level.Sector{Floor: float64(s.FloorHeight), Ceiling: float64(s.CeilHeight)}
	}
	l, err := level.New(lv, ll, ls, lsec)
	return l, errors.Wrap(err, "invalid map")
}

func sidedefIndex(sdef uint16) int {
	if sdef == noSidedef {
		return level.NoSide
	}
	return int(sdef)
}

// Lump names are padded with zeros to eight bytes.
func byteSliceBeforeTerm(b []byte) []byte {
	i := bytes.IndexByte(b, 0)
	if i == -1 {
		return b
	}
	return b[:i]
}
