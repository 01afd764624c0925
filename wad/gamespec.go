package wad

// On-disk layout of the Doom map lumps. All fields are little endian.

const (
	iwadMagicSig = uint32(0x44415749) // ASCII - 'IWAD'
	pwadMagicSig = uint32(0x44415750) // ASCII - 'PWAD'
)

// Sidedef index of the missing side of a one-sided linedef
const noSidedef = 0xFFFF

type header struct {
	MagicSig       uint32
	LumpCount      uint32
	DirectoryStart uint32
}

// Lump entries listed one after another comprise the directory. Each is 16
// bytes long.
type lumpEntry struct {
	FilePos uint32
	Size    uint32
	Name    [8]byte
}

type linedef struct {
	StartVertex uint16
	EndVertex   uint16
	Flags       uint16
	Action      uint16
	Tag         uint16
	FrontSdef   uint16
	BackSdef    uint16
}

type sidedef struct {
	XOffset int16
	YOffset int16
	UpName  [8]byte
	LoName  [8]byte
	MidName [8]byte
	Sector  uint16
}

type vertex struct {
	XPos int16
	YPos int16
}

type sector struct {
	FloorHeight int16
	CeilHeight  int16
	FloorName   [8]byte
	CeilName    [8]byte
	LightLevel  uint16
	Special     uint16
	Tag         uint16
}

// Lumps of a map, by offset from its marker.
const (
	thingsOffset   = 1
	linedefsOffset = 2
	sidedefsOffset = 3
	vertexesOffset = 4
	sectorsOffset  = 8
	behaviorOffset = 11
)
