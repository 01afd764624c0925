// Package sectormesh turns the sectors of a level into triangle meshes.
//
// A level stores a sector only as an unordered set of boundary edges. The
// edges are stitched into closed loops, the loops are sorted into outer
// boundaries and holes, holes are cut into their boundary through bridge
// edges, and the resulting simple polygons are triangulated by ear clipping.
// Each sector yields a floor and a ceiling mesh, plus a wall mesh built
// straight from its edges and the heights of its neighbours.
//
// Malformed sectors don't stop a level from loading. Their faults are returned
// (and logged by BuildLevel) next to whatever mesh could still be built.
package sectormesh

import (
	"github.com/osuushi/sectormesh/internal"
	"github.com/osuushi/sectormesh/level"
	"github.com/pkg/errors"
)

type Options = internal.Options
type Logger = internal.Logger
type BridgeStrategy = internal.BridgeStrategy
type FaultKind = internal.FaultKind
type ReconstructionFault = internal.ReconstructionFault
type FaultList = internal.FaultList
type Tessellation = internal.Tessellation

const (
	BridgeNearestX = internal.BridgeNearestX
	BridgeRayCast  = internal.BridgeRayCast
)

const (
	UnclaimedEdges     = internal.UnclaimedEdges
	AmbiguousOuterLoop = internal.AmbiguousOuterLoop
	HoleSpliceOverflow = internal.HoleSpliceOverflow
	BridgeNotFound     = internal.BridgeNotFound
	NoEarFound         = internal.NoEarFound
)

func DefaultOptions() Options {
	return internal.DefaultOptions()
}

func ParseBridgeStrategy(name string) (BridgeStrategy, error) {
	return internal.ParseBridgeStrategy(name)
}

// Faults flattens an error returned by a build into its reconstruction
// faults. Errors that aren't faults give an empty list.
func Faults(err error) FaultList {
	return internal.Faults(err)
}

// Builder tessellates the sectors of one level. It holds no state besides the
// store and options, so it is safe for concurrent use as long as the store is.
type Builder struct {
	store level.Store
	opts  Options
}

func NewBuilder(store level.Store, opts Options) (*Builder, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return &Builder{store: store, opts: opts}, nil
}

// Tessellate runs the reconstruction pipeline for one sector and returns every
// intermediate stage. The tessellation is nil only when the error is not a
// reconstruction fault.
func (b *Builder) Tessellate(sector int) (tess *Tessellation, err error) {
	defer func() {
		recoveredErr := internal.HandleReconstructPanicRecover(recover())
		if recoveredErr != nil {
			tess = nil
			err = errors.Wrapf(recoveredErr, "sector %d", sector)
		}
	}()
	if sector < 0 || sector >= b.store.SectorCount() {
		return nil, errors.Errorf("sector %d out of range, level has %d sectors", sector, b.store.SectorCount())
	}
	return internal.Tessellate(b.store, sector, &b.opts)
}

// BuildSectorMesh builds the floor mesh of a sector.
//
// On a reconstruction fault the mesh is still returned: empty when the sector
// could not be reconstructed at all, partial when the fault is degraded (see
// FaultKind.Degraded). The mesh is nil only for other errors.
func (b *Builder) BuildSectorMesh(sector int) (*Mesh, error) {
	floor, _, err := b.BuildSectorSurfaces(sector)
	return floor, err
}

// BuildSectorSurfaces builds the floor and ceiling meshes of a sector from a
// single tessellation, with the same fault rules as BuildSectorMesh.
func (b *Builder) BuildSectorSurfaces(sector int) (floor, ceiling *Mesh, err error) {
	tess, err := b.Tessellate(sector)
	if tess == nil {
		return nil, nil, err
	}
	floorHeight, ceilingHeight := b.store.SectorHeights(sector)
	return newMesh(tess, Floor, floorHeight), newMesh(tess, Ceiling, ceilingHeight), err
}
