package sectormesh

import (
	"context"
	"sync/atomic"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/sectormesh/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// LevelMeshes holds the meshes of every sector of a level, indexed by sector.
// A sector that could not be reconstructed has empty floor and ceiling meshes,
// and its error in Errors. Its walls are built regardless.
type LevelMeshes struct {
	Floors   []*Mesh
	Ceilings []*Mesh
	Walls    []*Mesh
	Errors   []error
}

func (lm *LevelMeshes) SectorCount() int {
	return len(lm.Floors)
}

// TriangleCount sums up the triangles of all floors.
func (lm *LevelMeshes) TriangleCount() int {
	total := 0
	for _, m := range lm.Floors {
		total += int(m.TriangleCount)
	}
	return total
}

func (lm *LevelMeshes) WallTriangleCount() int {
	total := 0
	for _, m := range lm.Walls {
		total += int(m.TriangleCount)
	}
	return total
}

// Failed counts the sectors with an error.
func (lm *LevelMeshes) Failed() int {
	failed := 0
	for _, err := range lm.Errors {
		if err != nil {
			failed++
		}
	}
	return failed
}

// BuildLevel builds the meshes of every sector. A sector that fails doesn't
// stop the others; its error is logged and kept in the result.
//
// Sectors are processed one by one unless Options.Workers asks for more.
// Either way, errors are logged in sector order once all sectors are done.
// The returned error is only ever the context's.
func (b *Builder) BuildLevel(ctx context.Context) (*LevelMeshes, error) {
	n := b.store.SectorCount()
	lm := &LevelMeshes{
		Floors:   make([]*Mesh, n),
		Ceilings: make([]*Mesh, n),
		Walls:    make([]*Mesh, n),
		Errors:   make([]error, n),
	}

	build := func(sector int) {
		floor, ceiling, err := b.BuildSectorSurfaces(sector)
		if floor == nil {
			floor = &Mesh{Sector: sector, Surface: Floor}
			ceiling = &Mesh{Sector: sector, Surface: Ceiling}
		}
		lm.Floors[sector], lm.Ceilings[sector], lm.Errors[sector] = floor, ceiling, err
		lm.Walls[sector] = b.wallMesh(sector)
	}

	if b.opts.Workers < 2 {
		for sector := 0; sector < n; sector++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			build(sector)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.opts.Workers)
		for sector := 0; sector < n; sector++ {
			sector := sector
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				build(sector)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	for sector := 0; sector < n; sector++ {
		b.logSector(lm, sector)
	}
	b.opts.Verbose(1, "%d sectors, %d triangles, %d wall triangles, %d with faults",
		n, lm.TriangleCount(), lm.WallTriangleCount(), lm.Failed())
	return lm, nil
}

func (b *Builder) logSector(lm *LevelMeshes, sector int) {
	err := lm.Errors[sector]
	if err == nil {
		b.opts.Verbose(1, "sector %d: %d triangles", sector, lm.Floors[sector].TriangleCount)
		return
	}
	if b.opts.Logger == nil {
		return
	}

	au := aurora.NewAurora(b.opts.Color)
	faults := Faults(err)
	if len(faults) == 0 {
		b.opts.Logger.Printf("%s", au.Red(errors.Wrapf(err, "sector %d", sector)))
		return
	}
	for _, f := range faults {
		if f.Kind.Degraded() {
			b.opts.Logger.Printf("%s", au.Yellow(f.Error()+" (degraded)"))
		} else {
			b.opts.Logger.Printf("%s", au.Red(f.Error()+" (empty)"))
		}
	}
}

// Cache holds the meshes of the currently loaded level. Readers always see a
// complete set: Reload builds the new meshes off to the side and swaps them in
// at once, and never touches the meshes it replaces.
type Cache struct {
	opts    Options
	current atomic.Pointer[LevelMeshes]
}

func NewCache(opts Options) (*Cache, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return &Cache{opts: opts}, nil
}

// Load returns the current meshes, or nil before the first Reload.
func (c *Cache) Load() *LevelMeshes {
	return c.current.Load()
}

// Reload builds the meshes of store and makes them current. If the build is
// cancelled the current meshes stay in place.
func (c *Cache) Reload(ctx context.Context, store level.Store) (*LevelMeshes, error) {
	b, err := NewBuilder(store, c.opts)
	if err != nil {
		return nil, err
	}
	lm, err := b.BuildLevel(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "building level meshes")
	}
	c.current.Store(lm)
	return lm, nil
}
