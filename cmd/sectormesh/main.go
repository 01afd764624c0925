package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/sectormesh"
	"github.com/osuushi/sectormesh/config"
	"github.com/osuushi/sectormesh/internal"
	"github.com/osuushi/sectormesh/level"
	"github.com/osuushi/sectormesh/wad"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("sectormesh", "Triangulate the sectors of a Doom map.")
	configPath = app.Flag("config", "YAML configuration file.").ExistingFile()
	bridge     = app.Flag("bridge", "Hole bridging strategy.").Enum("nearest-x", "ray-cast")
	workers    = app.Flag("workers", "Sectors to triangulate concurrently.").Int()
	islands    = app.Flag("islands", "Allow sectors made of several disjoint areas.").Bool()
	drawDir    = app.Flag("draw", "Write a PNG of every sector to this directory.").String()
	imgcat     = app.Flag("imgcat", "Also print the drawings to the terminal.").Bool()
	color      = app.Flag("color", "Colour fault messages.").Bool()
	verbose    = app.Flag("verbose", "More output, repeat for even more.").Short('v').Counter()
	wadPath    = app.Arg("wadfile", "WAD file to read.").Required().ExistingFile()
	mapName    = app.Arg("map", "Map to triangulate, e.g. E1M1 or MAP01.").String()
)

// Loads a map from a WAD file, reconstructs and triangulates every sector the
// way a renderer would at level load, and reports the result. Without a map
// name, lists the maps in the WAD.
func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sectormesh: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	c := config.Default()
	if *configPath != "" {
		var err error
		if c, err = config.Load(*configPath); err != nil {
			return c, err
		}
	}
	if *bridge != "" {
		c.Bridge = *bridge
	}
	if *workers > 0 {
		c.Workers = *workers
	}
	if *islands {
		c.Islands = true
	}
	if *drawDir != "" {
		c.Draw.Dir = *drawDir
	}
	if *imgcat {
		c.Draw.Imgcat = true
	}
	if *color {
		c.Color = true
	}
	c.Verbosity += *verbose
	return c, c.Validate()
}

func run() error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := c.Options()
	if err != nil {
		return err
	}

	f, err := wad.Open(*wadPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if *mapName == "" {
		for _, name := range f.Maps() {
			fmt.Println(name)
		}
		return nil
	}
	lvl, err := f.Level(*mapName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cache, err := sectormesh.NewCache(opts)
	if err != nil {
		return err
	}
	meshes, err := cache.Reload(ctx, lvl)
	if err != nil {
		return err
	}
	report(meshes, aurora.NewAurora(c.Color))

	if c.Draw.Dir != "" {
		return draw(lvl, opts, c.Draw)
	}
	return nil
}

func report(meshes *sectormesh.LevelMeshes, au aurora.Aurora) {
	fmt.Printf("%s: %d sectors, %d triangles, %d wall triangles\n",
		*mapName, meshes.SectorCount(), meshes.TriangleCount(), meshes.WallTriangleCount())
	failed := meshes.Failed()
	if failed == 0 {
		fmt.Println(au.Green("no faults"))
		return
	}

	empty, degraded := 0, 0
	for _, err := range meshes.Errors {
		if err == nil {
			continue
		}
		faults := sectormesh.Faults(err)
		isDegraded := len(faults) > 0
		for _, fault := range faults {
			isDegraded = isDegraded && fault.Kind.Degraded()
		}
		if isDegraded {
			degraded++
		} else {
			empty++
		}
	}
	fmt.Printf("%s, %s\n",
		au.Red(fmt.Sprintf("%d sectors empty", empty)),
		au.Yellow(fmt.Sprintf("%d sectors degraded", degraded)))
}

func draw(store level.Store, opts sectormesh.Options, d config.Draw) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return errors.Wrap(err, "creating drawing directory")
	}
	// Faults were logged by the level build already
	opts.Verbosity = 0
	b, err := sectormesh.NewBuilder(store, opts)
	if err != nil {
		return err
	}
	for sector := 0; sector < store.SectorCount(); sector++ {
		tess, _ := b.Tessellate(sector)
		if tess == nil || len(tess.Loops) == 0 {
			continue
		}
		path := filepath.Join(d.Dir, fmt.Sprintf("%s_sector%04d.png", *mapName, sector))
		if err := internal.DrawSector(path, tess, d.Scale); err != nil {
			return err
		}
		if d.Imgcat {
			fmt.Printf("sector %d\n", sector)
			internal.ShowImage(path, os.Stdout)
		}
	}
	return nil
}
