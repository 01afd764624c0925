package internal

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/sectormesh/internal/dbg"
	"github.com/pkg/errors"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

type loopKey struct {
	sector, first, n int
}

// Name is a readable name for the loop, stable for the duration of the run.
func (l Loop) Name(sector int) string {
	if l.Len() == 0 {
		return dbg.Name(nil)
	}
	first := l.Vertices[0]
	for _, v := range l.Vertices {
		if v < first {
			first = v
		}
	}
	return dbg.Name(loopKey{sector, first, l.Len()})
}

func (l Loop) String() string {
	return fmt.Sprintf("%v%v", aurora.Cyan("loop"), l.Vertices)
}

// DrawSector renders the tessellation to a PNG at path. Triangles are filled,
// polygons are outlined, and every loop is labelled with its name.
func DrawSector(path string, tess *Tessellation, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, loop := range tess.Loops {
		for _, p := range loop.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return errors.Errorf("sector %d has nothing to draw", tess.Sector)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Level y points up, image y points down. Flipping by hand rather than
	// with a transform keeps the labels readable.
	screen := func(p Point) (float64, float64) {
		return dbgDrawPadding + scale*(p.X-minX), float64(height) - dbgDrawPadding - scale*(p.Y-minY)
	}

	c.SetLineWidth(1)
	for _, tri := range tess.Triangles {
		for _, p := range []Point{tri.A, tri.B, tri.C} {
			c.LineTo(screen(p))
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetLineWidth(2)
	for _, loop := range tess.Loops {
		for _, p := range loop.Points {
			c.LineTo(screen(p))
		}
		c.ClosePath()
		c.SetRGB(1, 1, 1)
		c.Stroke()

		x, y := screen(loop.Points[loop.MaxXIndex()])
		c.SetRGB(1, 1, 0)
		c.DrawStringAnchored(loop.Name(tess.Sector), x, y, 1, -0.5)
	}

	return errors.Wrapf(c.SavePNG(path), "saving sector %d drawing", tess.Sector)
}

// ShowImage writes a PNG to a terminal that understands inline images.
func ShowImage(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
