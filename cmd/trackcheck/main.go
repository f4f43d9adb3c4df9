// Command trackcheck parses level maps and prints what the game will make
// of them: grid size, spawn markers, wall borders and the cells random
// asteroids can use.
//
//	trackcheck [-rows] [-density d] file.map...
//	trackcheck [-rows] -level n
//
// With no arguments every level of the catalog is checked.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/placeholders"
	"github.com/milk9111/spaceracer/track"
)

type options struct {
	rows    bool
	density float64
}

func main() {
	level := flag.Int("level", 0, "check only this catalog level (1-based)")
	rows := flag.Bool("rows", false, "print the borders of every row")
	density := flag.Float64("density", -1, "asteroid density for files (catalog levels use their own)")
	flag.Parse()

	tiles, err := placeholderTileset()
	if err != nil {
		log.Fatalf("trackcheck: %v", err)
	}

	failed := false
	report := func(name string, m *levels.Map, err error, density float64) {
		if err != nil {
			log.Printf("trackcheck: %s: %v", name, err)
			failed = true
			return
		}
		check(os.Stdout, name, m, tiles, options{rows: *rows, density: density})
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			m, err := levels.LoadMap(name)
			report(name, m, err, max(*density, 0))
		}
	} else {
		catalog, err := levels.LoadCatalog()
		if err != nil {
			log.Fatalf("trackcheck: %v", err)
		}
		for i := range catalog.Len() {
			if *level > 0 && i != *level-1 {
				continue
			}
			lvl, err := catalog.Level(i)
			if err != nil {
				log.Fatalf("trackcheck: %v", err)
			}
			d := lvl.Asteroids
			if *density >= 0 {
				d = *density
			}
			m, err := lvl.Map()
			report(fmt.Sprintf("level %d (%s)", i+1, lvl.MapFile), m, err, d)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func placeholderTileset() (*track.Tileset, error) {
	var images []image.Image
	for _, img := range placeholders.Tiles() {
		images = append(images, img)
	}
	return track.NewTileset(images)
}

// summary is what check found in one map.
type summary struct {
	Rows, Spawns     int
	Lo, Hi           int
	Gaps, Outer      int
	Empty            int
	InnerTiles       int
	RandomAsteroids  int
	NarrowestPassage float64
}

func summarize(m *levels.Map, tr *track.Track, density float64) summary {
	s := summary{Rows: m.Grid.Height(), Spawns: len(m.Spawns), NarrowestPassage: -1}
	s.Lo, s.Hi, _ = m.Grid.Span()
	for y := range m.Grid {
		b, ok := tr.BordersAt(rowCentre(y))
		switch {
		case !ok:
			s.Empty++
		case b.Outer:
			s.Outer++
		default:
			s.Gaps++
			if w := b.Right - b.Left; s.NarrowestPassage < 0 || w < s.NarrowestPassage {
				s.NarrowestPassage = w
			}
		}
	}
	s.InnerTiles = len(tr.InnerTiles())
	s.RandomAsteroids = system.SpawnCount(tr.Height(), common.BaseHeight, density)
	return s
}

func rowCentre(y int) float64 {
	return levels.TileToWorld(y) + common.CellSize/2
}

func check(w io.Writer, name string, m *levels.Map, tiles *track.Tileset, opts options) summary {
	tr := track.New(camera.New(common.BaseWidth, common.BaseHeight), tiles)
	tr.SetGrid(m.Grid)
	s := summarize(m, tr, opts.density)

	fmt.Fprintf(w, "%s\n", name)
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "  rows\t%d\t(%.0f world units)\n", s.Rows, tr.Height())
	fmt.Fprintf(tw, "  columns\t%d..%d\n", s.Lo, s.Hi)
	fmt.Fprintf(tw, "  spawn markers\t%d\n", s.Spawns)
	fmt.Fprintf(tw, "  rows with a gap\t%d\n", s.Gaps)
	fmt.Fprintf(tw, "  rows without a gap\t%d\n", s.Outer)
	fmt.Fprintf(tw, "  empty rows\t%d\n", s.Empty)
	if s.NarrowestPassage >= 0 {
		fmt.Fprintf(tw, "  narrowest passage\t%.0f\n", s.NarrowestPassage)
	}
	fmt.Fprintf(tw, "  inner tiles\t%d\n", s.InnerTiles)
	fmt.Fprintf(tw, "  random asteroids\t%d\t(density %g)\n", s.RandomAsteroids, opts.density)
	_ = tw.Flush()

	if opts.rows {
		printRows(w, m, tr)
	}
	return s
}

// printRows lists the rows top first, as they appear in the map file.
func printRows(w io.Writer, m *levels.Map, tr *track.Track) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintln(tw, "  row\tleft\tright\ttiles")
	for y := m.Grid.Height() - 1; y >= 0; y-- {
		row := m.Grid[y]
		names := make([]string, 0, len(row))
		for _, x := range row.Columns() {
			names = append(names, fmt.Sprintf("%d:%s", x, row[x].Name()))
		}
		b, ok := tr.BordersAt(rowCentre(y))
		left, right := "-", "-"
		if ok {
			left, right = fmt.Sprintf("%.0f", b.Left), fmt.Sprintf("%.0f", b.Right)
			if b.Outer {
				right += "*"
			}
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", y, left, right, strings.Join(names, " "))
	}
	_ = tw.Flush()
}
