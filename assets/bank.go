// Package assets holds the game's images and collision masks. Art comes
// from PNG files in an optional asset directory; anything missing is drawn
// by the placeholders package.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"
	"slices"

	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/mask"
	"github.com/milk9111/spaceracer/placeholders"
	"gopkg.in/yaml.v3"
)

const (
	GroupAsteroid      = "asteroid"
	GroupSmallAsteroid = "small_asteroid"
	GroupStar          = "star"
	GroupExplosion     = "explosion"
	GroupLaser         = "laser"
	GroupShip          = "ship"
	GroupJet           = "jet"
)

type SheetSpec struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Group   string `yaml:"group"`
	Variant int    `yaml:"variant"`
	Cols    int    `yaml:"cols"`
	Rows    int    `yaml:"rows"`
	Mask    bool   `yaml:"mask"`
}

type Manifest struct {
	Sheets []SheetSpec `yaml:"sheets"`
}

func LoadManifest() (Manifest, error) {
	data, err := fs.ReadFile(assetsFS, "sheets.yaml")
	if err != nil {
		return Manifest{}, fmt.Errorf("assets: load sheets.yaml: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: unmarshal sheets.yaml: %w", err)
	}
	return m, nil
}

// Bank is the loaded art. It is read-only after Load.
type Bank struct {
	dir    string
	images map[string]*image.NRGBA
	sheets map[string]system.Sheet
	groups map[string][]string
	tiles  []image.Image
	// Generated lists the sheets drawn as placeholders.
	Generated []string
}

// Load builds the bank from dir, which may be empty.
func Load(dir string) (*Bank, error) {
	man, err := LoadManifest()
	if err != nil {
		return nil, err
	}
	b := &Bank{
		dir:    dir,
		images: make(map[string]*image.NRGBA),
		sheets: make(map[string]system.Sheet),
		groups: make(map[string][]string),
	}
	for _, spec := range man.Sheets {
		if err := b.addSheet(spec); err != nil {
			return nil, err
		}
	}
	for i := range levels.TileCount {
		code := levels.TileCode(i)
		img, err := b.image("img/tiles/"+code.Name()+".png", func() *image.NRGBA { return placeholders.Tile(code) })
		if err != nil {
			return nil, err
		}
		b.tiles = append(b.tiles, img)
	}
	return b, nil
}

func (b *Bank) addSheet(spec SheetSpec) error {
	if spec.Cols <= 0 || spec.Rows <= 0 {
		return fmt.Errorf("assets: sheet %s: bad layout %dx%d", spec.Name, spec.Cols, spec.Rows)
	}
	gen, ok := placeholderFor(spec)
	if !ok {
		return fmt.Errorf("assets: sheet %s: unknown group %q", spec.Name, spec.Group)
	}
	img, err := b.image(spec.File, func() *image.NRGBA {
		b.Generated = append(b.Generated, spec.Name)
		return gen()
	})
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	if bounds.Dx()%spec.Cols != 0 || bounds.Dy()%spec.Rows != 0 {
		return fmt.Errorf("assets: sheet %s: %v does not split into %dx%d frames", spec.Name, bounds.Size(), spec.Cols, spec.Rows)
	}

	sh := system.Sheet{
		Name: spec.Name,
		Cols: spec.Cols,
		Rows: spec.Rows,
		Size: image.Pt(bounds.Dx()/spec.Cols, bounds.Dy()/spec.Rows),
	}
	if spec.Mask {
		sh.Masks = mask.SheetMasks(img, spec.Cols, spec.Rows, mask.DefaultThreshold)
	}
	b.images[spec.Name] = img
	b.sheets[spec.Name] = sh
	b.groups[spec.Group] = append(b.groups[spec.Group], spec.Name)
	return nil
}

// image decodes path from the asset directory, or calls fallback when the
// file does not exist.
func (b *Bank) image(path string, fallback func() *image.NRGBA) (*image.NRGBA, error) {
	data, err := LoadFile(b.dir, path)
	if err != nil {
		return fallback(), nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n, nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

func placeholderFor(spec SheetSpec) (func() *image.NRGBA, bool) {
	switch spec.Group {
	case GroupAsteroid:
		return func() *image.NRGBA { return placeholders.Asteroid(spec.Variant, false) }, true
	case GroupSmallAsteroid:
		return func() *image.NRGBA { return placeholders.Asteroid(spec.Variant, true) }, true
	case GroupStar:
		return func() *image.NRGBA { return placeholders.Star(spec.Variant) }, true
	case GroupExplosion:
		return func() *image.NRGBA { return placeholders.Explosion(spec.Variant) }, true
	case GroupLaser:
		return placeholders.Laser, true
	case GroupShip:
		return placeholders.Ship, true
	case GroupJet:
		return placeholders.Jet, true
	}
	return nil, false
}

func (b *Bank) Dir() string { return b.dir }

func (b *Bank) Sheet(name string) (system.Sheet, bool) {
	sh, ok := b.sheets[name]
	return sh, ok
}

// Image returns the whole sheet image.
func (b *Bank) Image(name string) *image.NRGBA { return b.images[name] }

// Group returns the sheets of a group in manifest order.
func (b *Bank) Group(group string) []system.Sheet {
	names := b.groups[group]
	out := make([]system.Sheet, 0, len(names))
	for _, n := range names {
		out = append(out, b.sheets[n])
	}
	return out
}

// First returns the first sheet of a group.
func (b *Bank) First(group string) (system.Sheet, bool) {
	names := b.groups[group]
	if len(names) == 0 {
		return system.Sheet{}, false
	}
	return b.sheets[names[0]], true
}

// Tiles returns the track tiles indexed by tile code.
func (b *Bank) Tiles() []image.Image { return slices.Clone(b.tiles) }

// Names lists every sheet name.
func (b *Bank) Names() []string {
	out := make([]string, 0, len(b.sheets))
	for n := range b.sheets {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
