package levels

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownLevel = errors.New("levels: unknown level")

const catalogFile = "levels.yaml"

// Level describes one stage of the game.
type Level struct {
	MapFile     string  `yaml:"map"`
	Description string  `yaml:"description"`
	Music       string  `yaml:"music"`
	Background  string  `yaml:"background"`
	Asteroids   float64 `yaml:"asteroids"`
	Speed       float64 `yaml:"speed"`
	Accel       float64 `yaml:"acceleration"`
	// SpeedScript names a tengo script under prefabs/scripts that replaces
	// the built-in speed formula.
	SpeedScript string `yaml:"speed_script"`
}

// Map loads the level's track.
func (l Level) Map() (*Map, error) {
	return LoadMap(l.MapFile)
}

// BackgroundColor parses Background as #rrggbb. Malformed values give black.
func (l Level) BackgroundColor() color.NRGBA {
	s := strings.TrimPrefix(strings.TrimSpace(l.Background), "#")
	if len(s) != 6 {
		return color.NRGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

type Catalog struct {
	Levels []Level `yaml:"levels"`
}

// LoadCatalog reads levels.yaml.
func LoadCatalog() (*Catalog, error) {
	data, err := Read(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", catalogFile, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", catalogFile, err)
	}
	for i, l := range c.Levels {
		if l.MapFile == "" {
			return nil, fmt.Errorf("levels: level %d has no map", i+1)
		}
	}
	return &c, nil
}

// Len is the number of levels.
func (c *Catalog) Len() int { return len(c.Levels) }

// Level returns the level with the given zero-based index.
func (c *Catalog) Level(i int) (Level, error) {
	if i < 0 || i >= len(c.Levels) {
		return Level{}, fmt.Errorf("%w: %d", ErrUnknownLevel, i+1)
	}
	return c.Levels[i], nil
}
