package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec is a 2D offset in world units.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ShipSpec struct {
	Movement    float64 `yaml:"movement"`
	ProgressMax int     `yaml:"progress_max"`
	Explosions  int     `yaml:"explosions"`
	BlinkingGap int     `yaml:"blinking_gap"`
	LaserCharge int     `yaml:"laser_charge"`
	LaserOffset Vec     `yaml:"laser_offset"`
	JetOffset   Vec     `yaml:"jet_offset"`
}

func LoadShipSpec() (*ShipSpec, error) {
	spec, err := LoadSpec[ShipSpec]("ship.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// HUDSpec styles the score and lives counters.
type HUDSpec struct {
	TextOffset int        `yaml:"text_offset"`
	Size       float64    `yaml:"size"`
	Color      *YAMLColor `yaml:"color"`
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec]("hud.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
