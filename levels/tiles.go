package levels

import "fmt"

// TileCode names one of the twenty track pieces. The name lists the two
// anchor points of the wall segment drawn in the cell.
type TileCode uint8

const (
	TileBotLeft TileCode = iota
	TileBotLeftMidRight
	TileBotLeftMidTop
	TileBotLeftTopRight
	TileBotRight
	TileMidBotMidRight
	TileMidBotTopRight
	TileMidLeftBotRight
	TileMidLeftMidBot
	TileMidLeftMidRight
	TileMidLeftMidTop
	TileMidLeftTopRight
	TileMidTopBotRight
	TileMidTopMidBot
	TileMidTopMidRight
	TileTopLeft
	TileTopLeftBotRight
	TileTopLeftMidBot
	TileTopLeftMidRight
	TileTopRight

	TileCount = int(TileTopRight) + 1
)

var tileNames = [TileCount]string{
	"botleft",
	"botleft_midright",
	"botleft_midtop",
	"botleft_topright",
	"botright",
	"midbot_midright",
	"midbot_topright",
	"midleft_botright",
	"midleft_midbot",
	"midleft_midright",
	"midleft_midtop",
	"midleft_topright",
	"midtop_botright",
	"midtop_midbot",
	"midtop_midright",
	"topleft",
	"topleft_botright",
	"topleft_midbot",
	"topleft_midright",
	"topright",
}

// Anchor is a point on the cell border, in cell fractions with y up.
type Anchor struct {
	X, Y float64
}

var (
	anchorBotLeft  = Anchor{0, 0}
	anchorBotRight = Anchor{1, 0}
	anchorTopLeft  = Anchor{0, 1}
	anchorTopRight = Anchor{1, 1}
	anchorMidLeft  = Anchor{0, 0.5}
	anchorMidRight = Anchor{1, 0.5}
	anchorMidTop   = Anchor{0.5, 1}
	anchorMidBot   = Anchor{0.5, 0}
)

// Corner tiles have a single anchor and are drawn as a filled corner.
var tileAnchors = [TileCount][]Anchor{
	{anchorBotLeft},
	{anchorBotLeft, anchorMidRight},
	{anchorBotLeft, anchorMidTop},
	{anchorBotLeft, anchorTopRight},
	{anchorBotRight},
	{anchorMidBot, anchorMidRight},
	{anchorMidBot, anchorTopRight},
	{anchorMidLeft, anchorBotRight},
	{anchorMidLeft, anchorMidBot},
	{anchorMidLeft, anchorMidRight},
	{anchorMidLeft, anchorMidTop},
	{anchorMidLeft, anchorTopRight},
	{anchorMidTop, anchorBotRight},
	{anchorMidTop, anchorMidBot},
	{anchorMidTop, anchorMidRight},
	{anchorTopLeft},
	{anchorTopLeft, anchorBotRight},
	{anchorTopLeft, anchorMidBot},
	{anchorTopLeft, anchorMidRight},
	{anchorTopRight},
}

func (c TileCode) Valid() bool {
	return int(c) < TileCount
}

// Name is the asset base name of the tile, e.g. "midtop_midbot".
func (c TileCode) Name() string {
	if !c.Valid() {
		return ""
	}
	return tileNames[c]
}

func (c TileCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("TileCode(%d)", uint8(c))
	}
	return tileNames[c]
}

// Anchors returns the border points the tile's wall connects.
func (c TileCode) Anchors() []Anchor {
	if !c.Valid() {
		return nil
	}
	return tileAnchors[c]
}

// Corner reports whether the tile is a single corner filler written by the
// diagonal pass.
func (c TileCode) Corner() bool {
	return len(c.Anchors()) == 1
}
