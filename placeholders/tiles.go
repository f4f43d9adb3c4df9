package placeholders

import (
	"image"

	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/levels"
)

const (
	WallWidth = 24
	coreWidth = 6
	// cornerLeg is the size of the corner filler that completes a
	// neighbouring diagonal wall.
	cornerLeg = WallWidth * 0.71
)

// Tile draws the track piece for code on a transparent cell.
func Tile(code levels.TileCode) *image.NRGBA {
	const s = common.CellSize
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	r := img.Bounds()

	anchors := code.Anchors()
	toPx := func(a levels.Anchor) pt {
		return pt{float32(a.X * s), float32((1 - a.Y) * s)}
	}

	switch len(anchors) {
	case 1:
		c := toPx(anchors[0])
		dx, dy := float32(cornerLeg), float32(cornerLeg)
		if c.x > 0 {
			dx = -dx
		}
		if c.y > 0 {
			dy = -dy
		}
		fillPolygon(img, r, []pt{c, {c.x + dx, c.y}, {c.x, c.y + dy}}, Palette.Wall)
	case 2:
		a, b := toPx(anchors[0]), toPx(anchors[1])
		stroke(img, r, a, b, WallWidth, Palette.Wall)
		stroke(img, r, a, b, coreWidth, Palette.WallCore)
	}
	return img
}

// Tiles draws all track pieces indexed by tile code.
func Tiles() []*image.NRGBA {
	out := make([]*image.NRGBA, levels.TileCount)
	for i := range out {
		out[i] = Tile(levels.TileCode(i))
	}
	return out
}
