package track

import (
	"fmt"
	"image"

	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/mask"
)

// Tile is a cropped tile image, its collision mask and the position of the
// cropped image inside the cell, relative to the cell's top-left corner.
type Tile struct {
	Image  *image.NRGBA
	Mask   *mask.Mask
	Offset image.Point
}

// Size of the cropped image.
func (t *Tile) Size() image.Point {
	return t.Image.Bounds().Size()
}

// Tileset holds one Tile per tile code. It is not modified after NewTileset.
type Tileset struct {
	tiles [levels.TileCount]Tile
}

// NewTileset crops the images, indexed by tile code, and builds their masks.
func NewTileset(images []image.Image) (*Tileset, error) {
	if len(images) != levels.TileCount {
		return nil, fmt.Errorf("track: expected %d tile images, got %d", levels.TileCount, len(images))
	}
	ts := &Tileset{}
	for i, img := range images {
		if img == nil {
			return nil, fmt.Errorf("track: missing image for tile %v", levels.TileCode(i))
		}
		cropped, off := mask.Crop(img)
		ts.tiles[i] = Tile{
			Image:  cropped,
			Mask:   mask.FromImage(cropped, mask.DefaultThreshold),
			Offset: off,
		}
	}
	return ts, nil
}

func (ts *Tileset) Tile(code levels.TileCode) *Tile {
	if !code.Valid() {
		return nil
	}
	return &ts.tiles[code]
}
