package system

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs/component"
	"github.com/milk9111/spaceracer/mask"
)

// Sheet describes a sprite sheet held by the asset bank.
type Sheet struct {
	Name       string
	Cols, Rows int
	// Size of one frame.
	Size image.Point
	// Masks has one entry per frame for sheets that collide.
	Masks []*mask.Mask
}

func (s Sheet) Frames() int { return s.Cols * s.Rows }

// Sprite returns the sprite component of the sheet.
func (s Sheet) Sprite() *component.Sprite {
	return &component.Sprite{Sheet: s.Name, Cols: s.Cols, Rows: s.Rows, Size: s.Size}
}

// SpriteRect returns the screen rectangle of a sprite centred on the world
// point c.
func SpriteRect(vp *camera.ViewPoint, c cp.Vector, size image.Point) image.Rectangle {
	tl := vp.ToScreen(cp.Vector{X: c.X - float64(size.X)/2, Y: c.Y + float64(size.Y)/2})
	return image.Rectangle{Min: tl, Max: tl.Add(size)}
}
