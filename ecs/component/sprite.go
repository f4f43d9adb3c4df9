package component

import "image"

// Sprite names a sprite sheet in the asset bank and its frame layout.
type Sprite struct {
	Sheet      string
	Cols, Rows int
	// Size of one frame in pixels.
	Size image.Point
}

var SpriteComponent = NewComponent[Sprite]()
