package component

import "github.com/milk9111/spaceracer/mask"

// Collider holds one mask per animation frame.
type Collider struct {
	Masks []*mask.Mask
}

// Mask returns the mask for frame, or nil.
func (c *Collider) Mask(frame int) *mask.Mask {
	if frame < 0 || frame >= len(c.Masks) {
		return nil
	}
	return c.Masks[frame]
}

var ColliderComponent = NewComponent[Collider]()
