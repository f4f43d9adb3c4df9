// Package render draws the world with ebiten. Sheet images are registered
// once and cut into frames on first use.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceracer/ecs/component"
)

type frameKey struct {
	sheet string
	frame int
}

// Registry maps sheet names to GPU images.
type Registry struct {
	images map[string]*ebiten.Image
	frames map[frameKey]*ebiten.Image
}

func NewRegistry() *Registry {
	return &Registry{
		images: make(map[string]*ebiten.Image),
		frames: make(map[frameKey]*ebiten.Image),
	}
}

// Register uploads img under key, replacing any earlier image and its
// frames.
func (r *Registry) Register(key string, img image.Image) {
	if key == "" || img == nil {
		return
	}
	r.images[key] = ebiten.NewImageFromImage(img)
	for k := range r.frames {
		if k.sheet == key {
			delete(r.frames, k)
		}
	}
}

// Image returns the registered image for key, or nil.
func (r *Registry) Image(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return r.images[key]
}

// Frame returns frame i of the sprite's sheet, counted row by row.
func (r *Registry) Frame(sp *component.Sprite, i int) *ebiten.Image {
	if sp == nil || sp.Cols <= 0 {
		return nil
	}
	k := frameKey{sheet: sp.Sheet, frame: i}
	if f, ok := r.frames[k]; ok {
		return f
	}
	img := r.Image(sp.Sheet)
	if img == nil {
		return nil
	}
	col, row := i%sp.Cols, i/sp.Cols
	tl := image.Pt(col*sp.Size.X, row*sp.Size.Y)
	f := img.SubImage(image.Rectangle{Min: tl, Max: tl.Add(sp.Size)}).(*ebiten.Image)
	r.frames[k] = f
	return f
}
