package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spaceracer/hud"
	"golang.org/x/image/font/basicfont"
)

// textDrawer draws text with the built-in bitmap font scaled to a pixel
// height.
type textDrawer struct {
	face *text.GoXFace
}

func newTextDrawer() *textDrawer {
	return &textDrawer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (d *textDrawer) scale(size float64) float64 {
	return size / float64(basicfont.Face7x13.Height)
}

// Measure is the hud.Measure of this font.
func (d *textDrawer) Measure(s string, size float64) image.Point {
	w, h := text.Measure(s, d.face, 0)
	k := d.scale(size)
	return image.Pt(int(math.Ceil(w*k)), int(math.Ceil(h*k)))
}

func (d *textDrawer) Draw(dst *ebiten.Image, s string, size float64, p image.Point, c color.Color) {
	op := &text.DrawOptions{}
	k := d.scale(size)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, d.face, op)
}

func (d *textDrawer) DrawLabel(dst *ebiten.Image, l *hud.Label) {
	d.Draw(dst, l.Text, l.Size, l.TopLeft(), l.CurrentColor())
}
