// Package placeholders draws the game art procedurally so the game runs
// without an asset directory. Every generator is deterministic.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Palette holds the colours used by the generators.
var Palette = struct {
	Wall      color.NRGBA
	WallCore  color.NRGBA
	Rock      color.NRGBA
	RockDark  color.NRGBA
	Hull      color.NRGBA
	Cockpit   color.NRGBA
	Laser     color.NRGBA
	LaserCore color.NRGBA
	Flame     color.NRGBA
	Fire      color.NRGBA
	Smoke     color.NRGBA
}{
	Wall:      color.NRGBA{96, 120, 168, 255},
	WallCore:  color.NRGBA{196, 216, 255, 255},
	Rock:      color.NRGBA{128, 104, 86, 255},
	RockDark:  color.NRGBA{84, 66, 54, 255},
	Hull:      color.NRGBA{200, 204, 214, 255},
	Cockpit:   color.NRGBA{40, 170, 230, 255},
	Laser:     color.NRGBA{255, 60, 90, 200},
	LaserCore: color.NRGBA{255, 230, 240, 255},
	Flame:     color.NRGBA{255, 170, 40, 255},
	Fire:      color.NRGBA{255, 110, 30, 255},
	Smoke:     color.NRGBA{90, 90, 96, 255},
}

type pt struct{ x, y float32 }

// fillPolygon rasterises a closed polygon into dst with anti-aliased edges.
func fillPolygon(dst draw.Image, r image.Rectangle, pts []pt, c color.Color) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

func circle(cx, cy, radius float32, segments int) []pt {
	out := make([]pt, segments)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(segments)
		out[i] = pt{cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a))}
	}
	return out
}

// stroke draws a thick segment with round joints at both ends.
func stroke(dst draw.Image, r image.Rectangle, a, b pt, width float32, c color.Color) {
	dx, dy := b.x-a.x, b.y-a.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	fillPolygon(dst, r, []pt{
		{a.x + nx, a.y + ny},
		{b.x + nx, b.y + ny},
		{b.x - nx, b.y - ny},
		{a.x - nx, a.y - ny},
	}, c)
	fillPolygon(dst, r, circle(a.x, a.y, width/2, 16), c)
	fillPolygon(dst, r, circle(b.x, b.y, width/2, 16), c)
}

func rotate(p pt, cx, cy float32, angle float64) pt {
	s, c := math.Sincos(angle)
	x, y := float64(p.x-cx), float64(p.y-cy)
	return pt{cx + float32(x*c-y*s), cy + float32(x*s+y*c)}
}

func translate(pts []pt, dx, dy float32) []pt {
	out := make([]pt, len(pts))
	for i, p := range pts {
		out[i] = pt{p.x + dx, p.y + dy}
	}
	return out
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Max(0, math.Min(1, a)) * float64(c.A))
	return c
}

func mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	l := func(x, y uint8) uint8 { return uint8(float64(x) + t*(float64(y)-float64(x))) }
	return color.NRGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// sheet allocates a cols x rows sprite sheet and calls frame for each cell
// with the cell rectangle.
func sheet(fw, fh, cols, rows int, frame func(img *image.NRGBA, r image.Rectangle, i int)) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fw*cols, fh*rows))
	for i := 0; i < cols*rows; i++ {
		x, y := (i%cols)*fw, (i/cols)*fh
		frame(img, image.Rect(x, y, x+fw, y+fh), i)
	}
	return img
}
