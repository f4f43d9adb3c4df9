package placeholders

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// Sprite sheet layouts.
const (
	AsteroidCols, AsteroidRows   = 4, 4
	StarCols, StarRows           = 6, 5
	ExplosionCols, ExplosionRows = 8, 8
	LaserCols, LaserRows         = 4, 3
	JetCols, JetRows             = 8, 4

	AsteroidVariants = 7
	StarVariants     = 9

	AsteroidSize      = 96
	SmallAsteroidSize = 56
	StarSize          = 24
	LaserWidth        = 24
	LaserLength       = 640
	ShipWidth         = 64
	ShipHeight        = 96
	JetWidth          = 16
	JetHeight         = 32
)

// Explosion kinds, from the smallest.
const (
	ExplosionSmall = iota
	ExplosionBlast
	ExplosionBig
	ExplosionDouble

	ExplosionKinds
)

var explosionSizes = [ExplosionKinds]int{48, 96, 128, 128}

// Asteroid draws one rotating rock sheet. Variants differ in outline.
func Asteroid(variant int, small bool) *image.NRGBA {
	size := AsteroidSize
	if small {
		size = SmallAsteroidSize
	}
	rng := rand.New(rand.NewPCG(uint64(variant)+1, 0xa57e))
	const vertices = 11
	radius := float64(size) * 0.42
	outline := make([]pt, vertices)
	c := float32(size) / 2
	for i := range outline {
		a := 2 * math.Pi * float64(i) / vertices
		r := radius * (0.72 + 0.28*rng.Float64())
		outline[i] = pt{c + float32(r*math.Cos(a)), c + float32(r*math.Sin(a))}
	}
	type crater struct {
		p pt
		r float32
	}
	craters := make([]crater, 3)
	for i := range craters {
		a := rng.Float64() * 2 * math.Pi
		d := rng.Float64() * radius * 0.45
		craters[i] = crater{
			p: pt{c + float32(d*math.Cos(a)), c + float32(d*math.Sin(a))},
			r: float32(radius * (0.12 + 0.1*rng.Float64())),
		}
	}

	frames := AsteroidCols * AsteroidRows
	return sheet(size, size, AsteroidCols, AsteroidRows, func(img *image.NRGBA, r image.Rectangle, i int) {
		angle := 2 * math.Pi * float64(i) / float64(frames)
		rot := make([]pt, len(outline))
		for j, p := range outline {
			rot[j] = rotate(p, c, c, angle)
		}
		fillPolygon(img, r, rot, Palette.Rock)
		for _, cr := range craters {
			p := rotate(cr.p, c, c, angle)
			fillPolygon(img, r, circle(p.x, p.y, cr.r, 12), Palette.RockDark)
		}
	})
}

var starColors = [StarVariants]color.NRGBA{
	{255, 255, 255, 255},
	{255, 244, 214, 255},
	{214, 230, 255, 255},
	{255, 214, 214, 255},
	{220, 255, 230, 255},
	{255, 250, 180, 255},
	{190, 210, 255, 255},
	{255, 200, 255, 255},
	{240, 240, 240, 255},
}

// Star draws a twinkling star sheet.
func Star(variant int) *image.NRGBA {
	col := starColors[((variant%StarVariants)+StarVariants)%StarVariants]
	frames := StarCols * StarRows
	phase := float64(variant) * 0.7
	return sheet(StarSize, StarSize, StarCols, StarRows, func(img *image.NRGBA, r image.Rectangle, i int) {
		t := 0.5 + 0.5*math.Sin(phase+2*math.Pi*float64(i)/float64(frames))
		c := float32(StarSize) / 2
		arm := float32(3 + 8*t)
		w := float32(1.2)
		fillPolygon(img, r, []pt{
			{c, c - arm}, {c + w, c - w}, {c + arm, c}, {c + w, c + w},
			{c, c + arm}, {c - w, c + w}, {c - arm, c}, {c - w, c - w},
		}, withAlpha(col, 0.5+0.5*t))
		fillPolygon(img, r, circle(c, c, 1.5+float32(t), 8), col)
	})
}

// Explosion draws a one-shot explosion sheet of the given kind.
func Explosion(kind int) *image.NRGBA {
	if kind < 0 || kind >= ExplosionKinds {
		kind = ExplosionBlast
	}
	size := explosionSizes[kind]
	frames := ExplosionCols * ExplosionRows
	return sheet(size, size, ExplosionCols, ExplosionRows, func(img *image.NRGBA, r image.Rectangle, i int) {
		t := float64(i) / float64(frames-1)
		c := float32(size) / 2
		maxR := float64(size) * 0.48
		centres := []pt{{c, c}}
		if kind == ExplosionDouble {
			d := float32(size) / 6
			centres = []pt{{c - d, c + d/2}, {c + d, c - d/2}}
			maxR *= 0.7
		}
		for _, p := range centres {
			outer := float32(maxR * math.Sqrt(t+0.05))
			fillPolygon(img, r, circle(p.x, p.y, outer, 24), withAlpha(mix(Palette.Fire, Palette.Smoke, t), 1-t))
			inner := outer * float32(0.6*(1-t))
			if inner > 1 {
				fillPolygon(img, r, circle(p.x, p.y, inner, 16), withAlpha(Palette.Flame, 1-t))
			}
		}
	})
}

// Laser draws the beam sheet. The first frame is the full beam; later frames
// fade out.
func Laser() *image.NRGBA {
	frames := LaserCols * LaserRows
	return sheet(LaserWidth, LaserLength, LaserCols, LaserRows, func(img *image.NRGBA, r image.Rectangle, i int) {
		t := float64(i) / float64(frames)
		c := float32(LaserWidth) / 2
		w := float32(LaserWidth) * float32(1-0.6*t)
		fillPolygon(img, r, []pt{{c - w/2, 0}, {c + w/2, 0}, {c + w/2, LaserLength}, {c - w/2, LaserLength}}, withAlpha(Palette.Laser, 1-t))
		fillPolygon(img, r, []pt{{c - w/6, 0}, {c + w/6, 0}, {c + w/6, LaserLength}, {c - w/6, LaserLength}}, withAlpha(Palette.LaserCore, 1-t))
	})
}

// Ship draws the player ship pointing up.
func Ship() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ShipWidth, ShipHeight))
	r := img.Bounds()
	const w, h = float32(ShipWidth), float32(ShipHeight)
	fillPolygon(img, r, []pt{
		{w / 2, 0},
		{w * 0.62, h * 0.35},
		{w, h * 0.85},
		{w * 0.62, h * 0.78},
		{w * 0.58, h},
		{w * 0.42, h},
		{w * 0.38, h * 0.78},
		{0, h * 0.85},
		{w * 0.38, h * 0.35},
	}, Palette.Hull)
	fillPolygon(img, r, []pt{{w / 2, h * 0.2}, {w * 0.57, h * 0.45}, {w / 2, h * 0.55}, {w * 0.43, h * 0.45}}, Palette.Cockpit)
	return img
}

// Jet draws the engine flame sheet.
func Jet() *image.NRGBA {
	frames := JetCols * JetRows
	return sheet(JetWidth, JetHeight, JetCols, JetRows, func(img *image.NRGBA, r image.Rectangle, i int) {
		t := 0.6 + 0.4*math.Abs(math.Sin(math.Pi*float64(i)/float64(frames)*3))
		c := float32(JetWidth) / 2
		l := float32(JetHeight) * float32(t)
		fillPolygon(img, r, []pt{{c - 6, 0}, {c + 6, 0}, {c, l}}, Palette.Fire)
		fillPolygon(img, r, []pt{{c - 3, 0}, {c + 3, 0}, {c, l * 0.6}}, Palette.Flame)
	})
}
