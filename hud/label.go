// Package hud animates the on-screen text of the game screens. It only
// computes what to show; drawing is done by the caller.
package hud

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/spaceracer/common"
)

type Effect int

const (
	EffectStatic Effect = iota
	// EffectBlink moves the colour to Second and back once per period.
	EffectBlink
	// EffectExpose fades the text in.
	EffectExpose
	// EffectFade fades the text out.
	EffectFade
	// EffectPulse fades in and out once per period.
	EffectPulse
	// EffectSlide moves the text from its origin along Direction.
	EffectSlide
)

type Direction int

const (
	SlideRight Direction = iota
	SlideLeft
	SlideUp
	SlideDown
)

const DefaultMaxProgress = 100

// Label is a line of text with an optional animation.
type Label struct {
	Text   string
	Size   float64
	Color  color.NRGBA
	Second color.NRGBA
	Effect Effect
	Dir    Direction
	// Pos is the top-left corner on screen; slides start there.
	Pos         image.Point
	Speed       float64
	MaxProgress float64
	Repeat      bool

	progress float64
	finished bool
}

func NewLabel(text string, size float64, c color.NRGBA, effect Effect) *Label {
	return &Label{
		Text:        text,
		Size:        size,
		Color:       c,
		Second:      c,
		Effect:      effect,
		Speed:       1,
		MaxProgress: DefaultMaxProgress,
		Repeat:      true,
	}
}

func (l *Label) Restart() {
	l.progress = 0
	l.finished = false
}

func (l *Label) Update() {
	if l.finished {
		return
	}
	l.progress += l.Speed
	if l.progress > l.MaxProgress {
		if l.Repeat {
			l.progress = 0
		} else {
			l.progress = l.MaxProgress
			l.finished = true
		}
	}
}

func (l *Label) Finished() bool    { return l.finished }
func (l *Label) Progress() float64 { return l.progress }

func (l *Label) ratio() float64 {
	if l.MaxProgress <= 0 {
		return 1
	}
	return l.progress / l.MaxProgress
}

// CurrentColor is the colour to draw with, alpha included.
func (l *Label) CurrentColor() color.NRGBA {
	c := l.Color
	switch l.Effect {
	case EffectBlink:
		f := 1 - 2*math.Abs(l.ratio()-0.5)
		lerp := func(a, b uint8) uint8 { return uint8(common.Lerp(float64(a), float64(b), f)) }
		c = color.NRGBA{lerp(l.Color.R, l.Second.R), lerp(l.Color.G, l.Second.G), lerp(l.Color.B, l.Second.B), l.Color.A}
	case EffectExpose:
		c.A = uint8(common.Round(l.ratio() * 255))
	case EffectFade:
		c.A = uint8(common.Round((1 - l.ratio()) * 255))
	case EffectPulse:
		c.A = uint8(common.Round((1 - 2*math.Abs(l.ratio()-0.5)) * 255))
	}
	return c
}

// TopLeft is where to draw the text this tick.
func (l *Label) TopLeft() image.Point {
	if l.Effect != EffectSlide {
		return l.Pos
	}
	d := int(l.progress)
	switch l.Dir {
	case SlideRight:
		return l.Pos.Add(image.Pt(d, 0))
	case SlideLeft:
		return l.Pos.Sub(image.Pt(d, 0))
	case SlideUp:
		return l.Pos.Sub(image.Pt(0, d))
	default:
		return l.Pos.Add(image.Pt(0, d))
	}
}

// Measure returns the pixel size of text drawn at size.
type Measure func(text string, size float64) image.Point

// place positions l so that its anchor point lands on p. ax and ay are the
// anchor as a fraction of the text box, 0.5 being the centre.
func (l *Label) place(m Measure, p image.Point, ax, ay float64) *Label {
	sz := m(l.Text, l.Size)
	l.Pos = image.Pt(p.X-int(float64(sz.X)*ax), p.Y-int(float64(sz.Y)*ay))
	return l
}
