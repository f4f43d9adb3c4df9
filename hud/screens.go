package hud

import (
	"fmt"
	"image"
	"image/color"
)

// Screen is a scripted sequence of labels.
type Screen interface {
	Restart()
	Update()
	Active() []*Label
	Finished() bool
}

var (
	white     = color.NRGBA{255, 255, 255, 255}
	black     = color.NRGBA{0, 0, 0, 255}
	sky       = color.NRGBA{109, 207, 246, 255}
	titleRed  = color.NRGBA{158, 11, 14, 255}
	titlePink = color.NRGBA{246, 150, 121, 255}
	deepBlue  = color.NRGBA{0, 84, 166, 255}
	darkRed   = color.NRGBA{121, 0, 0, 255}
	salmon    = color.NRGBA{242, 108, 79, 255}
)

const (
	TitleSize    = 192
	HeadingSize  = 48
	SubtitleSize = 32
	PromptSize   = 24
	GameOverSize = 92

	titleSlideSpeed = 16
	// LevelStartDelay is the pause in ticks after the intro text is gone.
	LevelStartDelay = 60
)

// LevelStartBackground fills the level intro screen.
var LevelStartBackground = color.NRGBA{8, 0, 51, 255}

func update(labels []*Label) {
	for _, l := range labels {
		l.Update()
	}
}

func restart(labels ...*Label) {
	for _, l := range labels {
		l.Restart()
	}
}

func slide(text string, size float64, c color.NRGBA, dir Direction, speed float64) *Label {
	l := NewLabel(text, size, c, EffectSlide)
	l.Dir = dir
	l.Speed = speed
	l.Repeat = false
	return l
}

func once(l *Label) *Label {
	l.Repeat = false
	return l
}

// Title slides the two title words in, then blinks them and asks for a key.
type Title struct {
	top, bottom           *Label
	topBlink, bottomBlink *Label
	startFade, startBlink *Label
}

func NewTitle(scr image.Point, m Measure) *Title {
	cy := scr.Y / 2
	t := &Title{
		top:         slide("SPACE", TitleSize, titleRed, SlideRight, titleSlideSpeed),
		bottom:      slide("RACER", TitleSize, titleRed, SlideLeft, titleSlideSpeed),
		topBlink:    NewLabel("SPACE", TitleSize, titleRed, EffectBlink),
		bottomBlink: NewLabel("RACER", TitleSize, titleRed, EffectBlink),
		startFade:   once(NewLabel("PRESS ENTER TO START", PromptSize, sky, EffectExpose)),
		startBlink:  NewLabel("PRESS ENTER TO START", PromptSize, sky, EffectBlink),
	}
	tw := m(t.top.Text, TitleSize).X
	bw := m(t.bottom.Text, TitleSize).X
	t.top.place(m, image.Pt(-tw/2, cy-TitleSize/2), 0.5, 0.5)
	t.top.MaxProgress = float64((scr.X + tw) / 2)
	t.bottom.place(m, image.Pt(scr.X+bw/2, cy+TitleSize/2), 0.5, 0.5)
	t.bottom.MaxProgress = float64((scr.X + bw) / 2)

	for _, l := range []*Label{t.topBlink, t.bottomBlink} {
		l.Second = titlePink
		l.Speed = 0.5
	}
	t.topBlink.place(m, image.Pt(scr.X/2, cy-TitleSize/2), 0.5, 0.5)
	t.bottomBlink.place(m, image.Pt(scr.X/2, cy+TitleSize/2), 0.5, 0.5)

	t.startBlink.Second = black
	t.startFade.place(m, image.Pt(scr.X/2, scr.Y-PromptSize*2), 0.5, 1)
	t.startBlink.Pos = t.startFade.Pos
	return t
}

func (t *Title) Restart() {
	restart(t.top, t.bottom, t.topBlink, t.bottomBlink, t.startFade, t.startBlink)
}

func (t *Title) Active() []*Label {
	switch {
	case !t.top.Finished():
		return []*Label{t.top}
	case !t.bottom.Finished():
		return []*Label{t.top, t.bottom}
	case !t.startFade.Finished():
		return []*Label{t.topBlink, t.bottomBlink, t.startFade}
	}
	return []*Label{t.topBlink, t.bottomBlink, t.startBlink}
}

func (t *Title) Update()        { update(t.Active()) }
func (t *Title) Finished() bool { return false }

// LevelStart shows the level number and description, fades them out and
// waits LevelStartDelay ticks.
type LevelStart struct {
	m                       Measure
	scr                     image.Point
	title, subtitle         *Label
	titleFade, subtitleFade *Label
	timer                   int
}

func NewLevelStart(scr image.Point, m Measure) *LevelStart {
	s := &LevelStart{
		m:            m,
		scr:          scr,
		title:        once(NewLabel("", HeadingSize, white, EffectExpose)),
		subtitle:     once(NewLabel("", SubtitleSize, sky, EffectExpose)),
		titleFade:    once(NewLabel("", HeadingSize, white, EffectFade)),
		subtitleFade: once(NewLabel("", SubtitleSize, sky, EffectFade)),
	}
	s.Set(0, "")
	return s
}

// Set changes the level number and description.
func (s *LevelStart) Set(level int, description string) {
	title := fmt.Sprintf("LEVEL %d", level)
	s.title.Text, s.titleFade.Text = title, title
	s.subtitle.Text, s.subtitleFade.Text = description, description
	cx, cy := s.scr.X/2, s.scr.Y/2
	s.title.place(s.m, image.Pt(cx, cy-HeadingSize/2), 0.5, 0.5)
	s.subtitle.place(s.m, image.Pt(cx, cy+HeadingSize/2), 0.5, 0.5)
	s.titleFade.Pos = s.title.Pos
	s.subtitleFade.Pos = s.subtitle.Pos
}

func (s *LevelStart) Restart() {
	s.timer = 0
	restart(s.title, s.subtitle, s.titleFade, s.subtitleFade)
}

func (s *LevelStart) Active() []*Label {
	switch {
	case !s.title.Finished():
		return []*Label{s.title}
	case !s.subtitle.Finished():
		return []*Label{s.title, s.subtitle}
	case !s.titleFade.Finished():
		return []*Label{s.titleFade, s.subtitle}
	}
	return []*Label{s.subtitleFade}
}

func (s *LevelStart) Update() {
	if !s.subtitleFade.Finished() {
		update(s.Active())
		return
	}
	if s.timer < LevelStartDelay {
		s.timer++
	}
}

func (s *LevelStart) Finished() bool { return s.timer >= LevelStartDelay }

// LevelComplete slides the message in, blinks it and slides it out.
type LevelComplete struct {
	in, blink, out *Label
}

func NewLevelComplete(scr image.Point, m Measure) *LevelComplete {
	const text = "LEVEL COMPLETE"
	e := &LevelComplete{
		in:    slide(text, HeadingSize, deepBlue, SlideRight, titleSlideSpeed),
		blink: once(NewLabel(text, HeadingSize, deepBlue, EffectBlink)),
		out:   slide(text, HeadingSize, deepBlue, SlideRight, titleSlideSpeed),
	}
	w := m(text, HeadingSize).X
	e.in.place(m, image.Pt(-w/2, scr.Y/2), 0.5, 0.5)
	e.in.MaxProgress = float64((scr.X + w) / 2)
	e.out.place(m, image.Pt(scr.X/2, scr.Y/2), 0.5, 0.5)
	e.out.MaxProgress = float64((scr.X + w) / 2)
	e.blink.Second = white
	e.blink.Pos = e.out.Pos
	return e
}

func (e *LevelComplete) Restart() { restart(e.in, e.blink, e.out) }

func (e *LevelComplete) Active() []*Label {
	switch {
	case !e.in.Finished():
		return []*Label{e.in}
	case !e.blink.Finished():
		return []*Label{e.blink}
	}
	return []*Label{e.out}
}

func (e *LevelComplete) Update()        { update(e.Active()) }
func (e *LevelComplete) Finished() bool { return e.out.Finished() }

// GameOver drops the message to the centre and blinks it once.
type GameOver struct {
	drop, blink *Label
}

func NewGameOver(scr image.Point, m Measure) *GameOver {
	const text = "GAME OVER"
	g := &GameOver{
		drop:  slide(text, GameOverSize, darkRed, SlideDown, 4),
		blink: once(NewLabel(text, GameOverSize, darkRed, EffectBlink)),
	}
	h := m(text, GameOverSize).Y
	g.drop.place(m, image.Pt(scr.X/2, -h/2), 0.5, 0.5)
	g.drop.MaxProgress = float64((scr.Y + h) / 2)
	g.blink.Second = salmon
	g.blink.Speed = 0.25
	g.blink.place(m, image.Pt(scr.X/2, scr.Y/2), 0.5, 0.5)
	return g
}

func (g *GameOver) Restart() { restart(g.drop, g.blink) }

func (g *GameOver) Active() []*Label {
	if !g.drop.Finished() {
		return []*Label{g.drop}
	}
	return []*Label{g.blink}
}

func (g *GameOver) Update()        { update(g.Active()) }
func (g *GameOver) Finished() bool { return g.blink.Finished() }

var endingText = []string{
	"CONGRATULATIONS!",
	"YOU BEAT THE GAME AND SAVED THE WORLD!",
	"SORRY FOR NO COOL CUTSCENE AS A REWARD.",
	"WE ARE OUT OF BUDGET...",
	"ANYWAY THANK YOU FOR PLAYING!",
}

// Ending exposes the closing lines one by one, then the final score and
// a blinking prompt.
type Ending struct {
	m          Measure
	scr        image.Point
	labels     []*Label
	score      *Label
	startFade  *Label
	startBlink *Label
}

func NewEnding(scr image.Point, m Measure) *Ending {
	e := &Ending{m: m, scr: scr}
	for i, text := range endingText {
		l := once(NewLabel(text, SubtitleSize, white, EffectExpose))
		l.place(m, image.Pt(scr.X/2, SubtitleSize*(i*2+2)), 0.5, 0)
		e.labels = append(e.labels, l)
	}
	e.score = once(NewLabel("", SubtitleSize, sky, EffectExpose))
	e.SetScore(0)

	const prompt = "PRESS ESC FOR QUIT THE GAME OR RETURN FOR START AGAIN!"
	e.startFade = once(NewLabel(prompt, PromptSize, sky, EffectExpose))
	e.startFade.place(m, image.Pt(scr.X/2, scr.Y-PromptSize*2), 0.5, 1)
	e.startBlink = NewLabel(prompt, PromptSize, sky, EffectBlink)
	e.startBlink.Second = black
	e.startBlink.Pos = e.startFade.Pos

	e.labels = append(e.labels, e.score, e.startFade, e.startBlink)
	return e
}

func (e *Ending) SetScore(score int) {
	e.score.Text = "YOUR FINAL SCORE: " + groupThousands(score)
	e.score.place(e.m, image.Pt(e.scr.X/2, SubtitleSize*(len(endingText)*2+4)), 0.5, 0)
}

func (e *Ending) Restart() { restart(e.labels...) }

// Active lists the finished lines and the first unfinished one.
func (e *Ending) Active() []*Label {
	var out []*Label
	for _, l := range e.labels {
		if !l.Finished() {
			out = append(out, l)
			break
		}
		if l != e.startFade {
			out = append(out, l)
		}
	}
	return out
}

func (e *Ending) Update() {
	for _, l := range e.Active() {
		if !l.Finished() {
			l.Update()
		}
	}
}

func (e *Ending) Finished() bool { return false }

func groupThousands(n int) string {
	s := fmt.Sprint(n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
