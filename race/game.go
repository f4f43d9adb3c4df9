package race

import (
	"fmt"
	"image"

	"github.com/milk9111/spaceracer/hud"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/ship"
	"github.com/milk9111/spaceracer/sound"
)

type State int

const (
	StateTitle State = iota
	StatePause
	StateLevelStarting
	StateLevelPlaying
	StateLevelFinishing
	StateGameOver
	StateEnding
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePause:
		return "pause"
	case StateLevelStarting:
		return "level_starting"
	case StateLevelPlaying:
		return "level_playing"
	case StateLevelFinishing:
		return "level_finishing"
	case StateGameOver:
		return "game_over"
	case StateEnding:
		return "ending"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Key is a key press the screens react to.
type Key int

const (
	KeyEnter Key = iota
	KeyEscape
	KeyPause
)

// Game moves between the screens and drives the session while a level is
// on.
type Game struct {
	session *Session
	catalog *levels.Catalog
	music   sound.Music

	state State
	level int
	first int

	title      *hud.Title
	levelStart *hud.LevelStart
	complete   *hud.LevelComplete
	gameOver   *hud.GameOver
	ending     *hud.Ending
}

func NewGame(s *Session, c *levels.Catalog, m hud.Measure, music sound.Music) *Game {
	if music == nil {
		music = sound.NopMusic{}
	}
	scr := image.Pt(s.vp.Width(), s.vp.Height())
	g := &Game{
		session:    s,
		catalog:    c,
		music:      music,
		title:      hud.NewTitle(scr, m),
		levelStart: hud.NewLevelStart(scr, m),
		complete:   hud.NewLevelComplete(scr, m),
		gameOver:   hud.NewGameOver(scr, m),
		ending:     hud.NewEnding(scr, m),
	}
	g.initTitle()
	return g
}

// SetFirstLevel makes new games start at the zero-based level i.
func (g *Game) SetFirstLevel(i int) error {
	if _, err := g.catalog.Level(i); err != nil {
		return err
	}
	g.first = i
	g.level = i
	return nil
}

func (g *Game) State() State             { return g.state }
func (g *Game) Session() *Session        { return g.session }
func (g *Game) LevelIndex() int          { return g.level }
func (g *Game) LevelNumber() int         { return g.level + 1 }
func (g *Game) LastLevel() bool          { return g.level >= g.catalog.Len()-1 }
func (g *Game) Catalog() *levels.Catalog { return g.catalog }

// Screen returns the text overlay of the current state, if any.
func (g *Game) Screen() hud.Screen {
	switch g.state {
	case StateTitle:
		return g.title
	case StateLevelStarting:
		return g.levelStart
	case StateLevelFinishing:
		return g.complete
	case StateGameOver:
		return g.gameOver
	case StateEnding:
		return g.ending
	}
	return nil
}

// ShowsWorld reports whether the level is drawn in the current state.
func (g *Game) ShowsWorld() bool {
	switch g.state {
	case StateLevelPlaying, StateLevelFinishing, StateGameOver, StatePause:
		return true
	}
	return false
}

func (g *Game) initTitle() {
	g.state = StateTitle
	g.session.Stats().Reset()
	g.level = g.first
	g.title.Restart()
	g.session.ShowTitle()
	g.music.PlayMusic(sound.TitleMusic)
}

func (g *Game) initLevelStarting() error {
	lvl, err := g.catalog.Level(g.level)
	if err != nil {
		return err
	}
	g.state = StateLevelStarting
	g.levelStart.Set(g.LevelNumber(), lvl.Description)
	g.levelStart.Restart()
	return nil
}

func (g *Game) initLevelPlaying() error {
	lvl, err := g.catalog.Level(g.level)
	if err != nil {
		return err
	}
	if err := g.session.StartLevel(lvl); err != nil {
		return err
	}
	g.state = StateLevelPlaying
	g.music.PlayMusic(lvl.Music)
	return nil
}

func (g *Game) initLevelFinishing() {
	g.state = StateLevelFinishing
	g.session.FinishLevel()
	g.complete.Restart()
	g.music.FadeOutMusic()
}

func (g *Game) initGameOver() {
	g.state = StateGameOver
	g.gameOver.Restart()
	g.music.FadeOutMusic()
}

func (g *Game) initEnding() {
	g.state = StateEnding
	g.ending.SetScore(g.session.Stats().Score())
	g.ending.Restart()
	g.music.PlayMusic(sound.EndingMusic)
}

func (g *Game) initPause() {
	g.state = StatePause
	g.music.PauseMusic()
}

// Press handles a key going down. It reports whether the player asked to
// quit.
func (g *Game) Press(k Key) (quit bool, err error) {
	switch g.state {
	case StateTitle:
		switch k {
		case KeyEscape:
			return true, nil
		case KeyEnter:
			g.music.FadeOutMusic()
			return false, g.initLevelStarting()
		}
	case StatePause:
		switch k {
		case KeyEscape, KeyPause:
			g.state = StateLevelPlaying
			g.music.ResumeMusic()
		case KeyEnter:
			return true, nil
		}
	case StateLevelPlaying:
		if k == KeyEscape || k == KeyPause {
			g.initPause()
		}
	case StateEnding:
		switch k {
		case KeyEscape:
			return true, nil
		case KeyEnter:
			g.initTitle()
		}
	}
	return false, nil
}

// Update advances the current screen by one tick. controls are the ship
// keys held down.
func (g *Game) Update(controls ship.Controls) error {
	switch g.state {
	case StateTitle:
		g.title.Update()

	case StateLevelStarting:
		g.levelStart.Update()
		if g.levelStart.Finished() {
			return g.initLevelPlaying()
		}

	case StateLevelPlaying:
		g.session.SetControls(controls)
		switch g.session.Tick() {
		case OutcomeGameOver:
			g.initGameOver()
		case OutcomeFinished:
			g.initLevelFinishing()
		}

	case StateLevelFinishing:
		g.session.Update()
		g.complete.Update()
		if g.complete.Finished() {
			if g.LastLevel() {
				g.initEnding()
				return nil
			}
			g.level++
			return g.initLevelStarting()
		}

	case StateGameOver:
		g.session.Update()
		g.gameOver.Update()
		if g.gameOver.Finished() {
			g.initTitle()
		}

	case StateEnding:
		g.ending.Update()
	}
	return nil
}
