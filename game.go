package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spaceracer/assets"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/ecs/render"
	"github.com/milk9111/spaceracer/hud"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/prefabs"
	"github.com/milk9111/spaceracer/race"
	"github.com/milk9111/spaceracer/ship"
	"golang.org/x/image/colornames"
)

type Game struct {
	race    *race.Game
	session *race.Session
	reg     *render.Registry
	sheets  render.ShipSheets
	text    *textDrawer
	hud     *prefabs.HUDSpec
	pause   *ebitenui.UI
	audio   *audioService
	debug   *debugTools
	quit    bool
}

func NewGame(s *race.Session, c *levels.Catalog, bank *assets.Bank, hudSpec *prefabs.HUDSpec, a *audioService, debug bool) (*Game, error) {
	g := &Game{
		session: s,
		reg:     render.NewRegistry(),
		text:    newTextDrawer(),
		hud:     hudSpec,
		audio:   a,
	}
	g.reg.RegisterBank(bank)
	g.reg.RegisterTiles(s.Track().Tileset())

	sheets, err := render.LoadShipSheets(bank)
	if err != nil {
		return nil, err
	}
	g.sheets = sheets

	g.race = race.NewGame(s, c, g.text.Measure, a)
	g.pause = NewPauseUI(g)
	if debug {
		g.debug = newDebugTools()
	}
	return g, nil
}

// Close stops the debug watcher.
func (g *Game) Close() {
	if g.debug != nil {
		g.debug.Close()
	}
}

func pressedKeys() []race.Key {
	var keys []race.Key
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		keys = append(keys, race.KeyEnter)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		keys = append(keys, race.KeyEscape)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPause) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		keys = append(keys, race.KeyPause)
	}
	return keys
}

func heldControls() ship.Controls {
	return ship.Controls{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Shoot: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// press forwards a key to the screens and records a quit request.
func (g *Game) press(k race.Key) error {
	quit, err := g.race.Press(k)
	if quit {
		g.quit = true
	}
	return err
}

func (g *Game) Update() error {
	for _, k := range pressedKeys() {
		if err := g.press(k); err != nil {
			return err
		}
	}
	if g.race.State() == race.StatePause {
		g.pause.Update()
	}
	if g.quit {
		return ebiten.Termination
	}

	if err := g.race.Update(heldControls()); err != nil {
		return err
	}
	g.audio.Update()
	if g.debug != nil {
		g.debug.Update(g)
	}
	return nil
}

func (g *Game) background() color.Color {
	switch g.race.State() {
	case race.StateLevelStarting:
		return hud.LevelStartBackground
	case race.StateTitle, race.StateEnding:
		return colornames.Black
	}
	return g.session.Level().BackgroundColor()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background())

	vp := g.session.ViewPoint()
	w := g.session.World()
	if g.race.State() == race.StateTitle {
		render.DrawStars(screen, w, vp, g.reg)
	}
	if g.race.ShowsWorld() {
		render.DrawStars(screen, w, vp, g.reg)
		render.DrawTrack(screen, g.session.Track(), g.reg)
		render.DrawAsteroids(screen, w, vp, g.reg)
		render.DrawShip(screen, g.session.Ship(), vp, g.sheets, g.reg)
		render.DrawExplosions(screen, w, vp, g.reg)
		g.drawStats(screen)
	}

	if scr := g.race.Screen(); scr != nil {
		for _, l := range scr.Active() {
			g.text.DrawLabel(screen, l)
		}
	}

	if g.race.State() == race.StatePause {
		g.pause.Draw(screen)
	}
	if g.debug != nil {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

// drawStats puts the score in the top-left corner and the lives in the
// top-right one.
func (g *Game) drawStats(screen *ebiten.Image) {
	size := g.hud.Size
	if size <= 0 {
		size = hud.PromptSize
	}
	var c color.Color = colornames.White
	if g.hud.Color != nil && g.hud.Color.Color != nil {
		c = g.hud.Color.Color
	}
	off := g.hud.TextOffset
	st := g.session.Stats()

	g.text.Draw(screen, st.ScoreText(), size, image.Pt(off, off), c)
	lives := st.LivesText()
	lw := g.text.Measure(lives, size).X
	g.text.Draw(screen, lives, size, image.Pt(common.BaseWidth-off-lw, off), c)
}

func (g *Game) debugText() string {
	sh := g.session.Ship()
	c := sh.Center()
	return fmt.Sprintf("FPS: %.2f  state: %v  level: %d\ncamera: %.0f,%.0f  ship: %.0f,%.0f %v\nC copies coordinates",
		ebiten.ActualFPS(), g.race.State(), g.race.LevelNumber(),
		g.session.ViewPoint().X(), g.session.ViewPoint().Y(), c.X, c.Y, sh.Status())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
