package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spaceracer/prefabs"
	"github.com/milk9111/spaceracer/race"
	"golang.design/x/clipboard"
)

// debugTools are only built with -debug: C copies the camera and ship
// coordinates, and edits under prefabs/ are applied while the game runs.
type debugTools struct {
	watcher   *prefabs.Watcher
	clipboard bool
}

func newDebugTools() *debugTools {
	d := &debugTools{}
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboard = true
	}
	w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
	if err != nil {
		log.Printf("debug: prefab hot reload disabled: %v", err)
	} else {
		d.watcher = w
	}
	return d
}

func (d *debugTools) Close() {
	if d.watcher != nil {
		_ = d.watcher.Close()
	}
}

func (d *debugTools) Update(g *Game) {
	if d.clipboard && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		clipboard.Write(clipboard.FmtText, []byte(coordinates(g.session)))
	}
	if d.watcher == nil {
		return
	}
	for _, path := range d.watcher.Poll() {
		d.reload(g, path)
	}
	select {
	case err := <-d.watcher.Errors:
		log.Printf("debug: watcher: %v", err)
	default:
	}
}

func coordinates(s *race.Session) string {
	vp, c := s.ViewPoint().Center(), s.Ship().Center()
	return fmt.Sprintf("camera %.1f,%.1f ship %.1f,%.1f", vp.X, vp.Y, c.X, c.Y)
}

// reload applies a changed prefab file. A file that fails to load is
// logged and the running values are kept.
func (d *debugTools) reload(g *Game, path string) {
	name := filepath.Base(path)
	switch {
	case prefabs.IsScriptFile(path):
		g.session.ReloadScript()
	case name == "ship.yaml":
		spec, err := prefabs.LoadShipSpec()
		if err != nil {
			log.Printf("debug: %v", err)
			return
		}
		g.session.SetTuning(race.TuningFromSpec(spec))
	case name == "hud.yaml":
		spec, err := prefabs.LoadHUDSpec()
		if err != nil {
			log.Printf("debug: %v", err)
			return
		}
		g.hud = spec
	default:
		return
	}
	if t, ok := prefabs.ModTime(name); ok {
		log.Printf("debug: reloaded %s (modified %s)", name, t.Format(time.TimeOnly))
	} else {
		log.Printf("debug: reloaded %s", name)
	}
}
