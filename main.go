package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceracer/assets"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/prefabs"
	"github.com/milk9111/spaceracer/race"
)

func main() {
	level := flag.Int("level", 1, "level to start new games from (1-based)")
	debug := flag.Bool("debug", false, "enable debug mode: overlay, clipboard and prefab hot reload")
	fullscreen := flag.Bool("fullscreen", false, "run fullscreen")
	easy := flag.Bool("easy", false, "start with extra lives")
	assetDir := flag.String("assets", "", "directory with images and sounds (default $"+assets.EnvDir+")")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	bank, err := assets.Load(assets.Dir(*assetDir))
	if err != nil {
		log.Fatalf("failed to load assets: %v", err)
	}
	if len(bank.Generated) > 0 && bank.Dir() != "" {
		log.Printf("assets: generated placeholders for %v", bank.Generated)
	}

	catalog, err := levels.LoadCatalog()
	if err != nil {
		log.Fatalf("failed to load levels: %v", err)
	}
	shipSpec, err := prefabs.LoadShipSpec()
	if err != nil {
		log.Fatalf("failed to load ship spec: %v", err)
	}
	hudSpec, err := prefabs.LoadHUDSpec()
	if err != nil {
		log.Fatalf("failed to load hud spec: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	sounds := newAudio(bank.Dir(), *seed)

	session, err := race.New(race.Config{
		Bank:   bank,
		Tuning: race.TuningFromSpec(shipSpec),
		Sounds: sounds,
		Easy:   *easy,
		Seed:   *seed,
	})
	if err != nil {
		log.Fatalf("failed to start session: %v", err)
	}

	game, err := NewGame(session, catalog, bank, hudSpec, sounds, *debug)
	if err != nil {
		log.Fatalf("failed to build game: %v", err)
	}
	if err := game.race.SetFirstLevel(*level - 1); err != nil {
		log.Fatalf("bad -level %d: %v", *level, err)
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Space Racer")
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(common.FrameRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	game.Close()
}
