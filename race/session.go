// Package race runs the game: a Session plays the current level tick by
// tick and a Game moves between the title, level and ending screens.
package race

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/assets"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/mask"
	"github.com/milk9111/spaceracer/prefabs"
	"github.com/milk9111/spaceracer/ship"
	"github.com/milk9111/spaceracer/sound"
	"github.com/milk9111/spaceracer/stats"
	"github.com/milk9111/spaceracer/track"
)

var ErrMissingSheet = errors.New("race: missing sprite sheet")

// Outcome is what a playing tick decided.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeFinished
)

type Config struct {
	Bank   *assets.Bank
	Tuning ship.Tuning
	Sounds sound.Player
	Easy   bool
	Seed   uint64
}

// Session owns the world of the level being played.
type Session struct {
	vp         *camera.ViewPoint
	track      *track.Track
	world      *ecs.World
	systems    *ecs.Scheduler
	stars      *system.StarSystem
	asteroids  *system.AsteroidSystem
	explosions *system.ExplosionSystem
	ship       *ship.Ship
	stats      *stats.Stats
	sounds     sound.Player

	level  levels.Level
	events []ecs.Event
}

func New(cfg Config) (*Session, error) {
	if cfg.Bank == nil {
		return nil, errors.New("race: no asset bank")
	}
	if cfg.Tuning == (ship.Tuning{}) {
		cfg.Tuning = ship.DefaultTuning()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))
	vp := camera.New(common.BaseWidth, common.BaseHeight)

	tiles, err := track.NewTileset(cfg.Bank.Tiles())
	if err != nil {
		return nil, fmt.Errorf("race: %w", err)
	}

	s := &Session{
		vp:     vp,
		track:  track.New(vp, tiles),
		world:  ecs.NewWorld(),
		sounds: sound.OrNop(cfg.Sounds),
	}
	s.stats = stats.New(cfg.Easy, s.sounds)
	s.explosions = system.NewExplosionSystem(cfg.Bank.Group(assets.GroupExplosion), rng)
	s.asteroids = system.NewAsteroidSystem(vp,
		cfg.Bank.Group(assets.GroupAsteroid),
		cfg.Bank.Group(assets.GroupSmallAsteroid),
		s.explosions, rng)
	s.stars = system.NewStarSystem(vp, cfg.Bank.Group(assets.GroupStar), rng)

	s.ship, err = newShip(vp, cfg, s, rng)
	if err != nil {
		return nil, err
	}

	s.systems = ecs.NewScheduler(
		s.stars,
		ecs.SystemFunc(func(*ecs.World) { s.track.Update() }),
		s.asteroids,
		ecs.SystemFunc(func(*ecs.World) { s.ship.Update() }),
		system.NewAnimationSystem(),
		s.explosions,
	)
	return s, nil
}

func newShip(vp *camera.ViewPoint, cfg Config, ex ship.Exploder, rng *rand.Rand) (*ship.Ship, error) {
	body, ok := cfg.Bank.First(assets.GroupShip)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, assets.GroupShip)
	}
	beam, ok := cfg.Bank.First(assets.GroupLaser)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, assets.GroupLaser)
	}
	jet, ok := cfg.Bank.First(assets.GroupJet)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, assets.GroupJet)
	}
	return ship.New(vp, ship.Config{
		Size:       body.Size,
		Mask:       firstMask(body),
		Laser:      ship.NewLaser(beam.Frames(), beam.Size, firstMask(beam), cfg.Tuning.LaserCharge),
		JetSize:    jet.Size,
		JetFrames:  jet.Frames(),
		Tuning:     cfg.Tuning,
		Explosions: ex,
		Sounds:     cfg.Sounds,
		Rand:       rng,
	}), nil
}

func firstMask(sh system.Sheet) *mask.Mask {
	if len(sh.Masks) == 0 {
		return mask.New(sh.Size.X, sh.Size.Y)
	}
	return sh.Masks[0]
}

// TuningFromSpec converts the ship prefab to ship tuning.
func TuningFromSpec(spec *prefabs.ShipSpec) ship.Tuning {
	t := ship.DefaultTuning()
	if spec == nil {
		return t
	}
	if spec.Movement > 0 {
		t.Movement = spec.Movement
	}
	if spec.ProgressMax > 0 {
		t.ProgressMax = spec.ProgressMax
	}
	if spec.Explosions > 0 {
		t.Explosions = spec.Explosions
	}
	if spec.BlinkingGap > 0 {
		t.BlinkingGap = spec.BlinkingGap
	}
	if spec.LaserCharge > 0 {
		t.LaserCharge = spec.LaserCharge
	}
	t.LaserOffset = cp.Vector{X: spec.LaserOffset.X, Y: spec.LaserOffset.Y}
	t.JetOffset = cp.Vector{X: spec.JetOffset.X, Y: spec.JetOffset.Y}
	return t
}

func (s *Session) ViewPoint() *camera.ViewPoint { return s.vp }
func (s *Session) Track() *track.Track          { return s.track }
func (s *Session) World() *ecs.World            { return s.world }
func (s *Session) Ship() *ship.Ship             { return s.ship }
func (s *Session) Stats() *stats.Stats          { return s.stats }
func (s *Session) Level() levels.Level          { return s.level }

func (s *Session) Asteroids() *system.AsteroidSystem { return s.asteroids }

// Events returns the events raised during the last Update.
func (s *Session) Events() []ecs.Event { return s.events }

// SpawnExplosion lets the ship start explosions in the world.
func (s *Session) SpawnExplosion(pos cp.Vector, kind int) {
	s.explosions.Spawn(s.world, pos, kind)
}

func (s *Session) SetControls(c ship.Controls) { s.ship.SetControls(c) }

// ShowTitle empties the world and scatters stars over the screen behind the
// title.
func (s *Session) ShowTitle() {
	ecs.Clear(s.world)
	s.world.Events().Drain()
	s.vp.Reset()
	s.vp.SetCenter(cp.Vector{X: 0, Y: float64(s.vp.Height()) / 2})
	s.stars.Respawn(s.world, true)
}

// StartLevel loads lvl and puts the ship on the start line.
func (s *Session) StartLevel(lvl levels.Level) error {
	m, err := lvl.Map()
	if err != nil {
		return err
	}
	s.level = lvl

	ecs.Clear(s.world)
	s.world.Events().Drain()
	s.vp.Reset()
	s.stars.Respawn(s.world, false)
	s.track.SetGrid(m.Grid)

	halfH := float64(s.vp.Height()) / 2
	s.vp.SetLimits(camera.Limits{
		Top:    camera.At(s.track.Height() - halfH),
		Bottom: camera.At(halfH),
	})

	s.asteroids.SetDensity(lvl.Asteroids)
	s.asteroids.Respawn(s.world, s.track, m.Spawns)

	s.ship.SetSpeed(lvl.Speed)
	s.ship.SetAcceleration(lvl.Accel)
	s.ReloadScript()
	s.ship.Reset()
	s.ship.Restore(&cp.Vector{}, true)
	return nil
}

// ReloadScript reloads the speed script of the current level. Levels
// without one, and scripts that fail to load, use the built-in formula.
func (s *Session) ReloadScript() {
	s.ship.SetProfile(nil)
	if s.level.SpeedScript == "" {
		return
	}
	p, err := LoadScriptProfile(s.level.SpeedScript)
	if err != nil {
		log.Printf("race: level %q: %v; using the built-in formula", s.level.Description, err)
		return
	}
	s.ship.SetProfile(p)
}

// SetTuning applies new ship constants to the running ship.
func (s *Session) SetTuning(t ship.Tuning) { s.ship.SetTuning(t) }

// Update advances the camera and every entity by one tick.
func (s *Session) Update() {
	s.vp.Update()
	s.systems.Update(s.world)

	s.events = s.world.Events().Drain()
	for _, e := range s.events {
		if e.Kind == ecs.EventAsteroidExploded {
			s.sounds.Play(sound.Explosion)
		}
	}
}

// Tick is one tick of play: Update followed by the race rules.
func (s *Session) Tick() Outcome {
	s.Update()

	switch {
	case s.stats.GameOver():
		return OutcomeGameOver
	case s.CrossedFinishLine():
		return OutcomeFinished
	case s.ship.Status() == ship.StatusNormal:
		s.checkCollisions()
	case s.ship.Status() == ship.StatusInactive:
		s.restoreShip()
	}
	return OutcomeNone
}

// FinishLine is the world y the ship's top must pass to end the level.
func (s *Session) FinishLine() float64 {
	return s.track.Height() - float64(s.vp.Height())/2
}

func (s *Session) CrossedFinishLine() bool {
	return s.ship.Corner().Y > s.FinishLine()
}

// FinishLevel awards the level bonus and hands the ship to the autopilot.
func (s *Session) FinishLevel() {
	s.stats.AddScore(stats.LevelCompletePoints)
	s.ship.SetAutopilot()
}

func (s *Session) explodeShip(at *cp.Vector) {
	s.stats.LoseLife()
	s.ship.Explode(at)
}

// restoreShip brings the ship back in the middle of the track and clears
// the asteroids around it.
func (s *Session) restoreShip() {
	c := s.ship.Center()
	if b, ok := s.track.BordersAt(c.Y); ok {
		c.X = (b.Left + b.Right) / 2
	}
	if s.ship.Restore(&c, false) {
		s.asteroids.ExplodeNearest(s.world, s.ship.Center())
	}
}

// checkPenalty blows up a ship that left the track.
func (s *Session) checkPenalty() bool {
	b, ok := s.track.BordersAt(s.ship.Center().Y)
	if !ok {
		return false
	}
	left := s.ship.Corner().X
	right := left + float64(s.ship.Size().X)
	if right < b.Left || left > b.Right {
		s.explodeShip(nil)
		return true
	}
	return false
}

func (s *Session) checkCollisions() bool {
	rect := s.ship.ScreenRect()
	if p, ok := s.track.CollideMask(s.ship.Mask(), rect); ok {
		s.explodeShip(&p)
		return true
	}
	if p, ok := s.asteroids.CollideMask(s.world, s.ship.Mask(), rect, true); ok {
		s.explodeShip(&p)
		return true
	}
	if l := s.ship.Laser(); l.Shooting() {
		if _, ok := s.asteroids.CollideMask(s.world, l.Mask(), l.ScreenRect(s.vp), true); ok {
			s.stats.AddScore(stats.AsteroidHitPoints)
		}
	}
	return s.checkPenalty()
}
