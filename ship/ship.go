// Package ship implements the player's ship: its status machine, movement,
// laser and staged destruction.
package ship

import (
	"fmt"
	"image"
	"math/rand/v2"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs/component"
	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/mask"
	"github.com/milk9111/spaceracer/sound"
)

type Status int

const (
	StatusNormal Status = iota
	StatusInactive
	StatusExploding
	StatusRestoring
	StatusAuto
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusInactive:
		return "inactive"
	case StatusExploding:
		return "exploding"
	case StatusRestoring:
		return "restoring"
	case StatusAuto:
		return "auto"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Controls is the player's input for one tick.
type Controls struct {
	Up, Down, Left, Right bool
	Shoot                 bool
}

// Exploder spawns explosion effects at world positions. Kinds are the
// system.Explosion* constants.
type Exploder interface {
	SpawnExplosion(pos cp.Vector, kind int)
}

// Tuning holds the ship's gameplay constants.
type Tuning struct {
	Movement    float64
	ProgressMax int
	Explosions  int
	BlinkingGap int
	LaserCharge int
	LaserOffset cp.Vector
	JetOffset   cp.Vector
}

func DefaultTuning() Tuning {
	return Tuning{
		Movement:    4,
		ProgressMax: 90,
		Explosions:  3,
		BlinkingGap: 5,
		LaserCharge: DefaultLaserCharge,
		LaserOffset: cp.Vector{X: 4, Y: 64},
		JetOffset:   cp.Vector{X: 48, Y: 2},
	}
}

type Config struct {
	Size      image.Point
	Mask      *mask.Mask
	Laser     *Laser
	JetSize   image.Point
	JetFrames int
	Tuning    Tuning

	Explosions Exploder
	Sounds     sound.Player
	Rand       *rand.Rand
}

// Jet is one exhaust flame under the ship.
type Jet struct {
	Corner cp.Vector
	Anim   component.Animation
}

type Ship struct {
	vp   *camera.ViewPoint
	tune Tuning
	size image.Point
	mask *mask.Mask

	// x, y is the top-left corner in world coordinates.
	x, y    float64
	speed   float64
	accel   float64
	profile SpeedProfile

	controls  Controls
	status    Status
	progress  int
	keyFrames []int

	laser   *Laser
	jets    [2]Jet
	jetSize image.Point

	explosions Exploder
	sounds     sound.Player
	rng        *rand.Rand
}

func New(vp *camera.ViewPoint, cfg Config) *Ship {
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(1, 1))
	}
	if cfg.Laser == nil {
		cfg.Laser = NewLaser(1, image.Point{}, nil, cfg.Tuning.LaserCharge)
	}
	s := &Ship{
		vp:         vp,
		tune:       cfg.Tuning,
		size:       cfg.Size,
		mask:       cfg.Mask,
		x:          -float64(cfg.Size.X) / 2,
		y:          float64(cfg.Size.Y),
		profile:    DefaultProfile{},
		laser:      cfg.Laser,
		jetSize:    cfg.JetSize,
		explosions: cfg.Explosions,
		sounds:     sound.OrNop(cfg.Sounds),
		rng:        cfg.Rand,
	}
	for i := range s.jets {
		s.jets[i].Anim = component.NewAnimation(max(cfg.JetFrames, 1), 1, true, true)
	}
	s.place()
	return s
}

func (s *Ship) SetSpeed(v float64)        { s.speed = v }
func (s *Ship) SetAcceleration(a float64) { s.accel = a }

// SetProfile replaces the speed formula; nil restores the default.
func (s *Ship) SetProfile(p SpeedProfile) {
	if p == nil {
		p = DefaultProfile{}
	}
	s.profile = p
}

func (s *Ship) Profile() SpeedProfile { return s.profile }

// SetTuning swaps the gameplay constants. The laser keeps its charge size.
func (s *Ship) SetTuning(t Tuning) {
	if t == (Tuning{}) {
		t = DefaultTuning()
	}
	s.tune = t
	s.place()
}

func (s *Ship) Tuning() Tuning { return s.tune }

func (s *Ship) SetControls(c Controls) { s.controls = c }
func (s *Ship) Controls() Controls     { return s.controls }

func (s *Ship) Status() Status       { return s.status }
func (s *Ship) Progress() int        { return s.progress }
func (s *Ship) Laser() *Laser        { return s.laser }
func (s *Ship) Mask() *mask.Mask     { return s.mask }
func (s *Ship) Size() image.Point    { return s.size }
func (s *Ship) Jets() [2]Jet         { return s.jets }
func (s *Ship) JetSize() image.Point { return s.jetSize }

// Corner is the world position of the top-left corner.
func (s *Ship) Corner() cp.Vector { return cp.Vector{X: s.x, Y: s.y} }

func (s *Ship) Center() cp.Vector {
	return cp.Vector{X: s.x + float64(s.size.X)/2, Y: s.y - float64(s.size.Y)/2}
}

// BB is the ship's world box.
func (s *Ship) BB() cp.BB {
	return cp.BB{L: s.x, B: s.y - float64(s.size.Y), R: s.x + float64(s.size.X), T: s.y}
}

func (s *Ship) SetCenter(c cp.Vector) {
	s.x = c.X - float64(s.size.X)/2
	s.y = c.Y + float64(s.size.Y)/2
	s.place()
}

func (s *Ship) ScreenRect() image.Rectangle {
	return s.vp.RectToScreen(s.BB())
}

// FullSpeed is the current climb per tick.
func (s *Ship) FullSpeed() float64 {
	return s.profile.Speed(s.speed, s.accel, s.y)
}

// Update advances the ship by one tick and points the camera at it.
func (s *Ship) Update() {
	full := s.FullSpeed()

	switch s.status {
	case StatusNormal, StatusRestoring, StatusAuto:
		s.y += full
	}

	if s.status == StatusNormal && s.controls.Shoot && s.laser.Shoot() {
		s.sounds.Play(sound.Laser)
	}

	if s.status == StatusNormal || s.status == StatusRestoring {
		if s.controls.Left {
			s.x -= s.tune.Movement
		}
		if s.controls.Right {
			s.x += s.tune.Movement
		}
		// Vertical control only on levels without acceleration.
		if s.accel == 0 {
			if s.controls.Up {
				s.y += s.tune.Movement
			}
			if s.controls.Down {
				s.y -= s.tune.Movement
			}
		}
	}

	switch s.status {
	case StatusExploding:
		s.progress++
		if slices.Contains(s.keyFrames, s.progress) {
			s.addExplosion(nil, system.ExplosionRandom)
		}
		if s.progress >= s.tune.ProgressMax {
			c := s.ScreenRect()
			center := c.Min.Add(c.Size().Div(2))
			s.addExplosion(&center, system.ExplosionDouble)
			s.resetProgress()
			s.status = StatusInactive
		}
	case StatusRestoring:
		s.progress++
		if s.progress >= s.tune.ProgressMax {
			s.resetProgress()
			s.status = StatusNormal
		}
	}

	s.vp.SetSpeed(full)
	s.vp.SetTrace(s.Center())
	s.place()
	s.laser.Update()
	for i := range s.jets {
		system.Advance(&s.jets[i].Anim)
	}
}

// Visible drives the blinking while the ship explodes or restores.
func (s *Ship) Visible() bool {
	switch s.status {
	case StatusInactive:
		return false
	case StatusExploding:
		return s.progress%(s.progress/10+1) == 0
	case StatusRestoring:
		gap := max(s.tune.BlinkingGap, 1)
		return (s.progress/gap)%2 == 0
	}
	return true
}

// Explode starts the staged destruction. It only works on a ship under
// player control. at is the world point of the fatal collision, if any.
func (s *Ship) Explode(at *cp.Vector) bool {
	if s.status != StatusNormal {
		return false
	}
	s.sounds.Play(sound.MultiExplosion)
	s.status = StatusExploding
	s.resetProgress()
	s.addExplosion(nil, system.ExplosionRandom)
	if at != nil && s.explosions != nil {
		s.explosions.SpawnExplosion(*at, system.ExplosionSmall)
	}
	for range s.tune.Explosions - 1 {
		s.keyFrames = append(s.keyFrames, 1+s.rng.IntN(max(s.tune.ProgressMax-1, 1)))
	}
	return true
}

// Reset drops any running sequence and leaves the ship inactive and ready
// for Restore.
func (s *Ship) Reset() {
	s.status = StatusInactive
	s.controls = Controls{}
	s.resetProgress()
}

// SetAutopilot takes control away from the player until Restore.
func (s *Ship) SetAutopilot() { s.status = StatusAuto }

// Restore starts the blinking invulnerable phase, optionally moving the
// ship to center and dropping held controls.
func (s *Ship) Restore(center *cp.Vector, resetControls bool) bool {
	switch s.status {
	case StatusNormal, StatusInactive, StatusAuto:
	default:
		return false
	}
	s.status = StatusRestoring
	s.resetProgress()
	if resetControls {
		s.controls = Controls{}
	}
	if center != nil {
		s.SetCenter(*center)
	}
	return true
}

func (s *Ship) resetProgress() {
	s.progress = 0
	s.keyFrames = s.keyFrames[:0]
}

// addExplosion spawns an explosion at the screen point p, or at a random
// point of the ship when p is nil.
func (s *Ship) addExplosion(p *image.Point, kind int) {
	if s.explosions == nil {
		return
	}
	at := image.Point{}
	if p != nil {
		at = *p
	} else {
		r := s.ScreenRect()
		at = image.Pt(r.Min.X+s.rng.IntN(r.Dx()+1), r.Min.Y+s.rng.IntN(r.Dy()+1))
	}
	s.explosions.SpawnExplosion(s.vp.ToWorld(at), kind)
}

// place moves the laser and the jets along with the ship.
func (s *Ship) place() {
	w, h := float64(s.size.X), float64(s.size.Y)
	s.laser.SetOrigin(s.x+w/2+s.tune.LaserOffset.X, s.y-s.tune.LaserOffset.Y)

	bottom := s.y - h
	cx := s.x + (w-float64(s.jetSize.X))/2
	s.jets[0].Corner = cp.Vector{X: cx - s.tune.JetOffset.X, Y: bottom - s.tune.JetOffset.Y}
	s.jets[1].Corner = cp.Vector{X: cx + s.tune.JetOffset.X, Y: bottom - s.tune.JetOffset.Y}
}
