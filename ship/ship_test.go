package ship

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/ecs/system"
	"github.com/milk9111/spaceracer/sound"
)

type spawned struct {
	pos  cp.Vector
	kind int
}

type recorder struct {
	spawns []spawned
}

func (r *recorder) SpawnExplosion(pos cp.Vector, kind int) {
	r.spawns = append(r.spawns, spawned{pos, kind})
}

func (r *recorder) count(kind int) int {
	n := 0
	for _, s := range r.spawns {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func newShip(t *testing.T) (*Ship, *camera.ViewPoint, *recorder, *sound.Recorder) {
	t.Helper()
	vp := camera.New(1024, 768)
	ex := &recorder{}
	snd := &sound.Recorder{}
	s := New(vp, Config{
		Size:       image.Pt(64, 96),
		Laser:      NewLaser(12, image.Pt(24, 640), nil, DefaultLaserCharge),
		JetSize:    image.Pt(16, 32),
		JetFrames:  32,
		Explosions: ex,
		Sounds:     snd,
		Rand:       rand.New(rand.NewPCG(11, 12)),
	})
	return s, vp, ex, snd
}

func TestInitialPlacement(t *testing.T) {
	s, _, _, _ := newShip(t)
	if got := s.Center(); got != (cp.Vector{X: 0, Y: 48}) {
		t.Fatalf("expected centre (0,48), got %v", got)
	}
	if got := s.Laser().Corner(); got != (cp.Vector{X: -8, Y: 672}) {
		t.Fatalf("expected laser corner (-8,672), got %v", got)
	}
	jets := s.Jets()
	if jets[0].Corner != (cp.Vector{X: -56, Y: -2}) || jets[1].Corner != (cp.Vector{X: 40, Y: -2}) {
		t.Fatalf("unexpected jet corners %v %v", jets[0].Corner, jets[1].Corner)
	}
	if s.BB() != (cp.BB{L: -32, B: 0, R: 32, T: 96}) {
		t.Fatalf("unexpected box %v", s.BB())
	}
	if got, want := s.ScreenRect(), image.Rect(480, 672, 544, 768); got != want {
		t.Fatalf("expected screen rect %v, got %v", want, got)
	}
}

func TestUpdateMovesAndTracesCamera(t *testing.T) {
	s, vp, _, _ := newShip(t)
	s.SetSpeed(5)
	s.SetControls(Controls{Right: true, Up: true})
	s.Update()

	if got := s.Corner(); got != (cp.Vector{X: -28, Y: 105}) {
		t.Fatalf("expected corner (-28,105), got %v", got)
	}
	if vp.Speed() != 5 {
		t.Fatalf("expected camera speed 5, got %v", vp.Speed())
	}
	if p, ok := vp.Trace(); !ok || p != s.Center() {
		t.Fatalf("camera should trace the ship centre, got %v %v", p, ok)
	}
}

func TestAccelerationDisablesVerticalControl(t *testing.T) {
	s, _, _, _ := newShip(t)
	s.SetSpeed(5)
	s.SetAcceleration(0.01)
	want := 96 + 5 + 0.01*math.Pow(96, 1.2)
	s.SetControls(Controls{Up: true})
	s.Update()
	if got := s.Corner().Y; math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected y %v, got %v", want, got)
	}
}

func TestDefaultProfile(t *testing.T) {
	cases := []struct {
		name           string
		base, accel, y float64
		want           float64
	}{
		{"no_accel", 6, 0, 1000, 6},
		{"unit_height", 6, 0.5, 1, 6.5},
		{"below_start", 6, 0.5, -100, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := (DefaultProfile{}).Speed(c.base, c.accel, c.y); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	s, _, _, _ := newShip(t)
	s.SetProfile(ProfileFunc(func(base, accel, y float64) float64 { return 42 }))
	if s.FullSpeed() != 42 {
		t.Fatalf("custom profile ignored")
	}
	s.SetProfile(nil)
	if s.FullSpeed() != 0 {
		t.Fatalf("expected default profile back")
	}
}

func TestExplodeSequence(t *testing.T) {
	s, _, ex, snd := newShip(t)
	s.SetSpeed(3)
	hit := cp.Vector{X: 10, Y: 20}
	if !s.Explode(&hit) {
		t.Fatalf("expected explosion to start")
	}
	if s.Explode(nil) {
		t.Fatalf("explosion must not restart")
	}
	if s.Restore(nil, false) {
		t.Fatalf("exploding ship cannot be restored")
	}
	if snd.Count(sound.MultiExplosion) != 1 {
		t.Fatalf("expected one multi explosion sound")
	}
	if ex.count(system.ExplosionSmall) != 1 || ex.spawns[1].pos != hit {
		t.Fatalf("expected small explosion at the hit point, got %v", ex.spawns)
	}

	y := s.Corner().Y
	for range 89 {
		s.Update()
	}
	if s.Status() != StatusExploding {
		t.Fatalf("expected exploding before the last tick, got %v", s.Status())
	}
	s.Update()
	if s.Status() != StatusInactive {
		t.Fatalf("expected inactive, got %v", s.Status())
	}
	if s.Corner().Y != y {
		t.Fatalf("exploding ship must not move")
	}
	if ex.count(system.ExplosionDouble) != 1 {
		t.Fatalf("expected a final double explosion")
	}
	// One at the start, up to two staged ones, the hit and the final one.
	if n := len(ex.spawns); n < 4 || n > 5 {
		t.Fatalf("unexpected number of explosions %d", n)
	}
	if s.Visible() {
		t.Fatalf("inactive ship is hidden")
	}
}

func TestVisible(t *testing.T) {
	cases := []struct {
		status   Status
		progress int
		want     bool
	}{
		{StatusNormal, 0, true},
		{StatusAuto, 7, true},
		{StatusInactive, 0, false},
		{StatusExploding, 0, true},
		{StatusExploding, 15, false},
		{StatusExploding, 20, false},
		{StatusExploding, 21, true},
		{StatusRestoring, 4, true},
		{StatusRestoring, 5, false},
		{StatusRestoring, 10, true},
	}
	s, _, _, _ := newShip(t)
	for _, c := range cases {
		s.status, s.progress = c.status, c.progress
		if got := s.Visible(); got != c.want {
			t.Fatalf("%v at %d: expected %v, got %v", c.status, c.progress, c.want, got)
		}
	}
}

func TestRestore(t *testing.T) {
	s, _, _, _ := newShip(t)
	s.status = StatusInactive
	s.SetControls(Controls{Left: true, Shoot: true})

	c := cp.Vector{X: 100, Y: 200}
	if !s.Restore(&c, true) {
		t.Fatalf("expected restore from inactive")
	}
	if s.Center() != c {
		t.Fatalf("expected centre %v, got %v", c, s.Center())
	}
	if s.Controls() != (Controls{}) {
		t.Fatalf("expected controls reset")
	}
	for range 89 {
		s.Update()
	}
	if s.Status() != StatusRestoring {
		t.Fatalf("expected restoring, got %v", s.Status())
	}
	if s.Explode(nil) {
		t.Fatalf("restoring ship is invulnerable")
	}
	s.Update()
	if s.Status() != StatusNormal {
		t.Fatalf("expected normal, got %v", s.Status())
	}
}

func TestAutopilot(t *testing.T) {
	s, _, _, _ := newShip(t)
	s.SetSpeed(2)
	s.SetAutopilot()
	s.SetControls(Controls{Left: true, Shoot: true})
	s.Update()
	if got := s.Corner(); got != (cp.Vector{X: -32, Y: 98}) {
		t.Fatalf("autopilot should ignore controls, got %v", got)
	}
	if s.Laser().Shooting() {
		t.Fatalf("autopilot must not shoot")
	}
	if s.Explode(nil) {
		t.Fatalf("autopilot ship cannot explode")
	}
	if !s.Restore(nil, false) {
		t.Fatalf("expected restore from autopilot")
	}
}

func TestLaserCharge(t *testing.T) {
	l := NewLaser(12, image.Pt(24, 640), nil, 50)
	if !l.Shoot() {
		t.Fatalf("fresh laser should fire")
	}
	if l.Charge() != 0 || !l.Shooting() {
		t.Fatalf("expected discharged firing laser")
	}
	if l.Shoot() {
		t.Fatalf("firing laser cannot fire again")
	}
	for range 12 {
		l.Update()
	}
	if l.Shooting() || l.Frame() != 11 {
		t.Fatalf("expected the beam to end on its last frame, got frame %d shooting=%v", l.Frame(), l.Shooting())
	}
	for range 49 {
		l.Update()
	}
	if l.Shoot() {
		t.Fatalf("laser fired before full charge (%d)", l.Charge())
	}
	l.Update()
	if !l.Shoot() {
		t.Fatalf("expected laser to fire at full charge")
	}
	if l.Frame() != 0 {
		t.Fatalf("expected the beam to restart from frame 0, got %d", l.Frame())
	}
}

func TestShootPlaysSound(t *testing.T) {
	s, _, _, snd := newShip(t)
	s.SetControls(Controls{Shoot: true})
	s.Update()
	s.Update()
	if got := snd.Count(sound.Laser); got != 1 {
		t.Fatalf("expected one laser sound, got %d", got)
	}
}

func TestSetTuning(t *testing.T) {
	s, _, _, _ := newShip(t)
	tune := DefaultTuning()
	tune.Movement = 10
	s.SetTuning(tune)
	s.SetControls(Controls{Right: true})
	s.Update()
	if got := s.Corner().X; got != -22 {
		t.Fatalf("expected x -22, got %v", got)
	}

	s.SetTuning(Tuning{})
	if s.Tuning() != DefaultTuning() {
		t.Fatalf("zero tuning should fall back to the defaults, got %+v", s.Tuning())
	}
}
