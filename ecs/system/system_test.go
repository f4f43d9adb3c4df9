package system

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/component"
	"github.com/milk9111/spaceracer/levels"
	"github.com/milk9111/spaceracer/mask"
)

func solidSheet(name string, cols, rows, size int) Sheet {
	sh := Sheet{Name: name, Cols: cols, Rows: rows, Size: image.Pt(size, size)}
	for range cols * rows {
		m := mask.New(size, size)
		m.Fill()
		sh.Masks = append(sh.Masks, m)
	}
	return sh
}

func explosionSheets() []Sheet {
	return []Sheet{
		solidSheet("explosion_small", 8, 8, 48),
		solidSheet("explosion_blast", 8, 8, 96),
		solidSheet("explosion_big", 8, 8, 128),
		solidSheet("explosion_double", 8, 8, 128),
	}
}

type fakeTrack struct {
	tiles  []image.Point
	height float64
}

func (f fakeTrack) InnerTiles() []image.Point { return f.tiles }
func (f fakeTrack) Height() float64           { return f.height }

func newAsteroids(vp *camera.ViewPoint) (*AsteroidSystem, *ExplosionSystem) {
	rng := rand.New(rand.NewPCG(1, 2))
	ex := NewExplosionSystem(explosionSheets(), rng)
	full := []Sheet{solidSheet("asteroid_00", 4, 4, 96)}
	small := []Sheet{solidSheet("small_asteroid_00", 4, 4, 56)}
	return NewAsteroidSystem(vp, full, small, ex, rng), ex
}

func countEvents(evts []ecs.Event, kind ecs.EventKind) int {
	n := 0
	for _, e := range evts {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestAdvance(t *testing.T) {
	cases := []struct {
		name  string
		anim  component.Animation
		ticks int
		frame int
		stop  bool
	}{
		{"step", component.Animation{Frames: 4, Speed: 1}, 2, 2, false},
		{"fraction", component.Animation{Frames: 4, Speed: 0.25}, 3, 0, false},
		{"fraction_full", component.Animation{Frames: 4, Speed: 0.25}, 4, 1, false},
		{"wrap", component.Animation{Frame: 3, Frames: 4, Speed: 1, Repeat: true}, 1, 0, false},
		{"wrap_reverse", component.Animation{Frames: 4, Speed: 1, Repeat: true, Reverse: true}, 1, 3, false},
		{"stop_at_end", component.Animation{Frame: 3, Frames: 4, Speed: 1}, 1, 3, true},
		{"stop_at_start", component.Animation{Frames: 4, Speed: 1, Reverse: true}, 1, 0, true},
		{"stopped_stays", component.Animation{Frame: 1, Frames: 4, Speed: 1, Stopped: true}, 5, 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := c.anim
			for range c.ticks {
				Advance(&a)
			}
			if a.Frame != c.frame || a.Stopped != c.stop {
				t.Fatalf("expected frame %d stopped=%v, got %d stopped=%v", c.frame, c.stop, a.Frame, a.Stopped)
			}
		})
	}
}

func TestExplosionRunsOnceAndIsRemoved(t *testing.T) {
	w := ecs.NewWorld()
	ex := NewExplosionSystem(explosionSheets(), rand.New(rand.NewPCG(1, 1)))
	anims := NewAnimationSystem()

	e := ex.Spawn(w, cp.Vector{X: 10, Y: 20}, ExplosionBig)
	for range 63 {
		anims.Update(w)
		ex.Update(w)
	}
	if !ecs.IsAlive(w, e) {
		t.Fatalf("explosion removed before its last frame")
	}
	anims.Update(w)
	ex.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected finished explosion to be removed")
	}
}

func TestRandomExplosionKind(t *testing.T) {
	w := ecs.NewWorld()
	ex := NewExplosionSystem(explosionSheets(), rand.New(rand.NewPCG(5, 6)))
	seen := map[int]bool{}
	for range 100 {
		e := ex.Spawn(w, cp.Vector{}, ExplosionRandom)
		k, _ := ecs.Get(w, e, component.ExplosionComponent.Kind())
		if k.Kind < ExplosionBlast || k.Kind > ExplosionDouble {
			t.Fatalf("random kind %d out of range", k.Kind)
		}
		seen[k.Kind] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three large kinds, got %v", seen)
	}
	ex.Clear(w)
	if ecs.Len(w, component.ExplosionComponent.Kind()) != 0 {
		t.Fatalf("expected Clear to remove explosions")
	}
}

func TestPrepareSpawns(t *testing.T) {
	var tiles []image.Point
	for y := range 60 {
		for x := -2; x <= 2; x++ {
			tiles = append(tiles, image.Pt(x, y))
		}
	}
	height := levels.TileToWorld(60)
	rng := rand.New(rand.NewPCG(7, 8))

	if got := SpawnCount(height, 768, 1); got != 7 {
		t.Fatalf("expected 7 spawns, got %d", got)
	}
	if got := PrepareSpawns(tiles, height, 768, 0, rng); len(got) != 0 {
		t.Fatalf("expected no spawns at zero density, got %d", len(got))
	}

	got := PrepareSpawns(tiles, height, 768, 1, rng)
	if len(got) != 7 {
		t.Fatalf("expected 7 spawns, got %d", len(got))
	}

	all := PrepareSpawns(tiles, height, 768, 100, rng)
	if len(all) != 245 {
		t.Fatalf("expected spawns capped at 245 free cells, got %d", len(all))
	}
	seen := map[cp.Vector]bool{}
	for _, p := range all {
		if seen[p] {
			t.Fatalf("cell %v used twice", p)
		}
		seen[p] = true
		if y := p.Y - common.CellSize/2; y < 768 || y > height-768 {
			t.Fatalf("spawn %v in the first or last screen", p)
		}
		if int(p.X-common.CellSize/2)%common.CellSize != 0 {
			t.Fatalf("spawn %v not centred in its cell", p)
		}
	}
}

func TestAsteroidReleaseAndCull(t *testing.T) {
	vp := camera.New(1024, 768)
	w := ecs.NewWorld()
	as, _ := newAsteroids(vp)
	as.Respawn(w, fakeTrack{height: 7680}, []cp.Vector{{X: 0, Y: 500}, {X: 0, Y: 600}, {X: 0, Y: 5000}})

	as.Update(w)
	if n := ecs.Len(w, component.AsteroidComponent.Kind()); n != 1 {
		t.Fatalf("expected one asteroid per tick, got %d", n)
	}
	as.Update(w)
	as.Update(w)
	if n := ecs.Len(w, component.AsteroidComponent.Kind()); n != 2 {
		t.Fatalf("expected far spawn to wait, got %d asteroids", n)
	}
	if len(as.Pending()) != 1 {
		t.Fatalf("expected one pending spawn, got %d", len(as.Pending()))
	}

	vp.SetCenter(cp.Vector{X: 0, Y: 2000})
	as.Update(w)
	if n := ecs.Len(w, component.AsteroidComponent.Kind()); n != 1 {
		t.Fatalf("expected asteroids behind the camera to be culled, got %d", n)
	}
	if len(as.Pending()) != 0 {
		t.Fatalf("expected far spawn released")
	}
}

func TestAsteroidCollideAndExplode(t *testing.T) {
	vp := camera.New(1024, 768)
	w := ecs.NewWorld()
	as, _ := newAsteroids(vp)
	e := as.Add(w, cp.Vector{X: 0, Y: 384}, AsteroidFull)
	w.Events().Drain()

	probe := mask.New(8, 8)
	probe.Fill()
	rect := image.Rect(508, 380, 516, 388)

	p, ok := as.CollideMask(w, probe, image.Rect(0, 0, 8, 8), false)
	if ok {
		t.Fatalf("unexpected collision at %v", p)
	}

	p, ok = as.CollideMask(w, probe, rect, true)
	if !ok {
		t.Fatalf("expected collision")
	}
	if want := (cp.Vector{X: -4, Y: 388}); p != want {
		t.Fatalf("expected hit at %v, got %v", want, p)
	}

	evts := w.Events().Drain()
	if got := countEvents(evts, ecs.EventExplosion); got != 3 {
		t.Fatalf("expected 3 explosions, got %d", got)
	}
	if got := countEvents(evts, ecs.EventAsteroidExploded); got != 1 {
		t.Fatalf("expected one exploded asteroid event, got %d", got)
	}

	if _, ok := as.CollideMask(w, probe, rect, true); ok {
		t.Fatalf("exploding asteroid must not collide")
	}
	if as.Explode(w, e, nil) {
		t.Fatalf("asteroid exploded twice")
	}
	as.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected exploded asteroid removed on update")
	}
}

func TestExplodeNearestAndAll(t *testing.T) {
	vp := camera.New(1024, 768)
	w := ecs.NewWorld()
	as, _ := newAsteroids(vp)
	as.Add(w, cp.Vector{X: 0, Y: 1000}, AsteroidAny)
	as.Add(w, cp.Vector{X: 100, Y: 1000}, AsteroidSmall)
	as.Add(w, cp.Vector{X: 0, Y: 1300}, AsteroidFull)
	w.Events().Drain()

	if n := as.ExplodeNearest(w, cp.Vector{X: 0, Y: 1000}); n != 2 {
		t.Fatalf("expected 2 asteroids in range, got %d", n)
	}
	if got := countEvents(w.Events().Drain(), ecs.EventExplosion); got != 2 {
		t.Fatalf("expected one double explosion per asteroid, got %d", got)
	}
	if n := as.ExplodeAll(w); n != 1 {
		t.Fatalf("expected the remaining asteroid to explode, got %d", n)
	}
}

func TestStarScreenRect(t *testing.T) {
	vp := camera.New(1024, 768)
	got := StarScreenRect(vp, cp.Vector{X: 488, Y: 384}, 2, image.Pt(24, 24))
	if want := image.Rect(500, 192, 524, 216); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStarField(t *testing.T) {
	vp := camera.New(1024, 768)
	w := ecs.NewWorld()
	sheets := []Sheet{solidSheet("stars_00", 6, 5, 24), solidSheet("stars_01", 6, 5, 24)}
	st := NewStarSystem(vp, sheets, rand.New(rand.NewPCG(9, 10)))

	e := st.Add(w, image.Pt(512, 384), 1)
	tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if r := StarScreenRect(vp, tf.Pos, 1, image.Pt(24, 24)); r.Min != image.Pt(500, 372) {
		t.Fatalf("expected star centred on the screen, got %v", r)
	}

	st.Respawn(w, true)
	if n := ecs.Len(w, component.StarComponent.Kind()); n != StarLimit {
		t.Fatalf("expected %d stars, got %d", StarLimit, n)
	}
	ecs.ForEach(w, component.StarComponent.Kind(), func(_ ecs.Entity, s *component.Star) {
		if s.Z < StarMinDepth || s.Z > StarMaxDepth {
			t.Fatalf("depth %v out of range", s.Z)
		}
	})
	st.Update(w)
	if n := ecs.Len(w, component.StarComponent.Kind()); n != StarLimit {
		t.Fatalf("visible stars should survive, got %d", n)
	}

	// Moving far ahead leaves every star below the screen.
	vp.SetCenter(cp.Vector{X: 0, Y: 100384})
	st.Update(w)
	if n := ecs.Len(w, component.StarComponent.Kind()); n != 0 {
		t.Fatalf("expected all stars culled, got %d", n)
	}
	st.Update(w)
	if n := ecs.Len(w, component.StarComponent.Kind()); n != StarLimit {
		t.Fatalf("expected field topped up to %d, got %d", StarLimit, n)
	}
}
