package system

import (
	"image"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/camera"
	"github.com/milk9111/spaceracer/common"
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/component"
	"github.com/milk9111/spaceracer/mask"
)

const (
	AsteroidAnimationSpeed = 0.1
	// ExplodeRadius is the reach of ExplodeNearest.
	ExplodeRadius = 2 * common.CellSize
)

type AsteroidSize int

const (
	AsteroidAny AsteroidSize = iota
	AsteroidFull
	AsteroidSmall
)

// TrackGeometry is the part of the track the spawn policy needs.
type TrackGeometry interface {
	InnerTiles() []image.Point
	Height() float64
}

// AsteroidSystem spawns asteroids as the camera approaches their spawn
// points, culls the ones left behind and answers collision queries.
type AsteroidSystem struct {
	vp         *camera.ViewPoint
	full       []Sheet
	small      []Sheet
	explosions *ExplosionSystem
	rng        *rand.Rand

	density float64
	pending []cp.Vector
}

func NewAsteroidSystem(vp *camera.ViewPoint, full, small []Sheet, explosions *ExplosionSystem, rng *rand.Rand) *AsteroidSystem {
	return &AsteroidSystem{vp: vp, full: full, small: small, explosions: explosions, rng: rng}
}

// SetDensity sets the random spawn density; 1 means one asteroid per screen
// on average.
func (s *AsteroidSystem) SetDensity(d float64) { s.density = max(d, 0) }

func (s *AsteroidSystem) Density() float64 { return s.density }

// Pending returns the spawn points not yet released.
func (s *AsteroidSystem) Pending() []cp.Vector { return s.pending }

// Respawn removes all asteroids and queues random spawns for the track
// followed by extra.
func (s *AsteroidSystem) Respawn(w *ecs.World, track TrackGeometry, extra []cp.Vector) {
	ecs.ForEach(w, component.AsteroidComponent.Kind(), func(e ecs.Entity, _ *component.Asteroid) {
		ecs.DestroyEntity(w, e)
	})
	screenH := float64(s.vp.Height())
	s.pending = PrepareSpawns(track.InnerTiles(), track.Height(), screenH, s.density, s.rng)
	s.pending = append(s.pending, extra...)
}

// Add creates an asteroid centred on c with a random look.
func (s *AsteroidSystem) Add(w *ecs.World, c cp.Vector, size AsteroidSize) ecs.Entity {
	var sheets []Sheet
	small := false
	switch size {
	case AsteroidFull:
		sheets = s.full
	case AsteroidSmall:
		sheets, small = s.small, true
	default:
		i := s.rng.IntN(len(s.full) + len(s.small))
		if i >= len(s.full) {
			sheets, small = s.small, true
		} else {
			sheets = s.full
		}
	}
	if len(sheets) == 0 {
		return 0
	}
	variant := s.rng.IntN(len(sheets))
	sh := sheets[variant]
	reverse := s.rng.IntN(2) == 0

	e := ecs.CreateEntity(w)
	anim := component.NewAnimation(sh.Frames(), AsteroidAnimationSpeed, true, reverse)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: c})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sh.Sprite())
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Masks: sh.Masks})
	_ = ecs.Add(w, e, component.AsteroidComponent.Kind(), &component.Asteroid{Variant: variant, Small: small})
	w.Events().Push(ecs.Event{Kind: ecs.EventAsteroidSpawned, Entity: e, Pos: c})
	return e
}

// Update releases at most one pending spawn lying below the top of the next
// screen and removes exploded asteroids and those a screen behind the
// camera.
func (s *AsteroidSystem) Update(w *ecs.World) {
	screenH := float64(s.vp.Height())
	for i, p := range s.pending {
		if p.Y < s.vp.Y()+screenH {
			s.Add(w, p, AsteroidAny)
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}

	ecs.ForEach2(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Asteroid, tf *component.Transform) {
		if a.State != component.AsteroidAlive || tf.Pos.Y < s.vp.Y()-screenH {
			ecs.DestroyEntity(w, e)
		}
	})
}

// CollideMask tests m placed at rect on screen against every live asteroid
// and returns the first hit in world coordinates. With explode set the hit
// asteroid is blown up.
func (s *AsteroidSystem) CollideMask(w *ecs.World, m *mask.Mask, rect image.Rectangle, explode bool) (cp.Vector, bool) {
	var (
		hit   ecs.Entity
		point cp.Vector
		found bool
	)
	ecs.ForEach4(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), component.AnimationComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, a *component.Asteroid, tf *component.Transform, anim *component.Animation, col *component.Collider) {
			if found || a.State != component.AsteroidAlive {
				return
			}
			sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !ok {
				return
			}
			ar := SpriteRect(s.vp, tf.Pos, sp.Size)
			if !ar.Overlaps(rect) {
				return
			}
			p, ok := col.Mask(anim.Frame).Overlap(m, rect.Min.Sub(ar.Min))
			if !ok {
				return
			}
			hit, point, found = e, s.vp.ToWorld(p.Add(ar.Min)), true
		})
	if found && explode {
		s.Explode(w, hit, &point)
	}
	return point, found
}

// Explode blows up a live asteroid. With a collision point it adds a small
// explosion there and a random one over the asteroid; a double explosion
// always marks the centre.
func (s *AsteroidSystem) Explode(w *ecs.World, e ecs.Entity, at *cp.Vector) bool {
	a, ok := ecs.Get(w, e, component.AsteroidComponent.Kind())
	if !ok || a.State != component.AsteroidAlive {
		return false
	}
	tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	sp, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	a.State = component.AsteroidExploding
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Stopped = true
	}

	if s.explosions != nil {
		if at != nil {
			s.explosions.Spawn(w, *at, ExplosionSmall)
			half := cp.Vector{X: float64(sp.Size.X) / 2, Y: float64(sp.Size.Y) / 2}
			r := cp.Vector{
				X: tf.Pos.X - half.X + s.rng.Float64()*2*half.X,
				Y: tf.Pos.Y - half.Y + s.rng.Float64()*2*half.Y,
			}
			s.explosions.Spawn(w, r, ExplosionRandom)
		}
		s.explosions.Spawn(w, tf.Pos, ExplosionDouble)
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventAsteroidExploded, Entity: e, Pos: tf.Pos})
	return true
}

// ExplodeAll blows up every live asteroid.
func (s *AsteroidSystem) ExplodeAll(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.AsteroidComponent.Kind(), func(e ecs.Entity, _ *component.Asteroid) {
		if s.Explode(w, e, nil) {
			n++
		}
	})
	return n
}

// ExplodeNearest blows up the live asteroids closer than ExplodeRadius to p.
func (s *AsteroidSystem) ExplodeNearest(w *ecs.World, p cp.Vector) int {
	n := 0
	ecs.ForEach2(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Asteroid, tf *component.Transform) {
		if tf.Pos.Distance(p) < ExplodeRadius && s.Explode(w, e, nil) {
			n++
		}
	})
	return n
}
