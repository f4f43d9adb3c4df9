package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/ecs"
	"github.com/milk9111/spaceracer/ecs/component"
)

// Explosion kinds, indexing the sheets given to NewExplosionSystem.
const (
	ExplosionRandom = -1
	ExplosionSmall  = 0
	ExplosionBlast  = 1
	ExplosionBig    = 2
	ExplosionDouble = 3
)

type ExplosionSystem struct {
	sheets []Sheet
	rng    *rand.Rand
}

func NewExplosionSystem(sheets []Sheet, rng *rand.Rand) *ExplosionSystem {
	return &ExplosionSystem{sheets: sheets, rng: rng}
}

// Spawn starts an explosion centred on pos. ExplosionRandom picks any kind
// but the small one.
func (s *ExplosionSystem) Spawn(w *ecs.World, pos cp.Vector, kind int) ecs.Entity {
	if len(s.sheets) == 0 {
		return 0
	}
	if kind < 0 || kind >= len(s.sheets) {
		lo := min(ExplosionBlast, len(s.sheets)-1)
		kind = lo + s.rng.IntN(len(s.sheets)-lo)
	}
	sh := s.sheets[kind]

	e := ecs.CreateEntity(w)
	anim := component.NewAnimation(sh.Frames(), 1, false, false)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sh.Sprite())
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
	_ = ecs.Add(w, e, component.ExplosionComponent.Kind(), &component.Explosion{Kind: kind})
	w.Events().Push(ecs.Event{Kind: ecs.EventExplosion, Entity: e, Pos: pos})
	return e
}

// Update removes finished explosions.
func (s *ExplosionSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ExplosionComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, _ *component.Explosion, anim *component.Animation) {
		if anim.Stopped {
			ecs.DestroyEntity(w, e)
		}
	})
}

// Clear removes every explosion.
func (s *ExplosionSystem) Clear(w *ecs.World) {
	ecs.ForEach(w, component.ExplosionComponent.Kind(), func(e ecs.Entity, _ *component.Explosion) {
		ecs.DestroyEntity(w, e)
	})
}
