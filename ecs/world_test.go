package ecs

import (
	"errors"
	"image"
	"slices"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/ecs/component"
)

func spawnAsteroid(t *testing.T, w *World, pos cp.Vector) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.AsteroidComponent.Kind(), &component.Asteroid{}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		t.Fatal(err)
	}
	return e
}

func spawnStar(t *testing.T, w *World, z float64) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.StarComponent.Kind(), &component.Star{Z: z}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addSprite(t *testing.T, w *World, e Entity, frames int) {
	t.Helper()
	sp := &component.Sprite{Sheet: "asteroid", Cols: frames, Rows: 1, Size: image.Pt(64, 64)}
	if err := Add(w, e, component.SpriteComponent.Kind(), sp); err != nil {
		t.Fatal(err)
	}
	anim := component.NewAnimation(frames, 0.5, true, false)
	if err := Add(w, e, component.AnimationComponent.Kind(), &anim); err != nil {
		t.Fatal(err)
	}
}

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld()
	if Entity(0).Valid() || IsAlive(w, 0) || IsAlive(nil, 1) {
		t.Fatalf("the zero entity and a nil world must never be alive")
	}

	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	if a.String() != "1v0" || c.String() != "3v0" {
		t.Fatalf("unexpected handles %v %v", a, c)
	}
	if Count(w) != 3 {
		t.Fatalf("expected 3 entities, got %d", Count(w))
	}

	if !DestroyEntity(w, b) {
		t.Fatalf("expected b to be destroyed")
	}
	if IsAlive(w, b) || DestroyEntity(w, b) {
		t.Fatalf("b should stay dead")
	}
	if got := Entities(w); !slices.Equal(got, []Entity{a, c}) {
		t.Fatalf("expected [%v %v], got %v", a, c, got)
	}
}

func TestAsteroidComponents(t *testing.T) {
	w := NewWorld()
	asteroid := component.AsteroidComponent.Kind()
	transform := component.TransformComponent.Kind()
	star := component.StarComponent.Kind()

	e := spawnAsteroid(t, w, cp.Vector{X: 64, Y: 900})

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"get", func(t *testing.T) {
			tf, ok := Get(w, e, transform)
			if !ok || tf.Pos != (cp.Vector{X: 64, Y: 900}) {
				t.Fatalf("expected transform at (64,900), got %v ok=%v", tf, ok)
			}
		}},
		{"pointer_is_shared", func(t *testing.T) {
			a, _ := Get(w, e, asteroid)
			a.State = component.AsteroidExploding
			again, _ := Get(w, e, asteroid)
			if again.State != component.AsteroidExploding {
				t.Fatalf("Get should return the stored component")
			}
		}},
		{"add_replaces", func(t *testing.T) {
			if err := Add(w, e, transform, &component.Transform{Pos: cp.Vector{Y: 10}}); err != nil {
				t.Fatal(err)
			}
			tf, _ := Get(w, e, transform)
			if tf.Pos.Y != 10 || Len(w, transform) != 1 {
				t.Fatalf("expected one replaced transform, got %v (len %d)", tf.Pos, Len(w, transform))
			}
		}},
		{"missing_kind", func(t *testing.T) {
			if Has(w, e, star) {
				t.Fatalf("asteroid should not have a star component")
			}
			if _, ok := Get(w, e, star); ok {
				t.Fatalf("Get on an unused kind should fail")
			}
			if Remove(w, e, star) || Len(w, star) != 0 {
				t.Fatalf("unused kind should be empty")
			}
		}},
		{"remove", func(t *testing.T) {
			if !Remove(w, e, asteroid) || Has(w, e, asteroid) {
				t.Fatalf("expected asteroid component removed")
			}
			if !Has(w, e, transform) {
				t.Fatalf("removing one kind must keep the others")
			}
		}},
		{"destroy_drops_components", func(t *testing.T) {
			DestroyEntity(w, e)
			if Len(w, transform) != 0 {
				t.Fatalf("expected no transforms after destroy, got %d", Len(w, transform))
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestQueries(t *testing.T) {
	w := NewWorld()
	asteroid := component.AsteroidComponent.Kind()
	transform := component.TransformComponent.Kind()
	sprite := component.SpriteComponent.Kind()
	anim := component.AnimationComponent.Kind()
	star := component.StarComponent.Kind()

	rock := spawnAsteroid(t, w, cp.Vector{Y: 100})
	drawn := spawnAsteroid(t, w, cp.Vector{Y: 200})
	addSprite(t, w, drawn, 4)
	near := spawnStar(t, w, 1)
	far := spawnStar(t, w, 5)
	addSprite(t, w, far, 1)

	collect := func(fn func(visit func(Entity))) []Entity {
		var got []Entity
		fn(func(e Entity) { got = append(got, e) })
		slices.Sort(got)
		return got
	}

	tests := []struct {
		name string
		got  []Entity
		want []Entity
	}{
		{"transforms", collect(func(visit func(Entity)) {
			ForEach(w, transform, func(e Entity, _ *component.Transform) { visit(e) })
		}), []Entity{rock, drawn, near, far}},
		{"asteroids", collect(func(visit func(Entity)) {
			ForEach2(w, asteroid, transform, func(e Entity, _ *component.Asteroid, _ *component.Transform) { visit(e) })
		}), []Entity{rock, drawn}},
		{"drawn_stars", collect(func(visit func(Entity)) {
			ForEach3(w, star, transform, sprite, func(e Entity, _ *component.Star, _ *component.Transform, _ *component.Sprite) { visit(e) })
		}), []Entity{far}},
		{"drawn_asteroids", collect(func(visit func(Entity)) {
			ForEach4(w, asteroid, transform, sprite, anim, func(e Entity, _ *component.Asteroid, _ *component.Transform, _ *component.Sprite, a *component.Animation) {
				if a.Frames == 4 {
					visit(e)
				}
			})
		}), []Entity{drawn}},
		{"no_explosions", collect(func(visit func(Entity)) {
			ForEach2(w, component.ExplosionComponent.Kind(), transform, func(e Entity, _ *component.Explosion, _ *component.Transform) { visit(e) })
		}), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestForEach2SkipsEntitiesDestroyedDuringWalk(t *testing.T) {
	w := NewWorld()
	var ents []Entity
	for i := 0; i < 5; i++ {
		ents = append(ents, spawnAsteroid(t, w, cp.Vector{Y: float64(i)}))
	}

	visited := 0
	ForEach2(w, component.AsteroidComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, _ *component.Asteroid, _ *component.Transform) {
		visited++
		// Every asteroid destroys the last one still alive.
		for i := len(ents) - 1; i >= 0; i-- {
			if ents[i] != e && IsAlive(w, ents[i]) {
				DestroyEntity(w, ents[i])
				break
			}
		}
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits, got %d", visited)
	}
	if Count(w) != 2 || Len(w, component.AsteroidComponent.Kind()) != 2 {
		t.Fatalf("expected 2 survivors, got %d entities and %d asteroids", Count(w), Len(w, component.AsteroidComponent.Kind()))
	}
}

func TestGenerationReuse(t *testing.T) {
	w := NewWorld()
	old := spawnAsteroid(t, w, cp.Vector{})
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse")
	}
	if fresh == old {
		t.Fatalf("reused slot must get a new generation")
	}
	if Has(w, fresh, component.AsteroidComponent.Kind()) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, component.StarComponent.Kind(), &component.Star{Z: 2}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
	if DestroyEntity(w, old) {
		t.Fatalf("destroying a stale handle should fail")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add(w, e, component.ComponentKind[component.Star]{}, &component.Star{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, e, component.StarComponent.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestClear(t *testing.T) {
	w := NewWorld()
	spawnAsteroid(t, w, cp.Vector{})
	spawnStar(t, w, 3)
	w.Events().Push(Event{Kind: EventAsteroidSpawned})

	Clear(w)
	if Count(w) != 0 || len(Entities(w)) != 0 {
		t.Fatalf("expected empty world after Clear")
	}
	if Len(w, component.TransformComponent.Kind()) != 0 {
		t.Fatalf("expected no transforms after Clear")
	}
	if w.Events().Len() != 1 {
		t.Fatalf("Clear must keep pending events")
	}
}

func TestSchedulerAndEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "a")
			w.Events().Push(Event{Kind: EventExplosion})
		}),
		nil,
	)
	s.Add(SystemFunc(func(*World) { order = append(order, "b") }))
	s.Update(w)
	s.Update(w)

	if got := strings.Join(order, ""); got != "abab" {
		t.Fatalf("unexpected order %q", got)
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be ignored")
	}
	if evts := w.Events().Drain(); len(evts) != 2 || evts[0].Kind != EventExplosion {
		t.Fatalf("unexpected events %v", evts)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after Drain")
	}
	var nilQueue *EventQueue
	nilQueue.Push(Event{})
	if nilQueue.Len() != 0 || nilQueue.Drain() != nil {
		t.Fatalf("nil queue should stay empty")
	}
}
