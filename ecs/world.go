package ecs

import (
	"github.com/milk9111/spaceracer/ecs/component"
)

// World owns entities, their component stores and the event queue.
type World struct {
	gens   []generation
	alive  []bool
	free   []entityID
	count  int
	stores map[component.ComponentID]store
	events EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity, reusing freed slots with a bumped
// generation.
func CreateEntity(w *World) Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.gens))
	}
	w.alive[id-1] = true
	w.count++
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes e and all its components. It reports false when e
// was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	w.count--
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.count)
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

// Count is the number of live entities.
func Count(w *World) int {
	return w.count
}

// Clear destroys every entity. Pending events are kept.
func Clear(w *World) {
	for _, e := range Entities(w) {
		DestroyEntity(w, e)
	}
}

func (w *World) entity(id entityID) Entity {
	return makeEntity(id, w.gens[id-1])
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
