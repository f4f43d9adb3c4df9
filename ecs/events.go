package ecs

import "github.com/jakecoffman/cp"

// EventKind identifies gameplay events raised by systems.
type EventKind string

const (
	EventAsteroidExploded EventKind = "asteroid_exploded"
	EventAsteroidSpawned  EventKind = "asteroid_spawned"
	EventExplosion        EventKind = "explosion"
)

// Event is a gameplay event with the world position it happened at.
type Event struct {
	Kind   EventKind
	Entity Entity
	Pos    cp.Vector
}

// EventQueue is a simple FIFO queue. Events stay queued until drained.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
