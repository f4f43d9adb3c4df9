package ecs

import "github.com/milk9111/spaceracer/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	s, ok := w.stores[kind.ID()]
	if !ok {
		return nil
	}
	typed, _ := s.(*sparseSet[T])
	return typed
}

// Add attaches value to e, replacing any component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	s := storeFor(w, kind)
	if s == nil {
		s = &sparseSet[T]{}
		w.stores[kind.ID()] = s
	}
	s.set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return storeFor(w, kind).get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && storeFor(w, kind).has(e.id())
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, kind)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// Len is the number of entities with a component of the given kind.
func Len[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind).len()
}
