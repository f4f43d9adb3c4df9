package ecs

import (
	"slices"

	"github.com/milk9111/spaceracer/ecs/component"
)

// Iteration runs over a snapshot of the store, so fn may add components or
// destroy entities. Entities destroyed during the walk are skipped.

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, ka)
	for _, id := range slices.Clone(sa.ids()) {
		a, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(w.entity(id), a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka), storeFor(w, kb)
	for _, id := range smallest(sa, sb) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if okA && okB {
			fn(w.entity(id), a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeFor(w, ka), storeFor(w, kb), storeFor(w, kc)
	for _, id := range smallest(sa, sb, sc) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		if okA && okB && okC {
			fn(w.entity(id), a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa, sb, sc, sd := storeFor(w, ka), storeFor(w, kb), storeFor(w, kc), storeFor(w, kd)
	for _, id := range smallest(sa, sb, sc, sd) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		d, okD := sd.get(id)
		if okA && okB && okC && okD {
			fn(w.entity(id), a, b, c, d)
		}
	}
}

// smallest returns a copy of the ids of the smallest store, or nil when any
// store is missing.
func smallest(stores ...store) []entityID {
	var best store
	for _, s := range stores {
		if s == nil || s.len() == 0 {
			return nil
		}
		if best == nil || s.len() < best.len() {
			best = s
		}
	}
	return slices.Clone(best.ids())
}
