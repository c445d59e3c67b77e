package ecs

import (
	"errors"

	"github.com/milk9111/overworld/ecs/component"
)

var (
	// ErrNoMatch is returned by Single when no entity owns the component.
	ErrNoMatch = errors.New("ecs: no matching entity")
	// ErrMultipleMatches is returned by Single when more than one entity
	// owns the component.
	ErrMultipleMatches = errors.New("ecs: more than one matching entity")
)

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
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.store(kind.ID(), false).Get(e).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Query returns a snapshot of the entities owning kind, safe to iterate while
// adding or removing components.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	return w.store(kind.ID(), false).Entities()
}

// ForEach calls fn for every entity owning kind. fn must not add or remove
// components of the same kind; use Query for that.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	if s == nil {
		return
	}
	for i := 0; i < len(s.denseEntities); i++ {
		if v, ok := s.denseValues[i].(*T); ok {
			fn(s.denseEntities[i], v)
		}
	}
}

// ForEach2 calls fn for every entity owning both a and b.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(a.ID(), false), w.store(b.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range IntersectEntities(sa, sb) {
		va, okA := sa.Get(e).(*A)
		vb, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, va, vb)
		}
	}
}

// First returns any entity owning kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.denseEntities[0], true
}

// Single returns the only entity owning kind together with its value. Zero
// or several matches are reported as ErrNoMatch or ErrMultipleMatches so
// callers can skip the frame instead of guessing.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, error) {
	s := w.store(kind.ID(), false)
	switch s.Len() {
	case 0:
		return 0, nil, ErrNoMatch
	case 1:
		e := s.denseEntities[0]
		v, ok := s.denseValues[0].(*T)
		if !ok || v == nil {
			return 0, nil, ErrNoMatch
		}
		return e, v, nil
	default:
		return 0, nil, ErrMultipleMatches
	}
}
