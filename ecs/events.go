package ecs

import (
	"log/slog"
	"reflect"
)

// Bus dispatches typed events to subscribers synchronously.
//
// Handlers for one event run in subscription order. An event triggered from
// inside a handler is queued and dispatched once the current event has been
// handled by every subscriber, so no handler ever observes a half-applied
// transition and events are never reordered.
type Bus struct {
	handlers    map[reflect.Type][]func(any)
	queue       []any
	dispatching bool
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]func(any))}
}

// Subscribe registers fn for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	if b == nil || fn == nil {
		return
	}
	t := reflect.TypeFor[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// Trigger delivers ev to its subscribers. Outside a dispatch it returns only
// after ev and everything it caused have been handled.
func (b *Bus) Trigger(ev any) {
	if b == nil || ev == nil {
		return
	}
	b.queue = append(b.queue, ev)
	if b.dispatching {
		return
	}

	b.dispatching = true
	defer func() {
		b.dispatching = false
		b.queue = b.queue[:0]
	}()

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		handlers := b.handlers[reflect.TypeOf(next)]
		if len(handlers) == 0 {
			slog.Debug("bus: event without subscribers", "event", reflect.TypeOf(next).String())
			continue
		}
		for _, h := range handlers {
			h(next)
		}
	}
}

// HandlerCount returns the number of subscribers for events of type T.
func HandlerCount[T any](b *Bus) int {
	if b == nil {
		return 0
	}
	return len(b.handlers[reflect.TypeFor[T]()])
}
