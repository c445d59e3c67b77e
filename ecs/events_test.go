package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ N int }
type pong struct{ N int }

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var got []string
	Subscribe(b, func(ping) { got = append(got, "a") })
	Subscribe(b, func(ping) { got = append(got, "b") })
	Subscribe(b, func(pong) { got = append(got, "pong") })

	b.Trigger(ping{})
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, HandlerCount[ping](b))
	assert.Equal(t, 0, HandlerCount[struct{}](b))
}

func TestBusQueuesEventsRaisedByHandlers(t *testing.T) {
	b := NewBus()
	var got []string

	Subscribe(b, func(p ping) {
		got = append(got, "ping1")
		if p.N == 0 {
			b.Trigger(pong{N: 1})
			b.Trigger(ping{N: 1})
		}
	})
	Subscribe(b, func(p ping) { got = append(got, "ping2") })
	Subscribe(b, func(pong) { got = append(got, "pong") })

	b.Trigger(ping{})

	// every subscriber sees the outer event before any nested one runs
	assert.Equal(t, []string{"ping1", "ping2", "pong", "ping1", "ping2"}, got)
}

func TestBusRecoversAfterHandlerPanic(t *testing.T) {
	b := NewBus()
	calls := 0
	Subscribe(b, func(p ping) {
		calls++
		if p.N == 0 {
			b.Trigger(pong{})
			panic("boom")
		}
	})
	pongs := 0
	Subscribe(b, func(pong) { pongs++ })

	require.Panics(t, func() { b.Trigger(ping{}) })
	assert.Equal(t, 0, pongs, "queued events are dropped with the panicking dispatch")

	b.Trigger(ping{N: 1})
	assert.Equal(t, 2, calls)
}

func TestBusNilSafety(t *testing.T) {
	var b *Bus
	assert.NotPanics(t, func() {
		b.Trigger(ping{})
		Subscribe(b, func(ping) {})
	})
	assert.NotPanics(t, func() { NewBus().Trigger(nil) })
}
