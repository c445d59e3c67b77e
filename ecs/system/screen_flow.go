package system

import (
	"log/slog"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/state"
)

// ScreenFlowSystem drives the automatic screens (Splash, Loading) and the
// screen requests arriving on the bus.
type ScreenFlowSystem struct {
	screens *state.ScreenMachine
	gs      *state.GameState
	clock   *ecs.Time

	splashSeconds float64
	elapsed       float64
	load          func() error
	afterReset    func()
}

// NewScreenFlowSystem wires GoTo and ReturnToTitle. load runs once on the
// Loading screen; afterReset runs after the session reset of ReturnToTitle.
func NewScreenFlowSystem(bus *ecs.Bus, screens *state.ScreenMachine, gs *state.GameState, clock *ecs.Time, splashSeconds float64, load func() error, afterReset func()) *ScreenFlowSystem {
	s := &ScreenFlowSystem{
		screens:       screens,
		gs:            gs,
		clock:         clock,
		splashSeconds: splashSeconds,
		load:          load,
		afterReset:    afterReset,
	}

	ecs.Subscribe(bus, func(ev event.GoTo) { screens.GoTo(ev.Screen) })
	ecs.Subscribe(bus, func(event.ReturnToTitle) { s.ReturnToTitle() })

	return s
}

// ReturnToTitle leaves Gameplay for the title screen and resets the session.
func (s *ScreenFlowSystem) ReturnToTitle() {
	s.gs.InputContext = state.InputContextModal
	s.screens.GoTo(state.ScreenTitle)
	s.gs.Reset()
	if s.afterReset != nil {
		s.afterReset()
	}
}

func (s *ScreenFlowSystem) Update(w *ecs.World) {
	switch s.screens.Current() {
	case state.ScreenSplash:
		s.elapsed += s.clock.RealDelta()
		if s.elapsed >= s.splashSeconds {
			s.screens.GoTo(state.ScreenLoading)
		}
	case state.ScreenLoading:
		if s.load != nil {
			if err := s.load(); err != nil {
				slog.Error("screen: loading", "err", err)
			}
		}
		s.screens.GoTo(state.ScreenTitle)
	}
}

// DespawnScoped destroys every entity bound to screen.
func DespawnScoped(w *ecs.World, screen state.Screen) int {
	n := 0
	for _, e := range ecs.Query(w, component.ScreenScopedComponent.Kind()) {
		scope, ok := ecs.Get(w, e, component.ScreenScopedComponent.Kind())
		if !ok || scope.Screen != screen {
			continue
		}
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	slog.Debug("screen: despawned scoped entities", "screen", screen, "count", n)
	return n
}
