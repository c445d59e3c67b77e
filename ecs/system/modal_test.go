package system

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/state"
)

type modalFixture struct {
	w       *ecs.World
	bus     *ecs.Bus
	gs      *state.GameState
	clock   *ecs.Time
	screens *fakeScreens
	views   *fakeViews
	modal   *ModalSystem
	toggles int
}

func newModalFixture(t *testing.T) *modalFixture {
	t.Helper()
	f := &modalFixture{
		w:       ecs.NewWorld(),
		bus:     ecs.NewBus(),
		gs:      state.NewGameState(),
		clock:   ecs.NewTime(),
		screens: gameplay(),
		views:   &fakeViews{},
	}
	f.gs.InputContext = state.InputContextGameplay
	hud := NewHUDSystem(f.w, f.bus, f.gs, f.clock, nil)
	f.modal = NewModalSystem(f.w, f.bus, f.gs, f.screens, f.views, hud)
	ecs.Subscribe(f.bus, func(event.CameraCursorToggle) { f.toggles++ })
	return f
}

func (f *modalFixture) overlays() []state.Modal {
	var out []state.Modal
	ecs.ForEach(f.w, component.ModalOverlayComponent.Kind(), func(_ ecs.Entity, o *component.ModalOverlay) {
		out = append(out, o.Modal)
	})
	return out
}

func (f *modalFixture) assertInvariant(t *testing.T) {
	t.Helper()
	overlays := f.overlays()
	top, ok := f.gs.TopModal()
	if !ok {
		assert.Empty(t, overlays)
		return
	}
	require.Len(t, overlays, 1)
	assert.Equal(t, top, overlays[0])
}

func TestModalMainSettingsScenario(t *testing.T) {
	f := newModalFixture(t)

	f.bus.Trigger(event.NewModal{Modal: state.ModalMain})
	assert.Equal(t, []state.Modal{state.ModalMain}, f.gs.Modals)
	assert.Equal(t, state.InputContextModal, f.gs.InputContext)
	assert.True(t, f.gs.Paused)
	assert.True(t, f.clock.IsPaused())
	assert.Equal(t, 1, f.toggles)
	f.assertInvariant(t)

	f.bus.Trigger(event.NewModal{Modal: state.ModalSettings})
	assert.Equal(t, []state.Modal{state.ModalMain, state.ModalSettings}, f.gs.Modals)
	assert.Equal(t, 1, f.toggles, "only the first push toggles the cursor")
	f.assertInvariant(t)

	f.bus.Trigger(event.PopModal{})
	assert.Equal(t, []state.Modal{state.ModalMain}, f.gs.Modals)
	assert.Equal(t, []state.Modal{state.ModalMain}, f.overlays())
	assert.True(t, f.gs.Paused)

	f.bus.Trigger(event.PopModal{})
	assert.Empty(t, f.gs.Modals)
	assert.Empty(t, f.overlays())
	assert.Equal(t, state.InputContextGameplay, f.gs.InputContext)
	assert.False(t, f.gs.Paused)
	assert.False(t, f.clock.IsPaused())
	assert.Equal(t, 2, f.toggles)

	assert.Equal(t, []state.Modal{state.ModalMain, state.ModalSettings, state.ModalMain}, f.views.built)
}

func TestModalRoundTripKeepsPriorPause(t *testing.T) {
	cases := []struct {
		name      string
		prePaused bool
	}{
		{"running", false},
		{"already paused", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newModalFixture(t)
			if c.prePaused {
				f.bus.Trigger(event.TogglePause{})
			}

			f.modal.Push(state.ModalMain)
			assert.True(t, f.gs.Paused)
			f.modal.Pop()

			assert.Equal(t, c.prePaused, f.gs.Paused)
			assert.Equal(t, c.prePaused, f.clock.IsPaused())
			assert.Equal(t, state.InputContextGameplay, f.gs.InputContext)
			assert.Equal(t, 2, f.toggles, "cursor toggled back")
		})
	}
}

func TestModalSettingsFirstDoesNotPause(t *testing.T) {
	f := newModalFixture(t)
	f.modal.Push(state.ModalSettings)
	assert.False(t, f.gs.Paused)
	assert.Zero(t, f.toggles)

	f.modal.Pop()
	assert.False(t, f.gs.Paused)
	assert.Zero(t, f.toggles)
	assert.Equal(t, state.InputContextGameplay, f.gs.InputContext)
}

func TestModalPopEmptyPanics(t *testing.T) {
	f := newModalFixture(t)
	assert.Panics(t, func() { f.modal.Pop() })
}

func TestModalOutsideGameplayIsNoop(t *testing.T) {
	f := newModalFixture(t)
	f.screens.current = state.ScreenTitle

	assert.NotPanics(t, func() {
		f.bus.Trigger(event.NewModal{Modal: state.ModalMain})
		f.bus.Trigger(event.PopModal{})
		f.bus.Trigger(event.Back{})
	})
	assert.Empty(t, f.gs.Modals)
	assert.Empty(t, f.overlays())
	assert.False(t, f.gs.Paused)
}

func TestModalBackChangesDepthByOne(t *testing.T) {
	f := newModalFixture(t)

	f.bus.Trigger(event.Back{})
	assert.Equal(t, []state.Modal{state.ModalMain}, f.gs.Modals)

	f.bus.Trigger(event.NewModal{Modal: state.ModalSettings})
	f.bus.Trigger(event.Back{})
	assert.Equal(t, []state.Modal{state.ModalMain}, f.gs.Modals)

	f.bus.Trigger(event.Back{})
	assert.Empty(t, f.gs.Modals)
	assert.False(t, f.gs.Paused)
}

func TestModalInvariantOverRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for run := 0; run < 50; run++ {
		f := newModalFixture(t)
		for step := 0; step < 40; step++ {
			switch rng.IntN(4) {
			case 0:
				f.modal.Push(state.ModalMain)
			case 1:
				f.modal.Push(state.ModalSettings)
			case 2:
				if len(f.gs.Modals) > 0 {
					f.modal.Pop()
				}
			case 3:
				f.modal.Back()
			}
			f.assertInvariant(t)
			if len(f.gs.Modals) == 0 {
				assert.Equal(t, state.InputContextGameplay, f.gs.InputContext)
			} else {
				assert.Equal(t, state.InputContextModal, f.gs.InputContext)
			}
		}

		for len(f.gs.Modals) > 0 {
			f.modal.Pop()
		}
		assert.False(t, f.gs.Paused, "run %d: emptied stack restores the pause state", run)
		assert.Zero(t, f.toggles%2, "run %d: cursor toggles pair up", run)
	}
}

func TestModalExitGameplayDropsStack(t *testing.T) {
	f := newModalFixture(t)
	f.modal.Push(state.ModalMain)
	f.modal.Push(state.ModalSettings)

	f.modal.ExitGameplay()
	assert.Empty(t, f.gs.Modals)
	assert.Empty(t, f.overlays())
	assert.False(t, f.gs.ModalPaused)
	assert.False(t, f.gs.ModalToggledCursor)
}

func TestModalUpdateAndDrawReachTopView(t *testing.T) {
	f := newModalFixture(t)
	f.modal.Push(state.ModalMain)

	e, o, err := ecs.Single(f.w, component.ModalOverlayComponent.Kind())
	require.NoError(t, err)
	view := o.View.(*fakeView)

	f.modal.Update(f.w)
	f.modal.Draw(f.w, nil)
	assert.Equal(t, 1, view.updates)
	assert.Equal(t, 1, view.draws)

	scope, ok := ecs.Get(f.w, e, component.ScreenScopedComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, state.ScreenGameplay, scope.Screen)
}
