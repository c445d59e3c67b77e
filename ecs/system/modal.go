package system

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/state"
)

// ScreenReader exposes the active top-level screen.
type ScreenReader interface {
	Current() state.Screen
}

// OverlayFactory builds the view of a modal overlay. A nil view is allowed
// and simply draws nothing.
type OverlayFactory interface {
	Overlay(m state.Modal) component.View
}

// PauseController flips the gameplay pause and everything mirroring it.
type PauseController interface {
	SetPaused(paused bool)
}

// ModalSystem owns the modal stack shown on top of Gameplay. The stack may
// hold several modals but only the top one has an overlay entity.
type ModalSystem struct {
	w       *ecs.World
	bus     *ecs.Bus
	gs      *state.GameState
	screens ScreenReader
	views   OverlayFactory
	pause   PauseController
}

func NewModalSystem(w *ecs.World, bus *ecs.Bus, gs *state.GameState, screens ScreenReader, views OverlayFactory, pause PauseController) *ModalSystem {
	m := &ModalSystem{
		w:       w,
		bus:     bus,
		gs:      gs,
		screens: screens,
		views:   views,
		pause:   pause,
	}

	ecs.Subscribe(bus, func(event.Back) { m.Back() })
	ecs.Subscribe(bus, func(ev event.NewModal) { m.Push(ev.Modal) })
	ecs.Subscribe(bus, func(event.PopModal) { m.Pop() })
	ecs.Subscribe(bus, func(event.ClearModals) { m.Clear() })

	return m
}

func (m *ModalSystem) inGameplay() bool {
	return m.screens != nil && m.screens.Current() == state.ScreenGameplay
}

// Push shows modal on top of the stack. Opening the first modal moves input
// to the UI; opening the main menu from gameplay also pauses and releases
// the camera cursor.
func (m *ModalSystem) Push(modal state.Modal) {
	if !m.inGameplay() {
		slog.Debug("modal: push outside gameplay ignored", "modal", modal)
		return
	}

	if len(m.gs.Modals) == 0 {
		m.gs.InputContext = state.InputContextModal
		if modal == state.ModalMain {
			if !m.gs.Paused {
				m.setPaused(true)
				m.gs.ModalPaused = true
			}
			m.bus.Trigger(event.CameraCursorToggle{})
			m.gs.ModalToggledCursor = true
		}
	}

	m.Clear()
	m.spawnOverlay(modal)
	m.gs.Modals = append(m.gs.Modals, modal)
	slog.Debug("modal: push", "modal", modal, "depth", len(m.gs.Modals))
}

// Pop removes the top modal. Popping an empty stack in Gameplay is a caller
// bug and panics.
func (m *ModalSystem) Pop() {
	if !m.inGameplay() {
		slog.Debug("modal: pop outside gameplay ignored")
		return
	}
	if len(m.gs.Modals) == 0 {
		panic("modal: pop on empty modal stack")
	}

	top := m.gs.Modals[len(m.gs.Modals)-1]
	m.gs.Modals = m.gs.Modals[:len(m.gs.Modals)-1]
	m.Clear()
	slog.Debug("modal: pop", "modal", top, "depth", len(m.gs.Modals))

	if next, ok := m.gs.TopModal(); ok {
		m.spawnOverlay(next)
		return
	}

	m.gs.InputContext = state.InputContextGameplay
	if m.gs.ModalPaused {
		m.setPaused(false)
		m.gs.ModalPaused = false
	}
	if m.gs.ModalToggledCursor {
		m.bus.Trigger(event.CameraCursorToggle{})
		m.gs.ModalToggledCursor = false
	}
}

// Clear destroys every displayed overlay. The logical stack is untouched.
func (m *ModalSystem) Clear() {
	for _, e := range ecs.Query(m.w, component.ModalOverlayComponent.Kind()) {
		ecs.DestroyEntity(m.w, e)
	}
}

// Back opens the main menu from gameplay or steps one modal back.
func (m *ModalSystem) Back() {
	if !m.inGameplay() {
		return
	}
	if len(m.gs.Modals) == 0 {
		m.Push(state.ModalMain)
		return
	}
	m.Pop()
}

// ExitGameplay drops the whole stack without replaying its side effects.
// The session reset that follows leaving Gameplay restores pause and input.
func (m *ModalSystem) ExitGameplay() {
	m.Clear()
	m.gs.Modals = m.gs.Modals[:0]
	m.gs.ModalPaused = false
	m.gs.ModalToggledCursor = false
}

// Update drives the displayed overlay. Widget callbacks may replace the
// overlay, so the entity set is snapshotted first.
func (m *ModalSystem) Update(w *ecs.World) {
	for _, e := range ecs.Query(w, component.ModalOverlayComponent.Kind()) {
		o, ok := ecs.Get(w, e, component.ModalOverlayComponent.Kind())
		if !ok || o.View == nil {
			continue
		}
		o.View.Update()
	}
}

func (m *ModalSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.ModalOverlayComponent.Kind(), func(_ ecs.Entity, o *component.ModalOverlay) {
		if o.View != nil {
			o.View.Draw(screen)
		}
	})
}

func (m *ModalSystem) spawnOverlay(modal state.Modal) {
	var view component.View
	if m.views != nil {
		view = m.views.Overlay(modal)
	}
	if _, err := entity.NewModalOverlay(m.w, modal, view); err != nil {
		slog.Error("modal: spawn overlay", "modal", modal, "err", err)
	}
}

func (m *ModalSystem) setPaused(paused bool) {
	if m.pause != nil {
		m.pause.SetPaused(paused)
		return
	}
	m.gs.Paused = paused
}
