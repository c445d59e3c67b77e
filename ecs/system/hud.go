package system

import (
	"log/slog"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

// HUDSystem owns the paused and muted flags and everything that mirrors
// them: the virtual clock, the audio buses and the HUD indicators.
type HUDSystem struct {
	w        *ecs.World
	gs       *state.GameState
	clock    *ecs.Time
	settings *prefabs.Settings
}

func NewHUDSystem(w *ecs.World, bus *ecs.Bus, gs *state.GameState, clock *ecs.Time, settings *prefabs.Settings) *HUDSystem {
	h := &HUDSystem{w: w, gs: gs, clock: clock, settings: settings}

	ecs.Subscribe(bus, func(event.TogglePause) { h.TogglePause() })
	ecs.Subscribe(bus, func(event.ToggleMute) { h.ToggleMute() })
	ecs.Subscribe(bus, func(event.SettingsChanged) { h.applyBuses() })

	return h
}

func (h *HUDSystem) TogglePause() {
	h.SetPaused(!h.gs.Paused)
}

// SetPaused mirrors paused onto the clock and the pause indicator.
func (h *HUDSystem) SetPaused(paused bool) {
	h.gs.Paused = paused
	h.clock.SetPaused(paused)
	h.setIndicator(component.IndicatorPause, paused)
	slog.Info("hud: pause", "paused", paused)
}

func (h *HUDSystem) ToggleMute() {
	h.SetMuted(!h.gs.Muted)
}

// SetMuted silences both buses, or restores them to the settings levels.
func (h *HUDSystem) SetMuted(muted bool) {
	h.gs.Muted = muted
	h.applyBuses()
	h.setIndicator(component.IndicatorMute, muted)
	slog.Info("hud: mute", "muted", muted)
}

// SetSettings swaps the volume levels, e.g. after a reload from disk.
func (h *HUDSystem) SetSettings(s *prefabs.Settings) {
	h.settings = s
	h.applyBuses()
}

func (h *HUDSystem) Settings() *prefabs.Settings {
	return h.settings
}

// Resync pushes the current flags to every mirror. Used after GameState.Reset
// and when HUD entities were respawned.
func (h *HUDSystem) Resync() {
	h.clock.SetPaused(h.gs.Paused)
	h.applyBuses()
	h.setIndicator(component.IndicatorPause, h.gs.Paused)
	h.setIndicator(component.IndicatorMute, h.gs.Muted)
}

func (h *HUDSystem) applyBuses() {
	ecs.ForEach(h.w, component.AudioBusComponent.Kind(), func(_ ecs.Entity, bus *component.AudioBus) {
		if h.gs.Muted {
			bus.Volume = 0
			return
		}
		switch bus.Kind {
		case component.BusMusic:
			bus.Volume = h.settings.MusicVolume()
		case component.BusSfx:
			bus.Volume = h.settings.SfxVolume()
		}
	})
}

func (h *HUDSystem) setIndicator(kind component.IndicatorKind, visible bool) {
	found := false
	ecs.ForEach(h.w, component.IndicatorComponent.Kind(), func(_ ecs.Entity, ind *component.Indicator) {
		if ind.Kind == kind {
			ind.Visible = visible
			found = true
		}
	})
	if !found {
		slog.Debug("hud: indicator missing", "kind", kind)
	}
}
