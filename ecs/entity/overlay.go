package entity

import (
	"fmt"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/state"
)

// NewModalOverlay spawns the on-screen overlay of modal. Overlays only live
// inside Gameplay.
func NewModalOverlay(w *ecs.World, modal state.Modal, view component.View) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ModalOverlayComponent.Kind(), &component.ModalOverlay{
		Modal: modal,
		View:  view,
	}); err != nil {
		return 0, fmt.Errorf("modal overlay: add component: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenScopedComponent.Kind(), &component.ScreenScoped{
		Screen: state.ScreenGameplay,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("modal overlay: add screen scope: %w", err)
	}
	return e, nil
}

// NewIndicators spawns the pause and mute HUD icons mirroring gs.
func NewIndicators(w *ecs.World, gs *state.GameState) error {
	for _, ind := range []component.Indicator{
		{Kind: component.IndicatorPause, Visible: gs.Paused},
		{Kind: component.IndicatorMute, Visible: gs.Muted},
	} {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.IndicatorComponent.Kind(), &ind); err != nil {
			return fmt.Errorf("indicator %s: %w", ind.Kind, err)
		}
		if err := ecs.Add(w, e, component.ScreenScopedComponent.Kind(), &component.ScreenScoped{
			Screen: state.ScreenGameplay,
		}); err != nil {
			return fmt.Errorf("indicator %s: add screen scope: %w", ind.Kind, err)
		}
	}
	return nil
}
