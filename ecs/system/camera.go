package system

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

// CameraDriver is one camera strategy. Exactly one driver is live per
// process, chosen from configuration at startup.
type CameraDriver interface {
	OnEnterGameplay()
	OnExitGameplay()
	OnPan(delta mgl64.Vec2)
	OnZoom(delta mgl64.Vec2)
	OnModeToggle(mode state.CameraMode)
	OnCursorToggle()
	OnRecenter()
	Update(dt float64)
}

// NewCameraDriver builds the driver named by cfg.Strategy.
func NewCameraDriver(w *ecs.World, gs *state.GameState, clock *ecs.Time, physics *PhysicsSystem, cfg prefabs.CameraConfig) (CameraDriver, error) {
	switch cfg.Strategy {
	case state.CameraTopDown:
		return NewTopDownCamera(w, gs, clock, cfg), nil
	case state.CameraThirdPerson:
		driver, err := NewThirdPersonCamera(w, physics, cfg)
		if err != nil {
			return nil, err
		}
		return driver, nil
	}
	return nil, fmt.Errorf("camera: unknown strategy %q", cfg.Strategy)
}

// CameraSystem forwards camera input to the active driver and advances it
// once per tick.
type CameraSystem struct {
	driver CameraDriver
	gs     *state.GameState
	clock  *ecs.Time
}

func NewCameraSystem(bus *ecs.Bus, gs *state.GameState, clock *ecs.Time, driver CameraDriver) *CameraSystem {
	cs := &CameraSystem{driver: driver, gs: gs, clock: clock}

	ecs.Subscribe(bus, func(ev event.Pan) { driver.OnPan(ev.Delta) })
	ecs.Subscribe(bus, func(ev event.ScrollZoom) { driver.OnZoom(ev.Delta) })
	ecs.Subscribe(bus, func(event.RotateToggleStart) { cs.setMode(state.CameraModeRotate) })
	ecs.Subscribe(bus, func(event.RotateToggleEnd) { cs.setMode(state.CameraModeMove) })
	ecs.Subscribe(bus, func(event.CameraCursorToggle) { driver.OnCursorToggle() })
	ecs.Subscribe(bus, func(event.RecenterCamera) { driver.OnRecenter() })

	return cs
}

func (cs *CameraSystem) Driver() CameraDriver {
	return cs.driver
}

func (cs *CameraSystem) setMode(mode state.CameraMode) {
	cs.gs.CameraMode = mode
	cs.driver.OnModeToggle(mode)
}

func (cs *CameraSystem) Update(w *ecs.World) {
	cs.driver.Update(cs.clock.Delta())
}

// sceneCamera returns the transform of the one scene camera. Zero or several
// cameras skip the caller's work for this tick.
func sceneCamera(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	e, _, err := ecs.Single(w, component.SceneCameraTagComponent.Kind())
	if err != nil {
		slog.Debug("camera: scene camera unavailable", "err", err)
		return 0, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		slog.Debug("camera: scene camera has no transform")
		return 0, nil, false
	}
	return e, t, true
}

func playerTransform(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	e, _, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	if err != nil {
		slog.Debug("camera: player unavailable", "err", err)
		return 0, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return e, t, true
}

func window(w *ecs.World) (*component.Window, bool) {
	_, win, err := ecs.Single(w, component.WindowComponent.Kind())
	if err != nil {
		slog.Debug("camera: window unavailable", "err", err)
		return nil, false
	}
	return win, true
}

// flatten projects v on the ground plane. The zero vector is returned when v
// is vertical.
func flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
