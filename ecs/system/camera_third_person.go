package system

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

const (
	cameraBodyRadius = 1.0
	minOrbitPitch    = 5 * math.Pi / 180
	maxOrbitPitch    = 85 * math.Pi / 180
)

// ThirdPersonCamera orbits the player. The orbit behavior and a kinematic
// collision body are attached to the scene camera for the duration of
// Gameplay only.
type ThirdPersonCamera struct {
	w       *ecs.World
	physics *PhysicsSystem
	cfg     prefabs.CameraConfig
	lockKey ebiten.Key
}

func NewThirdPersonCamera(w *ecs.World, physics *PhysicsSystem, cfg prefabs.CameraConfig) (*ThirdPersonCamera, error) {
	key, err := ParseKey(cfg.CursorLockKey)
	if err != nil {
		return nil, fmt.Errorf("camera: cursor lock key: %w", err)
	}
	return &ThirdPersonCamera{w: w, physics: physics, cfg: cfg, lockKey: key}, nil
}

// LockKey is the key toggling cursor capture.
func (c *ThirdPersonCamera) LockKey() ebiten.Key {
	return c.lockKey
}

func (c *ThirdPersonCamera) OnEnterGameplay() {
	cam, _, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	if ecs.Has(c.w, cam, component.OrbitCameraComponent.Kind()) {
		slog.Debug("camera: orbit camera already attached")
		return
	}

	orbit := &component.OrbitCamera{
		ZoomMin:          c.cfg.Zoom.Min,
		ZoomMax:          c.cfg.Zoom.Max,
		Radius:           (c.cfg.Zoom.Min + c.cfg.Zoom.Max) / 2,
		Pitch:            common.Clamp(mgl64.DegToRad(c.cfg.OrbitPitch), minOrbitPitch, maxOrbitPitch),
		CursorLockKey:    c.lockKey,
		CursorLockActive: true,
	}
	if err := ecs.Add(c.w, cam, component.OrbitCameraComponent.Kind(), orbit); err != nil {
		slog.Error("camera: add orbit camera", "err", err)
		return
	}
	if err := ecs.Add(c.w, cam, component.ProjectionComponent.Kind(), &component.Projection{
		FOV: mgl64.DegToRad(c.cfg.FOV),
	}); err != nil {
		slog.Error("camera: add projection", "err", err)
	}
	if err := c.physics.AttachKinematic(c.w, cam, cameraBodyRadius); err != nil {
		slog.Error("camera: attach body", "err", err)
	}
	c.setCursorCaptured(orbit.CursorLockActive)
}

func (c *ThirdPersonCamera) OnExitGameplay() {
	cam, _, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	ecs.Remove(c.w, cam, component.OrbitCameraComponent.Kind())
	c.physics.Detach(c.w, cam)
	c.setCursorCaptured(false)
}

func (c *ThirdPersonCamera) orbit() (*component.OrbitCamera, bool) {
	cam, _, ok := sceneCamera(c.w)
	if !ok {
		return nil, false
	}
	return ecs.Get(c.w, cam, component.OrbitCameraComponent.Kind())
}

// OnPan turns the orbit while the cursor is captured.
func (c *ThirdPersonCamera) OnPan(delta mgl64.Vec2) {
	orbit, ok := c.orbit()
	if !ok || !orbit.CursorLockActive {
		return
	}
	if !common.Finite(delta.X()) || !common.Finite(delta.Y()) {
		return
	}
	orbit.Yaw -= delta.X() * c.cfg.RotateSpeed
	orbit.Pitch = common.Clamp(orbit.Pitch+delta.Y()*c.cfg.RotateSpeed, minOrbitPitch, maxOrbitPitch)
}

// OnZoom changes the orbit radius within the zoom bounds.
func (c *ThirdPersonCamera) OnZoom(delta mgl64.Vec2) {
	orbit, ok := c.orbit()
	if !ok {
		return
	}
	r := orbit.Radius - delta.Y()*c.cfg.ZoomSpeed
	if !common.Finite(r) {
		return
	}
	orbit.Radius = common.Clamp(r, orbit.ZoomMin, orbit.ZoomMax)
}

func (c *ThirdPersonCamera) OnModeToggle(state.CameraMode) {}

func (c *ThirdPersonCamera) OnCursorToggle() {
	orbit, ok := c.orbit()
	if !ok {
		slog.Debug("camera: cursor toggle without orbit camera")
		return
	}
	orbit.CursorLockActive = !orbit.CursorLockActive
	c.setCursorCaptured(orbit.CursorLockActive)
	slog.Debug("camera: cursor lock", "active", orbit.CursorLockActive)
}

// OnRecenter swings the orbit back behind the player.
func (c *ThirdPersonCamera) OnRecenter() {
	orbit, ok := c.orbit()
	if !ok {
		return
	}
	orbit.Yaw = 0
	orbit.Pitch = common.Clamp(mgl64.DegToRad(c.cfg.OrbitPitch), minOrbitPitch, maxOrbitPitch)
}

func (c *ThirdPersonCamera) Update(dt float64) {
	cam, t, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	orbit, ok := ecs.Get(c.w, cam, component.OrbitCameraComponent.Kind())
	if !ok {
		return
	}
	_, pt, ok := playerTransform(c.w)
	if !ok {
		return
	}
	t.Translation = pt.Translation.Add(OrbitOffset(orbit.Yaw, orbit.Pitch, orbit.Radius))
	t.LookAt(pt.Translation, component.WorldUp)
}

func (c *ThirdPersonCamera) setCursorCaptured(captured bool) {
	if win, ok := window(c.w); ok {
		win.CursorCaptured = captured
	}
}

// OrbitOffset is the camera position relative to its target. Yaw 0 places
// the camera on +Z, behind a target facing -Z.
func OrbitOffset(yaw, pitch, radius float64) mgl64.Vec3 {
	cosP := math.Cos(pitch)
	return mgl64.Vec3{
		radius * cosP * math.Sin(yaw),
		radius * math.Sin(pitch),
		radius * cosP * math.Cos(yaw),
	}
}

// ParseKey resolves a key name such as "L" or "F1" as printed by
// ebiten.Key.String.
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
