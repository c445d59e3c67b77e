package system

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

// TopDownCamera is the free camera: it follows the player from above until
// the user pans or rotates it, edge-pans in Move mode, yaws in Rotate mode
// and zooms along its forward axis.
type TopDownCamera struct {
	w     *ecs.World
	gs    *state.GameState
	clock *ecs.Time
	cfg   prefabs.CameraConfig
}

func NewTopDownCamera(w *ecs.World, gs *state.GameState, clock *ecs.Time, cfg prefabs.CameraConfig) *TopDownCamera {
	return &TopDownCamera{w: w, gs: gs, clock: clock, cfg: cfg}
}

func (c *TopDownCamera) defaultOffset() mgl64.Vec3 {
	return mgl64.Vec3{0, c.cfg.FollowHeight, c.cfg.FollowDistance}
}

func (c *TopDownCamera) OnEnterGameplay() {
	cam, t, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	rig := &component.TopDownRig{Following: c.cfg.Follow, Offset: c.defaultOffset()}
	if err := ecs.Add(c.w, cam, component.TopDownRigComponent.Kind(), rig); err != nil {
		slog.Error("camera: add top-down rig", "err", err)
		return
	}
	if rig.Following {
		c.follow(t, rig)
	}
}

func (c *TopDownCamera) OnExitGameplay() {
	cam, _, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	ecs.Remove(c.w, cam, component.TopDownRigComponent.Kind())
}

func (c *TopDownCamera) OnPan(delta mgl64.Vec2) {
	cam, t, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	rig, _ := ecs.Get(c.w, cam, component.TopDownRigComponent.Kind())

	switch c.gs.CameraMode {
	case state.CameraModeRotate:
		yaw := delta.X() * c.cfg.RotateSpeed
		if yaw == 0 || !common.Finite(yaw) {
			return
		}
		t.Rotate(mgl64.QuatRotate(yaw, component.WorldUp))
		detach(rig)
	default:
		win, ok := window(c.w)
		if !ok {
			return
		}
		dir, scale := EdgePanDirection(t, win, c.cfg.EdgeMargin, c.cfg.EdgeSpeedFloor)
		if dir.Len() < 1e-9 {
			return
		}
		speed := c.cfg.MaxSpeed / scale
		t.Translation = t.Translation.Add(dir.Normalize().Mul(speed * c.clock.Delta()))
		detach(rig)
	}
}

func (c *TopDownCamera) OnZoom(delta mgl64.Vec2) {
	cam, t, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	t.Translation = ZoomStep(t.Translation, t.Forward(), delta.Y()*c.cfg.ZoomSpeed, c.cfg.MinHeight, c.cfg.MaxHeight)

	rig, ok := ecs.Get(c.w, cam, component.TopDownRigComponent.Kind())
	if !ok || !rig.Following {
		return
	}
	if _, pt, ok := playerTransform(c.w); ok {
		rig.Offset = t.Translation.Sub(pt.Translation)
	}
}

func (c *TopDownCamera) OnModeToggle(mode state.CameraMode) {
	slog.Debug("camera: mode", "mode", mode)
}

// OnCursorToggle is a no-op: the top-down camera never captures the cursor.
func (c *TopDownCamera) OnCursorToggle() {}

// OnRecenter re-attaches the camera to the player at the default offset.
func (c *TopDownCamera) OnRecenter() {
	cam, t, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	rig, ok := ecs.Get(c.w, cam, component.TopDownRigComponent.Kind())
	if !ok {
		slog.Debug("camera: recenter outside gameplay")
		return
	}
	rig.Following = true
	rig.Offset = c.defaultOffset()
	c.follow(t, rig)
}

func (c *TopDownCamera) Update(dt float64) {
	if c.gs.Paused {
		return
	}
	cam, t, ok := sceneCamera(c.w)
	if !ok {
		return
	}
	rig, ok := ecs.Get(c.w, cam, component.TopDownRigComponent.Kind())
	if !ok || !rig.Following {
		return
	}
	c.follow(t, rig)
}

func (c *TopDownCamera) follow(t *component.Transform, rig *component.TopDownRig) {
	_, pt, ok := playerTransform(c.w)
	if !ok {
		return
	}
	t.Translation = pt.Translation.Add(rig.Offset)
	t.LookAt(pt.Translation, component.WorldUp)
}

func detach(rig *component.TopDownRig) {
	if rig != nil && rig.Following {
		rig.Following = false
		slog.Debug("camera: detached from player")
	}
}

// EdgePanScale maps the cursor distance to a window edge onto a speed
// divisor in [floor, 1]. dist equal to margin gives 1; a cursor at or past
// the edge gives floor.
func EdgePanScale(dist, margin, floor float64) float64 {
	if margin <= 0 {
		return 1
	}
	s := dist / margin
	if math.IsNaN(s) || s < floor {
		return floor
	}
	if s > 1 {
		return 1
	}
	return s
}

// EdgePanDirection returns the ground-plane pan direction for the cursor
// position in win together with the speed divisor. Crossing two edges sums
// both directions and keeps the smaller divisor.
func EdgePanDirection(t *component.Transform, win *component.Window, margin, floor float64) (mgl64.Vec3, float64) {
	x, y, ok := win.CursorPosition()
	if !ok {
		return mgl64.Vec3{}, 1
	}

	left := flatten(t.Left())
	forward := flatten(t.Forward())
	if forward.Len() == 0 {
		// looking straight down: screen-up is the camera's up axis
		forward = flatten(t.Up())
	}

	var dir mgl64.Vec3
	scale := 1.0
	switch {
	case x <= margin:
		dir = dir.Add(left)
		scale = math.Min(scale, EdgePanScale(x, margin, floor))
	case x >= win.Width-margin:
		dir = dir.Sub(left)
		scale = math.Min(scale, EdgePanScale(win.Width-x, margin, floor))
	}
	switch {
	case y <= margin:
		dir = dir.Add(forward)
		scale = math.Min(scale, EdgePanScale(y, margin, floor))
	case y >= win.Height-margin:
		dir = dir.Sub(forward)
		scale = math.Min(scale, EdgePanScale(win.Height-y, margin, floor))
	}
	return dir, scale
}

// ZoomStep moves pos by step along forward and keeps the height within
// [minY, maxY]. A step that would overshoot is shortened to land on the
// bound.
func ZoomStep(pos, forward mgl64.Vec3, step, minY, maxY float64) mgl64.Vec3 {
	if !common.Finite(step) || step == 0 {
		pos[1] = common.Clamp(pos.Y(), minY, maxY)
		return pos
	}
	next := pos.Add(forward.Mul(step))
	if fy := forward.Y(); math.Abs(fy) > 1e-9 {
		switch {
		case next.Y() > maxY:
			next = pos.Add(forward.Mul((maxY - pos.Y()) / fy))
		case next.Y() < minY:
			next = pos.Add(forward.Mul((minY - pos.Y()) / fy))
		}
	}
	next[1] = common.Clamp(next.Y(), minY, maxY)
	return next
}
