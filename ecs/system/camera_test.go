package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

const tick = 1.0 / 60

func TestEdgePanScale(t *testing.T) {
	cases := []struct {
		name                string
		dist, margin, floor float64
		want                float64
	}{
		{"at margin", 40, 40, 0.1, 1},
		{"halfway", 20, 40, 0.1, 0.5},
		{"on the edge", 0, 40, 0.1, 0.1},
		{"past the edge", -5, 40, 0.1, 0.1},
		{"inside the window", 100, 40, 0.1, 1},
		{"nan", math.NaN(), 40, 0.1, 0.1},
		{"no margin", 10, 0, 0.1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, EdgePanScale(c.dist, c.margin, c.floor), 1e-12)
		})
	}
}

func TestEdgePanDirection(t *testing.T) {
	tr := component.NewTransform(0, 50, 50)
	tr.LookAt(mgl64.Vec3{}, component.WorldUp)
	win := &component.Window{Width: 1280, Height: 720, HasCursor: true}

	cases := []struct {
		name      string
		x, y      float64
		wantDir   mgl64.Vec3
		wantScale float64
	}{
		{"center", 640, 360, mgl64.Vec3{}, 1},
		{"left", 10, 360, mgl64.Vec3{-1, 0, 0}, 0.25},
		{"right", 1275, 360, mgl64.Vec3{1, 0, 0}, 0.125},
		{"top", 640, 20, mgl64.Vec3{0, 0, -1}, 0.5},
		{"bottom", 640, 720, mgl64.Vec3{0, 0, 1}, 0.1},
		{"top left corner", 10, 20, mgl64.Vec3{-1, 0, -1}, 0.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			win.CursorX, win.CursorY = c.x, c.y
			dir, scale := EdgePanDirection(&tr, win, 40, 0.1)
			assert.InDelta(t, 0, dir.Sub(c.wantDir).Len(), 1e-9)
			assert.InDelta(t, c.wantScale, scale, 1e-9)
		})
	}

	win.HasCursor = false
	dir, _ := EdgePanDirection(&tr, win, 40, 0.1)
	assert.Zero(t, dir.Len(), "no cursor, no pan")
}

func TestZoomStepStaysInBounds(t *testing.T) {
	const minY, maxY = 5.0, 60.0
	rng := rand.New(rand.NewPCG(1, 2))

	pos := mgl64.Vec3{0, 30, 30}
	for i := 0; i < 500; i++ {
		forward := mgl64.Vec3{rng.Float64() - 0.5, -rng.Float64() - 0.05, rng.Float64() - 0.5}.Normalize()
		step := (rng.Float64() - 0.5) * 200
		pos = ZoomStep(pos, forward, step, minY, maxY)
		require.GreaterOrEqual(t, pos.Y(), minY)
		require.LessOrEqual(t, pos.Y(), maxY)
	}
}

func TestZoomStepLandsOnBound(t *testing.T) {
	down := mgl64.Vec3{0, -1, 0}
	assert.Equal(t, mgl64.Vec3{0, 5, 0}, ZoomStep(mgl64.Vec3{0, 10, 0}, down, 20, 5, 60))
	assert.Equal(t, mgl64.Vec3{0, 60, 0}, ZoomStep(mgl64.Vec3{0, 10, 0}, down, -100, 5, 60))
	assert.Equal(t, mgl64.Vec3{0, 8, 0}, ZoomStep(mgl64.Vec3{0, 10, 0}, down, 2, 5, 60))
	assert.Equal(t, mgl64.Vec3{0, 60, 0}, ZoomStep(mgl64.Vec3{0, 90, 0}, down, math.NaN(), 5, 60))
}

type topDownFixture struct {
	w      *ecs.World
	cam    ecs.Entity
	bus    *ecs.Bus
	gs     *state.GameState
	clock  *ecs.Time
	cfg    prefabs.CameraConfig
	driver *TopDownCamera
}

func newTopDownFixture(t *testing.T, follow bool) *topDownFixture {
	t.Helper()
	w, cam := sceneWorld(t, mgl64.Vec3{0, 50, 50})
	f := &topDownFixture{
		w:     w,
		cam:   cam,
		bus:   ecs.NewBus(),
		gs:    state.NewGameState(),
		clock: ecs.NewTime(),
		cfg:   prefabs.DefaultConfig().Camera,
	}
	f.cfg.Follow = follow
	f.driver = NewTopDownCamera(w, f.gs, f.clock, f.cfg)
	NewCameraSystem(f.bus, f.gs, f.clock, f.driver)
	f.clock.Advance(tick)
	return f
}

func TestTopDownEdgePanMovesAtFloorSpeed(t *testing.T) {
	f := newTopDownFixture(t, false)
	f.driver.OnEnterGameplay()
	setCursor(t, f.w, 0, 360)
	before := cameraTransform(t, f.w, f.cam).Translation

	f.bus.Trigger(event.Pan{Delta: mgl64.Vec2{-3, 0}})

	after := cameraTransform(t, f.w, f.cam).Translation
	moved := after.Sub(before)
	want := f.cfg.MaxSpeed / f.cfg.EdgeSpeedFloor * tick
	assert.InDelta(t, want, moved.Len(), 1e-9)
	assert.Less(t, moved.X(), 0.0)
	assert.InDelta(t, 0, moved.Y(), 1e-12, "edge pan stays at the same height")
}

func TestTopDownRotateMode(t *testing.T) {
	f := newTopDownFixture(t, false)
	f.driver.OnEnterGameplay()
	tr := cameraTransform(t, f.w, f.cam)
	pos, fwd := tr.Translation, tr.Forward()

	f.bus.Trigger(event.RotateToggleStart{})
	require.Equal(t, state.CameraModeRotate, f.gs.CameraMode)
	f.bus.Trigger(event.Pan{Delta: mgl64.Vec2{100, 0}})

	assert.Equal(t, pos, tr.Translation, "rotation does not move the camera")
	assert.InDelta(t, fwd.Y(), tr.Forward().Y(), 1e-9, "yaw only")
	angle := math.Acos(mgl64.Clamp(flatten(fwd).Dot(flatten(tr.Forward())), -1, 1))
	assert.InDelta(t, 100*f.cfg.RotateSpeed, angle, 1e-9)

	f.bus.Trigger(event.RotateToggleEnd{})
	assert.Equal(t, state.CameraModeMove, f.gs.CameraMode)
}

func TestTopDownSkipsWithoutSingleCamera(t *testing.T) {
	f := newTopDownFixture(t, false)
	setCursor(t, f.w, 0, 0)

	other := ecs.CreateEntity(f.w)
	require.NoError(t, ecs.Add(f.w, other, component.SceneCameraTagComponent.Kind(), &component.SceneCameraTag{}))
	before := cameraTransform(t, f.w, f.cam).Translation

	assert.NotPanics(t, func() {
		f.driver.OnPan(mgl64.Vec2{1, 1})
		f.driver.OnZoom(mgl64.Vec2{0, 1})
		f.driver.Update(tick)
	})
	assert.Equal(t, before, cameraTransform(t, f.w, f.cam).Translation)

	empty := NewTopDownCamera(ecs.NewWorld(), f.gs, f.clock, f.cfg)
	assert.NotPanics(t, func() {
		empty.OnEnterGameplay()
		empty.OnPan(mgl64.Vec2{1, 1})
		empty.OnRecenter()
	})
}

func TestTopDownFollowDetachAndRecenter(t *testing.T) {
	f := newTopDownFixture(t, true)
	player := spawnPlayer(t, f.w, mgl64.Vec3{5, 0, 5})
	f.driver.OnEnterGameplay()

	cam := cameraTransform(t, f.w, f.cam)
	offset := mgl64.Vec3{0, f.cfg.FollowHeight, f.cfg.FollowDistance}
	assert.InDelta(t, 0, cam.Translation.Sub(player.Translation.Add(offset)).Len(), 1e-9)

	player.Translation = mgl64.Vec3{10, 0, 0}
	f.driver.Update(tick)
	assert.InDelta(t, 0, cam.Translation.Sub(player.Translation.Add(offset)).Len(), 1e-9)
	toPlayer := player.Translation.Sub(cam.Translation).Normalize()
	assert.InDelta(t, 0, cam.Forward().Sub(toPlayer).Len(), 1e-6)

	// pausing freezes the follow
	f.gs.Paused = true
	player.Translation = mgl64.Vec3{20, 0, 0}
	f.driver.Update(tick)
	assert.InDelta(t, 10, cam.Translation.X(), 1e-9)
	f.gs.Paused = false

	setCursor(t, f.w, 0, 360)
	f.driver.OnPan(mgl64.Vec2{})
	detached := cam.Translation
	player.Translation = mgl64.Vec3{-30, 0, 0}
	f.driver.Update(tick)
	assert.Equal(t, detached, cam.Translation, "panning detaches the camera")

	f.bus.Trigger(event.RecenterCamera{})
	assert.InDelta(t, 0, cam.Translation.Sub(player.Translation.Add(offset)).Len(), 1e-9)
}

func TestTopDownZoomWhileFollowingKeepsOffset(t *testing.T) {
	f := newTopDownFixture(t, true)
	player := spawnPlayer(t, f.w, mgl64.Vec3{})
	f.driver.OnEnterGameplay()

	f.bus.Trigger(event.ScrollZoom{Delta: mgl64.Vec2{0, 3}})
	cam := cameraTransform(t, f.w, f.cam)
	zoomed := cam.Translation.Sub(player.Translation)
	assert.Less(t, zoomed.Len(), mgl64.Vec3{0, f.cfg.FollowHeight, f.cfg.FollowDistance}.Len())

	player.Translation = mgl64.Vec3{4, 0, 4}
	f.driver.Update(tick)
	assert.InDelta(t, 0, cam.Translation.Sub(player.Translation).Sub(zoomed).Len(), 1e-9)
}

func TestTopDownExitRemovesRig(t *testing.T) {
	f := newTopDownFixture(t, true)
	f.driver.OnEnterGameplay()
	require.True(t, ecs.Has(f.w, f.cam, component.TopDownRigComponent.Kind()))
	f.driver.OnExitGameplay()
	assert.False(t, ecs.Has(f.w, f.cam, component.TopDownRigComponent.Kind()))
}

func newOrbitFixture(t *testing.T) (*ecs.World, ecs.Entity, *PhysicsSystem, *ThirdPersonCamera) {
	t.Helper()
	w, cam := sceneWorld(t, mgl64.Vec3{0, 10, 10})
	cfg := prefabs.DefaultConfig().Camera
	cfg.Strategy = state.CameraThirdPerson
	physics := NewPhysicsSystem(ecs.NewTime())
	driver, err := NewCameraDriver(w, state.NewGameState(), ecs.NewTime(), physics, cfg)
	require.NoError(t, err)
	return w, cam, physics, driver.(*ThirdPersonCamera)
}

func orbitOf(t *testing.T, w *ecs.World, cam ecs.Entity) *component.OrbitCamera {
	t.Helper()
	o, ok := ecs.Get(w, cam, component.OrbitCameraComponent.Kind())
	require.True(t, ok)
	return o
}

func TestOrbitAttachIsIdempotent(t *testing.T) {
	w, cam, physics, driver := newOrbitFixture(t)

	driver.OnEnterGameplay()
	driver.OnEnterGameplay()

	assert.Equal(t, 1, physics.BodyCount())
	kb, ok := ecs.Get(w, cam, component.KinematicBodyComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cameraBodyRadius, kb.Radius)

	orbit := orbitOf(t, w, cam)
	assert.True(t, orbit.CursorLockActive)
	assert.Equal(t, ebiten.KeyL, orbit.CursorLockKey)
	_, win, err := ecs.Single(w, component.WindowComponent.Kind())
	require.NoError(t, err)
	assert.True(t, win.CursorCaptured)

	driver.OnExitGameplay()
	assert.Zero(t, physics.BodyCount())
	assert.False(t, ecs.Has(w, cam, component.OrbitCameraComponent.Kind()))
	assert.False(t, ecs.Has(w, cam, component.KinematicBodyComponent.Kind()))
	assert.False(t, win.CursorCaptured)

	driver.OnEnterGameplay()
	assert.Equal(t, 1, physics.BodyCount(), "re-entering gameplay attaches again")
}

func TestOrbitCursorToggleGatesLook(t *testing.T) {
	w, cam, _, driver := newOrbitFixture(t)
	driver.OnEnterGameplay()
	orbit := orbitOf(t, w, cam)

	driver.OnPan(mgl64.Vec2{10, 0})
	assert.NotZero(t, orbit.Yaw)

	driver.OnCursorToggle()
	assert.False(t, orbit.CursorLockActive)
	yaw := orbit.Yaw
	driver.OnPan(mgl64.Vec2{10, 0})
	assert.Equal(t, yaw, orbit.Yaw, "free cursor does not turn the camera")

	driver.OnCursorToggle()
	assert.True(t, orbit.CursorLockActive)
}

func TestOrbitZoomClamps(t *testing.T) {
	w, cam, _, driver := newOrbitFixture(t)
	driver.OnEnterGameplay()
	orbit := orbitOf(t, w, cam)

	driver.OnZoom(mgl64.Vec2{0, 1000})
	assert.Equal(t, orbit.ZoomMin, orbit.Radius)
	driver.OnZoom(mgl64.Vec2{0, -1000})
	assert.Equal(t, orbit.ZoomMax, orbit.Radius)
	driver.OnZoom(mgl64.Vec2{0, math.Inf(1)})
	assert.Equal(t, orbit.ZoomMax, orbit.Radius)
}

func TestOrbitPitchClamps(t *testing.T) {
	w, cam, _, driver := newOrbitFixture(t)
	driver.OnEnterGameplay()
	orbit := orbitOf(t, w, cam)

	driver.OnPan(mgl64.Vec2{0, 1e6})
	assert.InDelta(t, maxOrbitPitch, orbit.Pitch, 1e-12)
	driver.OnPan(mgl64.Vec2{0, -1e6})
	assert.InDelta(t, minOrbitPitch, orbit.Pitch, 1e-12)
}

func TestOrbitUpdateTracksPlayer(t *testing.T) {
	w, cam, _, driver := newOrbitFixture(t)
	player := spawnPlayer(t, w, mgl64.Vec3{3, 0, -2})
	driver.OnEnterGameplay()
	orbit := orbitOf(t, w, cam)

	driver.Update(tick)
	tr := cameraTransform(t, w, cam)
	assert.InDelta(t, orbit.Radius, tr.Translation.Sub(player.Translation).Len(), 1e-9)
	toPlayer := player.Translation.Sub(tr.Translation).Normalize()
	assert.InDelta(t, 0, tr.Forward().Sub(toPlayer).Len(), 1e-6)
}

func TestOrbitOffset(t *testing.T) {
	off := OrbitOffset(0, 0, 5)
	assert.InDelta(t, 0, off.Sub(mgl64.Vec3{0, 0, 5}).Len(), 1e-12)

	off = OrbitOffset(1.2, 0.4, 7)
	assert.InDelta(t, 7, off.Len(), 1e-9)
	assert.InDelta(t, 7*math.Sin(0.4), off.Y(), 1e-9)
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		in      string
		want    ebiten.Key
		wantErr bool
	}{
		{in: "L", want: ebiten.KeyL},
		{in: " l ", want: ebiten.KeyL},
		{in: "F1", want: ebiten.KeyF1},
		{in: "Escape", want: ebiten.KeyEscape},
		{in: "hyper", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseKey(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNewCameraDriverRejectsUnknownStrategy(t *testing.T) {
	cfg := prefabs.DefaultConfig().Camera
	cfg.Strategy = "fisheye"
	_, err := NewCameraDriver(ecs.NewWorld(), state.NewGameState(), ecs.NewTime(), nil, cfg)
	assert.Error(t, err)

	cfg.Strategy = state.CameraThirdPerson
	cfg.CursorLockKey = "hyper"
	_, err = NewCameraDriver(ecs.NewWorld(), state.NewGameState(), ecs.NewTime(), nil, cfg)
	assert.Error(t, err)
}

func TestPhysicsBodyFollowsTransform(t *testing.T) {
	w := ecs.NewWorld()
	clock := ecs.NewTime()
	physics := NewPhysicsSystem(clock)

	e := ecs.CreateEntity(w)
	tr := component.NewTransform(1, 5, 2)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &tr))
	require.NoError(t, physics.AttachKinematic(w, e, 1))
	assert.Error(t, physics.AttachKinematic(w, e, 1))

	tr.Translation = mgl64.Vec3{4, 5, -3}
	clock.Advance(tick)
	physics.Update(w)

	kb, ok := ecs.Get(w, e, component.KinematicBodyComponent.Kind())
	require.True(t, ok)
	pos := kb.Body.Position()
	assert.InDelta(t, 4, pos.X, 1e-6)
	assert.InDelta(t, -3, pos.Y, 1e-6)

	ecs.DestroyEntity(w, e)
	physics.Update(w)
	assert.Zero(t, physics.BodyCount(), "bodies of destroyed entities are released")
}
