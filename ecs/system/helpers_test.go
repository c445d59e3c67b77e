package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/state"
)

type fakeScreens struct{ current state.Screen }

func (f *fakeScreens) Current() state.Screen { return f.current }

func gameplay() *fakeScreens { return &fakeScreens{current: state.ScreenGameplay} }

type fakeView struct{ updates, draws int }

func (v *fakeView) Update() { v.updates++ }
func (v *fakeView) Draw(_ *ebiten.Image) { v.draws++ }

type fakeViews struct{ built []state.Modal }

func (f *fakeViews) Overlay(m state.Modal) component.View {
	f.built = append(f.built, m)
	return &fakeView{}
}

type fakeSink struct {
	playing bool
	closed  bool
	volume  float64
}

func (s *fakeSink) Play() { s.playing = true }
func (s *fakeSink) Pause() { s.playing = false }
func (s *fakeSink) IsPlaying() bool { return s.playing }
func (s *fakeSink) SetVolume(v float64) { s.volume = v }
func (s *fakeSink) Close() error { s.closed = true; return nil }

type fakeLoader struct{ opened []string }

func (l *fakeLoader) Open(track string) (component.Sink, error) {
	l.opened = append(l.opened, track)
	return &fakeSink{}, nil
}

// sceneWorld builds a world with a window and one scene camera at camPos
// looking at the origin.
func sceneWorld(t *testing.T, camPos mgl64.Vec3) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	_, err := entity.NewWindow(w, 1280, 720)
	require.NoError(t, err)

	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.SceneCameraTagComponent.Kind(), &component.SceneCameraTag{}))
	tr := component.NewTransform(camPos.X(), camPos.Y(), camPos.Z())
	tr.LookAt(mgl64.Vec3{}, component.WorldUp)
	require.NoError(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &tr))
	return w, cam
}

func spawnPlayer(t *testing.T, w *ecs.World, pos mgl64.Vec3) *component.Transform {
	t.Helper()
	p, err := entity.NewPlayer(w, pos, 8)
	require.NoError(t, err)
	tr, ok := ecs.Get(w, p, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func cameraTransform(t *testing.T, w *ecs.World, cam ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func setCursor(t *testing.T, w *ecs.World, x, y float64) {
	t.Helper()
	_, win, err := ecs.Single(w, component.WindowComponent.Kind())
	require.NoError(t, err)
	win.CursorX, win.CursorY, win.HasCursor = x, y, true
}
