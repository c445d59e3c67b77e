package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

func TestNewSceneCamera(t *testing.T) {
	w := ecs.NewWorld()
	cam, err := NewSceneCamera(w, 60)
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, cam, component.SceneCameraTagComponent.Kind()))
	tr, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{100, 50, 100}, tr.Translation)
	assert.Less(t, tr.Forward().Y(), 0.0, "camera looks down at the origin")

	proj, ok := ecs.Get(w, cam, component.ProjectionComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, mgl64.DegToRad(60), proj.FOV, 1e-12)
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	p, err := NewPlayer(w, mgl64.Vec3{3, 0, -4}, 8)
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, p, component.PlayerTagComponent.Kind()))
	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	assert.Equal(t, mgl64.Vec3{3, 0, -4}, tr.Translation)

	ctrl, ok := ecs.Get(w, p, component.PlayerControllerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 8.0, ctrl.MoveSpeed)

	scope, ok := ecs.Get(w, p, component.ScreenScopedComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, state.ScreenGameplay, scope.Screen)
}

func TestBuildFromSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		spec prefabs.EntityBuildSpec
	}{
		{"no components", prefabs.EntityBuildSpec{Name: "empty"}},
		{"unknown component", prefabs.EntityBuildSpec{Components: map[string]any{
			"player":  map[string]any{},
			"sprite":  map[string]any{"image": "x.png"},
			"lantern": map[string]any{},
		}}},
		{"bad screen", prefabs.EntityBuildSpec{Components: map[string]any{
			"screen_scoped": map[string]any{"screen": "lobby"},
		}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := buildFromSpec(w, c.spec, "test.yaml")
			assert.Error(t, err)
			assert.Empty(t, ecs.Entities(w), "failed builds leave nothing behind")
		})
	}
}

func TestBuildEntityMissingFile(t *testing.T) {
	_, err := BuildEntity(ecs.NewWorld(), "nope.yaml")
	assert.Error(t, err)
	_, err = BuildEntity(nil, "camera.yaml")
	assert.Error(t, err)
}

func TestNewMusicTrack(t *testing.T) {
	cases := []struct {
		name      string
		fadeIn    bool
		wantLevel float64
	}{
		{"steady", false, 0.7},
		{"fading in", true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := NewMusicTrack(w, "audio/music/trouble.wav", nil, 0.7, c.fadeIn)
			require.NoError(t, err)

			sp, ok := ecs.Get(w, e, component.SamplePlayerComponent.Kind())
			require.True(t, ok)
			assert.Equal(t, c.wantLevel, sp.Level)
			assert.Equal(t, 0.7, sp.Volume)
			assert.True(t, sp.Looping)
			assert.True(t, ecs.Has(w, e, component.MusicTagComponent.Kind()))
			assert.Equal(t, c.fadeIn, ecs.Has(w, e, component.FadeInTagComponent.Kind()))
		})
	}
}

func TestNewIndicatorsMirrorState(t *testing.T) {
	w := ecs.NewWorld()
	gs := state.NewGameState()
	gs.Muted = true
	require.NoError(t, NewIndicators(w, gs))

	got := map[component.IndicatorKind]bool{}
	ecs.ForEach(w, component.IndicatorComponent.Kind(), func(_ ecs.Entity, ind *component.Indicator) {
		got[ind.Kind] = ind.Visible
	})
	assert.Equal(t, map[component.IndicatorKind]bool{
		component.IndicatorPause: false,
		component.IndicatorMute:  true,
	}, got)
}

func TestNewMoodZones(t *testing.T) {
	w := ecs.NewWorld()
	require.NoError(t, NewMoodZones(w, []prefabs.ZoneSpec{
		{Name: "ruins", Mood: state.MoodCombat, Min: [2]float64{0, 0}, Max: [2]float64{10, 10}},
	}))
	_, zone, err := ecs.Single(w, component.MoodZoneComponent.Kind())
	require.NoError(t, err)
	assert.Equal(t, "ruins", zone.Name)
	assert.True(t, zone.Contains(5, 5))
}
