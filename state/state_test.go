package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenMachineHooks(t *testing.T) {
	gs := NewGameState()
	m := NewScreenMachine(gs)

	var got []string
	m.OnEnter(ScreenSplash, func() { got = append(got, "enter splash") })
	m.OnExit(ScreenSplash, func() { got = append(got, "exit splash") })
	m.OnEnter(ScreenTitle, func() { got = append(got, "enter title") })
	m.OnEnter(ScreenTitle, func() { got = append(got, "enter title 2") })

	m.Start()
	m.Start()
	m.GoTo(ScreenTitle)

	assert.Equal(t, []string{"enter splash", "exit splash", "enter title", "enter title 2"}, got)
	assert.Equal(t, ScreenTitle, m.Current())
	assert.Equal(t, ScreenSplash, gs.LastScreen)
}

func TestScreenMachineSameScreenIsNoop(t *testing.T) {
	gs := NewGameState()
	m := NewScreenMachine(gs)
	m.GoTo(ScreenTitle)

	calls := 0
	m.OnExit(ScreenTitle, func() { calls++ })
	m.OnEnter(ScreenTitle, func() { calls++ })
	m.GoTo(ScreenTitle)

	assert.Zero(t, calls)
	assert.Equal(t, ScreenSplash, gs.LastScreen)
}

func TestScreenMachineHookSeesNewScreen(t *testing.T) {
	m := NewScreenMachine(nil)
	var during Screen
	m.OnEnter(ScreenGameplay, func() { during = m.Current() })
	m.GoTo(ScreenGameplay)
	assert.Equal(t, ScreenGameplay, during)
}

func TestGameStateReset(t *testing.T) {
	gs := NewGameState()
	gs.Modals = []Modal{ModalMain, ModalSettings}
	gs.Paused = true
	gs.Muted = true
	gs.ModalPaused = true
	gs.ModalToggledCursor = true
	gs.DebugUIVisible = true
	gs.CameraMode = CameraModeRotate

	gs.Reset()

	assert.Zero(t, gs.ModalDepth())
	assert.False(t, gs.Paused)
	assert.False(t, gs.Muted)
	assert.False(t, gs.ModalPaused)
	assert.False(t, gs.ModalToggledCursor)
	assert.True(t, gs.DebugUIVisible)
	assert.Equal(t, CameraModeRotate, gs.CameraMode)

	_, ok := gs.TopModal()
	assert.False(t, ok)
}

func TestTopModal(t *testing.T) {
	gs := NewGameState()
	gs.Modals = append(gs.Modals, ModalMain, ModalSettings)
	top, ok := gs.TopModal()
	require.True(t, ok)
	assert.Equal(t, ModalSettings, top)
	assert.Equal(t, 2, gs.ModalDepth())
}

func TestParseNames(t *testing.T) {
	cases := []struct {
		in      string
		want    any
		parse   func(string) (any, error)
		wantErr bool
	}{
		{in: "combat", want: MoodCombat, parse: parseMood},
		{in: " Exploration ", want: MoodExploration, parse: parseMood},
		{in: "calm", parse: parseMood, wantErr: true},
		{in: "top_down", want: CameraTopDown, parse: parseStrategy},
		{in: "Third-Person", want: CameraThirdPerson, parse: parseStrategy},
		{in: "orbit", want: CameraThirdPerson, parse: parseStrategy},
		{in: "fisheye", parse: parseStrategy, wantErr: true},
		{in: "gameplay", want: ScreenGameplay, parse: parseScreen},
		{in: "TITLE", want: ScreenTitle, parse: parseScreen},
		{in: "lobby", parse: parseScreen, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := c.parse(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestMoodTypeText(t *testing.T) {
	var m MoodType
	require.NoError(t, m.UnmarshalText([]byte("combat")))
	assert.Equal(t, MoodCombat, m)

	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "combat", string(b))
}

func parseMood(s string) (any, error)     { return ParseMoodType(s) }
func parseStrategy(s string) (any, error) { return ParseCameraStrategy(s) }
func parseScreen(s string) (any, error)   { return ParseScreen(s) }
