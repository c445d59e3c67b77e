// Package event defines the logical actions and lifecycle requests that flow
// through the ecs.Bus. Raw devices are resolved to these by the input system.
package event

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/state"
)

// Pan carries the pointer motion of one tick.
type Pan struct {
	Delta mgl64.Vec2
}

// ScrollZoom carries the wheel delta of one tick.
type ScrollZoom struct {
	Delta mgl64.Vec2
}

// Navigate carries the movement stick/keys direction, x right and y forward.
type Navigate struct {
	Direction mgl64.Vec2
}

type RotateToggleStart struct{}

type RotateToggleEnd struct{}

// Back is the cancel/escape action.
type Back struct{}

type TogglePause struct{}

type ToggleMute struct{}

// CameraCursorToggle flips whether the orbit camera captures the cursor.
type CameraCursorToggle struct{}

// RecenterCamera re-attaches the top-down camera to the player.
type RecenterCamera struct{}

type NewModal struct {
	Modal state.Modal
}

type PopModal struct{}

type ClearModals struct{}

type ChangeMood struct {
	Mood state.MoodType
}

type SwitchInputContext struct {
	Context state.InputContext
}

// GoTo requests a top-level screen transition.
type GoTo struct {
	Screen state.Screen
}

// ReturnToTitle leaves Gameplay from the in-game menu and resets the session.
type ReturnToTitle struct{}

// SettingsChanged is sent after volume levels were edited or reloaded.
type SettingsChanged struct{}

type ToggleDiagnostics struct{}

type ToggleDebugUI struct{}

// CopyCameraTransform copies the scene camera transform to the clipboard.
type CopyCameraTransform struct{}

type Quit struct{}
