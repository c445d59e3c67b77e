package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/state"
)

// InputSystem resolves keyboard and mouse into bus events for the active
// input context and keeps the Window component current.
type InputSystem struct {
	bus     *ecs.Bus
	gs      *state.GameState
	lockKey ebiten.Key

	lastX, lastY float64
	hasLast      bool
	captured     bool
}

func NewInputSystem(bus *ecs.Bus, gs *state.GameState, lockKey ebiten.Key) *InputSystem {
	i := &InputSystem{bus: bus, gs: gs, lockKey: lockKey}
	ecs.Subscribe(bus, func(ev event.SwitchInputContext) { gs.InputContext = ev.Context })
	return i
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	focused := ebiten.IsFocused()

	var captured bool
	ecs.ForEach(w, component.WindowComponent.Kind(), func(_ ecs.Entity, win *component.Window) {
		win.CursorX, win.CursorY = x, y
		win.HasCursor = focused
		captured = win.CursorCaptured
	})
	i.applyCursorMode(captured && i.gs.InputContext == state.InputContextGameplay)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		i.bus.Trigger(event.ToggleDiagnostics{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		i.bus.Trigger(event.ToggleDebugUI{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		i.bus.Trigger(event.CopyCameraTransform{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.bus.Trigger(event.Back{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		i.bus.Trigger(event.ToggleMute{})
	}

	if i.gs.InputContext != state.InputContextGameplay {
		i.hasLast = false
		return
	}
	i.updateGameplay(x, y, focused)
}

func (i *InputSystem) updateGameplay(x, y float64, focused bool) {
	if focused {
		var delta mgl64.Vec2
		if i.hasLast {
			delta = mgl64.Vec2{x - i.lastX, y - i.lastY}
		}
		i.lastX, i.lastY, i.hasLast = x, y, true
		i.bus.Trigger(event.Pan{Delta: delta})
	} else {
		i.hasLast = false
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		i.bus.Trigger(event.ScrollZoom{Delta: mgl64.Vec2{wx, wy}})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		i.bus.Trigger(event.RotateToggleStart{})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		i.bus.Trigger(event.RotateToggleEnd{})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		i.bus.Trigger(event.TogglePause{})
	}
	if inpututil.IsKeyJustPressed(i.lockKey) {
		i.bus.Trigger(event.CameraCursorToggle{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		i.bus.Trigger(event.RecenterCamera{})
	}

	var dir mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir[1]--
	}
	if dir.Len() > 0 {
		i.bus.Trigger(event.Navigate{Direction: dir})
	}
}

func (i *InputSystem) applyCursorMode(captured bool) {
	if captured == i.captured {
		return
	}
	i.captured = captured
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
