package system

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/clipboard"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/state"
)

// ClipboardWriter stores text on the system clipboard.
type ClipboardWriter func(text string) error

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// SystemClipboard writes through golang.design/x/clipboard.
func SystemClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// DevToolsSystem handles the developer toggles.
type DevToolsSystem struct {
	w     *ecs.World
	gs    *state.GameState
	write ClipboardWriter
}

func NewDevToolsSystem(w *ecs.World, bus *ecs.Bus, gs *state.GameState, write ClipboardWriter) *DevToolsSystem {
	if write == nil {
		write = SystemClipboard
	}
	d := &DevToolsSystem{w: w, gs: gs, write: write}

	ecs.Subscribe(bus, func(event.ToggleDiagnostics) {
		gs.DiagnosticsVisible = !gs.DiagnosticsVisible
		slog.Debug("dev: diagnostics", "visible", gs.DiagnosticsVisible)
	})
	ecs.Subscribe(bus, func(event.ToggleDebugUI) {
		gs.DebugUIVisible = !gs.DebugUIVisible
		slog.Debug("dev: debug ui", "visible", gs.DebugUIVisible)
	})
	ecs.Subscribe(bus, func(event.CopyCameraTransform) { d.CopyCameraTransform() })

	return d
}

// CopyCameraTransform puts the camera transform on the clipboard in the
// camera.yaml transform format.
func (d *DevToolsSystem) CopyCameraTransform() {
	_, t, ok := sceneCamera(d.w)
	if !ok {
		return
	}
	text := FormatTransform(t)
	if err := d.write(text); err != nil {
		slog.Warn("dev: copy camera transform", "err", err)
		return
	}
	slog.Info("dev: camera transform copied")
}

// FormatTransform renders t as a prefab transform spec.
func FormatTransform(t *component.Transform) string {
	target := t.Translation.Add(t.Forward().Mul(10))
	return fmt.Sprintf("transform:\n  x: %.3f\n  y: %.3f\n  z: %.3f\n  look_at: { x: %.3f, y: %.3f, z: %.3f }\n",
		t.Translation.X(), t.Translation.Y(), t.Translation.Z(),
		target.X(), target.Y(), target.Z())
}
