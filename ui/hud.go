package ui

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/state"
)

var (
	groundColor = color.NRGBA{R: 0x1d, G: 0x2b, B: 0x1f, A: 0xff}
	zoneColor   = color.NRGBA{R: 0x8a, G: 0x2b, B: 0x2b, A: 0x80}
	playerColor = color.NRGBA{R: 0xf2, G: 0xd0, B: 0x4b, A: 0xff}
	cameraColor = color.NRGBA{R: 0x5b, G: 0xc0, B: 0xeb, A: 0xff}
)

// pixelsPerUnit scales the ground plane at the reference camera height.
const pixelsPerUnit = 6.0

// DrawWorld renders a plan view of the ground plane as seen from the scene
// camera: zones, the player and the camera heading. Higher cameras see more.
func DrawWorld(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(groundColor)

	camPos, camFwd := mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}
	if e, _, err := ecs.Single(w, component.SceneCameraTagComponent.Kind()); err == nil {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			camPos, camFwd = t.Translation, t.Forward()
		}
	}
	scale := pixelsPerUnit * 30 / common.Clamp(camPos.Y(), 5, 200)
	toScreen := func(x, z float64) (float32, float32) {
		return float32(common.BaseWidth/2 + (x-camPos.X())*scale),
			float32(common.BaseHeight/2 + (z-camPos.Z())*scale)
	}

	ecs.ForEach(w, component.MoodZoneComponent.Kind(), func(_ ecs.Entity, z *component.MoodZone) {
		x0, y0 := toScreen(z.Min.X(), z.Min.Y())
		x1, y1 := toScreen(z.Max.X(), z.Max.Y())
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, zoneColor, false)
	})

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		x, y := toScreen(t.Translation.X(), t.Translation.Z())
		vector.DrawFilledCircle(screen, x, y, 6, playerColor, true)
	})

	cx, cy := toScreen(camPos.X(), camPos.Z())
	vector.DrawFilledCircle(screen, cx, cy, 4, cameraColor, true)
	tip := camPos.Add(camFwd.Mul(20 / scale))
	tx, ty := toScreen(tip.X(), tip.Z())
	vector.StrokeLine(screen, cx, cy, tx, ty, 2, cameraColor, true)
}

// DrawIndicators draws the visible pause and mute badges at the top center.
func DrawIndicators(w *ecs.World, screen *ebiten.Image) {
	x := float32(common.BaseWidth/2 - 40)
	ecs.ForEach(w, component.IndicatorComponent.Kind(), func(_ ecs.Entity, ind *component.Indicator) {
		if !ind.Visible {
			return
		}
		vector.DrawFilledRect(screen, x, 4, 36, 36, panelFill, false)
		switch ind.Kind {
		case component.IndicatorPause:
			vector.DrawFilledRect(screen, x+10, 10, 6, 24, white, false)
			vector.DrawFilledRect(screen, x+20, 10, 6, 24, white, false)
		case component.IndicatorMute:
			vector.StrokeLine(screen, x+8, 10, x+28, 34, 3, white, true)
			vector.StrokeLine(screen, x+28, 10, x+8, 34, 3, white, true)
		}
		x += 44
	})
}

// DrawDiagnostics prints frame rate, camera, mood and modal stack.
func DrawDiagnostics(w *ecs.World, screen *ebiten.Image, gs *state.GameState, current state.Screen) {
	lines := []string{
		fmt.Sprintf("fps %.0f  tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("screen %s  mood %s  camera %s", current, gs.CurrentMood, gs.CameraMode),
		fmt.Sprintf("modals %v  paused %t  muted %t", gs.Modals, gs.Paused, gs.Muted),
	}
	if e, _, err := ecs.Single(w, component.SceneCameraTagComponent.Kind()); err == nil {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			p := t.Translation
			lines = append(lines, fmt.Sprintf("cam (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z()))
		}
	}
	music := 0
	ecs.ForEach(w, component.MusicTagComponent.Kind(), func(ecs.Entity, *component.MusicTag) { music++ })
	lines = append(lines, fmt.Sprintf("music entities %d", music))

	for i, l := range lines {
		debugPrint(screen, l, i)
	}
}

// DrawZoneList prints every mood zone with its bounds.
func DrawZoneList(w *ecs.World, screen *ebiten.Image) {
	row := 0
	ecs.ForEach(w, component.MoodZoneComponent.Kind(), func(_ ecs.Entity, z *component.MoodZone) {
		msg := fmt.Sprintf("zone %s %s [%.0f,%.0f]-[%.0f,%.0f]", z.Name, z.Mood, z.Min.X(), z.Min.Y(), z.Max.X(), z.Max.Y())
		if z.Script != "" {
			msg += " script=" + z.Script
		}
		debugPrintAt(screen, msg, common.BaseHeight-24-row*16)
		row++
	})
}
