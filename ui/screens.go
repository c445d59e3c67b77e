package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/state"
)

// Screens holds the full-screen menus shown outside Gameplay.
type Screens struct {
	machine *state.ScreenMachine
	views   map[state.Screen]*ebitenui.UI
}

func NewScreens(bus *ecs.Bus, machine *state.ScreenMachine, settings SettingsStore) *Screens {
	toTitle := func() { bus.Trigger(event.GoTo{Screen: state.ScreenTitle}) }

	settingsChildren := append(volumeRows(bus, settings), newButton("Back", toTitle))

	return &Screens{
		machine: machine,
		views: map[state.Screen]*ebitenui.UI{
			state.ScreenTitle: newPanel(
				newLabel("OVERWORLD", white),
				newButton("Play", func() { bus.Trigger(event.GoTo{Screen: state.ScreenGameplay}) }),
				newButton("Settings", func() { bus.Trigger(event.GoTo{Screen: state.ScreenSettings}) }),
				newButton("Credits", func() { bus.Trigger(event.GoTo{Screen: state.ScreenCredits}) }),
				newButton("Tutorial", func() { bus.Trigger(event.GoTo{Screen: state.ScreenTutorial}) }),
				newButton("Quit", func() { bus.Trigger(event.Quit{}) }),
			),
			state.ScreenSettings: newPanel(append(
				[]widget.PreferredSizeLocateableWidget{newLabel("Settings", white)},
				settingsChildren...)...),
			state.ScreenCredits: newPanel(
				newLabel("Credits", white),
				newLabel("Code: the overworld contributors", dimWhite),
				newLabel("Music: generated tones", dimWhite),
				newButton("Back", toTitle),
			),
			state.ScreenTutorial: newPanel(
				newLabel("How to play", white),
				newLabel("WASD / arrows  walk", dimWhite),
				newLabel("Mouse at edges  pan camera", dimWhite),
				newLabel("Right drag  rotate camera", dimWhite),
				newLabel("Wheel  zoom", dimWhite),
				newLabel("F  recenter   L  cursor lock", dimWhite),
				newLabel("P  pause   M  mute   Esc  menu", dimWhite),
				newButton("Back", toTitle),
			),
		},
	}
}

func (s *Screens) Update() {
	if v, ok := s.views[s.machine.Current()]; ok {
		v.Update()
	}
}

func (s *Screens) Draw(screen *ebiten.Image) {
	current := s.machine.Current()
	switch current {
	case state.ScreenSplash:
		drawCentered(screen, "overworld")
		return
	case state.ScreenLoading:
		drawCentered(screen, "loading...")
		return
	}
	if v, ok := s.views[current]; ok {
		v.Draw(screen)
	}
}

func drawCentered(screen *ebiten.Image, msg string) {
	w, h := text.Measure(msg, Face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((common.BaseWidth-w)/2, (common.BaseHeight-h)/2)
	op.ColorScale.ScaleWithColor(white)
	text.Draw(screen, msg, Face, op)
}

// debugPrint writes a line of diagnostics at row.
func debugPrint(screen *ebiten.Image, msg string, row int) {
	debugPrintAt(screen, msg, 8+row*16)
}

func debugPrintAt(screen *ebiten.Image, msg string, y int) {
	ebitenutil.DebugPrintAt(screen, msg, 8, y)
}
