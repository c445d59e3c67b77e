package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

// SettingsStore exposes the live volume settings for editing.
type SettingsStore interface {
	Settings() *prefabs.Settings
}

// Overlays builds the in-game modal overlays. Buttons only send bus events;
// the modal system decides what happens.
type Overlays struct {
	bus      *ecs.Bus
	settings SettingsStore
}

func NewOverlays(bus *ecs.Bus, settings SettingsStore) *Overlays {
	return &Overlays{bus: bus, settings: settings}
}

func (o *Overlays) Overlay(m state.Modal) component.View {
	switch m {
	case state.ModalSettings:
		return o.settingsModal()
	default:
		return o.mainModal()
	}
}

func (o *Overlays) mainModal() *ebitenui.UI {
	return newPanel(
		newLabel("Menu", white),
		newButton("Resume", func() { o.bus.Trigger(event.PopModal{}) }),
		newButton("Settings", func() { o.bus.Trigger(event.NewModal{Modal: state.ModalSettings}) }),
		newButton("Main Menu", func() { o.bus.Trigger(event.ReturnToTitle{}) }),
		newButton("Quit", func() { o.bus.Trigger(event.Quit{}) }),
	)
}

func (o *Overlays) settingsModal() *ebitenui.UI {
	children := append([]widget.PreferredSizeLocateableWidget{newLabel("Settings", white)},
		volumeRows(o.bus, o.settings)...)
	children = append(children, newButton("Back", func() { o.bus.Trigger(event.PopModal{}) }))
	return newPanel(children...)
}

// volumeRows returns one "- label +" row per volume channel. Each edit is
// announced with SettingsChanged.
func volumeRows(bus *ecs.Bus, store SettingsStore) []widget.PreferredSizeLocateableWidget {
	channels := []struct {
		name  string
		value func(*prefabs.Settings) *float64
	}{
		{"General", func(s *prefabs.Settings) *float64 { return &s.General }},
		{"Music", func(s *prefabs.Settings) *float64 { return &s.Music }},
		{"Sfx", func(s *prefabs.Settings) *float64 { return &s.Sfx }},
	}

	rows := make([]widget.PreferredSizeLocateableWidget, 0, len(channels))
	for _, ch := range channels {
		label := newLabel("", dimWhite)
		refresh := func() {
			if s := store.Settings(); s != nil {
				label.Label = fmt.Sprintf("%s %3.0f%%", ch.name, *ch.value(s)*100)
			}
		}
		nudge := func(step float64) func() {
			return func() {
				s := store.Settings()
				if s == nil {
					return
				}
				v := ch.value(s)
				*v = StepVolume(*v, step)
				refresh()
				bus.Trigger(event.SettingsChanged{})
			}
		}
		refresh()

		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			)),
			widget.ContainerOpts.WidgetOpts(centered()),
		)
		row.AddChild(newButton("-", nudge(-0.1)))
		row.AddChild(label)
		row.AddChild(newButton("+", nudge(0.1)))
		rows = append(rows, row)
	}
	return rows
}

// StepVolume adds step to v, rounds to whole percents and clamps to [0, 1].
func StepVolume(v, step float64) float64 {
	v = float64(int((v+step)*100+0.5)) / 100
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
