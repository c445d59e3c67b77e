package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

// ScriptSource returns the source of a zone script by name.
type ScriptSource func(name string) ([]byte, error)

// MoodZoneSystem asks for the mood of the zone the player stands in, or
// Exploration outside every zone. Zones with a script only count while the
// script sets `active` to true.
type MoodZoneSystem struct {
	bus     *ecs.Bus
	gs      *state.GameState
	clock   *ecs.Time
	screens ScreenReader
	source  ScriptSource

	scripts map[string]*tengo.Compiled
	broken  map[string]bool
}

func NewMoodZoneSystem(bus *ecs.Bus, gs *state.GameState, clock *ecs.Time, screens ScreenReader, source ScriptSource) *MoodZoneSystem {
	if source == nil {
		source = prefabs.LoadScript
	}
	return &MoodZoneSystem{
		bus:     bus,
		gs:      gs,
		clock:   clock,
		screens: screens,
		source:  source,
		scripts: make(map[string]*tengo.Compiled),
		broken:  make(map[string]bool),
	}
}

// Reload drops compiled scripts so edited files are picked up.
func (z *MoodZoneSystem) Reload() {
	z.scripts = make(map[string]*tengo.Compiled)
	z.broken = make(map[string]bool)
}

func (z *MoodZoneSystem) Update(w *ecs.World) {
	if z.screens != nil && z.screens.Current() != state.ScreenGameplay {
		return
	}
	if z.gs.Paused || len(z.gs.Modals) > 0 {
		return
	}
	zones := ecs.Query(w, component.MoodZoneComponent.Kind())
	if len(zones) == 0 {
		return
	}
	_, pt, ok := playerTransform(w)
	if !ok {
		return
	}
	x, zz := pt.Translation.X(), pt.Translation.Z()

	want := state.MoodExploration
	for _, e := range zones {
		zone, ok := ecs.Get(w, e, component.MoodZoneComponent.Kind())
		if !ok || !zone.Contains(x, zz) {
			continue
		}
		if zone.Script != "" && !z.active(zone, x, zz) {
			continue
		}
		want = zone.Mood
		break
	}

	if want != z.gs.CurrentMood {
		z.bus.Trigger(event.ChangeMood{Mood: want})
	}
}

func (z *MoodZoneSystem) active(zone *component.MoodZone, x, zz float64) bool {
	compiled, err := z.compiled(zone.Script)
	if err != nil {
		if !z.broken[zone.Script] {
			slog.Error("zone: script", "zone", zone.Name, "script", zone.Script, "err", err)
			z.broken[zone.Script] = true
		}
		return false
	}

	if err := compiled.Set("player_x", x); err != nil {
		return false
	}
	if err := compiled.Set("player_z", zz); err != nil {
		return false
	}
	if err := compiled.Set("elapsed", z.clock.Elapsed()); err != nil {
		return false
	}
	if err := compiled.Set("active", false); err != nil {
		return false
	}
	if err := compiled.Run(); err != nil {
		slog.Debug("zone: run script", "zone", zone.Name, "err", err)
		return false
	}
	return compiled.Get("active").Bool()
}

func (z *MoodZoneSystem) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := z.scripts[name]; ok {
		return c, nil
	}
	if z.broken[name] {
		return nil, fmt.Errorf("script %q failed to compile", name)
	}

	src, err := z.source(name)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	_ = script.Add("player_x", 0.0)
	_ = script.Add("player_z", 0.0)
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("active", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	z.scripts[name] = compiled
	return compiled, nil
}
