package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// FadeSystem ramps tagged music linearly over a fixed duration of virtual
// time. A faded-in track loses its tag; a faded-out track is despawned.
type FadeSystem struct {
	clock    *ecs.Time
	duration float64
}

func NewFadeSystem(clock *ecs.Time, seconds float64) *FadeSystem {
	if seconds <= 0 {
		seconds = 2
	}
	return &FadeSystem{clock: clock, duration: seconds}
}

func (f *FadeSystem) Update(w *ecs.World) {
	dt := f.clock.Delta()
	if dt <= 0 {
		return
	}
	step := dt / f.duration

	for _, e := range ecs.Query(w, component.FadeInTagComponent.Kind()) {
		sp, ok := ecs.Get(w, e, component.SamplePlayerComponent.Kind())
		if !ok {
			ecs.Remove(w, e, component.FadeInTagComponent.Kind())
			continue
		}
		sp.Level += sp.Volume * step
		if sp.Level >= sp.Volume {
			sp.Level = sp.Volume
			ecs.Remove(w, e, component.FadeInTagComponent.Kind())
		}
	}

	for _, e := range ecs.Query(w, component.FadeOutTagComponent.Kind()) {
		sp, ok := ecs.Get(w, e, component.SamplePlayerComponent.Kind())
		if !ok {
			ecs.DestroyEntity(w, e)
			continue
		}
		sp.Level -= sp.Volume * step
		if sp.Level <= 0 {
			sp.Level = 0
			despawnTrack(w, e)
		}
	}
}
