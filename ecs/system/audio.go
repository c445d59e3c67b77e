package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// AudioSystem pushes each music playback's level, scaled by the music bus,
// to its sink and keeps the sink's play state in line with Paused.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	busVolume := BusVolume(w, component.BusMusic)

	ecs.ForEach(w, component.SamplePlayerComponent.Kind(), func(_ ecs.Entity, sp *component.SamplePlayer) {
		if sp.Sink == nil {
			return
		}
		sp.Sink.SetVolume(sp.Level * busVolume)

		switch {
		case sp.Paused && sp.Sink.IsPlaying():
			sp.Sink.Pause()
		case !sp.Paused && !sp.Sink.IsPlaying():
			sp.Sink.Play()
		}
	})
}

// BusVolume returns the volume of the bus of kind, or 1 when there is no
// such bus.
func BusVolume(w *ecs.World, kind component.BusKind) float64 {
	volume := 1.0
	ecs.ForEach(w, component.AudioBusComponent.Kind(), func(_ ecs.Entity, bus *component.AudioBus) {
		if bus.Kind == kind {
			volume = bus.Volume
		}
	})
	return volume
}
