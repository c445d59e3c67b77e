package entity

import (
	"fmt"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// NewAudioBuses spawns the music and sfx buses at the given levels.
func NewAudioBuses(w *ecs.World, music, sfx float64) error {
	for _, bus := range []component.AudioBus{
		{Kind: component.BusMusic, Volume: music},
		{Kind: component.BusSfx, Volume: sfx},
	} {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.AudioBusComponent.Kind(), &bus); err != nil {
			return fmt.Errorf("audio bus %s: %w", bus.Kind, err)
		}
	}
	return nil
}

// NewMusicTrack spawns a looping background music playback of track. With
// fadeIn the track starts silent and ramps up to volume.
func NewMusicTrack(w *ecs.World, track string, sink component.Sink, volume float64, fadeIn bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MusicTagComponent.Kind(), &component.MusicTag{}); err != nil {
		return 0, fmt.Errorf("music track: add tag: %w", err)
	}

	level := volume
	if fadeIn {
		level = 0
	}
	if err := ecs.Add(w, e, component.SamplePlayerComponent.Kind(), &component.SamplePlayer{
		Track:   track,
		Volume:  volume,
		Level:   level,
		Looping: true,
		Sink:    sink,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("music track: add sample player: %w", err)
	}

	if fadeIn {
		if err := ecs.Add(w, e, component.FadeInTagComponent.Kind(), &component.FadeInTag{}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("music track: add fade in: %w", err)
		}
	}

	return e, nil
}
