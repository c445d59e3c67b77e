package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
)

func NewMoodZones(w *ecs.World, zones []prefabs.ZoneSpec) error {
	for _, z := range zones {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.MoodZoneComponent.Kind(), &component.MoodZone{
			Name:   z.Name,
			Mood:   z.Mood,
			Min:    mgl64.Vec2{z.Min[0], z.Min[1]},
			Max:    mgl64.Vec2{z.Max[0], z.Max[1]},
			Script: z.Script,
		}); err != nil {
			return fmt.Errorf("mood zone %q: %w", z.Name, err)
		}
	}
	return nil
}
