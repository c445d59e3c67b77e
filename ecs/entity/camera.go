package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// NewSceneCamera spawns the one camera of the process from camera.yaml.
// fovDegrees is the configured vertical field of view.
func NewSceneCamera(w *ecs.World, fovDegrees float64) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	if !ecs.Has(w, camera, component.TransformComponent.Kind()) {
		t := component.NewTransform(0, 0, 0)
		if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &t); err != nil {
			return 0, fmt.Errorf("camera: add transform: %w", err)
		}
	}

	if err := ecs.Add(w, camera, component.ProjectionComponent.Kind(), &component.Projection{
		FOV: mgl64.DegToRad(fovDegrees),
	}); err != nil {
		return 0, fmt.Errorf("camera: add projection: %w", err)
	}

	return camera, nil
}
