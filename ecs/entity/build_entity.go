package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/state"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player":            addPlayerTag,
	"scene_camera":      addSceneCameraTag,
	"transform":         addTransform,
	"player_controller": addPlayerController,
	"screen_scoped":     addScreenScoped,
}

var componentBuildOrder = []string{
	"player",
	"scene_camera",
	"transform",
	"player_controller",
	"screen_scoped",
}

// BuildEntity creates an entity from a prefab file. Components are added in
// a fixed order; unknown component names fail the build and nothing is left
// behind in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, spec, prefabPath)
}

func buildFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, prefabPath string) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addSceneCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SceneCameraTagComponent.Kind(), &component.SceneCameraTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.NewTransform(spec.X, spec.Y, spec.Z)
	if spec.LookAt != nil {
		t.LookAt(spec.LookAt.Vec3(), component.WorldUp)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

type playerControllerSpec = prefabs.PlayerControllerComponentSpec

func addPlayerController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerControllerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player controller spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		MoveSpeed: spec.MoveSpeed,
	})
}

type screenScopedSpec = prefabs.ScreenScopedComponentSpec

func addScreenScoped(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[screenScopedSpec](raw)
	if err != nil {
		return fmt.Errorf("decode screen scoped spec: %w", err)
	}
	screen, err := state.ParseScreen(spec.Screen)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ScreenScopedComponent.Kind(), &component.ScreenScoped{Screen: screen})
}
