package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// NewPlayer spawns the player at spawn. A move speed in player.yaml wins over
// moveSpeed.
func NewPlayer(w *ecs.World, spawn mgl64.Vec3, moveSpeed float64) (ecs.Entity, error) {
	player, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		nt := component.NewTransform(0, 0, 0)
		t = &nt
	}
	t.Translation = spawn
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), t); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}

	ctrl, ok := ecs.Get(w, player, component.PlayerControllerComponent.Kind())
	if !ok {
		ctrl = &component.PlayerController{}
	}
	if ctrl.MoveSpeed == 0 {
		ctrl.MoveSpeed = moveSpeed
	}
	if err := ecs.Add(w, player, component.PlayerControllerComponent.Kind(), ctrl); err != nil {
		return 0, fmt.Errorf("player: add controller: %w", err)
	}

	return player, nil
}
