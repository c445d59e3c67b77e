package entity

import (
	"fmt"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

func NewWindow(w *ecs.World, width, height float64) (ecs.Entity, error) {
	win := ecs.CreateEntity(w)
	if err := ecs.Add(w, win, component.WindowComponent.Kind(), &component.Window{
		Width:  width,
		Height: height,
	}); err != nil {
		return 0, fmt.Errorf("window: add component: %w", err)
	}
	return win, nil
}
