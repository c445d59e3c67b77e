package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/event"
)

// PlayerControllerSystem walks the player on the ground plane relative to
// the camera heading.
type PlayerControllerSystem struct {
	clock *ecs.Time
	input mgl64.Vec2
}

func NewPlayerControllerSystem(bus *ecs.Bus, clock *ecs.Time) *PlayerControllerSystem {
	p := &PlayerControllerSystem{clock: clock}
	ecs.Subscribe(bus, func(ev event.Navigate) { p.input = ev.Direction })
	return p
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	input := p.input
	p.input = mgl64.Vec2{}

	forward, right := mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}
	if _, cam, ok := sceneCamera(w); ok {
		if f := flatten(cam.Forward()); f.Len() > 0 {
			forward = f
			right = flatten(cam.Right())
		}
	}

	dt := p.clock.Delta()
	ecs.ForEach2(w, component.PlayerControllerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ctrl *component.PlayerController, t *component.Transform) {
		ctrl.Direction = input
		if input.Len() == 0 || dt <= 0 {
			return
		}
		dir := input
		if dir.Len() > 1 {
			dir = dir.Normalize()
		}
		move := right.Mul(dir.X()).Add(forward.Mul(dir.Y()))
		t.Translation = t.Translation.Add(move.Mul(ctrl.MoveSpeed * dt))
		if q, ok := component.LookRotation(move, component.WorldUp); ok {
			t.Rotation = q
		}
	})
}
