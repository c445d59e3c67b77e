package system

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

const collisionTypeCamera cp.CollisionType = 1

// PhysicsSystem keeps externally driven collision bodies in a chipmunk
// space. Bodies live on the ground plane: space x is world x, space y is
// world z.
type PhysicsSystem struct {
	space *cp.Space
	clock *ecs.Time

	entities map[ecs.Entity]*component.KinematicBody
}

func NewPhysicsSystem(clock *ecs.Time) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	return &PhysicsSystem{
		space:    space,
		clock:    clock,
		entities: make(map[ecs.Entity]*component.KinematicBody),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// AttachKinematic gives e a kinematic circle of radius at its transform.
func (ps *PhysicsSystem) AttachKinematic(w *ecs.World, e ecs.Entity, radius float64) error {
	if ps == nil {
		return fmt.Errorf("physics: system is nil")
	}
	if ecs.Has(w, e, component.KinematicBodyComponent.Kind()) {
		return fmt.Errorf("physics: entity %s already has a kinematic body", e)
	}

	body := cp.NewKinematicBody()
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		body.SetPosition(groundPoint(t))
	}
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(collisionTypeCamera)
	shape.SetSensor(true)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	kb := &component.KinematicBody{Body: body, Shape: shape, Radius: radius}
	if err := ecs.Add(w, e, component.KinematicBodyComponent.Kind(), kb); err != nil {
		ps.space.RemoveShape(shape)
		ps.space.RemoveBody(body)
		return fmt.Errorf("physics: add kinematic body: %w", err)
	}
	ps.entities[e] = kb
	return nil
}

// Detach removes the body of e from the space and the world.
func (ps *PhysicsSystem) Detach(w *ecs.World, e ecs.Entity) {
	if ps == nil {
		return
	}
	if kb, ok := ps.entities[e]; ok {
		ps.release(kb)
		delete(ps.entities, e)
	}
	ecs.Remove(w, e, component.KinematicBodyComponent.Kind())
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)

	dt := ps.clock.Delta()
	if dt <= 0 {
		return
	}

	// kinematic bodies move at the velocity that reaches the transform this
	// step, so contacts see a continuous motion
	for e, kb := range ps.entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		target := groundPoint(t)
		kb.Body.SetVelocityVector(target.Sub(kb.Body.Position()).Mult(1 / dt))
	}

	ps.space.Step(dt)

	for _, kb := range ps.entities {
		kb.Body.SetVelocityVector(cp.Vector{})
	}
}

// BodyCount returns the number of bodies tracked in the space.
func (ps *PhysicsSystem) BodyCount() int {
	return len(ps.entities)
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, kb := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.KinematicBodyComponent.Kind()) {
			continue
		}
		slog.Debug("physics: dropping orphaned body", "entity", e)
		ps.release(kb)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) release(kb *component.KinematicBody) {
	if kb.Shape != nil {
		ps.space.RemoveShape(kb.Shape)
	}
	if kb.Body != nil {
		ps.space.RemoveBody(kb.Body)
	}
}

func groundPoint(t *component.Transform) cp.Vector {
	return cp.Vector{X: t.Translation.X(), Y: t.Translation.Z()}
}
