package component

import "github.com/go-gl/mathgl/mgl64"

// PlayerController moves the player on the ground plane.
type PlayerController struct {
	MoveSpeed float64
	// Direction is the latest navigate input, x right and y forward.
	Direction mgl64.Vec2
}

var PlayerControllerComponent = NewComponent[PlayerController]()
