package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// TopDownRig drives the free top-down camera.
type TopDownRig struct {
	// Following snaps the camera to Offset above the player every tick.
	Following bool
	Offset    mgl64.Vec3
}

var TopDownRigComponent = NewComponent[TopDownRig]()

// OrbitCamera is the third-person behavior attached while in Gameplay.
type OrbitCamera struct {
	ZoomMin float64
	ZoomMax float64
	Radius  float64
	// Yaw and Pitch are in radians; pitch is measured up from the ground.
	Yaw   float64
	Pitch float64

	CursorLockKey    ebiten.Key
	CursorLockActive bool
}

var OrbitCameraComponent = NewComponent[OrbitCamera]()

// Projection is the perspective used by the renderer.
type Projection struct {
	FOV float64 // radians
}

var ProjectionComponent = NewComponent[Projection]()
