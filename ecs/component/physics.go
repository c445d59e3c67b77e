package component

import "github.com/jakecoffman/cp"

// KinematicBody is an externally driven collider tracked by the physics
// space. Its position is the ground-plane projection (x, z) of Transform.
type KinematicBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
}

var KinematicBodyComponent = NewComponent[KinematicBody]()
