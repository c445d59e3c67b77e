package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space position and orientation. The local forward
// axis is -Z, up is +Y.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

var TransformComponent = NewComponent[Transform]()

// WorldUp is the world +Y axis.
var WorldUp = mgl64.Vec3{0, 1, 0}

func NewTransform(x, y, z float64) Transform {
	return Transform{Translation: mgl64.Vec3{x, y, z}, Rotation: mgl64.QuatIdent()}
}

func (t *Transform) Forward() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{0, 0, -1})
}

func (t *Transform) Left() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{-1, 0, 0})
}

func (t *Transform) Right() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{1, 0, 0})
}

func (t *Transform) Up() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{0, 1, 0})
}

// Rotate applies q in world space.
func (t *Transform) Rotate(q mgl64.Quat) {
	t.Rotation = q.Mul(t.rotation()).Normalize()
}

// LookAt turns the transform so that Forward points at target. Degenerate
// inputs leave the rotation unchanged.
func (t *Transform) LookAt(target, up mgl64.Vec3) {
	if q, ok := LookRotation(target.Sub(t.Translation), up); ok {
		t.Rotation = q
	}
}

// LookRotation returns the rotation whose forward axis is dir. It reports
// false when dir is zero or parallel to up.
func LookRotation(dir, up mgl64.Vec3) (mgl64.Quat, bool) {
	if dir.Len() < 1e-9 {
		return mgl64.QuatIdent(), false
	}
	f := dir.Normalize()
	r := f.Cross(up)
	if r.Len() < 1e-9 {
		return mgl64.QuatIdent(), false
	}
	r = r.Normalize()
	u := r.Cross(f)
	m := mgl64.Mat3FromCols(r, u, f.Mul(-1))
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize(), true
}

func (t *Transform) rotation() mgl64.Quat {
	if t.Rotation.W == 0 && t.Rotation.V.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return t.Rotation
}
